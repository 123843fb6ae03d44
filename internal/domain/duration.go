package domain

import (
	"regexp"
	"strconv"
)

// TripDuration is the parsed form of a compact ISO-8601 duration encoding.
type TripDuration struct {
	// Hours is the hour component (0 when absent from the encoding)
	Hours int `json:"hours"`

	// Minutes is the minute component (0 when absent from the encoding)
	Minutes int `json:"minutes"`

	// Available is false when the encoding was empty or malformed
	Available bool `json:"available"`
}

// isoDurationRegex matches compact ISO-8601 durations such as
// "PT8H30M", "PT45M", "PT22H" or "P1DT2H15M".
var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?)?$`)

// ParseISODuration converts a compact ISO-8601 duration into hours and
// minutes. Missing components default to zero; a day component folds into
// hours. Empty or malformed input yields Available=false rather than an
// error, so formatting a single bad record never fails the caller.
func ParseISODuration(encoded string) TripDuration {
	if encoded == "" {
		return TripDuration{}
	}

	m := isoDurationRegex.FindStringSubmatch(encoded)
	if m == nil {
		return TripDuration{}
	}

	days := atoiOrZero(m[1])
	hours := atoiOrZero(m[2])
	minutes := atoiOrZero(m[3])

	// "P" alone matches the pattern but carries no information.
	if m[1] == "" && m[2] == "" && m[3] == "" {
		return TripDuration{}
	}

	return TripDuration{
		Hours:     days*24 + hours,
		Minutes:   minutes,
		Available: true,
	}
}

// Format renders the duration as "8h 30m", or "n/a" when not available.
func (d TripDuration) Format() string {
	if !d.Available {
		return "n/a"
	}
	return strconv.Itoa(d.Hours) + "h " + strconv.Itoa(d.Minutes) + "m"
}

// TotalMinutes returns the duration in minutes, 0 when not available.
func (d TripDuration) TotalMinutes() int {
	if !d.Available {
		return 0
	}
	return d.Hours*60 + d.Minutes
}

// atoiOrZero converts a submatch to an int, treating empty as zero.
// Submatches are digit-only by construction so conversion cannot fail.
func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
