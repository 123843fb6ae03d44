package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validCriteria returns criteria that passes validation, for mutation in tests.
func validCriteria() SearchCriteria {
	s := SearchCriteria{
		Origin:         "BER",
		Destination:    "TPE",
		MaxConnections: 2,
	}
	s.SetDefaults()
	return s
}

func TestSearchCriteriaValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SearchCriteria)
		wantErr bool
	}{
		{
			name:    "valid criteria",
			mutate:  func(s *SearchCriteria) {},
			wantErr: false,
		},
		{
			name:    "missing origin",
			mutate:  func(s *SearchCriteria) { s.Origin = "" },
			wantErr: true,
		},
		{
			name:    "lowercase origin",
			mutate:  func(s *SearchCriteria) { s.Origin = "ber" },
			wantErr: true,
		},
		{
			name:    "missing destination",
			mutate:  func(s *SearchCriteria) { s.Destination = "" },
			wantErr: true,
		},
		{
			name:    "four letter destination",
			mutate:  func(s *SearchCriteria) { s.Destination = "TPEX" },
			wantErr: true,
		},
		{
			name:    "same origin and destination",
			mutate:  func(s *SearchCriteria) { s.Destination = "BER" },
			wantErr: true,
		},
		{
			name:    "window too large",
			mutate:  func(s *SearchCriteria) { s.WindowDays = 366 },
			wantErr: true,
		},
		{
			name:    "stay bounds inverted",
			mutate:  func(s *SearchCriteria) { s.MinStayDays = 10; s.MaxStayDays = 5 },
			wantErr: true,
		},
		{
			name:    "negative max connections",
			mutate:  func(s *SearchCriteria) { s.MaxConnections = -1 },
			wantErr: true,
		},
		{
			name:    "direct flights only is allowed",
			mutate:  func(s *SearchCriteria) { s.MaxConnections = 0 },
			wantErr: false,
		},
		{
			name:    "max offers above upstream cap",
			mutate:  func(s *SearchCriteria) { s.MaxOffers = 6 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := validCriteria()
			tt.mutate(&criteria)

			err := criteria.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchCriteriaSetDefaults(t *testing.T) {
	s := SearchCriteria{Origin: "BER", Destination: "TPE"}
	s.SetDefaults()

	assert.Equal(t, DefaultWindowDays, s.WindowDays)
	assert.Equal(t, DefaultTopCandidates, s.TopCandidates)
	assert.Equal(t, DefaultMinStayDays, s.MinStayDays)
	assert.Equal(t, DefaultMaxStayDays, s.MaxStayDays)
	assert.Equal(t, DefaultCurrency, s.Currency)
	assert.Equal(t, DefaultMaxOffers, s.MaxOffers)
	// Zero max connections is a meaningful value and must survive defaulting.
	assert.Equal(t, 0, s.MaxConnections)
}

func TestSearchCriteriaStayDays(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		max     int
		want    int
	}{
		{name: "default bounds", min: 7, max: 14, want: 11},
		{name: "equal bounds", min: 10, max: 10, want: 10},
		{name: "even midpoint", min: 8, max: 12, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SearchCriteria{MinStayDays: tt.min, MaxStayDays: tt.max}
			assert.Equal(t, tt.want, s.StayDays())
		})
	}
}
