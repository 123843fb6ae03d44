package amadeus

// Wire-level DTOs mirroring the Amadeus response shapes this client consumes.
// The upstream API is third-party and versioned independently, so only the
// fields actually read are declared.

// tokenResponse is the body of a successful OAuth2 token exchange.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// priceResource is the price object shared by flight-dates and
// flight-offers records. Amounts arrive as strings.
type priceResource struct {
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
	Currency   string `json:"currency"`
}

// flightDatesResponse is the body of GET /v1/shopping/flight-dates.
type flightDatesResponse struct {
	Data []flightDateResource `json:"data"`
}

// flightDateResource is one indicative date record.
type flightDateResource struct {
	DepartureDate string        `json:"departureDate"`
	Price         priceResource `json:"price"`
}

// flightOffersResponse is the body of GET /v2/shopping/flight-offers.
type flightOffersResponse struct {
	Data []flightOfferResource `json:"data"`
}

// flightOfferResource is one bookable offer.
type flightOfferResource struct {
	Price       priceResource       `json:"price"`
	Itineraries []itineraryResource `json:"itineraries"`
}

// itineraryResource is one direction of travel within an offer.
type itineraryResource struct {
	Duration string            `json:"duration"`
	Segments []segmentResource `json:"segments"`
}

// segmentResource is one flight leg.
type segmentResource struct {
	Departure   pointResource `json:"departure"`
	Arrival     pointResource `json:"arrival"`
	CarrierCode string        `json:"carrierCode"`
	Number      string        `json:"number"`
}

// pointResource is a departure or arrival point. Times arrive as airport-local
// timestamps without a zone offset (e.g., "2025-03-17T11:45:00").
type pointResource struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// airlinesResponse is the body of GET /v1/reference-data/airlines.
type airlinesResponse struct {
	Data []airlineResource `json:"data"`
}

// airlineResource is one airline reference record.
type airlineResource struct {
	IataCode     string `json:"iataCode"`
	BusinessName string `json:"businessName"`
	CommonName   string `json:"commonName"`
}
