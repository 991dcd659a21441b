package network

import "errors"

// Sentinel errors for network operations.
var (
	// ErrEmptyCity indicates a city name that is empty after trimming spaces.
	ErrEmptyCity = errors.New("network: city name is empty")

	// ErrUnknownCity indicates a query for a city the network has never seen.
	ErrUnknownCity = errors.New("network: unknown city")

	// ErrBadDocument indicates a YAML document that could not be decoded.
	ErrBadDocument = errors.New("network: malformed network document")

	// ErrBadCityCount indicates a random network request for fewer than one city.
	ErrBadCityCount = errors.New("network: city count must be at least 1")
)

// Route is a flight between two named cities.
type Route struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
}

// document is the on-disk YAML shape of a Network.
type document struct {
	Cities  []string `yaml:"cities,omitempty"`
	Flights []Route  `yaml:"flights"`
}
