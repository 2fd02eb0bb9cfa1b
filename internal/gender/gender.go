// Package gender infers the likely gender of a given name. It is the
// collaborator behind the salutation line; the Detector interface allows
// swapping in an external service.
package gender

import "strings"

// Gender is the inference result.
type Gender string

const (
	Male         Gender = "male"
	MostlyMale   Gender = "mostly_male"
	Female       Gender = "female"
	MostlyFemale Gender = "mostly_female"
	Unknown      Gender = "unknown"
)

// Detector infers a gender from a given name. The country hint, when
// non-empty, selects locale-specific usage of ambiguous names;
// ErrNoCountry signals an unrecognized hint and callers should retry
// without one.
type Detector interface {
	Detect(name, country string) (Gender, error)
}

// ErrNoCountry is returned when the country hint is not recognized.
type ErrNoCountry struct {
	Country string
}

func (e *ErrNoCountry) Error() string {
	return "gender: unknown country " + e.Country
}

// TableDetector resolves names against built-in frequency tables.
type TableDetector struct{}

// NewDetector returns the built-in table-backed detector.
func NewDetector() *TableDetector {
	return &TableDetector{}
}

// Detect looks the name up, applying the country-specific table first when
// a recognized country hint is given.
func (d *TableDetector) Detect(name, country string) (Gender, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Unknown, nil
	}

	if country != "" {
		overrides, ok := countryNames[strings.ToLower(country)]
		if !ok {
			return Unknown, &ErrNoCountry{Country: country}
		}
		if g, ok := overrides[key]; ok {
			return g, nil
		}
	}

	if g, ok := names[key]; ok {
		return g, nil
	}
	return Unknown, nil
}
