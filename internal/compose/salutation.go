package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orderdesk/invoicer/internal/gender"
	"github.com/orderdesk/invoicer/pkg/order"
)

// Academic titles that precede the given name on the address's name line.
var titles = map[string]bool{
	"Dr.":   true,
	"Dr":    true,
	"Prof.": true,
	"Prof":  true,
}

// salutation derives the German salutation line from the rendered address
// block. The given name is taken from the name line (skipping a leading
// title), its gender inferred with the country line as locale hint, and the
// salutee addressed by surname when the name line contains it.
func (c *Composer) salutation(o *order.Order, fullAddress string) string {
	lines := strings.Split(fullAddress, "\n")
	fullName := lines[0]
	country := lines[len(lines)-1]

	nameParts := strings.Fields(fullName)
	pick := ""
	if len(nameParts) > 0 {
		pick = nameParts[0]
		if titles[pick] && len(nameParts) > 1 {
			pick = nameParts[1]
		}
	}

	result, err := c.gender.Detect(pick, strings.ToLower(country))
	var noCountry *gender.ErrNoCountry
	if errors.As(err, &noCountry) {
		result, _ = c.gender.Detect(pick, "")
	}

	salutee := fullName
	if o.Customer.Surname != "" && strings.Contains(fullName, o.Customer.Surname) {
		salutee = o.Customer.Surname
	}

	switch result {
	case gender.Male, gender.MostlyMale:
		return fmt.Sprintf("Sehr geehrter Herr %s", salutee)
	case gender.Female, gender.MostlyFemale:
		return fmt.Sprintf("Sehr geehrte Frau %s", salutee)
	default:
		return fmt.Sprintf("Sehr geehrte(r) Frau/Herr %s", salutee)
	}
}
