package compose

import (
	"strings"

	"github.com/orderdesk/invoicer/internal/locale"
	"github.com/orderdesk/invoicer/pkg/order"
)

// renderAddress produces the billing address block for the invoice: the
// full name on top, then the address lines. A home-country address is
// truncated to street and postal line; for any other country the country
// line is translated to its English display name.
func (c *Composer) renderAddress(o *order.Order) string {
	address := o.Invoice.Address
	lines := strings.Split(address.Address, "\n")

	if idx := locale.CountryIndex(lines); idx >= 0 {
		if lines[idx] == c.cfg.HomeCountry {
			if len(lines) > 2 {
				lines = lines[:2]
			}
		} else {
			lines[idx], _ = locale.TranslateCountry(lines[idx])
		}
	}

	return address.FullName + "\n" + strings.Join(lines, "\n")
}
