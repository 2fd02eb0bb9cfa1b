// Package parser extracts structured order data out of free-form
// order-confirmation mails. Every field is matched independently; one
// field failing never blocks the others.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/orderdesk/invoicer/internal/locale"
	"github.com/orderdesk/invoicer/internal/logger"
	"github.com/orderdesk/invoicer/internal/mail"
	"github.com/orderdesk/invoicer/pkg/order"
)

// The shop's confirmation mails are matched verbatim, so the patterns are
// fixed. The body is normalized to literal \r\n escape sequences first (see
// New), which keeps it a single line and lets `.` span the original breaks
// only where a pattern says so.
var (
	customerPattern = regexp.MustCompile(`von (.+), (.+)`)
	itemPattern     = regexp.MustCompile(`(\d) x "(.+?)" .*?: (\d+,\d{2}) €`)
	numberPattern   = regexp.MustCompile(`Du hast eine Bestellung \((\d+)\) über deinen Online-Shop`)
	shippingPattern = regexp.MustCompile(`Versandkosten \(inkl. MwSt.\): (\d+,\d{2}) €`)
	paymentPattern  = regexp.MustCompile(`Bezahlmethode: (.+?)\\r\\n\\r\\n\*Rechnungs`)
	addressPattern  = regexp.MustCompile(`Rechnung(?:sadresse|s- und Versandadresse)\*\\r\\n(.+\\r\\n[a-zA-Z0-9+._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+)`)
)

const lineBreak = `\r\n`

// Parser matches one message's subject and body.
type Parser struct {
	subject string
	body    string
}

// New prepares a parser. The body is normalized exactly once, up front:
// HTML breaks become CRLF, then every real CR and LF is rewritten to its
// two-character escape sequence. All finders and the address boundary
// detection work on that escaped form.
func New(subject, body string) *Parser {
	body = strings.ReplaceAll(body, "<br/>", "\r\n")
	body = strings.ReplaceAll(body, "\r", `\r`)
	body = strings.ReplaceAll(body, "\n", `\n`)
	return &Parser{subject: subject, body: body}
}

// FindCustomer matches the "... von <surname>, <name>" subject template.
// The capture groups arrive surname-first and are swapped.
func (p *Parser) FindCustomer() (*order.Customer, bool) {
	m := customerPattern.FindStringSubmatch(p.subject)
	if m == nil {
		return nil, false
	}
	return &order.Customer{Name: m[2], Surname: m[1]}, true
}

// FindItems collects every `<count> x "<description>" ...: <price> €` line.
// Prices use a comma decimal separator. A line with a count below one fails
// the whole items field, same as a malformed price. Items carry the default
// tax rate; locale-specific overrides (the shipping surcharge) are the
// composer's job.
func (p *Parser) FindItems() ([]order.Item, bool) {
	matches := itemPattern.FindAllStringSubmatch(p.body, -1)
	if matches == nil {
		return nil, false
	}
	items := make([]order.Item, 0, len(matches))
	for _, m := range matches {
		count, err := strconv.Atoi(m[1])
		if err != nil || count < 1 {
			return nil, false
		}
		price, err := parseAmount(m[3])
		if err != nil {
			return nil, false
		}
		description := strings.ReplaceAll(m[2], lineBreak, "\r\n")
		items = append(items, order.NewItem(count, description, price))
	}
	return items, true
}

// FindOrderNumber captures the shop-assigned order number.
func (p *Parser) FindOrderNumber() (string, bool) {
	m := numberPattern.FindStringSubmatch(p.body)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FindShippingCost captures the shipping cost amount.
func (p *Parser) FindShippingCost() (float64, bool) {
	m := shippingPattern.FindStringSubmatch(p.body)
	if m == nil {
		return 0, false
	}
	cost, err := parseAmount(m[1])
	if err != nil {
		return 0, false
	}
	return cost, true
}

// FindPaymentMethod captures the text between the payment label and the
// following address header and collapses it to a canonical short label when
// it contains a known provider keyword.
func (p *Parser) FindPaymentMethod() (string, bool) {
	m := paymentPattern.FindStringSubmatch(p.body)
	if m == nil {
		return "", false
	}
	return simplifyPaymentMethod(strings.TrimRight(m[1], " ")), true
}

// FindInvoiceAddress captures the multi-line block between the address
// label and the first email-shaped line, then locates the country line to
// bound the residential address. Line 0 is the full name; everything from
// line 1 through the country line is the residential address.
func (p *Parser) FindInvoiceAddress() (*order.Address, bool) {
	m := addressPattern.FindStringSubmatch(p.body)
	if m == nil {
		return nil, false
	}
	lines := strings.Split(m[1], lineBreak)
	countryIndex := locale.CountryIndex(lines)
	if countryIndex < 1 {
		return nil, false
	}
	return &order.Address{
		FullName: lines[0],
		Address:  strings.Join(lines[1:countryIndex+1], "\n"),
	}, true
}

// FindInvoice wraps the billing address in an invoice skeleton; number and
// date are filled in during composition.
func (p *Parser) FindInvoice() (*order.Invoice, bool) {
	address, ok := p.FindInvoiceAddress()
	if !ok {
		return nil, false
	}
	return &order.Invoice{Address: *address}, true
}

// OrderFromMail runs every finder against the message and assembles a
// best-effort order. The returned list names the fields that could not be
// extracted, in finder order; each failure is also logged.
func OrderFromMail(msg *mail.Message) (*order.Order, []string) {
	p := New(msg.Subject, msg.Body())
	o := &order.Order{SourceMail: msg, Date: msg.Date}

	var failed []string
	fail := func(field string) {
		logger.Warn("field extraction failed", "field", field, "mail", msg.ID)
		failed = append(failed, field)
	}

	if number, ok := p.FindOrderNumber(); ok {
		o.Number = number
	} else {
		fail("number")
	}
	if invoice, ok := p.FindInvoice(); ok {
		o.Invoice = invoice
	} else {
		fail("invoice")
	}
	if items, ok := p.FindItems(); ok {
		o.Items = items
	} else {
		fail("items")
	}
	if cost, ok := p.FindShippingCost(); ok {
		o.ShippingCost = &cost
	} else {
		fail("shipping_cost")
	}
	if method, ok := p.FindPaymentMethod(); ok {
		o.PaymentMethod = method
	} else {
		fail("payment_method")
	}
	if customer, ok := p.FindCustomer(); ok {
		o.Customer = customer
	} else {
		fail("customer")
	}
	return o, failed
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// Known provider keywords; free text containing one collapses to the short
// label. Unrecognized methods pass through verbatim. Extending this list
// currently requires a code change.
var paymentKeywords = []string{"Vorkasse", "PayPal", "Stripe"}

func simplifyPaymentMethod(method string) string {
	for _, keyword := range paymentKeywords {
		if strings.Contains(method, keyword) {
			return keyword
		}
	}
	return method
}
