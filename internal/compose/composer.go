// Package compose turns an extracted order into a populated invoice
// document: it assigns the invoice number and date, defaults missing
// fields, substitutes tokens into the template's paragraphs and fills its
// tables.
package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/orderdesk/invoicer/internal/config"
	"github.com/orderdesk/invoicer/internal/counter"
	"github.com/orderdesk/invoicer/internal/gender"
	"github.com/orderdesk/invoicer/internal/locale"
	"github.com/orderdesk/invoicer/internal/logger"
	"github.com/orderdesk/invoicer/pkg/docx"
	"github.com/orderdesk/invoicer/pkg/order"
)

// tableIndices addresses the template's tables positionally.
type tableIndices struct {
	items    int
	sum      int
	passport int
}

// Composer generates invoice documents from orders. One Composer may be
// shared by concurrent callers; the sequence counter serializes itself, and
// each Generate call owns its document exclusively.
type Composer struct {
	cfg     *config.Config
	counter *counter.Counter
	gender  gender.Detector
	tables  tableIndices

	// Every table cell is forced to this font after population.
	tableFont docx.Font
}

// New builds a composer for the given configuration.
func New(cfg *config.Config) *Composer {
	return &Composer{
		cfg:       cfg,
		counter:   counter.New(cfg.CounterPath, cfg.InvoiceCountStart),
		gender:    gender.NewDetector(),
		tables:    tableIndices{items: 0, sum: 1, passport: 2},
		tableFont: docx.Font{Name: "Calibri", Size: 10},
	}
}

// Result reports where Generate wrote its artifacts.
type Result struct {
	DocxPath string

	// ErrorsPath is the companion error report, empty when nothing was
	// defaulted.
	ErrorsPath string

	// Defaulted lists the order fields that were missing and replaced with
	// empty defaults, in check order.
	Defaulted []string
}

// Generate assigns the invoice date and number, runs the defaulting pass,
// populates the template and saves the document as
// Invoice-<number>.docx in the output directory. Fields that had to be
// defaulted are logged, written to a sibling error report and returned.
// Structural failures (unreadable counter, template shape mismatch) abort
// this order only.
func (c *Composer) Generate(o *order.Order) (*Result, error) {
	invoiceMissing := o.Invoice == nil
	if invoiceMissing {
		o.Invoice = &order.Invoice{}
	}
	if err := c.assignInvoiceNumber(o); err != nil {
		return nil, err
	}

	defaulted := c.applyDefaults(o, invoiceMissing)

	result := &Result{
		DocxPath:  filepath.Join(c.cfg.OutputDir, fmt.Sprintf("Invoice-%s.docx", o.Invoice.Number)),
		Defaulted: defaulted,
	}

	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("compose: create output dir: %w", err)
	}

	if len(defaulted) > 0 {
		result.ErrorsPath = filepath.Join(c.cfg.OutputDir, fmt.Sprintf("Invoice-%s-Errors.txt", o.Invoice.Number))
		report := strings.Join(defaulted, "\n")
		if err := os.WriteFile(result.ErrorsPath, []byte(report), 0o644); err != nil {
			return nil, fmt.Errorf("compose: write error report: %w", err)
		}
	}

	doc, err := docx.Load(c.cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("compose: load template: %w", err)
	}

	c.replaceParagraphs(o, doc)
	if err := c.replaceTables(o, doc); err != nil {
		return nil, err
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	o.Invoice.Docx = data
	if err := os.WriteFile(result.DocxPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("compose: save invoice: %w", err)
	}
	return result, nil
}

// assignInvoiceNumber synthesizes the invoice date from the order date and
// draws the next number from the counter. Both steps are skipped when the
// extractor already produced a value.
func (c *Composer) assignInvoiceNumber(o *order.Order) error {
	if o.Invoice.Date == "" {
		date, err := locale.ShortDate(o.Date)
		if err != nil {
			// A missing or unreadable mail date must not abort the order;
			// the invoice is dated today instead.
			logger.Warn("order date unusable, dating invoice today", "order", o.Number, "date", o.Date)
			date = time.Now().Format("02.01.2006")
		}
		o.Invoice.Date = date
	}

	if o.Invoice.Number == "" {
		year, err := locale.Year(o.Invoice.Date)
		if err != nil {
			return fmt.Errorf("compose: invoice date %q: %w", o.Invoice.Date, err)
		}
		number, err := c.counter.Next(year)
		if err != nil {
			return err
		}
		o.Invoice.Number = number
	}
	return nil
}

// applyDefaults is the defaulting pass: every required attribute that is
// absent is logged, recorded and replaced with a type-appropriate empty
// value. The check table is explicit and ordered.
func (c *Composer) applyDefaults(o *order.Order, invoiceMissing bool) []string {
	checks := []struct {
		name  string
		unset func() bool
		apply func()
	}{
		{"date", func() bool { return o.Date == "" }, func() {}},
		{"invoice", func() bool { return invoiceMissing }, func() {}},
		{"items", func() bool { return o.Items == nil }, func() { o.Items = []order.Item{} }},
		{"shipping_cost", func() bool { return o.ShippingCost == nil }, func() { zero := 0.0; o.ShippingCost = &zero }},
		{"payment_method", func() bool { return o.PaymentMethod == "" }, func() {}},
		{"customer", func() bool { return o.Customer == nil }, func() { o.Customer = &order.Customer{} }},
	}

	var defaulted []string
	for _, check := range checks {
		if !check.unset() {
			continue
		}
		logger.Error("required order field is missing", "field", check.name, "order", o.Number)
		check.apply()
		defaulted = append(defaulted, check.name)
	}
	return defaulted
}

// replacement binds a token to its value and the font its text should
// carry.
type replacement struct {
	token string
	value string
	font  docx.Font
}

// replaceParagraphs substitutes every paragraph token. A token that no
// paragraph contains is reported as a warning; template and token set
// drifting apart should not go unnoticed.
func (c *Composer) replaceParagraphs(o *order.Order, doc *docx.Document) {
	fullAddress := c.renderAddress(o)

	replacements := []replacement{
		{"{{address}}", fullAddress, docx.Font{Name: "Courier New", Size: 10}},
		{"{{date}}", o.Invoice.Date, docx.Font{Name: "Arial", Size: 11}},
		{"{{invoice_nr}}", o.Invoice.Number, docx.Font{Name: "Arial", Size: 16}},
		{"{{salutation}}", c.salutation(o, fullAddress), docx.Font{Name: "Arial", Size: 32}},
		{"{{payment_method}}", o.PaymentMethod, docx.Font{Name: "Arial", Size: 8}},
	}

	for _, r := range replacements {
		pattern := regexp.MustCompile(regexp.QuoteMeta(r.token))
		font := r.font
		replaced := 0
		for _, p := range doc.Paragraphs() {
			replaced += p.ReplaceTextFont(pattern, r.value, &font)
		}
		if replaced == 0 {
			logger.Warn("token not found in template", "token", r.token)
		}
	}
}
