// Package order defines the domain model for shop orders and the invoices
// generated from them.
package order

import (
	"fmt"

	"github.com/orderdesk/invoicer/internal/mail"
)

// Default values applied to items when the source mail does not specify them.
const (
	DefaultTaxRate = 0.07
	DefaultUnit    = "Stck."
)

// Address is a billing or delivery address. The address field holds
// newline-separated lines; by convention the last non-empty line is the
// country. Immutable once constructed.
type Address struct {
	FullName string `json:"full_name" yaml:"full_name"`
	Address  string `json:"address" yaml:"address"`
	Phone    string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Customer identifies the person who placed the order.
type Customer struct {
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
}

// String renders the customer as "Name Surname".
func (c Customer) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.Surname)
}

// Item is one order line. Price is the gross total for the line in the
// shop's currency. The derived price fields are computed on construction and
// never change afterwards.
type Item struct {
	Count       int     `json:"count" yaml:"count"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	TaxRate     float64 `json:"tax_rate" yaml:"tax_rate"`
	Unit        string  `json:"unit" yaml:"unit"`

	UnitPriceNet    float64 `json:"unit_price_net" yaml:"unit_price_net"`
	UnitPriceGross  float64 `json:"unit_price_gross" yaml:"unit_price_gross"`
	TotalPriceNet   float64 `json:"total_price_net" yaml:"total_price_net"`
	TotalPriceGross float64 `json:"total_price_gross" yaml:"total_price_gross"`
	Tax             float64 `json:"tax" yaml:"tax"`
}

// ItemOption overrides an item default.
type ItemOption func(*Item)

// WithTaxRate sets a non-default tax rate (fractional, e.g. 0.19).
func WithTaxRate(rate float64) ItemOption {
	return func(it *Item) {
		it.TaxRate = rate
	}
}

// WithUnit sets a non-default display unit.
func WithUnit(unit string) ItemOption {
	return func(it *Item) {
		it.Unit = unit
	}
}

// NewItem builds an item and computes its derived price fields so that
// TotalPriceNet+Tax == TotalPriceGross and Count*UnitPriceGross ==
// TotalPriceGross (up to floating-point tolerance).
func NewItem(count int, description string, price float64, opts ...ItemOption) Item {
	it := Item{
		Count:       count,
		Description: description,
		Price:       price,
		TaxRate:     DefaultTaxRate,
		Unit:        DefaultUnit,
	}
	for _, opt := range opts {
		opt(&it)
	}

	it.TotalPriceGross = it.Price
	it.TotalPriceNet = it.Price / (1 + it.TaxRate)
	it.Tax = it.TotalPriceGross - it.TotalPriceNet
	it.UnitPriceGross = it.TotalPriceGross / float64(it.Count)
	it.UnitPriceNet = it.TotalPriceNet / float64(it.Count)
	return it
}

// Invoice is the invoice generated for an order. Number and Date are
// assigned during composition when absent. Docx holds the rendered document
// once composition has saved it.
type Invoice struct {
	Address Address `json:"address" yaml:"address"`
	Number  string  `json:"number,omitempty" yaml:"number,omitempty"`
	Date    string  `json:"date,omitempty" yaml:"date,omitempty"`
	Docx    []byte  `json:"-" yaml:"-"`
}

// Order aggregates everything extracted from one order-confirmation mail.
// Any field may be nil/unset after extraction; absence is an expected state,
// not an error.
type Order struct {
	SourceMail      *mail.Message `json:"-" yaml:"-"`
	Number          string        `json:"number,omitempty" yaml:"number,omitempty"`
	Date            string        `json:"date,omitempty" yaml:"date,omitempty"`
	Invoice         *Invoice      `json:"invoice,omitempty" yaml:"invoice,omitempty"`
	DeliveryAddress *Address      `json:"delivery_address,omitempty" yaml:"delivery_address,omitempty"`
	Items           []Item        `json:"items,omitempty" yaml:"items,omitempty"`
	ShippingCost    *float64      `json:"shipping_cost,omitempty" yaml:"shipping_cost,omitempty"`
	PaymentMethod   string        `json:"payment_method,omitempty" yaml:"payment_method,omitempty"`
	Customer        *Customer     `json:"customer,omitempty" yaml:"customer,omitempty"`
}
