package order

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestNewItem_DerivedPrices(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		price   float64
		opts    []ItemOption
		wantNet float64
		wantTax float64
	}{
		{
			name:    "default tax rate",
			count:   2,
			price:   15.00,
			wantNet: 15.00 / 1.07,
			wantTax: 15.00 - 15.00/1.07,
		},
		{
			name:    "full tax rate",
			count:   1,
			price:   29.50,
			opts:    []ItemOption{WithTaxRate(0.19)},
			wantNet: 29.50 / 1.19,
			wantTax: 29.50 - 29.50/1.19,
		},
		{
			name:    "single unit",
			count:   1,
			price:   7.50,
			wantNet: 7.50 / 1.07,
			wantTax: 7.50 - 7.50/1.07,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := NewItem(tt.count, "x", tt.price, tt.opts...)

			if math.Abs(item.TotalPriceNet-tt.wantNet) > epsilon {
				t.Errorf("TotalPriceNet = %v, want %v", item.TotalPriceNet, tt.wantNet)
			}
			if math.Abs(item.Tax-tt.wantTax) > epsilon {
				t.Errorf("Tax = %v, want %v", item.Tax, tt.wantTax)
			}
			if item.TotalPriceGross != tt.price {
				t.Errorf("TotalPriceGross = %v, want %v", item.TotalPriceGross, tt.price)
			}

			// Invariants: net + tax == gross, count * unit gross == gross.
			if math.Abs(item.TotalPriceNet+item.Tax-item.TotalPriceGross) > epsilon {
				t.Errorf("net %v + tax %v != gross %v", item.TotalPriceNet, item.Tax, item.TotalPriceGross)
			}
			if math.Abs(float64(item.Count)*item.UnitPriceGross-item.TotalPriceGross) > epsilon {
				t.Errorf("count*unit gross = %v, want %v", float64(item.Count)*item.UnitPriceGross, item.TotalPriceGross)
			}
			if math.Abs(float64(item.Count)*item.UnitPriceNet-item.TotalPriceNet) > epsilon {
				t.Errorf("count*unit net = %v, want %v", float64(item.Count)*item.UnitPriceNet, item.TotalPriceNet)
			}
		})
	}
}

func TestNewItem_Defaults(t *testing.T) {
	item := NewItem(1, "Widget", 10)
	if item.TaxRate != DefaultTaxRate {
		t.Errorf("TaxRate = %v, want %v", item.TaxRate, DefaultTaxRate)
	}
	if item.Unit != DefaultUnit {
		t.Errorf("Unit = %q, want %q", item.Unit, DefaultUnit)
	}

	item = NewItem(1, "Shipping", 10, WithUnit("psch."), WithTaxRate(0.19))
	if item.Unit != "psch." || item.TaxRate != 0.19 {
		t.Errorf("options not applied: unit %q rate %v", item.Unit, item.TaxRate)
	}
}

func TestCustomer_String(t *testing.T) {
	c := Customer{Name: "Max", Surname: "Mustermann"}
	if got := c.String(); got != "Max Mustermann" {
		t.Errorf("String() = %q, want %q", got, "Max Mustermann")
	}
}
