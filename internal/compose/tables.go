package compose

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orderdesk/invoicer/internal/locale"
	"github.com/orderdesk/invoicer/pkg/docx"
	"github.com/orderdesk/invoicer/pkg/order"
)

// The shipping surcharge is rendered as a regular invoice line with a fixed
// description and the full tax rate.
const (
	shippingDescription = "Verpackung & Lieferung"
	shippingUnit        = "psch."
	shippingTaxRate     = 0.19
)

// The two tax-rate buckets the summary table supports.
const (
	reducedRate  = 0.07
	standardRate = 0.19
)

// replaceTables populates the items, summary and passport tables and then
// forces the uniform table font. A template whose tables do not match the
// expected shape aborts the order.
func (c *Composer) replaceTables(o *order.Order, doc *docx.Document) error {
	shipping := order.NewItem(1, shippingDescription, *o.ShippingCost,
		order.WithUnit(shippingUnit), order.WithTaxRate(shippingTaxRate))
	items := append(append([]order.Item(nil), o.Items...), shipping)

	itemTable, err := doc.Table(c.tables.items)
	if err != nil {
		return err
	}
	if err := fillItemTable(itemTable, items); err != nil {
		return err
	}

	sumTable, err := doc.Table(c.tables.sum)
	if err != nil {
		return err
	}
	if err := fillSumTable(sumTable, items); err != nil {
		return err
	}

	passportTable, err := doc.Table(c.tables.passport)
	if err != nil {
		return err
	}
	if err := fillPassportTable(passportTable, o); err != nil {
		return err
	}

	for _, t := range []*docx.Table{itemTable, sumTable, passportTable} {
		t.SetFont(c.tableFont)
	}
	return nil
}

// fillItemTable appends one row per item and aligns the columns: index,
// count and unit centered, description left, prices right.
func fillItemTable(t *docx.Table, items []order.Item) error {
	for i, item := range items {
		row, err := t.AddRow()
		if err != nil {
			return fmt.Errorf("compose: items table: %w", err)
		}
		cells := row.Cells()
		if len(cells) < 7 {
			return fmt.Errorf("compose: items table row has %d cells, need 7", len(cells))
		}
		cells[0].SetText(strconv.Itoa(i + 1))
		cells[1].SetText(strconv.Itoa(item.Count))
		cells[2].SetText(item.Unit)
		cells[3].SetText(item.Description)
		cells[4].SetText(locale.Eur(item.UnitPriceNet))
		cells[5].SetText(locale.Eur(item.UnitPriceGross))
		cells[6].SetText(locale.Eur(item.TotalPriceGross))
	}

	for col, a := range []docx.Alignment{
		docx.AlignCenter, docx.AlignCenter, docx.AlignCenter,
		docx.AlignLeft,
		docx.AlignRight, docx.AlignRight, docx.AlignRight,
	} {
		t.AlignColumn(col, a)
	}
	return nil
}

// taxSums are the summary aggregates, partitioned by the two supported
// tax-rate buckets.
type taxSums struct {
	netReduced  float64
	netStandard float64
	taxReduced  float64
	taxStandard float64
}

func (s taxSums) total() float64 {
	return s.netReduced + s.netStandard + s.taxReduced + s.taxStandard
}

// bucketSums sums net price and tax per tax-rate bucket. Pure function of
// its input.
func bucketSums(items []order.Item) taxSums {
	var s taxSums
	for _, item := range items {
		switch item.TaxRate {
		case reducedRate:
			s.netReduced += item.TotalPriceNet
			s.taxReduced += item.Tax
		case standardRate:
			s.netStandard += item.TotalPriceNet
			s.taxStandard += item.Tax
		}
	}
	return s
}

// fillSumTable writes the four aggregates and their grand total into the
// summary column and resolves the item-range tokens describing which item
// indices each bucket covers.
func fillSumTable(t *docx.Table, items []order.Item) error {
	s := bucketSums(items)
	values := []float64{s.netReduced, s.netStandard, s.taxReduced, s.taxStandard}
	for i, v := range values {
		cell, err := t.Cell(i, 6)
		if err != nil {
			return fmt.Errorf("compose: summary table: %w", err)
		}
		cell.SetText(locale.Eur(v))
	}
	totalCell, err := t.Cell(len(values), 6)
	if err != nil {
		return fmt.Errorf("compose: summary table: %w", err)
	}
	totalCell.SetText(locale.Eur(s.total()))
	t.AlignColumn(6, docx.AlignRight)

	// Item index ranges: the reduced bucket covers every regular item, the
	// standard bucket only the shipping line appended last.
	rangeReduced := "1"
	if len(items)-1 != 1 {
		rangeReduced = fmt.Sprintf("1-%d", len(items)-1)
	}
	if err := replaceCellToken(t, 2, 3, "{{7_s_e}}", rangeReduced); err != nil {
		return err
	}
	if err := replaceCellToken(t, 3, 3, "{{19_s_e}}", strconv.Itoa(len(items))); err != nil {
		return err
	}
	t.AlignColumn(3, docx.AlignRight)
	return nil
}

func replaceCellToken(t *docx.Table, row, col int, token, value string) error {
	cell, err := t.Cell(row, col)
	if err != nil {
		return fmt.Errorf("compose: summary table: %w", err)
	}
	cell.SetText(strings.ReplaceAll(cell.Text(), token, value))
	return nil
}

// fillPassportTable writes the plant-passport cells: the list of item
// descriptions and the customs reference code derived from the invoice date
// and number.
func fillPassportTable(t *docx.Table, o *order.Order) error {
	descriptions := make([]string, len(o.Items))
	for i, item := range o.Items {
		descriptions[i] = item.Description
	}
	descCell, err := t.Cell(7, 4)
	if err != nil {
		return fmt.Errorf("compose: passport table: %w", err)
	}
	descCell.SetText(strings.Join(descriptions, "\n") + "\n")

	codeCell, err := t.Cell(10, 4)
	if err != nil {
		return fmt.Errorf("compose: passport table: %w", err)
	}
	codeCell.SetText(customsCode(o.Invoice.Date, o.Invoice.Number))
	return nil
}

// customsCode builds the customs reference: the invoice date's day, month
// and year tokens reversed and concatenated, a hyphen, then the invoice
// number's sequence digits after the year prefix.
func customsCode(date, number string) string {
	parts := strings.Split(date, ".")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	sequence := number
	if len(number) > 4 {
		sequence = number[4:]
	}
	return strings.Join(parts, "") + "-" + sequence
}
