package docx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable is returned when a row is appended to a table without any
// existing row to derive the new row's structure from.
var ErrEmptyTable = errors.New("docx: cannot append a row to a table with no rows")

// Table is one w:tbl element.
type Table struct {
	node *node
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*Row {
	elems := t.node.findAll("w:tr")
	rows := make([]*Row, len(elems))
	for i, e := range elems {
		rows[i] = &Row{node: e}
	}
	return rows
}

// Cell addresses a cell by (row, column).
func (t *Table) Cell(row, col int) (*Cell, error) {
	rows := t.Rows()
	if row < 0 || row >= len(rows) {
		return nil, fmt.Errorf("docx: row %d out of range (table has %d)", row, len(rows))
	}
	cells := rows[row].Cells()
	if col < 0 || col >= len(cells) {
		return nil, fmt.Errorf("docx: column %d out of range (row %d has %d cells)", col, row, len(cells))
	}
	return cells[col], nil
}

// AddRow appends a new row cloned from the last row's structure, with all
// cell text cleared. Cell and paragraph properties (widths, borders,
// styles) carry over from the cloned row.
func (t *Table) AddRow() (*Row, error) {
	rows := t.node.findAll("w:tr")
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	fresh := rows[len(rows)-1].clone()
	row := &Row{node: fresh}
	for _, c := range row.Cells() {
		c.SetText("")
	}
	t.node.append(fresh)
	return row, nil
}

// ColumnCells returns every cell in the given column, skipping rows that do
// not reach it.
func (t *Table) ColumnCells(col int) []*Cell {
	var out []*Cell
	for _, row := range t.Rows() {
		cells := row.Cells()
		if col < len(cells) {
			out = append(out, cells[col])
		}
	}
	return out
}

// AlignColumn applies the alignment to every paragraph of every cell in the
// column.
func (t *Table) AlignColumn(col int, a Alignment) {
	for _, c := range t.ColumnCells(col) {
		for _, p := range c.Paragraphs() {
			p.SetAlignment(a)
		}
	}
}

// SetFont applies a uniform font to every run of every paragraph in every
// cell of the table.
func (t *Table) SetFont(f Font) {
	for _, row := range t.Rows() {
		for _, c := range row.Cells() {
			for _, p := range c.Paragraphs() {
				for _, r := range p.Runs() {
					r.SetFont(f)
				}
			}
		}
	}
}

// Row is one w:tr element.
type Row struct {
	node *node
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []*Cell {
	elems := r.node.findAll("w:tc")
	cells := make([]*Cell, len(elems))
	for i, e := range elems {
		cells[i] = &Cell{node: e}
	}
	return cells
}

// Cell is one w:tc element.
type Cell struct {
	node *node
}

// Paragraphs returns the cell's paragraphs in order.
func (c *Cell) Paragraphs() []*Paragraph {
	elems := c.node.findAll("w:p")
	out := make([]*Paragraph, len(elems))
	for i, e := range elems {
		out[i] = &Paragraph{node: e}
	}
	return out
}

// Text returns the cell's text, paragraphs joined with newlines.
func (c *Cell) Text() string {
	ps := c.Paragraphs()
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the cell's content with a single paragraph holding s.
// The first paragraph's properties are kept; any further paragraphs are
// dropped.
func (c *Cell) SetText(s string) {
	ps := c.node.findAll("w:p")
	if len(ps) == 0 {
		p := elemNode("w:p")
		c.node.append(p)
		ps = []*node{p}
	}

	first := ps[0]
	first.removeAll("w:r")
	if s != "" {
		run := elemNode("w:r")
		run.append(textContent(s)...)
		first.append(run)
	}

	// Drop the remaining paragraphs; a cell keeps at least one.
	want := rawName("w:p")
	kept := c.node.children[:0]
	for _, child := range c.node.children {
		if child.name == want && child != first {
			continue
		}
		kept = append(kept, child)
	}
	c.node.children = kept
}
