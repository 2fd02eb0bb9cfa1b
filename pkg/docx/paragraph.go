package docx

import (
	"regexp"
	"strconv"
	"strings"
)

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Font is a run-level font override. Size is in points.
type Font struct {
	Name string
	Size float64
}

// Paragraph is one w:p element. Its visible text is the ordered
// concatenation of its runs' text.
type Paragraph struct {
	node *node
}

// Runs returns the paragraph's runs in order.
func (p *Paragraph) Runs() []*Run {
	elems := p.node.findAll("w:r")
	runs := make([]*Run, len(elems))
	for i, e := range elems {
		runs[i] = &Run{node: e}
	}
	return runs
}

// Text returns the concatenation of all run texts.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// SetAlignment sets the paragraph's justification.
func (p *Paragraph) SetAlignment(a Alignment) {
	pr := p.node.find("w:pPr")
	if pr == nil {
		pr = elemNode("w:pPr")
		p.node.insertFirst(pr)
	}
	jc := pr.find("w:jc")
	if jc == nil {
		jc = elemNode("w:jc")
		pr.append(jc)
	}
	jc.setAttr("w:val", string(a))
}

// ReplaceText replaces every match of pattern in the paragraph's text with
// repl and returns the number of matches replaced.
//
// A match may start inside one run and end inside a later one. For each
// match the runs are walked in order, subtracting whole run lengths from
// the match offsets until the run containing the match start is found; that
// run receives the entire replacement (inheriting its formatting), and the
// remaining matched length is stripped from the front of the following
// runs. Runs emptied this way are left in place. The paragraph text is
// re-scanned after every replacement, so multiple independent tokens in one
// paragraph are all resolved.
func (p *Paragraph) ReplaceText(pattern *regexp.Regexp, repl string) int {
	return p.replace(pattern, repl, nil)
}

// ReplaceTextFont behaves like ReplaceText but additionally applies font to
// the run that received the replacement text.
func (p *Paragraph) ReplaceTextFont(pattern *regexp.Regexp, repl string, font *Font) int {
	return p.replace(pattern, repl, font)
}

func (p *Paragraph) replace(pattern *regexp.Regexp, repl string, font *Font) int {
	replaced := 0
	for {
		text := p.Text()
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			return replaced
		}
		start, end := loc[0], loc[1]

		runs := p.Runs()
		i := 0
		for i < len(runs) {
			runLen := len(runs[i].Text())
			if start < runLen {
				break
			}
			start -= runLen
			end -= runLen
			i++
		}
		if i == len(runs) {
			// Match offsets came from the concatenated text, so a run
			// containing the start always exists.
			return replaced
		}

		// The match starts in run i. Its prefix within this run becomes the
		// whole replacement string.
		runText := runs[i].Text()
		runLen := len(runText)
		cut := end
		if cut > runLen {
			cut = runLen
		}
		runs[i].SetText(runText[:start] + repl + runText[cut:])
		if font != nil {
			runs[i].SetFont(*font)
		}
		end -= runLen

		// Any remaining matched length sits at the front of the following
		// runs; strip it run by run.
		for j := i + 1; j < len(runs) && end > 0; j++ {
			runText := runs[j].Text()
			if end >= len(runText) {
				runs[j].SetText("")
			} else {
				runs[j].SetText(runText[end:])
			}
			end -= len(runText)
		}
		replaced++
	}
}

// Run is one w:r element: a maximal span of text sharing one formatting
// definition.
type Run struct {
	node *node
}

// Text returns the run's text. Breaks and tabs are mapped to "\n" and "\t"
// so that offsets into a paragraph's concatenated text stay consistent.
func (r *Run) Text() string {
	var b strings.Builder
	for _, c := range r.node.children {
		switch {
		case c.is("w:t"):
			for _, t := range c.children {
				if !t.isElement() {
					b.WriteString(t.text)
				}
			}
		case c.is("w:br"), c.is("w:cr"):
			b.WriteByte('\n')
		case c.is("w:tab"):
			b.WriteByte('\t')
		}
	}
	return b.String()
}

// SetText replaces the run's text content, keeping its formatting
// properties. Newlines in s become explicit line breaks, tabs become tab
// elements.
func (r *Run) SetText(s string) {
	kept := r.node.children[:0]
	for _, c := range r.node.children {
		if c.is("w:t") || c.is("w:br") || c.is("w:cr") || c.is("w:tab") {
			continue
		}
		kept = append(kept, c)
	}
	r.node.children = kept
	r.node.append(textContent(s)...)
}

// textContent turns a string into the w:t / w:br / w:tab sequence encoding
// it.
func textContent(s string) []*node {
	if s == "" {
		return nil
	}
	var out []*node
	segment := func(text string) {
		t := elemNode("w:t", textNode(text))
		if text != strings.TrimSpace(text) {
			t.setAttr("xml:space", "preserve")
		}
		out = append(out, t)
	}

	rest := s
	for rest != "" {
		i := strings.IndexAny(rest, "\n\t")
		if i < 0 {
			segment(rest)
			break
		}
		if i > 0 {
			segment(rest[:i])
		}
		if rest[i] == '\n' {
			out = append(out, elemNode("w:br"))
		} else {
			out = append(out, elemNode("w:tab"))
		}
		rest = rest[i+1:]
	}
	return out
}

// SetFont overrides the run's font name and size.
func (r *Run) SetFont(f Font) {
	pr := r.node.find("w:rPr")
	if pr == nil {
		pr = elemNode("w:rPr")
		r.node.insertFirst(pr)
	}

	fonts := pr.find("w:rFonts")
	if fonts == nil {
		fonts = elemNode("w:rFonts")
		pr.insertFirst(fonts)
	}
	fonts.setAttr("w:ascii", f.Name)
	fonts.setAttr("w:hAnsi", f.Name)

	// Word stores sizes in half-points.
	half := strconv.Itoa(int(f.Size * 2))
	sz := pr.find("w:sz")
	if sz == nil {
		sz = elemNode("w:sz")
		pr.append(sz)
	}
	sz.setAttr("w:val", half)
	szCs := pr.find("w:szCs")
	if szCs == nil {
		szCs = elemNode("w:szCs")
		pr.append(szCs)
	}
	szCs.setAttr("w:val", half)
}
