package mail

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText flattens an HTML mail body into plain text. Line breaks and
// block-level elements become newlines; everything else is rendered as its
// visible text.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, tr, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	doc.Find("script, style").Remove()

	text := doc.Text()

	// Collapse runs of blank lines left behind by nested block elements.
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 2 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.TrimSpace(strings.Join(out, "\n")), nil
}
