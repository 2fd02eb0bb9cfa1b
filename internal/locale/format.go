package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var german = message.NewPrinter(language.German)

// Eur formats an amount the way a German invoice shows it: comma decimal
// separator, two fraction digits, non-breaking space before the euro sign.
func Eur(amount float64) string {
	return german.Sprintf("%.2f €", amount)
}

// Mail Date headers are not uniform across providers, so parsing tries the
// common RFC layouts before giving up.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"02.01.2006",
	"2006-01-02",
}

func parseDate(date string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("locale: unrecognized date %q", date)
}

// ShortDate renders a mail date as DD.MM.YYYY.
func ShortDate(date string) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("02.01.2006"), nil
}

// Year extracts the four-digit year out of a date string, accepting both
// mail dates and the DD.MM.YYYY short form.
func Year(date string) (int, error) {
	t, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}
