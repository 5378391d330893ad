package i18n

import (
	"strconv"
	"strings"
	"time"
)

// FormatLongDate renders t the way the top bar shows today's date,
// e.g. "Sunday, 18 October 2026" for en.
func FormatLongDate(lang string, t time.Time) string {
	return Translate(lang, "date.long", map[string]interface{}{
		"weekday": Translate(lang, "date.weekdays."+strconv.Itoa(int(t.Weekday()))),
		"day":     localizeDigits(lang, strconv.Itoa(t.Day())),
		"month":   Translate(lang, "date.months."+strconv.Itoa(int(t.Month()))),
		"year":    localizeDigits(lang, strconv.Itoa(t.Year())),
	})
}

// FormatShortDate renders a news date, e.g. "Oct 24, 2025" for en
func FormatShortDate(lang string, t time.Time) string {
	return Translate(lang, "date.short", map[string]interface{}{
		"day":   localizeDigits(lang, strconv.Itoa(t.Day())),
		"month": Translate(lang, "date.months_short."+strconv.Itoa(int(t.Month()))),
		"year":  localizeDigits(lang, strconv.Itoa(t.Year())),
	})
}

// Year renders the calendar year of t for the footer copyright line
func Year(lang string, t time.Time) string {
	return localizeDigits(lang, strconv.Itoa(t.Year()))
}

// localizeDigits maps ASCII digits onto the locale's digit set ("date.digits")
func localizeDigits(lang, s string) string {
	digits := []rune(Translate(lang, "date.digits"))
	if len(digits) != 10 {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
