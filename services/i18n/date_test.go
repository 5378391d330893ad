package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLongDate(t *testing.T) {
	require.NoError(t, Load())

	day := time.Date(2026, 10, 18, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		lang     string
		expected string
	}{
		{lang: "en", expected: "Sunday, 18 October 2026"},
		{lang: "bn", expected: "রবিবার, ১৮ অক্টোবর, ২০২৬"},
		{lang: "fr", expected: "Sunday, 18 October 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLongDate(tt.lang, day))
		})
	}
}

func TestFormatShortDate(t *testing.T) {
	require.NoError(t, Load())

	day := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Oct 24, 2025", FormatShortDate("en", day))
	assert.Equal(t, "২৪ অক্টো, ২০২৫", FormatShortDate("bn", day))
}

func TestYear(t *testing.T) {
	require.NoError(t, Load())

	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026", Year("en", day))
	assert.Equal(t, "২০২৬", Year("bn", day))
}

func TestLocalizeDigitsWithoutCatalogue(t *testing.T) {
	assert.Equal(t, "12:30", localizeDigits("xx-no-such-locale-digits", "12:30"))
}
