package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSEO(t *testing.T) {
	seo := DefaultSEO("Title", "Description").
		WithCanonical("https://example.org/").
		WithLocale("bn", "en")

	assert.Equal(t, "Title", seo.GetOGTitle())
	assert.Equal(t, "Description", seo.GetOGDesc())
	assert.Equal(t, "bn", seo.Locale)
	assert.Equal(t, []string{"en"}, seo.AltLocales)
	assert.False(t, seo.NoIndex)

	seo.OGTitle = "Share title"
	assert.Equal(t, "Share title", seo.GetOGTitle())
}

func TestGetOGLocale(t *testing.T) {
	assert.Equal(t, "en_IN", GetOGLocale("en"))
	assert.Equal(t, "bn_IN", GetOGLocale("bn"))
	assert.Equal(t, "en_IN", GetOGLocale("fr"))
}
