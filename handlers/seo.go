package handlers

import (
	"bpp_web/models"
	"bpp_web/services/i18n"
	"context"
)

const landingKeywords = "Bengal Peoples Power, West Bengal, social welfare, rural education, healthcare camps, skill development, volunteer Bengal"

// LandingSEO builds the landing page metadata in the request language.
// The other supported languages are announced as hreflang alternates.
func LandingSEO(ctx context.Context, appURL, lang string) *models.SEO {
	var alternates []string
	for _, l := range i18n.Supported {
		if l != lang {
			alternates = append(alternates, l)
		}
	}

	seo := models.DefaultSEO(i18n.T(ctx, "site.title"), i18n.T(ctx, "site.description")).
		WithCanonical(appURL + "/").
		WithKeywords(landingKeywords).
		WithLocale(lang, alternates...)

	if Site != nil && Site.Hero.ImageURL != "" {
		seo.WithOGImage(Site.Hero.ImageURL)
	}
	return seo
}
