package handlers

import (
	"bpp_web/config"
	"bpp_web/services/i18n"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the landing page once per supported language
func GetSitemapHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	baseURL := cfg.AppURL
	lastMod := Now().In(cfg.Location()).Format("2006-01-02")

	urls := []SitemapURL{
		{Loc: baseURL + "/", LastMod: lastMod, ChangeFreq: "weekly", Priority: 1.0},
	}
	for _, lang := range i18n.Supported[1:] {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/?lang=" + lang,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler allows crawling of the page and hides the interaction routes
func GetRobotsHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /views/\n")
	b.WriteString("Sitemap: " + cfg.AppURL + "/sitemap.xml\n")

	return c.String(http.StatusOK, b.String())
}
