// Package content loads the static copy and mock data of the landing page.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"net/url"
	"slices"
	"strings"

	"bpp_web/models"
	"bpp_web/services"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed content.json
var defaultContent []byte

var (
	ErrNoNavigation = errors.New("content: at least one navigation item is required")
	ErrNoLeadStory  = errors.New("content: lead story needs a title")
	ErrGalleryImage = errors.New("content: gallery tile without image")
	ErrImageOrigin  = errors.New("content: image not served from an allowed origin")
)

// Load parses the embedded site content
func Load() (*models.Site, error) {
	return Parse(defaultContent)
}

// Parse decodes, sanitises and validates site content
func Parse(raw []byte) (*models.Site, error) {
	var site models.Site
	if err := json.Unmarshal(raw, &site); err != nil {
		return nil, fmt.Errorf("failed to decode site content: %w", err)
	}

	sanitizeSite(&site, bluemonday.StrictPolicy())

	if err := validate(&site); err != nil {
		return nil, err
	}

	log.Printf("Loaded site content: %d pillars, %d stories, %d gallery tiles",
		len(site.Pillars), len(site.Stories)+1, len(site.Gallery))
	return &site, nil
}

func validate(site *models.Site) error {
	if len(site.Nav) == 0 {
		return ErrNoNavigation
	}
	if site.LeadStory.Title == "" {
		return ErrNoLeadStory
	}

	stories := append([]*models.NewsItem{&site.LeadStory}, pointers(site.Stories)...)
	for _, story := range stories {
		if _, err := services.ParseDate(story.Published); err != nil {
			return fmt.Errorf("content: story %q: %w", story.Title, err)
		}
	}

	images := []string{site.Hero.ImageURL}
	for _, story := range stories {
		images = append(images, story.ImageURL)
	}
	for i, tile := range site.Gallery {
		if tile.ImageURL == "" {
			return fmt.Errorf("%w (tile %d)", ErrGalleryImage, i)
		}
		images = append(images, tile.ImageURL)
	}
	for _, src := range images {
		if src != "" && !allowedImage(src) {
			return fmt.Errorf("%w: %q", ErrImageOrigin, src)
		}
	}

	for _, link := range allLinks(site) {
		if !safeHref(link.Href) {
			return fmt.Errorf("content: link %q has unsupported href %q", link.Label, link.Href)
		}
	}
	return nil
}

// allowedImage accepts site-relative paths and https URLs on one of
// models.ImageOrigins, the sources the CSP lets the browser load
func allowedImage(src string) bool {
	if strings.HasPrefix(src, "/") && !strings.HasPrefix(src, "//") {
		return true
	}
	u, err := url.Parse(src)
	if err != nil || u.Scheme != "https" || u.User != nil {
		return false
	}
	return slices.Contains(models.ImageOrigins, u.Scheme+"://"+u.Host)
}

// safeHref accepts placeholders, site-relative paths and http(s) URLs
func safeHref(href string) bool {
	if href == "#" || strings.HasPrefix(href, "#") {
		return true
	}
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return true
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// sanitizeSite strips any markup from text fields. Text is escaped again at
// render time, so entities produced by the policy are decoded here.
func sanitizeSite(site *models.Site, policy *bluemonday.Policy) {
	clean := func(s *string) {
		*s = strings.TrimSpace(html.UnescapeString(policy.Sanitize(*s)))
	}

	for _, s := range []*string{
		&site.Name, &site.Tagline, &site.Monogram, &site.Region, &site.About,
		&site.Hero.Badge, &site.Hero.Headline, &site.Hero.Highlight, &site.Hero.Body,
		&site.Hero.PrimaryCTA, &site.Hero.SecondCTA,
		&site.Quote.Text, &site.Quote.Attribution,
		&site.Newsletter.Title, &site.Newsletter.Blurb, &site.Newsletter.Placeholder, &site.Newsletter.Button,
	} {
		clean(s)
	}

	for _, link := range allLinks(site) {
		clean(&link.Label)
	}
	for i := range site.Pillars {
		clean(&site.Pillars[i].Title)
		clean(&site.Pillars[i].Description)
	}
	for _, story := range append([]*models.NewsItem{&site.LeadStory}, pointers(site.Stories)...) {
		clean(&story.Category)
		clean(&story.Title)
		clean(&story.Excerpt)
		clean(&story.Location)
	}
	for i := range site.Gallery {
		clean(&site.Gallery[i].Caption)
	}
	for i := range site.FooterLinks {
		clean(&site.FooterLinks[i].Title)
	}
}

func allLinks(site *models.Site) []*models.Link {
	var links []*models.Link
	for _, group := range [][]models.Link{site.Nav, site.MobileNav, site.UtilityLinks, site.Social, site.QuickLinks, site.Actions} {
		for i := range group {
			links = append(links, &group[i])
		}
	}
	for i := range site.FooterLinks {
		for j := range site.FooterLinks[i].Links {
			links = append(links, &site.FooterLinks[i].Links[j])
		}
	}
	return links
}

func pointers(items []models.NewsItem) []*models.NewsItem {
	out := make([]*models.NewsItem, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
