package layouts

import (
	"context"

	"bpp_web/middleware"
	"bpp_web/models"
	"bpp_web/services/i18n"
	"bpp_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Document carries the per-page values the base layout needs
type Document struct {
	SEO           *models.SEO
	HTMXScriptURL string
	ViewID        string
	CSRFToken     string
	Overflow      string
}

// Base renders the HTML document around its templ children. Interaction
// requests inherit the CSRF header from the body; app.js reads the teardown path.
func Base(doc Document) templ.Component {
	return components.Fragment(func(ctx context.Context) g.Node {
		return document(ctx, doc)
	})
}

func document(ctx context.Context, doc Document) g.Node {
	lang := i18n.GetLocale(ctx)
	nonce := middleware.GetNonce(ctx)

	return h.Doctype(
		h.HTML(h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				seoHead(doc.SEO),
				h.Link(h.Rel("preconnect"), h.Href("https://fonts.googleapis.com")),
				h.Link(h.Rel("stylesheet"), h.Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800;900&display=swap")),
				h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, middleware.AssetCSS))),
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(ctx, middleware.AssetFavicon))),
				components.ScrollLockStyle(doc.Overflow, false),
				h.Script(h.Src(doc.HTMXScriptURL), g.Attr("nonce", nonce)),
				h.Script(h.Src(middleware.AssetURL(ctx, middleware.AssetAppJS)), g.Attr("nonce", nonce), h.Defer()),
			),
			h.Body(
				h.ID("top"),
				components.HXHeaders(map[string]string{middleware.CSRFHeader: doc.CSRFToken}),
				g.Attr("data-view-id", doc.ViewID),
				g.Attr("data-csrf", doc.CSRFToken),
				g.Attr("data-teardown", components.ViewPath(doc.ViewID, "teardown")),
				components.Children(ctx),
			),
		),
	)
}

func seoHead(seo *models.SEO) g.Node {
	if seo == nil {
		return nil
	}

	nodes := []g.Node{
		g.El("title", g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
		g.If(seo.Keywords != "", h.Meta(h.Name("keywords"), h.Content(seo.Keywords))),
		g.If(seo.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex, nofollow"))),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.GetOGTitle())),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.GetOGDesc())),
		h.Meta(g.Attr("property", "og:type"), h.Content(seo.OGType)),
		h.Meta(g.Attr("property", "og:locale"), h.Content(models.GetOGLocale(seo.Locale))),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		h.Meta(h.Name("twitter:card"), h.Content(seo.TwitterCard)),
	}
	for _, alt := range seo.AltLocales {
		href := seo.Canonical + "?lang=" + alt
		nodes = append(nodes, h.Link(h.Rel("alternate"), g.Attr("hreflang", alt), h.Href(href)))
	}
	return g.Group(nodes)
}
