package components

import (
	"context"
	"time"

	"bpp_web/models"
	"bpp_web/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the about blurb, link columns, newsletter and copyright line.
// The newsletter form is inert: it has no action and app.js swallows submit.
func Footer(ctx context.Context, site *models.Site, today time.Time) g.Node {
	lang := i18n.GetLocale(ctx)
	nl := site.Newsletter

	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container site-footer__grid"),
			h.Div(h.Class("site-footer__about"),
				Brand(site, true),
				h.P(g.Text(site.About)),
				h.Div(h.Class("site-footer__social"), socialIcons(ctx, site.Social, "social-icon--dark")),
			),
			g.Group(g.Map(site.FooterLinks, func(col models.FooterColumn) g.Node {
				return h.Div(h.Class("site-footer__column"),
					h.H4(h.Class("site-footer__title site-footer__title--"+col.Accent), g.Text(col.Title)),
					h.Ul(
						g.Group(g.Map(col.Links, func(l models.Link) g.Node {
							return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
						})),
					),
				)
			})),
			h.Div(h.Class("site-footer__column"),
				h.H4(h.Class("site-footer__title site-footer__title--blue"), g.Text(nl.Title)),
				h.P(g.Text(nl.Blurb)),
				g.El("form", h.Class("newsletter"), dataAttr("inert", "true"),
					h.Input(h.Type("email"), h.Name("email"), h.Placeholder(nl.Placeholder), h.Class("newsletter__input"), h.Aria("label", nl.Placeholder)),
					h.Button(h.Type("submit"), h.Class("btn btn--red"), g.Text(nl.Button)),
				),
			),
		),
		h.Div(h.Class("container site-footer__base"),
			h.P(g.Text(i18n.T(ctx, "footer.copyright", map[string]interface{}{
				"year": i18n.Year(lang, today),
				"name": site.Name,
			}))),
			h.P(g.Text(i18n.T(ctx, "footer.designed"))),
		),
	)
}
