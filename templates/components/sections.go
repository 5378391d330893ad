package components

import (
	"context"

	"bpp_web/models"
	"bpp_web/services"
	"bpp_web/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero is the full-bleed banner with the quick links grid beneath it
func Hero(ctx context.Context, site *models.Site) g.Node {
	hero := site.Hero
	return g.Group([]g.Node{
		h.Section(h.Class("hero"),
			h.Div(h.Class("hero__backdrop"),
				h.Img(h.Src(hero.ImageURL), h.Alt(site.Name), h.Class("hero__image")),
				h.Div(h.Class("hero__shade")),
			),
			h.Div(h.Class("container hero__content"),
				h.Span(h.Class("badge badge--red"), g.Text(hero.Badge)),
				h.H2(h.Class("hero__headline"),
					g.Text(hero.Headline), h.Br(),
					h.Span(h.Class("hero__highlight"), g.Text(hero.Highlight)),
				),
				h.P(h.Class("hero__body"), g.Text(hero.Body)),
				h.Div(h.Class("hero__actions"),
					h.Button(h.Type("button"), h.Class("btn btn--red btn--lg"), g.Text(hero.PrimaryCTA), Icon("arrow-right", 20, "")),
					h.Button(h.Type("button"), h.Class("btn btn--ghost btn--lg"), g.Text(hero.SecondCTA)),
				),
			),
		),
		h.Div(h.Class("container quick-links"),
			h.Div(h.Class("quick-links__grid"),
				g.Group(g.Map(site.QuickLinks, func(l models.Link) g.Node {
					return h.A(h.Href(l.Href), h.Class("quick-link"),
						h.Div(h.Class("quick-link__icon"), Icon(l.Icon, 24, "")),
						h.Span(h.Class("quick-link__label"), g.Text(l.Label)),
					)
				})),
			),
		),
	})
}

// Pillars is the four-card feature grid
func Pillars(ctx context.Context, site *models.Site) g.Node {
	return h.Section(h.Class("section pillars"),
		h.Div(h.Class("container"),
			sectionHeading(i18n.T(ctx, "pillars.kicker"), i18n.T(ctx, "pillars.title"), "red", true),
			h.Div(h.Class("pillars__grid"),
				g.Group(g.Map(site.Pillars, func(p models.Pillar) g.Node {
					return h.Div(h.Class("pillar pillar--"+p.Tone),
						h.Div(h.Class("pillar__icon"), Icon(p.Icon, 32, "")),
						h.H4(h.Class("pillar__title"), g.Text(p.Title)),
						h.P(h.Class("pillar__body"), g.Text(p.Description)),
						h.A(h.Href("#"), h.Class("pillar__more"), g.Text(i18n.T(ctx, "pillars.read_more")), Icon("chevron-right", 16, "")),
					)
				})),
			),
		),
	)
}

// News is the latest updates column plus the get-involved sidebar
func News(ctx context.Context, site *models.Site) g.Node {
	lang := i18n.GetLocale(ctx)
	lead := site.LeadStory

	return h.Section(h.Class("section section--muted news"),
		h.Div(h.Class("container news__layout"),
			h.Div(h.Class("news__main"),
				h.Div(h.Class("news__head"),
					h.H3(h.Class("heading heading--bar"), g.Text(i18n.T(ctx, "news.title"))),
					h.A(h.Href("#"), h.Class("news__all"), g.Text(i18n.T(ctx, "news.view_all")), Icon("chevron-right", 16, "")),
				),
				h.Article(h.Class("story story--lead"),
					h.Div(h.Class("story__media"),
						h.Img(h.Src(lead.ImageURL), h.Alt(i18n.T(ctx, "news.image_alt"))),
						g.If(lead.Category != "", h.Span(h.Class("badge badge--red story__category"), g.Text(lead.Category))),
					),
					h.Div(h.Class("story__body"),
						h.Div(h.Class("story__meta"),
							h.Span(Icon("calendar", 14, ""), g.Text(storyDate(lang, lead.Published))),
							g.If(lead.Location != "", h.Span(Icon("map-pin", 14, ""), g.Text(lead.Location))),
						),
						h.H4(h.Class("story__title"), g.Text(lead.Title)),
						h.P(h.Class("story__excerpt"), g.Text(lead.Excerpt)),
					),
				),
				h.Div(h.Class("news__grid"),
					g.Group(g.Map(site.Stories, func(s models.NewsItem) g.Node {
						return h.Article(h.Class("story story--card"),
							h.Img(h.Src(s.ImageURL), h.Alt(i18n.T(ctx, "news.image_alt")), h.Class("story__thumb")),
							h.Div(h.Class("story__body"),
								h.Div(h.Class("story__meta"), g.Text(storyDate(lang, s.Published))),
								h.H5(h.Class("story__title"), g.Text(s.Title)),
								h.P(h.Class("story__excerpt"), g.Text(s.Excerpt)),
							),
						)
					})),
				),
			),
			h.Aside(h.Class("news__sidebar"),
				h.Div(h.Class("card card--flag"),
					h.H4(h.Class("card__title"), g.Text(i18n.T(ctx, "sidebar.involved"))),
					h.Div(h.Class("card__list"),
						g.Group(g.Map(site.Actions, func(l models.Link) g.Node {
							return h.A(h.Href(l.Href), h.Class("card__action"),
								h.Span(g.Text(l.Label)), Icon("external-link", 16, ""),
							)
						})),
					),
				),
				h.Div(h.Class("card card--plain"),
					h.H4(h.Class("card__title"), g.Text(i18n.T(ctx, "sidebar.connect"))),
					h.Div(h.Class("card__social"), socialIcons(ctx, site.Social, "social-icon--tile")),
				),
			),
		),
	)
}

// Quote is the mission statement band
func Quote(site *models.Site) g.Node {
	return h.Section(h.Class("quote"),
		h.Div(h.Class("container quote__inner"),
			g.El("blockquote", h.Class("quote__text"), g.Text("“"+site.Quote.Text+"”")),
			h.Div(h.Class("quote__rule")),
			h.P(h.Class("quote__attribution"), g.Text(site.Quote.Attribution)),
		),
	)
}

// Gallery is the bento grid of project photographs
func Gallery(ctx context.Context, site *models.Site) g.Node {
	return h.Section(h.Class("section gallery"),
		h.Div(h.Class("container"),
			h.Div(h.Class("gallery__head"),
				sectionHeading(i18n.T(ctx, "gallery.kicker"), i18n.T(ctx, "gallery.title"), "blue", false),
				h.Button(h.Type("button"), h.Class("btn btn--outline"), g.Text(i18n.T(ctx, "gallery.view"))),
			),
			h.Div(h.Class("gallery__grid"),
				g.Group(g.Map(site.Gallery, func(tile models.GalleryTile) g.Node {
					return h.Figure(h.Class("tile tile--"+tile.Span),
						h.Img(h.Src(tile.ImageURL), h.Alt(i18n.T(ctx, "gallery.image_alt")), g.Attr("loading", "lazy")),
						g.If(tile.Caption != "", g.El("figcaption", h.Class("tile__caption"), g.Text(tile.Caption))),
					)
				})),
			),
		),
	)
}

func sectionHeading(kicker, title, accent string, centered bool) g.Node {
	class := "section-heading"
	if centered {
		class += " section-heading--center"
	}
	return h.Div(h.Class(class),
		h.H2(h.Class("section-heading__kicker section-heading__kicker--"+accent), g.Text(kicker)),
		h.H3(h.Class("section-heading__title"), g.Text(title)),
	)
}

// storyDate renders a YYYY-MM-DD publication date in the page language
func storyDate(lang, published string) string {
	t, err := services.ParseDate(published)
	if err != nil {
		return published
	}
	return i18n.FormatShortDate(lang, t)
}
