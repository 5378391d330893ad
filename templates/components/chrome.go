package components

import (
	"context"
	"strconv"
	"time"

	"bpp_web/models"
	"bpp_web/services/i18n"
	"bpp_web/services/shell"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TopBar is the thin strip above the header with region, date and utility links
func TopBar(ctx context.Context, site *models.Site, today time.Time) g.Node {
	lang := i18n.GetLocale(ctx)
	other := "bn"
	if lang == "bn" {
		other = "en"
	}

	return h.Div(h.Class("topbar"),
		h.Div(h.Class("container topbar__inner"),
			h.Div(h.Class("topbar__meta"),
				h.Span(h.Class("topbar__item"), Icon("map-pin", 12, ""), g.Text(site.Region)),
				h.Span(h.Class("topbar__item"), h.ID("today"), Icon("calendar", 12, ""), g.Text(i18n.FormatLongDate(lang, today))),
			),
			h.Div(h.Class("topbar__links"),
				h.Div(h.Class("topbar__social"), socialIcons(ctx, site.Social, "")),
				g.Group(g.Map(site.UtilityLinks, func(l models.Link) g.Node {
					return h.A(h.Href(l.Href), h.Class("topbar__link"), g.Text(l.Label))
				})),
				h.A(h.Href("?lang="+other), h.Class("topbar__link"), g.Attr("hreflang", other), g.Text(i18n.T(ctx, "topbar.language"))),
				h.Div(h.Class("topbar__fontsize"), h.Aria("hidden", "true"),
					h.Span(g.Text(i18n.T(ctx, "topbar.font_larger"))),
					h.Span(g.Text(i18n.T(ctx, "topbar.font_normal"))),
					h.Span(g.Text(i18n.T(ctx, "topbar.font_smaller"))),
				),
			),
		),
	)
}

// Header renders the sticky site header. The scrolled flag selects the compact
// variant; every window scroll reports the offset back to the page view.
func Header(ctx context.Context, site *models.Site, viewID string, state shell.State) g.Node {
	variant := string(state.Header())

	return h.Header(
		h.ID("site-header"),
		h.Class("site-header site-header--"+variant),
		dataAttr("variant", variant),
		hxPost(ViewPath(viewID, "scroll")),
		hxTrigger("scroll from:window"),
		hxVals("js:{offset: window.scrollY}"),
		hxSync("this:replace"),
		hxSwap("outerHTML"),
		h.Div(h.Class("container site-header__inner"),
			Brand(site, false),
			h.Nav(h.Class("site-nav"), h.Aria("label", "Primary"),
				g.Group(g.Map(site.Nav, func(l models.Link) g.Node {
					return h.A(h.Href(l.Href), h.Class("site-nav__link"), g.Text(l.Label))
				})),
				h.Div(h.Class("site-nav__actions"),
					h.Button(h.Type("button"), h.Class("btn btn--green"), g.Text(i18n.T(ctx, "header.donate"))),
					h.Button(h.Type("button"), h.Class("btn btn--red btn--icon"), h.Aria("label", i18n.T(ctx, "header.search")), Icon("search", 20, "")),
				),
			),
			MenuToggle(ctx, viewID, state, false),
		),
	)
}

// Brand is the monogram and organisation name
func Brand(site *models.Site, compact bool) g.Node {
	class := "brand"
	if compact {
		class = "brand brand--footer"
	}
	return h.Div(h.Class(class),
		h.Div(h.Class("brand__mark"), g.Text(site.Monogram)),
		h.Div(
			h.H1(h.Class("brand__name"), g.Text(site.Name)),
			g.If(!compact, h.P(h.Class("brand__tagline"), g.Text(site.Tagline))),
		),
	)
}

// MenuToggle is the mobile menu button; its glyph follows the menu flag.
// The response to a tap swaps every affected fragment out of band.
func MenuToggle(ctx context.Context, viewID string, state shell.State, oob bool) g.Node {
	icon, label := "menu", i18n.T(ctx, "menu.open")
	if state.MenuOpen {
		icon, label = "x", i18n.T(ctx, "menu.close")
	}

	return h.Button(
		h.ID("menu-toggle"),
		h.Type("button"),
		h.Class("menu-toggle"),
		h.Aria("label", label),
		h.Aria("expanded", strconv.FormatBool(state.MenuOpen)),
		h.Aria("controls", "mobile-menu"),
		hxPost(ViewPath(viewID, "menu")),
		hxSwap("none"),
		hxSwapOOB(oob),
		Icon(icon, 28, ""),
	)
}

// MobileMenu is the overlay navigation slot. The panel exists only while the
// menu is open; choosing a destination closes it.
func MobileMenu(ctx context.Context, site *models.Site, viewID string, state shell.State, oob bool) g.Node {
	return h.Div(h.ID("mobile-menu"), h.Class("mobile-menu-slot"), hxSwapOOB(oob),
		g.If(state.MenuOpen,
			h.Div(h.Class("mobile-menu"), g.Attr("role", "dialog"), h.Aria("modal", "true"), h.Aria("label", i18n.T(ctx, "menu.label")),
				h.Nav(h.Class("mobile-menu__nav"),
					g.Group(g.Map(site.MobileNav, func(l models.Link) g.Node {
						return h.A(h.Href(l.Href), h.Class("mobile-menu__link"),
							hxPost(ViewPath(viewID, "menu/close")),
							hxSwap("none"),
							g.Text(l.Label),
						)
					})),
				),
			),
		),
	)
}

// ScrollLockStyle projects the document overflow of a page view into the page
func ScrollLockStyle(overflow string, oob bool) g.Node {
	return g.El("style", h.ID("scroll-lock"), hxSwapOOB(oob), g.Raw("body{overflow:"+overflow+"}"))
}

// BackToTop is present only once the page has scrolled past the threshold
func BackToTop(ctx context.Context, state shell.State, oob bool) g.Node {
	return h.Div(h.ID("back-to-top"), h.Class("fab-slot"), hxSwapOOB(oob),
		g.If(state.Scrolled,
			h.A(h.Href("#top"), h.Class("fab fab--top"), h.Aria("label", i18n.T(ctx, "fab.back_to_top")),
				Icon("chevron-right", 24, "icon--up"),
			),
		),
	)
}

// FloatingActions is the fixed stack in the bottom-right corner
func FloatingActions(ctx context.Context, state shell.State) g.Node {
	return h.Div(h.Class("fabs"),
		BackToTop(ctx, state, false),
		h.Button(h.Type("button"), h.Class("fab fab--join"), Icon("users", 20, ""), g.Text(i18n.T(ctx, "fab.join"))),
	)
}

func socialIcons(ctx context.Context, links []models.Link, class string) g.Node {
	return g.Group(g.Map(links, func(l models.Link) g.Node {
		return h.A(h.Href(l.Href), h.Class("social-icon "+class), h.Aria("label", i18n.T(ctx, "footer.social_label")+": "+l.Label),
			Icon(l.Icon, 18, ""),
		)
	}))
}
