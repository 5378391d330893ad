package pages

import (
	"context"
	"io"

	"bpp_web/templates/components"
	"bpp_web/templates/layouts"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Landing renders the full single-page site for a freshly opened page view
func Landing(vm *LandingViewModel) templ.Component {
	doc := layouts.Document{
		SEO:           vm.SEO,
		HTMXScriptURL: vm.HTMXScriptURL,
		ViewID:        vm.ViewID,
		CSRFToken:     vm.CSRFToken,
		Overflow:      vm.Overflow,
	}

	body := components.Fragment(func(ctx context.Context) g.Node {
		state := vm.State
		return h.Div(h.Class("page"),
			components.TopBar(ctx, vm.Site, vm.Today),
			components.Header(ctx, vm.Site, vm.ViewID, state),
			components.MobileMenu(ctx, vm.Site, vm.ViewID, state, false),
			h.Main(
				components.Hero(ctx, vm.Site),
				components.Pillars(ctx, vm.Site),
				components.News(ctx, vm.Site),
				components.Quote(vm.Site),
				components.Gallery(ctx, vm.Site),
			),
			components.Footer(ctx, vm.Site, vm.Today),
			components.FloatingActions(ctx, state),
			h.Div(h.ID("toasts"), h.Class("toasts"), h.Aria("live", "polite")),
		)
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layouts.Base(doc).Render(templ.WithChildren(ctx, body), w)
	})
}
