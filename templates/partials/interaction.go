package partials

import (
	"context"

	"bpp_web/models"
	"bpp_web/services/shell"
	"bpp_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// ScrollUpdate answers a scroll report: the header in place plus the
// back-to-top slot out of band
func ScrollUpdate(site *models.Site, viewID string, state shell.State) templ.Component {
	return templ.Join(
		components.Fragment(func(ctx context.Context) g.Node {
			return components.Header(ctx, site, viewID, state)
		}),
		components.Fragment(func(ctx context.Context) g.Node {
			return components.BackToTop(ctx, state, true)
		}),
	)
}

// MenuUpdate answers a menu tap. Everything is swapped out of band so a
// concurrent header swap cannot orphan the toggle.
func MenuUpdate(site *models.Site, viewID string, state shell.State, overflow string) templ.Component {
	return templ.Join(
		components.Fragment(func(ctx context.Context) g.Node {
			return components.MenuToggle(ctx, viewID, state, true)
		}),
		components.Fragment(func(ctx context.Context) g.Node {
			return components.MobileMenu(ctx, site, viewID, state, true)
		}),
		components.Fragment(func(ctx context.Context) g.Node {
			return components.ScrollLockStyle(overflow, true)
		}),
	)
}
