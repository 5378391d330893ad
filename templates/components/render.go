package components

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/url"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Fragment builds a gomponents tree against the render context, so locale and
// nonce come from the context the component is rendered with
func Fragment(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		n := build(ctx)
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}

// Children renders the templ children passed to the enclosing component
func Children(ctx context.Context) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w)
	})
}

// ViewPath is the interaction endpoint of a page view, e.g. /views/{id}/menu
func ViewPath(viewID, action string) string {
	return "/views/" + url.PathEscape(viewID) + "/" + action
}

// HXHeaders sets request headers inherited by every htmx request under the node
func HXHeaders(headers map[string]string) g.Node {
	b, err := json.Marshal(headers)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal hx-headers: %v", err)
		return nil
	}
	return g.Attr("hx-headers", string(b))
}

func hxPost(path string) g.Node { return g.Attr("hx-post", path) }
func hxTrigger(on string) g.Node { return g.Attr("hx-trigger", on) }
func hxSwap(how string) g.Node { return g.Attr("hx-swap", how) }
func hxSync(how string) g.Node { return g.Attr("hx-sync", how) }
func hxVals(expr string) g.Node { return g.Attr("hx-vals", expr) }
func hxSwapOOB(oob bool) g.Node { return g.If(oob, g.Attr("hx-swap-oob", "true")) }
func dataAttr(k, v string) g.Node { return g.Attr("data-"+k, v) }
