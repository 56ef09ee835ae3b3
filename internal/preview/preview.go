// Package preview renders a dashdown markdown document to standalone
// HTML for a quick visual check before conversion. Prose renders as
// markdown; tagged fences show as labeled placeholders since their
// sub-apps only exist at runtime.
package preview

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dashdown/dashdown/internal/attributes"
	"github.com/dashdown/dashdown/internal/segment"
)

// Options mirrors the renderer settings the preview needs to classify
// fences the same way a conversion would.
type Options struct {
	MarkerClass string // default "dash"
	PathKey     string // default "app"
	Pattern     string // custom opening-fence pattern, "" = default
}

// HTML renders the document to a complete HTML page.
func HTML(text string, opts Options) (string, error) {
	if opts.MarkerClass == "" {
		opts.MarkerClass = "dash"
	}
	if opts.PathKey == "" {
		opts.PathKey = "app"
	}
	sg := segment.New()
	if opts.Pattern != "" {
		var err error
		sg, err = segment.NewPattern(opts.Pattern)
		if err != nil {
			return "", err
		}
	}

	var body strings.Builder
	for _, b := range sg.Segment(text) {
		switch b.Kind {
		case segment.Prose:
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(b.Content), &buf); err != nil {
				return "", fmt.Errorf("preview: rendering markdown: %w", err)
			}
			body.Write(buf.Bytes())
		case segment.Code:
			body.WriteString(fenceHTML(b, opts))
		}
	}

	return fmt.Sprintf(pageShell, body.String()), nil
}

// fenceHTML shows a tagged fence as an embedded-app placeholder and any
// other fence as a plain code listing.
func fenceHTML(b segment.Block, opts Options) string {
	attrs, err := attributes.Parse(b.Attributes)
	if err == nil && attrs.HasClass(opts.MarkerClass) {
		label := "inline sub-app (unsupported)"
		if p, ok := attrs.Get(opts.PathKey); ok {
			label = p
		}
		return fmt.Sprintf("<div class=\"dash-placeholder\">embedded app: %s</div>\n", html.EscapeString(label))
	}
	return fmt.Sprintf("<pre><code>%s</code></pre>\n", html.EscapeString(b.Content))
}

const pageShell = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>dashdown preview</title>
<style>
body { max-width: 48rem; margin: 2rem auto; font-family: sans-serif; }
.dash-placeholder { border: 1px dashed #888; padding: 1rem; color: #555; }
pre { background: #f4f4f4; padding: 0.5rem; overflow-x: auto; }
</style>
</head>
<body>
%s</body>
</html>
`
