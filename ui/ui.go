// Package ui is the runtime targeted by dashdown-generated source. It
// provides the component constructors the generated layout calls, a
// registry-based loader for embedded sub-apps, and a small HTTP server
// that renders the layout to HTML.
package ui

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
)

// Component is one node of an app layout.
type Component = *Element

// Element is the concrete component node. Children render in order
// inside the element's tag.
type Element struct {
	Tag      string
	ID       string
	Class    string
	Text     string // text content; markdown source when Markdown is set
	Markdown bool
	Children []*Element
}

// Props carries the optional arguments of a component constructor.
// Children may be a string, a Component, or a []Component.
type Props struct {
	ID       string
	Class    string
	Children any
}

// Markdown returns a component that renders its string children as
// markdown when the app is served.
func Markdown(p Props) Component {
	text, _ := p.Children.(string)
	if text == "" && p.Children != nil {
		text = fmt.Sprint(p.Children)
	}
	return &Element{Tag: "div", ID: p.ID, Class: p.Class, Text: text, Markdown: true}
}

// Div returns a plain container component.
func Div(p Props) Component {
	e := &Element{Tag: "div", ID: p.ID, Class: p.Class}
	switch c := p.Children.(type) {
	case nil:
	case string:
		e.Text = c
	case *Element:
		e.Children = []*Element{c}
	case []*Element:
		e.Children = c
	default:
		e.Text = fmt.Sprint(c)
	}
	return e
}

// Container wraps components in the app's top-level div.
func Container(children ...Component) Component {
	return &Element{Tag: "div", Class: "dash-container", Children: children}
}

// HTML renders the component subtree.
func (e *Element) HTML() (string, error) {
	var b strings.Builder
	if err := e.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (e *Element) write(b *strings.Builder) error {
	b.WriteString("<" + e.Tag)
	if e.ID != "" {
		fmt.Fprintf(b, " id=%q", e.ID)
	}
	if e.Class != "" {
		fmt.Fprintf(b, " class=%q", e.Class)
	}
	b.WriteString(">")
	if e.Text != "" {
		if e.Markdown {
			var buf bytes.Buffer
			if err := goldmark.Convert([]byte(e.Text), &buf); err != nil {
				return fmt.Errorf("ui: rendering markdown: %w", err)
			}
			b.Write(buf.Bytes())
		} else {
			b.WriteString(html.EscapeString(e.Text))
		}
	}
	for _, c := range e.Children {
		if err := c.write(b); err != nil {
			return err
		}
	}
	b.WriteString("</" + e.Tag + ">")
	return nil
}

// Walk visits e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// App holds a layout and serves it. Each instance gets a unique ID used
// as the root element id of the rendered page.
type App struct {
	ID     string
	Layout Component
}

// NewApp returns an App with a fresh instance ID.
func NewApp() *App {
	return &App{ID: "dashdown-" + uuid.NewString()}
}

// Run serves the rendered layout on addr until the server fails.
func (a *App) Run(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		page, err := a.Page()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	return http.ListenAndServe(addr, mux)
}

// Page renders the full HTML document for the current layout.
func (a *App) Page() (string, error) {
	body := ""
	if a.Layout != nil {
		var err error
		body, err = a.Layout.HTML()
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("<!doctype html>\n<html>\n<head><meta charset=\"utf-8\"><title>dashdown app</title></head>\n<body>\n<div id=%q>\n%s\n</div>\n</body>\n</html>\n", a.ID, body), nil
}
