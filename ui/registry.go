package ui

import (
	"fmt"
	"path"
	"strings"
	"sync"
)

// Builder constructs a sub-app's layout given the enclosing app.
type Builder func(app *App) Component

var (
	regMu    sync.RWMutex
	registry = make(map[string]Builder)
)

// Register associates a sub-app path with its layout builder. Sub-apps
// register themselves (typically from an init function) under the same
// path string the markdown document references.
func Register(appPath string, build Builder) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[appPath] = build
}

// LoadApp resolves a registered sub-app and returns its layout with all
// component ids prefixed by the path stem, so two instances of the same
// sub-app cannot collide. An unregistered path yields a visible
// placeholder instead of an error: a missing sub-app should not take
// down the rest of the page.
func LoadApp(appPath string, app *App) Component {
	regMu.RLock()
	build, ok := registry[appPath]
	regMu.RUnlock()
	if !ok {
		return Div(Props{
			Class:    "dash-missing",
			Children: fmt.Sprintf("no sub-app registered for %q", appPath),
		})
	}
	layout := build(app)
	if layout == nil {
		return Div(Props{Class: "dash-missing", Children: fmt.Sprintf("sub-app %q returned no layout", appPath)})
	}
	prefix := stem(appPath) + "-"
	layout.Walk(func(e *Element) {
		if e.ID != "" {
			e.ID = prefix + e.ID
		}
	})
	return layout
}

// stem is the path's base name without extension.
func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
