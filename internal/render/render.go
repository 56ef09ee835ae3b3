// Package render turns a segmented markdown document into a generated
// Go source file: prose blocks become ui.Markdown components, tagged
// code fences become embedded sub-app components, and everything is
// assembled into a fixed scaffold and canonicalized with go/format.
package render

import (
	"fmt"
	"go/format"
	"path"
	"strconv"
	"strings"

	"github.com/dashdown/dashdown/internal/attributes"
	"github.com/dashdown/dashdown/internal/segment"
)

// Options configures a Renderer. Zero values take the documented
// defaults; there is no ambient process-wide configuration.
type Options struct {
	Pattern         string   // custom opening-fence pattern ("" = segment.DefaultPattern)
	MarkerClass     string   // class that opts a fence into rendering (default "dash")
	PathKey         string   // attribute key naming the sub-app file (default "app")
	MarkdownClasses []string // classes applied to every prose component (default ["dash-markdown"])
	LayoutClasses   []string // classes applied to every embedded-app component (default ["dash-layout"])
	AppPath         string   // root directory sub-app paths resolve against (default ".")
	Indent          string   // one indent unit in the generated source (default "\t")
	Precode         string   // verbatim top-level code placed before func main
	AppPrecode      string   // verbatim code placed after app construction
	NoFormat        bool     // skip go/format canonicalization
}

// Skip records a code block the renderer dropped for a reason worth
// telling the user about. Untagged fences are dropped silently and do
// not appear here.
type Skip struct {
	Offset int // byte offset of the block in the source document
	Reason string
}

// Renderer converts markdown text to generated source. It holds no
// mutable state: conversions are pure functions of (text, Options), so
// one Renderer may serve concurrent callers.
type Renderer struct {
	opts Options
	seg  *segment.Segmenter
}

// New builds a Renderer, filling defaults and compiling the fence
// pattern. An invalid custom pattern is reported here, before any
// document is processed.
func New(opts Options) (*Renderer, error) {
	if opts.MarkerClass == "" {
		opts.MarkerClass = "dash"
	}
	if opts.PathKey == "" {
		opts.PathKey = "app"
	}
	if opts.MarkdownClasses == nil {
		opts.MarkdownClasses = []string{"dash-markdown"}
	}
	if opts.LayoutClasses == nil {
		opts.LayoutClasses = []string{"dash-layout"}
	}
	if opts.AppPath == "" {
		opts.AppPath = "."
	}
	if opts.Indent == "" {
		opts.Indent = "\t"
	}

	sg := segment.New()
	if opts.Pattern != "" {
		var err error
		sg, err = segment.NewPattern(opts.Pattern)
		if err != nil {
			return nil, err
		}
	}
	return &Renderer{opts: opts, seg: sg}, nil
}

// Result is one finished conversion.
type Result struct {
	Source     string // the generated Go source
	Components int    // component expressions in the layout
	Skips      []Skip
}

// Convert segments text, renders its components, and assembles the
// generated source. Per-block problems are reported as Skips; only
// assembly-level failures (malformed generated source) are fatal.
func (r *Renderer) Convert(text string) (*Result, error) {
	blocks := r.seg.Segment(text)
	exprs, skips := r.Components(blocks)
	src, err := r.Assemble(exprs)
	if err != nil {
		return nil, err
	}
	return &Result{Source: src, Components: len(exprs), Skips: skips}, nil
}

// Components renders one expression per retained block, preserving
// block order exactly.
func (r *Renderer) Components(blocks []segment.Block) ([]string, []Skip) {
	var exprs []string
	var skips []Skip
	for _, b := range blocks {
		switch b.Kind {
		case segment.Prose:
			if expr := r.markdownComponent(b); expr != "" {
				exprs = append(exprs, expr)
			}
		case segment.Code:
			expr, skip := r.appComponent(b)
			if skip != nil {
				skips = append(skips, *skip)
				continue
			}
			if expr != "" {
				exprs = append(exprs, expr)
			}
		}
	}
	return exprs, skips
}

// markdownComponent renders a prose block, or "" for whitespace-only
// content.
func (r *Renderer) markdownComponent(b segment.Block) string {
	content := strings.TrimSpace(b.Content)
	if content == "" {
		return ""
	}
	args := []string{"Children: " + goString(content)}
	if len(r.opts.MarkdownClasses) > 0 {
		args = append(args, fmt.Sprintf("Class: %q", strings.Join(r.opts.MarkdownClasses, " ")))
	}
	return fmt.Sprintf("ui.Markdown(ui.Props{%s})", strings.Join(args, ", "))
}

// appComponent renders a tagged code block as an embedded sub-app, or
// reports why the block was dropped. Fences without the marker class
// are dropped silently.
func (r *Renderer) appComponent(b segment.Block) (string, *Skip) {
	attrs, err := attributes.Parse(b.Attributes)
	if err != nil {
		return "", &Skip{Offset: b.Start, Reason: err.Error()}
	}
	if !attrs.HasClass(r.opts.MarkerClass) {
		return "", nil
	}
	val, ok := attrs.Get(r.opts.PathKey)
	if !ok {
		return "", &Skip{
			Offset: b.Start,
			Reason: fmt.Sprintf("fence has class .%s but no %s= key; inline sub-app bodies are not supported", r.opts.MarkerClass, r.opts.PathKey),
		}
	}

	appPath := path.Join(r.opts.AppPath, val)

	classes := append([]string{}, r.opts.LayoutClasses...)
	for _, c := range attrs.Classes {
		if c == r.opts.MarkerClass || c == r.opts.PathKey {
			continue
		}
		classes = append(classes, c)
	}

	args := []string{fmt.Sprintf("Children: ui.LoadApp(%q, app)", appPath)}
	if attrs.ID != "" {
		args = append(args, fmt.Sprintf("ID: %q", attrs.ID))
	}
	if len(classes) > 0 {
		args = append(args, fmt.Sprintf("Class: %q", strings.Join(classes, " ")))
	}
	return fmt.Sprintf("ui.Div(ui.Props{%s})", strings.Join(args, ", ")), nil
}

// Assemble interpolates the component expressions into the fixed
// scaffold and, unless disabled, canonicalizes the result with
// go/format. Formatting is idempotent; a formatting error means the
// assembled source itself is malformed and is returned as-is, fatal.
func (r *Renderer) Assemble(exprs []string) (string, error) {
	var b strings.Builder
	b.WriteString("// Code generated by dashdown; DO NOT EDIT.\n\n")
	b.WriteString("package main\n\n")
	b.WriteString("import (\n\t\"github.com/dashdown/dashdown/ui\"\n)\n\n")
	if r.opts.Precode != "" {
		b.WriteString(r.opts.Precode)
		b.WriteString("\n\n")
	}
	b.WriteString("func main() {\n")
	b.WriteString("\tapp := ui.NewApp()\n")
	if r.opts.AppPrecode != "" {
		b.WriteString(r.opts.AppPrecode)
		b.WriteString("\n")
	}
	b.WriteString("\tapp.Layout = ui.Container(\n")
	if len(exprs) > 0 {
		b.WriteString(r.opts.Indent)
		b.WriteString(strings.Join(exprs, ",\n"+r.opts.Indent))
		b.WriteString(",\n")
	}
	b.WriteString("\t)\n")
	b.WriteString("\tapp.Run(\":8050\")\n")
	b.WriteString("}\n")

	src := b.String()
	if r.opts.NoFormat {
		return src, nil
	}
	out, err := format.Source([]byte(src))
	if err != nil {
		return "", fmt.Errorf("render: formatting generated source: %w", err)
	}
	return string(out), nil
}

// goString renders s as a Go string literal, preferring a raw string
// for multi-line prose when the content allows it.
func goString(s string) string {
	if !strings.ContainsAny(s, "`\r") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
