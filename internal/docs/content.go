package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with dashdown",
		Content: topicQuickstart,
	},
	{
		Name:    "syntax",
		Title:   "Document Syntax",
		Summary: "Fenced blocks, the marker class, and the app key",
		Content: topicSyntax,
	},
	{
		Name:    "attributes",
		Title:   "Fence Attributes",
		Summary: "The #id, .class, and key=value attribute dialect",
		Content: topicAttributes,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "dashdown.yaml fields and defaults",
		Content: topicConfig,
	},
	{
		Name:    "runtime",
		Title:   "Runtime and Sub-Apps",
		Summary: "How generated source, the ui package, and sub-apps fit together",
		Content: topicRuntime,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a project:

    cd your-project
    dashdown init

   This creates dashdown.yaml, an example.md document, and a sample
   sub-app under apps/.

2. Write your document. Prose is plain markdown. Wherever you want an
   embedded sub-app, add a fenced block tagged with the marker class:

    ` + "```" + `{.dash app=apps/hello.go}
    ` + "```" + `

3. Convert:

    dashdown convert example.md -o app.go

   The output is a plain Go file, already gofmt-formatted, that builds
   the page layout from ui components.

4. Preview the document as HTML without converting:

    dashdown preview example.md -o preview.html
`

const topicSyntax = `Document Syntax
===============

A document is ordinary markdown. dashdown only looks at fenced code
blocks whose opening line carries a brace-delimited attribute string:

    ` + "```" + `{#scatter .dash .wide app=plots/scatter.go}
    ` + "```" + `

The opening fence is a run of at least three backticks; the closing
line must repeat the opening fence exactly. Everything outside such
blocks is prose and becomes a markdown display component.

A fenced block is rendered only when its classes include the marker
class (default "dash") AND it names a sub-app file with the path key
(default "app"). Blocks failing the first test are dropped silently —
ordinary code listings like ` + "```" + `{.python} stay out of the layout.
Blocks with the marker class but no path are skipped with a warning:
inline sub-app bodies are not supported.

Paths resolve relative to app-path (config or --app-path flag).

Component order in the generated layout matches document order exactly.

Unbalanced braces in the attribute string make the line not a fence
opening at all; it stays prose. Balanced nested braces are allowed up
to 32 levels.
`

const topicAttributes = `Fence Attributes
================

Inside the braces of an opening fence, tokens are separated by spaces:

    #id        sets the component id (first one wins)
    .class     adds a class (duplicates collapse, order kept)
    key=value  adds a key/value pair (later keys overwrite earlier)
    word       a bare word counts as a class

Values may be double-quoted to contain spaces; \" and \\ escape inside
quotes. An unterminated quote makes the attribute string malformed and
the block is skipped with a warning.

In the generated component, the id becomes the ID prop, and the class
string is the configured layout classes followed by the declared
classes — minus the marker class and the path key, which are control
tokens, not styling.

Example:

    ` + "```" + `{#myid .dash .extra app=sub.go}
    ` + "```" + `

renders as

    ui.Div(ui.Props{Children: ui.LoadApp("sub.go", app), ID: "myid", Class: "dash-layout extra"})
`

const topicConfig = `Configuration Reference
=======================

dashdown looks for dashdown.yaml by walking up from the working
directory. All fields are optional; an empty or missing file means
defaults.

    marker-class: dash          # class that opts a fence in
    path-key: app               # key naming the sub-app file
    app-path: .                 # root for resolving sub-app paths
    indent: "\t"                # one indent unit in generated source
    markdown-classes:           # classes on every prose component
      - dash-markdown
    layout-classes:             # classes on every embedded app
      - dash-layout
    precode: ""                 # verbatim code before func main
    app-precode: ""             # verbatim code after app construction
    format: true                # gofmt the generated source
    pattern: ""                 # custom opening-fence regexp

A custom pattern applies to one line at a time and must define the
named groups "fence" and "attributes". A pattern missing either group
is rejected when the config is loaded.

Flags on the convert command (--app-path, --no-format, -o) override
the file.
`

const topicRuntime = `Runtime and Sub-Apps
====================

The generated file is package main and imports
github.com/dashdown/dashdown/ui. It constructs an app, assigns its
layout, and serves it:

    app := ui.NewApp()
    app.Layout = ui.Container(
        ui.Markdown(ui.Props{Children: ` + "`# Title`" + `, Class: "dash-markdown"}),
        ui.Div(ui.Props{Children: ui.LoadApp("apps/hello.go", app), Class: "dash-layout"}),
    )
    app.Run(":8050")

Sub-apps are ordinary Go files built together with the generated file.
Each registers a layout builder under the same path string the
markdown document used:

    func init() {
        ui.Register("apps/hello.go", func(app *ui.App) ui.Component {
            return ui.Div(ui.Props{ID: "greeting", Children: "hello"})
        })
    }

ui.LoadApp looks the path up in this registry — there is no dynamic
code loading. Component ids inside a loaded sub-app are prefixed with
the path stem ("hello-greeting" above) so two sub-apps cannot collide.
A path with no registration renders a visible placeholder instead of
failing the page.
`
