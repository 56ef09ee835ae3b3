package render

import (
	"go/format"
	"strings"
	"testing"
)

func mustRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestConvert_ProseAndApp(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("Hello\n\n```{.dash app=sub.go}\nignored\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.Components != 2 {
		t.Fatalf("expected 2 components, got %d", res.Components)
	}
	md := strings.Index(res.Source, "ui.Markdown(ui.Props{Children: `Hello`, Class: \"dash-markdown\"})")
	app := strings.Index(res.Source, `ui.Div(ui.Props{Children: ui.LoadApp("sub.go", app), Class: "dash-layout"})`)
	if md < 0 {
		t.Fatalf("markdown component missing from:\n%s", res.Source)
	}
	if app < 0 {
		t.Fatalf("app component missing from:\n%s", res.Source)
	}
	if md > app {
		t.Fatal("components out of document order")
	}
	if !strings.Contains(res.Source, "app := ui.NewApp()") {
		t.Fatalf("scaffold missing app construction:\n%s", res.Source)
	}
}

func TestConvert_UntaggedFenceExcluded(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("```{.python}\nx=1\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.Components != 0 {
		t.Fatalf("expected 0 components, got %d", res.Components)
	}
	if len(res.Skips) != 0 {
		t.Fatalf("untagged fences skip silently, got %v", res.Skips)
	}
	if strings.Contains(res.Source, "x=1") {
		t.Fatalf("untagged fence leaked into output:\n%s", res.Source)
	}
}

func TestConvert_WhitespaceOnly(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("   \n\t\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.Components != 0 {
		t.Fatalf("expected empty layout, got %d components", res.Components)
	}
	if !strings.Contains(res.Source, "ui.Container()") {
		t.Fatalf("expected empty container:\n%s", res.Source)
	}
}

func TestConvert_AdjacentTaggedFences(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("```{.dash app=x.go}\n```\n```{.dash app=y.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.Components != 2 {
		t.Fatalf("expected 2 components, got %d", res.Components)
	}
	x := strings.Index(res.Source, `ui.LoadApp("x.go", app)`)
	y := strings.Index(res.Source, `ui.LoadApp("y.go", app)`)
	if x < 0 || y < 0 || x > y {
		t.Fatalf("app components missing or out of order:\n%s", res.Source)
	}
	if strings.Contains(res.Source, "ui.Markdown") {
		t.Fatalf("spurious markdown component between adjacent fences:\n%s", res.Source)
	}
}

func TestConvert_IDAndClasses(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("```{#myid .dash .extra app=sub.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	want := `ui.Div(ui.Props{Children: ui.LoadApp("sub.go", app), ID: "myid", Class: "dash-layout extra"})`
	if !strings.Contains(res.Source, want) {
		t.Fatalf("expected %s in:\n%s", want, res.Source)
	}
}

func TestConvert_TaggedFenceWithoutPath_Skipped(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("```{.dash}\ninline body\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if res.Components != 0 {
		t.Fatalf("expected 0 components, got %d", res.Components)
	}
	if len(res.Skips) != 1 {
		t.Fatalf("expected 1 skip, got %v", res.Skips)
	}
	if !strings.Contains(res.Skips[0].Reason, "no app= key") {
		t.Fatalf("skip reason: %q", res.Skips[0].Reason)
	}
}

func TestConvert_MalformedAttributes_SkipsBlockOnly(t *testing.T) {
	r := mustRenderer(t, Options{})
	input := "Before\n\n```{.dash title=\"oops app=x.go}\n```\n\nAfter\n\n```{.dash app=y.go}\n```\n"
	res, err := r.Convert(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Skips) != 1 {
		t.Fatalf("expected 1 skip, got %v", res.Skips)
	}
	// The bad fence must not take the rest of the document with it.
	if !strings.Contains(res.Source, `ui.LoadApp("y.go", app)`) {
		t.Fatalf("good block after bad one missing:\n%s", res.Source)
	}
	if res.Components != 3 {
		t.Fatalf("expected 3 components (two prose, one app), got %d", res.Components)
	}
}

func TestConvert_AppPathResolution(t *testing.T) {
	r := mustRenderer(t, Options{AppPath: "apps"})
	res, err := r.Convert("```{.dash app=sub/x.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Source, `ui.LoadApp("apps/sub/x.go", app)`) {
		t.Fatalf("path not resolved against app root:\n%s", res.Source)
	}
}

func TestConvert_CustomMarkerAndKey(t *testing.T) {
	r := mustRenderer(t, Options{MarkerClass: "embed", PathKey: "src"})
	res, err := r.Convert("```{.embed src=x.go}\n```\n```{.dash app=y.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Source, `ui.LoadApp("x.go", app)`) {
		t.Fatalf("custom marker fence missing:\n%s", res.Source)
	}
	if strings.Contains(res.Source, "y.go") {
		t.Fatalf("default-marker fence should be untagged now:\n%s", res.Source)
	}
}

func TestConvert_FormattingIdempotent(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("# Title\n\n```{.dash app=x.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	again, err := format.Source([]byte(res.Source))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != res.Source {
		t.Fatalf("formatting not idempotent:\n%s\nvs\n%s", res.Source, again)
	}
}

func TestConvert_NoFormatStillValid(t *testing.T) {
	r := mustRenderer(t, Options{NoFormat: true, Indent: "    "})
	res, err := r.Convert("Hello\n\n```{.dash app=x.go}\n```\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := format.Source([]byte(res.Source)); err != nil {
		t.Fatalf("unformatted output is not valid Go: %v\n%s", err, res.Source)
	}
}

func TestConvert_PrecodePassthrough(t *testing.T) {
	r := mustRenderer(t, Options{
		Precode:    "var greeting = \"hi\"",
		AppPrecode: "\t_ = greeting",
	})
	res, err := r.Convert("Hello\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Source, "var greeting") {
		t.Fatalf("precode missing:\n%s", res.Source)
	}
	if !strings.Contains(res.Source, "_ = greeting") {
		t.Fatalf("app precode missing:\n%s", res.Source)
	}
}

func TestConvert_MalformedPrecode_Fatal(t *testing.T) {
	r := mustRenderer(t, Options{Precode: "func broken() {"})
	if _, err := r.Convert("Hello\n"); err == nil {
		t.Fatal("expected formatting error for malformed precode")
	}
}

func TestConvert_BacktickProseQuoted(t *testing.T) {
	r := mustRenderer(t, Options{})
	res, err := r.Convert("Use `go build` to compile.\n")
	if err != nil {
		t.Fatal(err)
	}
	// Backticks rule out a raw string literal; the prose must land in a
	// quoted literal and the file must still parse.
	if !strings.Contains(res.Source, `Children: "Use `) {
		t.Fatalf("prose with backticks should use a quoted literal:\n%s", res.Source)
	}
	if _, err := format.Source([]byte(res.Source)); err != nil {
		t.Fatalf("output invalid: %v", err)
	}
}

func TestNew_InvalidPattern(t *testing.T) {
	if _, err := New(Options{Pattern: "^```(.*)$"}); err == nil {
		t.Fatal("expected configuration error for pattern without named groups")
	}
}

func TestConvert_CustomPattern(t *testing.T) {
	r := mustRenderer(t, Options{Pattern: "^(?P<fence>~{3,})\\{(?P<attributes>.*)\\}$"})
	res, err := r.Convert("~~~{.dash app=x.go}\n~~~\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Source, `ui.LoadApp("x.go", app)`) {
		t.Fatalf("tilde fence not converted:\n%s", res.Source)
	}
}
