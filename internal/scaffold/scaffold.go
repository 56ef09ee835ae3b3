// Package scaffold creates a starter dashdown project.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dashdown/dashdown/internal/config"
	"github.com/dashdown/dashdown/internal/ux"
)

var configTemplate = `# dashdown conversion settings. All fields optional.
marker-class: dash
path-key: app
app-path: .

# Classes applied to every component of each kind.
markdown-classes:
  - dash-markdown
layout-classes:
  - dash-layout
`

var exampleTemplate = "# My dashboard\n" +
	"\n" +
	"Prose between fences becomes markdown components.\n" +
	"\n" +
	"```{#hello .dash app=apps/hello.go}\n" +
	"```\n" +
	"\n" +
	"A fence without the .dash class is left out of the layout:\n" +
	"\n" +
	"```{.python}\n" +
	"x = 1\n" +
	"```\n"

var appTemplate = `package main

import (
	"github.com/dashdown/dashdown/ui"
)

func init() {
	ui.Register("apps/hello.go", func(app *ui.App) ui.Component {
		return ui.Div(ui.Props{ID: "greeting", Children: "hello from a sub-app"})
	})
}
`

// Init creates dashdown.yaml, an example document, and a sample
// sub-app in targetDir.
func Init(targetDir string) error {
	configPath := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, targetDir)
	}

	appsDir := filepath.Join(targetDir, "apps")
	if err := os.MkdirAll(appsDir, 0755); err != nil {
		return fmt.Errorf("creating apps/: %w", err)
	}

	files := []struct {
		path    string
		content string
	}{
		{configPath, configTemplate},
		{filepath.Join(targetDir, "example.md"), exampleTemplate},
		{filepath.Join(appsDir, "hello.go"), appTemplate},
	}
	var created []string
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", filepath.Base(f.path), err)
		}
		rel, err := filepath.Rel(targetDir, f.path)
		if err != nil {
			rel = f.path
		}
		created = append(created, rel)
	}

	ux.InitSuccess(created)
	return nil
}
