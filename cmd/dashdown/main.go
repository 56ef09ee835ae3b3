package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dashdown/dashdown/internal/config"
	"github.com/dashdown/dashdown/internal/docs"
	"github.com/dashdown/dashdown/internal/output"
	"github.com/dashdown/dashdown/internal/preview"
	"github.com/dashdown/dashdown/internal/render"
	"github.com/dashdown/dashdown/internal/scaffold"
	"github.com/dashdown/dashdown/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "dashdown",
		Usage:       "Convert markdown documents into runnable web-app source",
		Description: "Run 'dashdown docs' for documentation on document syntax, fence attributes, config, and the runtime.",
		Commands: []*cli.Command{
			initCmd(),
			convertCmd(),
			previewCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a markdown document to generated Go source",
		ArgsUsage: "<file.md>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file (default stdout)"},
			&cli.StringFlag{Name: "config", Usage: "Config file (default: nearest dashdown.yaml)"},
			&cli.StringFlag{Name: "app-path", Usage: "Root directory sub-app paths resolve against"},
			&cli.BoolFlag{Name: "no-format", Usage: "Skip gofmt canonicalization of the output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("markdown file argument is required")
			}

			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			opts := render.Options{
				Pattern:         cfg.Pattern,
				MarkerClass:     cfg.MarkerClass,
				PathKey:         cfg.PathKey,
				MarkdownClasses: cfg.MarkdownClasses,
				LayoutClasses:   cfg.LayoutClasses,
				AppPath:         cfg.AppPath,
				Indent:          cfg.Indent,
				Precode:         cfg.Precode,
				AppPrecode:      cfg.AppPrecode,
				NoFormat:        !cfg.FormatEnabled(),
			}
			if v := cmd.String("app-path"); v != "" {
				opts.AppPath = v
			}
			if cmd.Bool("no-format") {
				opts.NoFormat = true
			}

			r, err := render.New(opts)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			res, err := r.Convert(string(data))
			if err != nil {
				return err
			}
			for _, s := range res.Skips {
				ux.SkipWarning(s.Offset, s.Reason)
			}

			out := cmd.String("out")
			if out == "" {
				fmt.Print(res.Source)
				return nil
			}
			if err := output.WriteFileAtomic(out, []byte(res.Source), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			ux.ConvertSummary(out, res.Components, len(res.Skips))
			return nil
		},
	}
}

func previewCmd() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Render a markdown document to standalone HTML",
		ArgsUsage: "<file.md>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file (default stdout)"},
			&cli.StringFlag{Name: "config", Usage: "Config file (default: nearest dashdown.yaml)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("markdown file argument is required")
			}

			cfg, err := loadConfig(cmd.String("config"))
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			page, err := preview.HTML(string(data), preview.Options{
				MarkerClass: cfg.MarkerClass,
				PathKey:     cfg.PathKey,
				Pattern:     cfg.Pattern,
			})
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out == "" {
				fmt.Print(page)
				return nil
			}
			if err := output.WriteFileAtomic(out, []byte(page), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a dashdown project with example config and document",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'dashdown docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadConfig loads the named config file, or the nearest dashdown.yaml
// above the working directory, or the defaults when neither exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if found := config.Find(dir); found != "" {
		cfg, err := config.Load(found)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", found, err)
		}
		return cfg, nil
	}
	return config.Default(), nil
}
