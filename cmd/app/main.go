package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/dive2Pro/roam-types/internal"
	"github.com/dive2Pro/roam-types/internal/checker"
	"github.com/dive2Pro/roam-types/internal/mcpserver"
	pkgconfig "github.com/dive2Pro/roam-types/pkg/config"
	"github.com/dive2Pro/roam-types/pkg/schema"

	// Populate the shape registry.
	_ "github.com/dive2Pro/roam-types/pkg/extension"
	_ "github.com/dive2Pro/roam-types/pkg/query"
	_ "github.com/dive2Pro/roam-types/pkg/write"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if fixtures := cmd.String("fixtures"); fixtures != "" {
		cfg.Fixtures.Path = fixtures
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func check(ctx context.Context, cmd *cli.Command) error {
	root := cmd.String("fixtures")
	if root == "" {
		return fmt.Errorf("a fixtures directory is required")
	}

	results, err := checker.Run(root)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	for _, res := range results {
		if res.Passed {
			fmt.Fprintf(cmd.Writer, "ok\t%s\t%s\n", res.Path, res.Shape)
		} else {
			fmt.Fprintf(cmd.Writer, "FAIL\t%s\t%s\n", res.Path, res.Detail)
		}
	}
	passed, failed := checker.Summary(results)
	fmt.Fprintf(cmd.Writer, "%d passed, %d failed\n", passed, failed)

	if cmd.Bool("watch") {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		return checker.Watch(ctx, root, logger, func(res checker.Result) {
			if res.Passed {
				fmt.Fprintf(cmd.Writer, "ok\t%s\t%s\n", res.Path, res.Shape)
			} else {
				fmt.Fprintf(cmd.Writer, "FAIL\t%s\t%s\n", res.Path, res.Detail)
			}
		})
	}

	if failed > 0 {
		return fmt.Errorf("%d document(s) failed", failed)
	}
	return nil
}

func shapes(ctx context.Context, cmd *cli.Command) error {
	if name := cmd.Args().First(); name != "" {
		s := schema.Lookup(name)
		if s == nil {
			return fmt.Errorf("unknown shape: %s", name)
		}
		var out any = s
		if cmd.String("format") == "jsonschema" {
			js, err := s.JSONSchema()
			if err != nil {
				return err
			}
			out = js
		}
		enc := json.NewEncoder(cmd.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, s := range schema.All() {
		fmt.Fprintf(cmd.Writer, "%s\t%s\n", s.Name, s.Delivery)
	}
	return nil
}

func mcpServe(ctx context.Context, cmd *cli.Command) error {
	return mcpserver.New().ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "roam-types",
		Usage: "Shape registry for the Roam host API contract: serve it, validate payloads against it, export it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the shape registry over HTTP with live fixture conformance events",
				Action: serve,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "fixtures",
						Usage: "Directory of payload documents to watch",
					},
				},
			},
			{
				Name:   "check",
				Usage:  "Validate a directory of payload documents against the registry",
				Action: check,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "fixtures",
						Usage:    "Directory of payload documents",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Keep watching and recheck documents as they change",
					},
				},
			},
			{
				Name:      "shapes",
				Usage:     "List registered shapes, or print one shape's descriptor",
				ArgsUsage: "[name]",
				Action:    shapes,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Descriptor format: descriptor or jsonschema",
						Value: "descriptor",
					},
				},
			},
			{
				Name:   "mcp",
				Usage:  "Serve the registry as MCP tools over stdio",
				Action: mcpServe,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
