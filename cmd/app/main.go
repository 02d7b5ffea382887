// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/qrbadge/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "qrbadge",
		Usage:   "Encrypted QR badge generator",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate an encrypted QR badge for an employee",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Required: true,
						Usage:    "Employee name (at least 2 characters)",
					},
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Employee ID (ASCII digits only)",
					},
					&cli.StringFlag{
						Name:     "department",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "Department name (at least 2 characters)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Optional extra information",
					},
					&cli.BoolFlag{
						Name:    "save",
						Aliases: []string{"s"},
						Usage:   "Save the PNG under the configured save path",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerate(
						ctx,
						cmd.String("name"),
						cmd.String("id"),
						cmd.String("department"),
						cmd.String("notes"),
						cmd.Bool("save"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "settings",
				Usage: "Inspect and manage persisted settings",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Print the effective settings",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "format",
								Aliases: []string{"f"},
								Value:   "text",
								Usage:   "Output format: 'text' or 'json'",
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return commands.RunSettingsShow(ctx, cmd.String("format"), commands.DefaultIO())
						},
					},
					{
						Name:  "save",
						Usage: "Update and persist settings",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "save-path",
								Usage: "Absolute directory for generated badges",
							},
							&cli.BoolFlag{
								Name:  "auto-save",
								Usage: "Persist every generated badge automatically",
							},
							&cli.StringFlag{
								Name:  "image-quality",
								Usage: "PNG quality: low, medium, high, or highest",
							},
							&cli.StringFlag{
								Name:  "qr-size",
								Usage: "QR size: small, medium, large, or xlarge",
							},
							&cli.StringFlag{
								Name:  "qr-color",
								Usage: "Foreground color as #RGB or #RRGGBB",
							},
							&cli.StringFlag{
								Name:  "qr-bg-color",
								Usage: "Background color as #RGB or #RRGGBB",
							},
							&cli.StringFlag{
								Name:  "language",
								Usage: "Interface language code (e.g., ar, en)",
							},
							&cli.StringFlag{
								Name:    "format",
								Aliases: []string{"f"},
								Value:   "text",
								Usage:   "Output format: 'text' or 'json'",
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							overrides := commands.SettingsOverrides{
								SavePath:     cmd.String("save-path"),
								ImageQuality: cmd.String("image-quality"),
								QRSize:       cmd.String("qr-size"),
								QRColor:      cmd.String("qr-color"),
								QRBgColor:    cmd.String("qr-bg-color"),
								Language:     cmd.String("language"),
							}
							if cmd.IsSet("auto-save") {
								autoSave := cmd.Bool("auto-save")
								overrides.AutoSave = &autoSave
							}
							return commands.RunSettingsSave(ctx, overrides, cmd.String("format"), commands.DefaultIO())
						},
					},
					{
						Name:  "reset",
						Usage: "Restore and persist the default settings",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "format",
								Aliases: []string{"f"},
								Value:   "text",
								Usage:   "Output format: 'text' or 'json'",
							},
						},
						Action: func(ctx context.Context, cmd *cli.Command) error {
							return commands.RunSettingsReset(ctx, cmd.String("format"), commands.DefaultIO())
						},
					},
				},
			},
			{
				Name:  "rotate-key",
				Usage: "Replace the encryption key with a fresh one",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Confirm that existing badges become undecryptable",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunRotateKey(cmd.Bool("force"), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
