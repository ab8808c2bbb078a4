// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/hsvcube/base/errors"
	"cogentcore.org/hsvcube/cloudio"
	"cogentcore.org/hsvcube/hsvcube"
	"cogentcore.org/hsvcube/render"
	"github.com/spf13/cobra"
)

func (a *App) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of samples, the pool size needed to assign them all",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.layout().Count())
			return err
		},
	}
}

// documentCommand returns an export command; the name selects the contents.
func (a *App) documentCommand(name, short string) *cobra.Command {
	contents := map[string]cloudio.Contents{
		"samples": cloudio.ContentsSamples,
		"axes":    cloudio.ContentsAxes,
		"layout":  cloudio.ContentsAll,
	}[name]
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.Config
			doc := cloudio.NewDocument(a.layout(), contents, cfg.Sorted)
			if cfg.Output != "" {
				if err := cloudio.Save(doc, cfg.Output); err != nil {
					return err
				}
				slog.Info("saved document", "file", cfg.Output, "points", len(doc.Points), "ticks", len(doc.Ticks))
				return nil
			}
			f, err := cloudio.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			return cloudio.Write(cmd.OutOrStdout(), doc, f)
		},
	}
}

func (a *App) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Draw a PNG preview of the layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.Config
			ly := a.layout()
			opts := render.DefaultOptions()
			opts.Width, opts.Height = cfg.Preview.Width, cfg.Preview.Height
			opts.Axes = cfg.Preview.Axes
			opts.CubeSize = cfg.CubeSize
			var err error
			if opts.View, err = render.ParseView(cfg.Preview.View); err != nil {
				return err
			}
			if opts.Background, err = render.ParseBackground(cfg.Preview.Background); err != nil {
				return err
			}
			if cfg.Output == "" {
				return render.WritePNG(cmd.OutOrStdout(), ly, opts)
			}
			if err := render.SavePNG(cfg.Output, ly, opts); err != nil {
				return err
			}
			slog.Info("saved preview", "file", cfg.Output)
			return nil
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Config.Output != "" {
				return a.Config.Save(a.Config.Output)
			}
			return a.Config.Write(cmd.OutOrStdout())
		},
	}
}

// layout returns the layout of the effective config,
// which setup has already validated.
func (a *App) layout() hsvcube.Layout {
	return errors.Must1(a.Config.Layout())
}

// Execute runs the tool with the process arguments,
// exiting with status 1 on error.
func Execute() {
	if errors.Log(NewApp(os.Stdout).Command().Execute()) != nil {
		os.Exit(1)
	}
}
