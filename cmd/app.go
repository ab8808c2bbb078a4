// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the hsvcube tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/hsvcube/base/errors"
	"cogentcore.org/hsvcube/base/logx"
	"cogentcore.org/hsvcube/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App is the main app type that handles
// the logic for the hsvcube tool.
type App struct {

	// Config is the effective configuration, set before each command runs.
	Config *config.Config

	// flags holds the values bound to command line flags.
	flags *config.Config

	// configFile is the TOML config file to read, if any.
	configFile string

	// log level flags
	vv, verbose, quiet bool

	out io.Writer
}

// NewApp returns a new [App] writing command output to out.
func NewApp(out io.Writer) *App {
	return &App{flags: config.New(), out: out}
}

// Command returns the root command of the tool with all
// of its subcommands.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "hsvcube",
		Short:         "Lay out the HSV color space as a 3D point cloud",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}
	root.SetOut(a.out)
	a.addFlags(root.PersistentFlags())
	root.AddCommand(
		a.countCommand(),
		a.documentCommand("samples", "Export the color-sorted samples"),
		a.documentCommand("axes", "Export the axes, ticks and hue ring"),
		a.documentCommand("layout", "Export the samples and the axes"),
		a.previewCommand(),
		a.configCommand(),
	)
	return root
}

// addFlags adds the persistent flags: the config file and log
// level flags, and a flag for each tagged field of [config.Config],
// bound to a.flags.
func (a *App) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.configFile, "config", "c", "", "a TOML config file to read before applying flags")
	fs.BoolVar(&a.vv, "vv", false, "show debug log messages")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "show informational log messages")
	fs.BoolVarP(&a.quiet, "quiet", "q", false, "only show error log messages")
	errors.Must(config.AddFlags(fs, a.flags))
}

// setup sets the log level and builds the effective config:
// defaults, then the config file, then any flags that were set.
func (a *App) setup(fs *pflag.FlagSet) error {
	logx.UserLevel = logx.LevelFromFlags(a.vv, a.verbose, a.quiet)
	logx.SetDefaultLogger()

	cfg := config.New()
	if a.configFile != "" {
		if err := cfg.Open(a.configFile); err != nil {
			return err
		}
		slog.Info("read config file", "file", a.configFile)
	}
	if err := config.SetFromFlags(cfg, fs); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.Config = cfg
	return nil
}
