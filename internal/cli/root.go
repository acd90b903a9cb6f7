// Package cli implements the roadmap command line.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/aerissecure/roadmap"
	"github.com/aerissecure/roadmap/internal/config"
	"github.com/aerissecure/roadmap/internal/logging"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App holds what the commands share. Zero fields get defaults.
type App struct {
	// Config is used as-is when set; otherwise it is loaded in the root
	// command's pre-run.
	Config *config.Config
	IDs    roadmap.IDSource
	Now    func() time.Time
	// IsTerminal reports whether w is an interactive terminal.
	IsTerminal func(w io.Writer) bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) ids() roadmap.IDSource {
	if a.IDs == nil {
		a.IDs = roadmap.NewIDGenerator(nil)
	}
	return a.IDs
}

func (a *App) isTerminal(w io.Writer) bool {
	if a.IsTerminal != nil {
		return a.IsTerminal(w)
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, logLevel, logFormat, baseURL string

	root := &cobra.Command{
		Use:           "roadmap",
		Short:         "Turn roadmap spreadsheets into timelines and share links",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				app.Config = cfg
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				app.Config.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				app.Config.LogFormat = logFormat
			}
			if flags.Changed("base-url") {
				app.Config.BaseURL = baseURL
			}
			if err := app.Config.Validate(); err != nil {
				return err
			}

			logging.Install(logging.New(cmd.ErrOrStderr(), app.Config.LogLevel, app.Config.LogFormat))
			log.Debug("config loaded", "base_url", app.Config.BaseURL, "year", app.Config.Year)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "", "Log format: text, json, logfmt")
	pf.StringVar(&baseURL, "base-url", "", "Base URL for share links")

	root.AddCommand(
		newParseCmd(app),
		newShareCmd(app),
		newOpenCmd(app),
		newRenderCmd(app),
		newShowCmd(app),
		newExportCmd(app),
	)

	return root
}
