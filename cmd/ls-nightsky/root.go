package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-nightsky/internal/config"
	"github.com/litescript/ls-nightsky/internal/logging"
	"github.com/litescript/ls-nightsky/internal/observation"
	"github.com/litescript/ls-nightsky/internal/report"
	"github.com/litescript/ls-nightsky/internal/site"
	"github.com/litescript/ls-nightsky/internal/version"
)

// app carries the state shared by every subcommand.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer

	cfgFile string
	coords  string
	when    string
	utc     bool

	cfg config.Config
	reg *site.Registry
	log *logging.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "ls-nightsky",
		Short:         "Observing conditions for a target from an observatory",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.ls-nightsky.yaml)")
	pf.String("site", site.DefaultCode, "observatory code (see the sites command)")
	pf.StringVar(&a.coords, "coords", "", `target "RA Dec [equinox]", default the zenith`)
	pf.StringVar(&a.when, "time", "", "date and time, default now")
	pf.BoolVar(&a.utc, "utc", false, "read --time as UTC instead of site local time")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("color", "auto", "styled output (auto, always, never)")

	for key, flag := range map[string]string{
		config.KeySite:     "site",
		config.KeyLogLevel: "log-level",
		config.KeyColor:    "color",
	} {
		cobra.CheckErr(a.v.BindPFlag(key, pf.Lookup(flag)))
	}

	root.AddCommand(
		a.nowCmd(),
		a.nightCmd(),
		a.planetsCmd(),
		a.baryCmd(),
		a.sitesCmd(),
		a.jsonCmd(),
		a.liveCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.Logger(a.errOut)
	if cfg.File != "" {
		a.log.Debug("using config file", logging.String("path", cfg.File))
	}

	reg, err := cfg.Registry()
	if err != nil {
		return fmt.Errorf("load sites: %w", err)
	}
	a.reg = reg
	return nil
}

// observation builds the observation named by the flags and config.
func (a *app) observation() (*observation.Observation, error) {
	o, err := observation.New(a.reg,
		observation.WithSite(a.cfg.Site),
		observation.WithProvider(a.cfg.Provider()),
		observation.WithLogger(a.log),
	)
	if err != nil {
		return nil, err
	}

	if a.when != "" {
		if err := o.SetTimeString(a.when, !a.utc); err != nil {
			return nil, err
		}
	}
	if a.coords != "" {
		err = o.SetCelestString(a.coords)
	} else {
		err = o.SetCelestZenith()
	}
	if err != nil {
		return nil, err
	}

	a.log.Debug("observation ready",
		logging.String("site", o.Site().Code),
		logging.String("target", o.Celest().String()),
		logging.String("utc", o.Time().Format("2006-01-02T15:04:05Z")),
	)
	return o, nil
}

// styles picks colored output for terminals unless configured otherwise.
func (a *app) styles() report.Styles {
	isTTY := false
	if f, ok := a.out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return report.NewStyles(a.cfg.UseColor(isTTY))
}
