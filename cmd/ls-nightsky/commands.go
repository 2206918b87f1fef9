package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-nightsky/internal/observation"
	"github.com/litescript/ls-nightsky/internal/report"
	"github.com/litescript/ls-nightsky/internal/ui"
)

// stageCmd builds a command that runs stages and then one writer.
func (a *app) stageCmd(use, short string, write func(*observation.Observation) error, stages ...func(*observation.Observation) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.observation()
			if err != nil {
				return err
			}
			for _, stage := range stages {
				if err := stage(o); err != nil {
					return err
				}
			}
			return write(o)
		},
	}
}

var (
	sky     = (*observation.Observation).ComputeSky
	sunMoon = (*observation.Observation).ComputeSunMoon
	night   = (*observation.Observation).SetNightEvents
	planets = (*observation.Observation).ComputePlanets
	bary    = (*observation.Observation).ComputeBary
)

func (a *app) nowCmd() *cobra.Command {
	return a.stageCmd("now", "Target, sun and moon at the instant",
		func(o *observation.Observation) error { return report.WriteNow(a.out, o, a.styles()) },
		sky, sunMoon)
}

func (a *app) nightCmd() *cobra.Command {
	return a.stageCmd("night", "Sun and moon events of the night",
		func(o *observation.Observation) error { return report.WriteNight(a.out, o, a.styles()) },
		night)
}

func (a *app) planetsCmd() *cobra.Command {
	return a.stageCmd("planets", "Planet positions and magnitudes",
		func(o *observation.Observation) error { return report.WritePlanets(a.out, o, a.styles()) },
		planets)
}

func (a *app) baryCmd() *cobra.Command {
	return a.stageCmd("bary", "Barycentric time and velocity corrections",
		func(o *observation.Observation) error { return report.WriteBary(a.out, o, a.styles()) },
		sky, bary)
}

func (a *app) sitesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List known observatories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "%-10s %-40s %9s %8s %6s  %s\n", "Code", "Name", "Lon", "Lat", "Elev", "Zone")
			fmt.Fprintln(a.out, strings.Repeat("─", 100))
			for _, s := range a.reg.All() {
				fmt.Fprintf(a.out, "%-10s %-40s %+9.4f %+8.4f %6.0f  %s\n",
					s.Code, truncate(s.Name, 40), s.LonDeg, s.LatDeg, s.ElevationM, s.Zone)
			}
			_, err := fmt.Fprintf(a.out, "\nTotal: %d sites\n", a.reg.Len())
			return err
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (a *app) jsonCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Run every stage and export a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.observation()
			if err != nil {
				return err
			}
			if err := o.ComputeAll(); err != nil {
				return err
			}
			export := report.ExportSnapshot(o, time.Now().UTC())

			if output == "" || output == "-" {
				if err := export.WriteJSON(a.out); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
				return nil
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "file to write, - for stdout")
	return cmd
}

func (a *app) liveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Live view that refreshes as time passes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.observation()
			if err != nil {
				return err
			}
			follow := a.when == ""
			model := ui.New(o, report.NewStyles(true), a.cfg.Refresh, follow, ui.WithLogger(a.log))

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run live view: %w", err)
			}
			return nil
		},
	}
}
