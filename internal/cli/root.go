// Package cli implements the sensible command-line interface using Cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sensible-monitor/sensible/internal/logging"
	"github.com/sensible-monitor/sensible/internal/monitor"
	"github.com/sensible-monitor/sensible/internal/sensors"
	"github.com/sensible-monitor/sensible/internal/tui"
	"github.com/spf13/cobra"
)

// Options holds the command-line flags.
type Options struct {
	Source    string
	HwmonRoot string
	LogFile   string
	Debug     bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "sensible",
		Short: "Hardware sensors in your terminal",
		Long: `sensible shows every hardware sensor chip side by side, one column per chip,
refreshing on an adjustable cadence.

Keys: ←/→ scroll chips, ↑/↓ refresh faster/slower, q quits.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Source, "source", sensors.SourceAuto, "sensor source: auto, hwmon, psutil or demo")
	f.StringVar(&opts.HwmonRoot, "hwmon-root", sensors.DefaultHwmonRoot, "sysfs hwmon class directory")
	f.StringVar(&opts.LogFile, "log-file", "", "write logs to this file (default: discard)")
	f.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	return cmd
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(version).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *Options) error {
	log, closeLog, err := logging.New(opts.LogFile, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := sensors.NewProvider(opts.Source, opts.HwmonRoot, log)
	if err != nil {
		return err
	}
	if err := probe(ctx, provider); err != nil {
		return fmt.Errorf("initializing sensor source %q: %w", opts.Source, err)
	}

	cfg := monitor.DefaultConfig()
	canvas := tui.NewCanvas()
	dash := monitor.NewDashboard(cfg, provider, canvas, log)
	model := tui.NewModel(ctx, cfg, dash, canvas, log)

	log.WithField("source", opts.Source).Info("starting dashboard")
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		log.Info("interrupted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	log.Info("dashboard stopped")
	return nil
}

// probe opens and releases one session so an unusable source fails before
// the terminal is taken over.
func probe(ctx context.Context, provider sensors.Provider) error {
	sess, err := provider.Open(ctx)
	if err != nil {
		return err
	}
	return sess.Close()
}
