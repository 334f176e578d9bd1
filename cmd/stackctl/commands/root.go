// Package commands implements the stackctl command tree.
package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/internal/diag"
)

// Version is set at build time with
// -ldflags "-X github.com/agiangrant/stacklayout/cmd/stackctl/commands.Version=1.2.3".
var Version = "0.1.0"

// app is the state shared by every subcommand.
type app struct {
	cfgFile  string
	logLevel string

	cfg  config.Config
	log  *zap.Logger
	sink *diag.Sink
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "stackctl",
		Short:         "Arrange and preview stack panel profiles.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetVersionTemplate("stackctl version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", config.FileName, "profile file")
	flags.StringVar(&a.logLevel, "log-level", "", "override the [log] level (debug, info, warn, error)")

	root.AddCommand(
		newArrangeCmd(a),
		newPreviewCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.cfg = cfg
	a.log = diag.New(cfg.Log, cmd.ErrOrStderr())
	a.sink = diag.NewSink(a.log, cfg.Log.WarnRate, cfg.Log.WarnBurst)
	a.log.Debug("config loaded", zap.String("path", a.cfgFile), zap.Int("profiles", len(cfg.Profiles)))
	return nil
}

// profiles resolves names to profiles; no names means all of them.
func (a *app) profiles(names []string) ([]config.Profile, error) {
	if len(names) == 0 {
		if len(a.cfg.Profiles) == 0 {
			return nil, fmt.Errorf("no profiles in %s", a.cfgFile)
		}
		return slices.Clone(a.cfg.Profiles), nil
	}
	out := make([]config.Profile, 0, len(names))
	for _, n := range names {
		p, err := a.cfg.Profile(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stackctl version %s\n", Version)
		},
	}
}
