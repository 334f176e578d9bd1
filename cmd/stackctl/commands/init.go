package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/internal/diag"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in profiles to the config file",
		// The existing file may be the broken one being replaced, so
		// init does not load it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := diag.DefaultConfig()
			if a.logLevel != "" {
				cfg.Level = a.logLevel
			}
			a.log = diag.New(cfg, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.cfgFile); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfgFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(a.cfgFile, config.Default()); err != nil {
				return err
			}
			a.log.Info("wrote config", zap.String("path", a.cfgFile))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.cfgFile)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
