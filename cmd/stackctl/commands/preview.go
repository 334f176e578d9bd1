package commands

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agiangrant/stacklayout/chrome"
	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/internal/preview"
	"github.com/agiangrant/stacklayout/layout"
)

type previewFlags struct {
	scaleX, scaleY int
	connectors     bool
}

func newPreviewCmd(a *app) *cobra.Command {
	var f previewFlags
	cmd := &cobra.Command{
		Use:   "preview <profile>",
		Short: "Show a profile in the terminal",
		Long: `Preview arranges a profile to the terminal size and redraws it on
every resize. Press q or Esc to quit. Toolbar profiles also bind l to
toggle the loading state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.cfg.Profile(args[0])
			if err != nil {
				return err
			}
			q := layout.NewQueue(64)
			scene, err := buildScene(profile, layout.Options{Dispatcher: q, Diagnostics: a.sink}, a.log)
			if err != nil {
				return err
			}
			scene.Queue = q
			scene.Connectors = f.connectors

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			r := preview.NewRenderer(screen)
			r.ScaleX, r.ScaleY = f.scaleX, f.scaleY
			return preview.Run(cmd.Context(), screen, r, scene)
		},
	}
	cmd.Flags().IntVar(&f.scaleX, "scale-x", 4, "layout units per terminal column")
	cmd.Flags().IntVar(&f.scaleY, "scale-y", 12, "layout units per terminal row")
	cmd.Flags().BoolVar(&f.connectors, "connectors", false, "mark float connector points")
	return cmd
}

// buildScene prefers the toolbar wiring so the loading toggle is
// available, and falls back to a plain build for other profiles.
func buildScene(p config.Profile, opts layout.Options, log *zap.Logger) (preview.Scene, error) {
	tb, err := chrome.NewToolbar(chrome.Options{Layout: opts, Profile: &p})
	switch {
	case err == nil:
		return preview.Scene{
			Panel:   tb.Panel,
			Surface: tb.Surface,
			Keys: map[rune]func(){
				'l': func() { tb.SetLoading(!tb.Loading()) },
			},
		}, nil
	case !errors.Is(err, chrome.ErrMissingControl):
		return preview.Scene{}, err
	}

	log.Debug("not a toolbar profile", zap.String("profile", p.Name))
	b, err := p.Build(opts)
	if err != nil {
		return preview.Scene{}, err
	}
	return preview.Scene{Panel: b.Panel, Surface: b.Surface}, nil
}
