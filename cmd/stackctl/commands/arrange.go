package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/layout"
)

type arrangeFlags struct {
	width, height int
	policy        string
}

func newArrangeCmd(a *app) *cobra.Command {
	var f arrangeFlags
	cmd := &cobra.Command{
		Use:   "arrange [profile...]",
		Short: "Lay out profiles and print the resulting bounds",
		Long: `Arrange builds every named profile (all of them by default), runs one
layout pass and prints each child's bounds. Profiles are arranged
concurrently; output keeps the order given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := a.profiles(args)
			if err != nil {
				return err
			}
			if err := f.apply(profiles); err != nil {
				return err
			}

			results := make([]*config.Built, len(profiles))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, p := range profiles {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					b, err := p.Build(layout.Options{Diagnostics: a.sink})
					if err != nil {
						return err
					}
					results[i] = b
					a.log.Debug("arranged", zap.String("profile", p.Name), zap.Int("passes", b.Panel.Passes()))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, b := range results {
				printArrangement(out, profiles[i], b)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&f.width, "width", 0, "override the panel width")
	cmd.Flags().IntVar(&f.height, "height", 0, "override the panel height")
	cmd.Flags().StringVar(&f.policy, "policy", "", "override the sizing policy (fixed-first, current-size, preferred-size)")
	return cmd
}

func (f arrangeFlags) apply(profiles []config.Profile) error {
	var policy layout.SizingPolicy
	if f.policy != "" {
		var err error
		if policy, err = layout.ParseSizingPolicy(f.policy); err != nil {
			return err
		}
	}
	for i := range profiles {
		if f.width > 0 {
			profiles[i].Width = f.width
		}
		if f.height > 0 {
			profiles[i].Height = f.height
		}
		if f.policy != "" {
			profiles[i].Policy = policy
		}
	}
	return nil
}

func printArrangement(w io.Writer, p config.Profile, b *config.Built) {
	size := b.Panel.Size()
	fmt.Fprintf(w, "%s %dx%d %s %s\n", p.Name, size.W, size.H, p.Axis, p.Policy)
	for _, wd := range b.Widgets {
		r := wd.Bounds()
		state := ""
		switch {
		case !wd.Visible():
			state = "  hidden"
		case b.Panel.Floating(wd):
			state = "  -> " + b.Panel.FloatTarget(wd)
		}
		fmt.Fprintf(w, "  %-10s %5d %5d %5d %5d%s\n", wd.Name(), r.X, r.Y, r.W, r.H, state)
	}
	if b.Panel.AutoScroll() {
		ext := b.Panel.ScrollExtent()
		fmt.Fprintf(w, "  scroll extent %dx%d\n", ext.W, ext.H)
	}
}
