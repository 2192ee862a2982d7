package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

func newValidateCommand(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build mazes with consecutive seeds and check each is a spanning tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			g, err := grid.New(a.cfg.Width, a.cfg.Height)
			if err != nil {
				return err
			}
			first := a.cfg.ResolveSeed()
			for i := 0; i < count; i++ {
				seed := first + int64(i)
				m, err := maze.Build(g, maze.WithSeed(seed), maze.WithMaxWeight(a.cfg.MaxWeight))
				if err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				if err = m.Validate(); err != nil {
					return fmt.Errorf("seed %d: %w", seed, err)
				}
				a.log.WithField("seed", seed).Debug("maze valid")
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d mazes of %dx%d valid (seeds %d..%d)\n",
				count, g.Width, g.Height, first, first+int64(count)-1)
			return err
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of mazes to check")
	return cmd
}
