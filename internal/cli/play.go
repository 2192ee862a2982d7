package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/grid"
)

func newPlayCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		moves []string
		paths bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Walk the maze by hand with a list of moves and replay the route",
		Example: "  lvmaze play --width 3 --height 1 --moves right,right\n" +
			"  lvmaze play --moves r,d,d,l",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dirs := make([]grid.Direction, 0, len(moves))
			for _, m := range moves {
				d, err := grid.ParseDirection(m)
				if err != nil {
					return fmt.Errorf("--moves: %w", err)
				}
				dirs = append(dirs, d)
			}

			s, err := a.newSession()
			if err != nil {
				return err
			}
			s.EnterManualMode()
			for i, d := range dirs {
				if !s.Move(d) {
					a.log.WithField("move", i+1).WithField("direction", d).Debug("move blocked")
				}
			}
			if !s.Won() {
				a.log.WithField("position", s.Player().Position()).Warn("goal not reached")
			}
			return a.finish(ctx, cmd, s, paths)
		},
	}
	cmd.Flags().StringSliceVar(&moves, "moves", nil, "comma separated moves: up, down, left, right (or u, d, l, r)")
	cmd.Flags().BoolVar(&paths, "paths", false, "include the replayed route in the report")
	return cmd
}
