package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmaze/report"
	"github.com/katalvlaran/lvmaze/session"
)

func newSolveCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		paths        bool
		breadthFirst bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a maze, run both searches to completion and print a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			arm := s.ArmDepthFirst
			if breadthFirst {
				arm = s.ArmBreadthFirst
			}
			if err = arm(); err != nil {
				return err
			}
			return a.finish(ctx, cmd, s, paths)
		},
	}
	cmd.Flags().BoolVar(&paths, "paths", false, "include full vertex paths in the report")
	cmd.Flags().BoolVar(&breadthFirst, "bfs", false, "display the breadth-first search instead of depth-first")
	return cmd
}

// finish runs s until idle and writes the report. A tick limit still
// produces a report of the partial run before the error is returned.
func (a *app) finish(ctx context.Context, cmd *cobra.Command, s *session.Session, paths bool) error {
	ticks, runErr := s.Run(ctx, a.cfg.MaxTicks)
	a.log.WithField("ticks", ticks).Info("run finished")
	if err := report.Encode(cmd.OutOrStdout(), a.cfg.Report.Format, report.FromSession(s, paths)); err != nil {
		return err
	}
	return runErr
}
