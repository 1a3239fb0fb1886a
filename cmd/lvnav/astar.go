package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/astar"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/dijkstra"
	"github.com/katalvlaran/lvnav/pkg/logger"
)

func AstarCmd(s *scenario) *cobra.Command {
	var (
		from, to  int
		heuristic string
		compare   bool
	)
	c := &cobra.Command{
		Use:   "astar",
		Short: "cheapest path between two graph nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.graph()
			if err != nil {
				return err
			}
			h, err := astar.HeuristicByName(heuristic)
			if err != nil {
				return err
			}
			path, err := astar.FindPath(g, core.NodeID(from), core.NodeID(to), astar.WithHeuristic(h))
			if err != nil {
				return fmt.Errorf("astar: %d→%d: %w", from, to, err)
			}
			out := cmd.OutOrStdout()
			if len(path) == 0 {
				logger.Warn("no path from %v to %v", from, to)
				_, _ = fmt.Fprintln(out, "path: none")
				return nil
			}
			cost, err := g.PathCost(path)
			if err != nil {
				return err
			}
			logger.Info("astar %v→%v: %v nodes", from, to, len(path))
			_, _ = fmt.Fprintf(out, "path: %s\ncost: %.3f\n", joinIDs(path), cost)

			if compare {
				dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(core.NodeID(from)))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "dijkstra: %.3f\n", dist[core.NodeID(to)])
			}
			return nil
		},
	}
	c.Flags().IntVar(&from, "from", 0, "start node id")
	c.Flags().IntVar(&to, "to", 0, "goal node id")
	c.Flags().StringVar(&heuristic, "heuristic", "chebyshev", fmt.Sprintf("one of %v", astar.HeuristicNames()))
	c.Flags().BoolVar(&compare, "compare", false, "also print the Dijkstra distance")
	return c
}
