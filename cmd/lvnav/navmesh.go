package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/config"
	"github.com/katalvlaran/lvnav/pkg/logger"
)

func NavmeshCmd(s *scenario) *cobra.Command {
	var start, end string
	c := &cobra.Command{
		Use:   "navmesh",
		Short: "smoothed path across the navigation mesh",
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.cfg.Navmesh == nil {
				return fmt.Errorf("%w: no navmesh section in %v", config.ErrInvalidConfig, s.configFile)
			}
			from, err := parsePoint(start)
			if err != nil {
				return err
			}
			to, err := parsePoint(end)
			if err != nil {
				return err
			}
			ng, err := s.cfg.Navmesh.Build()
			if err != nil {
				return err
			}
			logger.Debug("navmesh: %v triangles, %v nodes", len(ng.Mesh().Triangles()), ng.Graph().NodeCount())

			res, err := ng.FindPath(from, to)
			if err != nil {
				return fmt.Errorf("navmesh: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(res.Path) == 0 {
				logger.Warn("no navmesh path from %v to %v", start, end)
				_, _ = fmt.Fprintln(out, "path: none")
				return nil
			}
			if len(res.NodePath) > 0 {
				_, _ = fmt.Fprintf(out, "nodes: %s\n", joinIDs(res.NodePath))
			}
			_, _ = fmt.Fprintf(out, "path: %s\n", joinPoints(res.Path))
			return nil
		},
	}
	c.Flags().StringVar(&start, "start", "0,0", "start point x,y")
	c.Flags().StringVar(&end, "end", "0,0", "end point x,y")
	return c
}
