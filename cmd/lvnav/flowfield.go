package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/config"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/flowfield"
	"github.com/katalvlaran/lvnav/gridgraph"
	"github.com/katalvlaran/lvnav/pkg/logger"
)

func FlowfieldCmd(s *scenario) *cobra.Command {
	var (
		dest, from int
		penalty    int
		walls, mud []int
	)
	c := &cobra.Command{
		Use:   "flowfield",
		Short: "heatmap and descent toward a grid destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := s.grid()
			if err != nil {
				return err
			}
			for _, id := range walls {
				if err = grid.SetWall(core.NodeID(id), true); err != nil {
					return fmt.Errorf("flowfield: --wall %d: %w", id, err)
				}
			}
			for _, id := range mud {
				if err = grid.SetTerrain(core.NodeID(id), gridgraph.Mud); err != nil {
					return fmt.Errorf("flowfield: --mud %d: %w", id, err)
				}
			}

			cache := flowfield.NewCache(grid, flowfield.WithDifficultPenalty(penalty))
			field, _, err := cache.Get(core.NodeID(dest))
			if err != nil {
				return fmt.Errorf("flowfield: %w", err)
			}
			logger.Info("flow field toward %v on %vx%v grid (version %v)", dest, grid.Cols(), grid.Rows(), grid.Version())

			out := cmd.OutOrStdout()
			writeHeatmap(out, grid, field.Heatmap)
			if from >= 0 {
				_, _ = fmt.Fprintf(out, "descent: %s\n", joinIDs(field.Descend(core.NodeID(from), grid.CellCount())))
			}
			return nil
		},
	}
	c.Flags().IntVar(&dest, "dest", 0, "destination cell id")
	c.Flags().IntVar(&from, "from", -1, "print the descent from this cell")
	c.Flags().IntVar(&penalty, "penalty", int(gridgraph.Mud), "extra cost of mud cells")
	c.Flags().IntSliceVar(&walls, "wall", nil, "extra wall cell ids")
	c.Flags().IntSliceVar(&mud, "mud", nil, "extra mud cell ids")
	return c
}

func RegionsCmd(s *scenario) *cobra.Command {
	c := &cobra.Command{
		Use:   "regions",
		Short: "open grid regions and the cheapest breach joining the first two",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := s.grid()
			if err != nil {
				return err
			}
			regions := grid.Regions()
			out := cmd.OutOrStdout()
			for i, r := range regions {
				_, _ = fmt.Fprintf(out, "region %d: %s\n", i, joinIDs(r))
			}
			if len(regions) < 2 {
				return nil
			}
			path, n, err := grid.BreachPath(0, 1)
			if err != nil {
				return fmt.Errorf("regions: %w", err)
			}
			_, _ = fmt.Fprintf(out, "breach: %s\nwalls: %d\n", joinIDs(path), n)
			return nil
		},
	}
	return c
}

// grid builds the grid section or reports it missing.
func (s *scenario) grid() (*gridgraph.GridGraph, error) {
	if s.cfg.Grid == nil {
		return nil, fmt.Errorf("%w: no grid section in %v", config.ErrInvalidConfig, s.configFile)
	}
	return s.cfg.Grid.Build()
}

// writeHeatmap prints one grid row per line; walls print as #.
func writeHeatmap(w io.Writer, grid *gridgraph.GridGraph, heat flowfield.Heatmap) {
	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		sb.Reset()
		for col := 0; col < grid.Cols(); col++ {
			id := grid.Index(col, row)
			if grid.IsWall(id) {
				sb.WriteString("   #")
				continue
			}
			fmt.Fprintf(&sb, "%4d", heat[id])
		}
		_, _ = fmt.Fprintln(w, sb.String())
	}
}
