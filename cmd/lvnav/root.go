package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/config"
	"github.com/katalvlaran/lvnav/core"
	"github.com/katalvlaran/lvnav/pkg/logger"
)

// scenario is the loaded config shared by every sub-command.
type scenario struct {
	configFile string
	logLevel   string
	cfg        *config.Config
}

func RootCmd() *cobra.Command {
	s := new(scenario)
	c := &cobra.Command{
		Use:           "lvnav",
		Short:         "graph pathfinding and navigation fields",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
	}
	c.PersistentFlags().StringVar(&s.configFile, "config", "scenario.hjson", "scenario file")
	c.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "override logger.level from the scenario")
	c.AddCommand(
		AstarCmd(s),
		EulerCmd(s),
		NavmeshCmd(s),
		FlowfieldCmd(s),
		RegionsCmd(s),
	)
	return c
}

// load reads the scenario and starts the logger.
func (s *scenario) load(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configFile)
	if err != nil {
		return err
	}
	if s.logLevel != "" {
		cfg.Logger.Level = s.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	s.cfg = cfg

	logConf := cfg.LoggerConfig("lvnav")
	logConf.Output = cmd.ErrOrStderr()
	logger.InitLogger(logConf)
	logger.Debug("scenario loaded: %v", s.configFile)
	return nil
}

// graph builds the graph section or reports it missing.
func (s *scenario) graph() (*core.Graph, error) {
	if s.cfg.Graph == nil {
		return nil, fmt.Errorf("%w: no graph section in %v", config.ErrInvalidConfig, s.configFile)
	}
	return s.cfg.Graph.Build()
}

// parsePoint reads "x,y".
func parsePoint(v string) (orb.Point, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("point %q: want x,y", v)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", v, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("point %q: %w", v, err)
	}
	return orb.Point{x, y}, nil
}

func joinIDs(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " ")
}

func joinPoints(points []orb.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("(%g,%g)", p.X(), p.Y())
	}
	return strings.Join(parts, " ")
}
