package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnav/euler"
	"github.com/katalvlaran/lvnav/pkg/logger"
)

func EulerCmd(s *scenario) *cobra.Command {
	c := &cobra.Command{
		Use:   "euler",
		Short: "classify the graph and print an Euler trail",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.graph()
			if err != nil {
				return err
			}
			path, kind, err := euler.FindPath(g)
			if err != nil {
				return fmt.Errorf("euler: %w", err)
			}
			logger.Info("graph is %v", kind)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "eulerianity: %v\n", kind)
			if len(path) > 0 {
				_, _ = fmt.Fprintf(out, "path: %s\n", joinIDs(path))
			}
			return nil
		},
	}
	return c
}
