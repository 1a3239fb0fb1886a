// Command lvnav runs the lvnav pathfinding packages against an HJSON
// scenario file and prints the results.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvnav/pkg/logger"
)

var VERSION = "UNKNOWN"

func main() {
	err := RootCmd().Execute()
	if logger.LOG != nil {
		if err != nil {
			logger.Error("lvnav: %v", err)
		}
		logger.CloseLogger()
	} else if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "lvnav:", err)
	}
	if err != nil {
		os.Exit(1)
	}
}
