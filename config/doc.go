// Package config loads lvnav scenario files.
//
// A scenario is an HJSON document with up to four sections:
//
//	{
//	  logger:  { level: "INFO", trackLine: false, disableColor: false }
//	  graph:   { directed: false, nodes: [[0,0],[1,0]], connections: [[0,1]] }
//	  navmesh: { rect: { width: 4, height: 2, cols: 2, rows: 1 } }
//	  grid:    { cols: 4, rows: 3, cellSize: 1, diagonal: false, walls: [5], mud: [2] }
//	}
//
// A connection is [from, to] (cost = Euclidean distance) or [from, to, cost].
// A navmesh is either a rect or explicit vertices + triangles.
//
// Load applies defaults and validates every section that is present; the
// Build methods turn a section into the corresponding runtime structure.
//
// Errors:
//   - ErrConfigPath    if the file cannot be read.
//   - ErrInvalidConfig if the document cannot be parsed or fails validation.
package config
