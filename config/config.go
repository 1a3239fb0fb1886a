package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/katalvlaran/lvnav/pkg/logger"
)

var (
	// ErrConfigPath indicates the config file could not be read.
	ErrConfigPath = errors.New("config: cannot read config file")

	// ErrInvalidConfig indicates a parse or validation failure.
	ErrInvalidConfig = errors.New("config: invalid config")
)

const (
	DefaultLogLevel = "INFO"
	DefaultCellSize = 1.0
)

type Config struct {
	Logger  LoggerConfig   `json:"logger"`
	Graph   *GraphConfig   `json:"graph"`
	Navmesh *NavmeshConfig `json:"navmesh"`
	Grid    *GridConfig    `json:"grid"`
}

type LoggerConfig struct {
	Level        string `json:"level"`
	TrackLine    bool   `json:"trackLine"`
	DisableColor bool   `json:"disableColor"`
}

// GraphConfig describes a free-form weighted graph. Nodes are [x, y];
// connections are [from, to] or [from, to, cost].
type GraphConfig struct {
	Directed    bool        `json:"directed"`
	Nodes       [][]float64 `json:"nodes"`
	Connections [][]float64 `json:"connections"`
}

type NavmeshConfig struct {
	Rect      *RectConfig `json:"rect"`
	Vertices  [][]float64 `json:"vertices"`
	Triangles [][]int     `json:"triangles"`
}

type RectConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Cols   int     `json:"cols"`
	Rows   int     `json:"rows"`
}

// GridConfig describes a terrain grid; walls and mud list cell ids.
type GridConfig struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	CellSize float64 `json:"cellSize"`
	Diagonal bool    `json:"diagonal"`
	Walls    []int   `json:"walls"`
	Mud      []int   `json:"mud"`
}

// Load reads, parses, defaults and validates the scenario at filePath.
func Load(filePath string) (*Config, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigPath, err)
	}

	return Parse(fileData)
}

// Parse is Load without the file system.
func Parse(data []byte) (*Config, error) {
	// 1) Strip a UTF-8 BOM
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	// 2) Decode
	cfg := new(Config)
	if err := hjson.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 3) Defaults, then validation
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoggerConfig converts the logger section into a logger.Config.
// The level must already be valid.
func (c *Config) LoggerConfig(appName string) *logger.Config {
	level, _ := logger.ParseLogLevel(c.Logger.Level)

	return &logger.Config{
		AppName:      appName,
		Level:        level,
		TrackLine:    c.Logger.TrackLine,
		DisableColor: c.Logger.DisableColor,
	}
}

func (c *Config) applyDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = DefaultLogLevel
	}
	if c.Grid != nil && c.Grid.CellSize == 0 {
		c.Grid.CellSize = DefaultCellSize
	}
}
