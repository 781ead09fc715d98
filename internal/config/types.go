package config

// SolverConfig controls the solver facade.
type SolverConfig struct {
	// CacheSize is the number of solved grids kept in memory. Zero disables
	// the cache.
	CacheSize int `yaml:"cache_size"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// RenderConfig controls the render command.
type RenderConfig struct {
	InsideMarker  string `yaml:"inside_marker"`
	OutsideMarker string `yaml:"outside_marker"`
}

// Config represents the .pipemaze/config.yaml file.
type Config struct {
	Solver  SolverConfig  `yaml:"solver"`
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// Environment variables that override config.yaml.
const (
	EnvLogLevel      = "PIPEMAZE_LOG_LEVEL"
	EnvCacheSize     = "PIPEMAZE_CACHE_SIZE"
	EnvInsideMarker  = "PIPEMAZE_INSIDE_MARKER"
	EnvOutsideMarker = "PIPEMAZE_OUTSIDE_MARKER"
)
