// Package config provides Viper-based configuration loading for the
// transition extractor.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/warpgraph/internal/graph"
)

// CorpusConfig locates the map source corpus.
type CorpusConfig struct {
	// ConstantsFile is the path to the map constants definition file.
	ConstantsFile string `mapstructure:"constants_file"`
	// ObjectsDir is the directory of per-map object files (warp events).
	ObjectsDir string `mapstructure:"objects_dir"`
	// HeadersDir is the directory of per-map header files (connections).
	HeadersDir string `mapstructure:"headers_dir"`
}

// OutputConfig holds destination paths for the run artifacts.
type OutputConfig struct {
	// TransitionsFile is the path for the transition graph JSON artifact.
	TransitionsFile string `mapstructure:"transitions_file"`
	// MapInfoFile is the path for the map id/dimension JSON artifact.
	MapInfoFile string `mapstructure:"map_info_file"`
	// ReportFile is the path for the run report YAML. Empty disables it.
	ReportFile string `mapstructure:"report_file"`
}

// GraphConfig holds transition graph build settings.
type GraphConfig struct {
	// OverwritePolicy decides the winner when a map pair is reachable both
	// by warp and by overworld connection: "last-write-wins" or
	// "keep-existing".
	OverwritePolicy string `mapstructure:"overwrite_policy"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Corpus  CorpusConfig  `mapstructure:"corpus"`
	Output  OutputConfig  `mapstructure:"output"`
	Graph   GraphConfig   `mapstructure:"graph"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateCorpus(c.Corpus); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOutput(c.Output); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGraph(c.Graph); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateCorpus(c CorpusConfig) error {
	var errs []string
	if c.ConstantsFile == "" {
		errs = append(errs, "corpus.constants_file must not be empty")
	}
	if c.ObjectsDir == "" {
		errs = append(errs, "corpus.objects_dir must not be empty")
	}
	if c.HeadersDir == "" {
		errs = append(errs, "corpus.headers_dir must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	var errs []string
	if o.TransitionsFile == "" {
		errs = append(errs, "output.transitions_file must not be empty")
	}
	if o.MapInfoFile == "" {
		errs = append(errs, "output.map_info_file must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGraph(g GraphConfig) error {
	// graph.ParsePolicy owns the value set; validating against it here
	// keeps the two from drifting.
	if _, err := graph.ParsePolicy(g.OverwritePolicy); err != nil {
		return fmt.Errorf("graph.overwrite_policy: %w", err)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file read and
// uses defaults plus environment overrides only.
//
// Precondition: path, when non-empty, must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with WARPGRAPH_ prefix
	v.SetEnvPrefix("WARPGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("corpus.constants_file", "pokered/constants/map_constants.asm")
	v.SetDefault("corpus.objects_dir", "pokered/data/maps/objects")
	v.SetDefault("corpus.headers_dir", "pokered/data/maps/headers")

	v.SetDefault("output.transitions_file", "transitions_weak.json")
	v.SetDefault("output.map_info_file", "map_info.json")
	v.SetDefault("output.report_file", "")

	v.SetDefault("graph.overwrite_policy", "last-write-wins")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
