// Package extract orchestrates the transition extraction pipeline: load the
// corpus through a Source, resolve it into the transition graph, and write
// the run artifacts.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/warpgraph/internal/graph"
)

// Report summarizes a completed extraction run. It is returned to the
// caller and, when configured, serialized as a YAML artifact alongside the
// JSON outputs.
type Report struct {
	// RunID uniquely identifies this run in logs and reports.
	RunID string `yaml:"run_id"`
	// Maps is the number of constants parsed, sentinel included.
	Maps int `yaml:"maps"`
	// WarpMaps is the number of maps with at least one warp event.
	WarpMaps int `yaml:"warp_maps"`
	// ConnectionMaps is the number of maps with at least one connection.
	ConnectionMaps int `yaml:"connection_maps"`
	// WarpTransitions is the number of directed warp keys after the warp
	// pass.
	WarpTransitions int `yaml:"warp_transitions"`
	// ConnectionWrites counts directed key writes by the connection pass,
	// one per qualifying boundary coordinate per direction. It overstates
	// distinct overworld pairs.
	ConnectionWrites int `yaml:"connection_writes"`
	// Transitions is the total number of directed keys in the final graph.
	Transitions int `yaml:"transitions"`
	// Warnings is the number of records skipped across loading and
	// resolution.
	Warnings int `yaml:"warnings"`
	// Duration is the wall-clock run time.
	Duration string `yaml:"duration"`
}

// Extractor runs the pipeline end to end over a Source.
type Extractor struct {
	source Source
	policy graph.Policy
	logger *zap.Logger
}

// New constructs an Extractor.
//
// Precondition: source and logger must be non-nil.
func New(source Source, policy graph.Policy, logger *zap.Logger) *Extractor {
	return &Extractor{source: source, policy: policy, logger: logger}
}

// Run loads the corpus, builds the transition graph, and writes the
// transitions and map info JSON artifacts. When reportPath is non-empty the
// run report is additionally written there as YAML.
//
// Postcondition: both JSON artifacts are written with sorted keys, or a
// non-nil error is returned; recoverable record failures only increment the
// report's warning count.
func (e *Extractor) Run(transitionsPath, mapInfoPath, reportPath string) (*Report, error) {
	overall := time.Now()
	runID := uuid.NewString()
	logger := e.logger.With(zap.String("run_id", runID))

	t0 := time.Now()
	corpus, warnings, err := e.source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}
	logger.Info("corpus loaded",
		zap.Int("maps", len(corpus.IDs)),
		zap.Int("warp_maps", len(corpus.Warps)),
		zap.Int("connection_maps", len(corpus.Connections)),
		zap.Duration("elapsed", time.Since(t0)))

	t1 := time.Now()
	builder := graph.NewBuilder(e.policy, logger)
	g, stats := builder.Build(corpus)
	logger.Info("transition graph built",
		zap.Int("transitions", g.Len()),
		zap.Int("warp_transitions", stats.WarpTransitions),
		zap.Int("connection_writes", stats.ConnectionWrites),
		zap.Duration("elapsed", time.Since(t1)))

	transitionsJSON, err := graph.MarshalTransitions(g)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(transitionsPath, transitionsJSON); err != nil {
		return nil, err
	}

	mapInfoJSON, err := graph.MarshalMapInfo(corpus)
	if err != nil {
		return nil, err
	}
	if err := writeArtifact(mapInfoPath, mapInfoJSON); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:            runID,
		Maps:             len(corpus.IDs),
		WarpMaps:         len(corpus.Warps),
		ConnectionMaps:   len(corpus.Connections),
		WarpTransitions:  stats.WarpTransitions,
		ConnectionWrites: stats.ConnectionWrites,
		Transitions:      g.Len(),
		Warnings:         len(warnings) + stats.Warnings,
		Duration:         time.Since(overall).Round(time.Millisecond).String(),
	}

	if reportPath != "" {
		data, err := yaml.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("serialising report: %w", err)
		}
		if err := writeArtifact(reportPath, data); err != nil {
			return nil, err
		}
	}

	logger.Info("extraction complete",
		zap.Int("transitions", report.Transitions),
		zap.Int("warnings", report.Warnings),
		zap.String("duration", report.Duration))

	return report, nil
}

// writeArtifact writes data to path with a trailing newline, creating
// parent directories as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return nil
}
