// Package main provides the extract-transitions binary that builds the map
// transition graph and map info artifacts from a pokered source tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/warpgraph/internal/config"
	"github.com/cory-johannsen/warpgraph/internal/extract"
	"github.com/cory-johannsen/warpgraph/internal/extract/pokered"
	"github.com/cory-johannsen/warpgraph/internal/graph"
	"github.com/cory-johannsen/warpgraph/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file; empty = built-in defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync()

	policy, err := graph.ParsePolicy(cfg.Graph.OverwritePolicy)
	if err != nil {
		logger.Fatal("invalid graph configuration", zap.Error(err))
	}

	src := pokered.NewSource(cfg.Corpus.ConstantsFile, cfg.Corpus.ObjectsDir, cfg.Corpus.HeadersDir)
	ext := extract.New(src, policy, logger)

	report, err := ext.Run(cfg.Output.TransitionsFile, cfg.Output.MapInfoFile, cfg.Output.ReportFile)
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("wrote   %s  (%d transitions)\n", cfg.Output.TransitionsFile, report.Transitions)
	fmt.Printf("wrote   %s  (%d maps)\n", cfg.Output.MapInfoFile, report.Maps)
	fmt.Printf("total   %s  (%d warnings)\n", time.Since(start).Round(time.Millisecond), report.Warnings)
}
