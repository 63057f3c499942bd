// Package main provides the rtrav CLI, a small demo harness around the
// graph-rag-go traversal engine: load a JSON corpus and a YAML edge
// schema, run a query, print the resulting node sequence.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sicarius97/graph-rag-go/pkg/radapter"
	"github.com/sicarius97/graph-rag-go/pkg/rconfig"
	"github.com/sicarius97/graph-rag-go/pkg/rembed"
	"github.com/sicarius97/graph-rag-go/pkg/rlog"
	"github.com/sicarius97/graph-rag-go/pkg/rnode"
	"github.com/sicarius97/graph-rag-go/pkg/rstrategy"
	"github.com/sicarius97/graph-rag-go/pkg/rtraverse"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "rtrav",
		Short: "graph-rag-go demo CLI",
		Long: `rtrav is a demo harness for the graph-rag-go traversal engine:
it loads a JSON document corpus and a YAML edge schema, embeds a query
against an Ollama server, and prints the ranked node sequence a
traversal produces.`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rtrav v%s\n", version)
		},
	})

	queryCmd := &cobra.Command{
		Use:   "query [text]",
		Short: "Run a traversal query against a corpus",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	}
	queryCmd.Flags().String("corpus", "", "path to a JSON document corpus (required)")
	queryCmd.Flags().String("edges", "", "path to a YAML edge schema (required)")
	queryCmd.Flags().String("strategy", "", "path to a YAML strategy file (optional; overrides env defaults)")
	queryCmd.Flags().StringSlice("root-ids", nil, "guaranteed seed document ids")
	queryCmd.Flags().StringToString("filter", nil, "metadata filter applied to every adapter call (key=value)")
	_ = queryCmd.MarkFlagRequired("corpus")
	_ = queryCmd.MarkFlagRequired("edges")
	rootCmd.AddCommand(queryCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// corpusDoc is the on-disk JSON shape of one corpus entry.
type corpusDoc struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Embedding []float32      `json:"embedding"`
	Metadata  map[string]any `json:"metadata"`
	MimeType  string         `json:"mimeType"`
}

func loadCorpus(path string, adapter *radapter.MemoryAdapter) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var docs []corpusDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return 0, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	ctx := context.Background()
	for _, d := range docs {
		content := rnode.NewContent(d.ID, d.Content, d.Embedding, d.Metadata, d.MimeType)
		if err := content.Validate(); err != nil {
			return 0, fmt.Errorf("corpus document %q: %w", d.ID, err)
		}
		if err := adapter.Add(ctx, content); err != nil {
			return 0, fmt.Errorf("load document %q: %w", d.ID, err)
		}
	}
	return len(docs), nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	query := args[0]
	corpusPath, _ := cmd.Flags().GetString("corpus")
	edgesPath, _ := cmd.Flags().GetString("edges")
	strategyPath, _ := cmd.Flags().GetString("strategy")
	rootIDs, _ := cmd.Flags().GetStringSlice("root-ids")
	filterFlags, _ := cmd.Flags().GetStringToString("filter")

	cfg := rconfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	rlog.SetLevel(levelFromString(cfg.LogLevel))

	edgeSpecs, err := rconfig.LoadEdgeSchema(edgesPath)
	if err != nil {
		return err
	}

	strategy, err := resolveStrategy(strategyPath, cfg)
	if err != nil {
		return err
	}

	embedder := rembed.NewOllamaEmbedder(rembed.OllamaConfig{
		APIURL:  cfg.OllamaAPIURL,
		APIPath: "/api/embeddings",
		Model:   cfg.OllamaModel,
		Timeout: 30 * time.Second,
	})
	adapter := radapter.NewMemoryAdapter(radapter.NewMapContentStore(), embedder)

	n, err := loadCorpus(corpusPath, adapter)
	if err != nil {
		return err
	}
	rlog.Info("loaded %d documents from %s", n, corpusPath)

	filter := radapter.Filter{}
	for k, v := range filterFlags {
		filter[k] = v
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	nodes, err := rtraverse.Traverse(ctx, query, rtraverse.Options{
		Edges:          edgeSpecs,
		Strategy:       strategy,
		Store:          adapter,
		MetadataFilter: filter,
		InitialRootIDs: rootIDs,
		Warn:           func(msg string) { rlog.Warn("%s", msg) },
	})
	if err != nil {
		return fmt.Errorf("traversal failed: %w", err)
	}

	printNodes(nodes)
	return nil
}

func resolveStrategy(strategyPath string, cfg *rconfig.EngineConfig) (rstrategy.Strategy, error) {
	base := rstrategy.Config{
		SelectK:     cfg.SelectK,
		StartK:      cfg.StartK,
		AdjacentK:   cfg.AdjacentK,
		MaxDepth:    cfg.MaxDepth,
		MaxTraverse: cfg.MaxTraverse,
	}

	if strategyPath == "" {
		return rstrategy.NewEager(base.SelectK).WithConfig(base), nil
	}

	sf, err := rconfig.LoadStrategyFile(strategyPath)
	if err != nil {
		return nil, err
	}

	switch sf.Kind {
	case "scored":
		scorer := func(n rnode.Node) float64 { return n.SimilarityScore }
		return rstrategy.NewScored(sf.Config.SelectK, scorer, nil).WithConfig(sf.Config), nil
	case "eager", "":
		return rstrategy.NewEager(sf.Config.SelectK).WithConfig(sf.Config), nil
	default:
		return nil, fmt.Errorf("unknown strategy kind %q", sf.Kind)
	}
}

func printNodes(nodes []rnode.Node) {
	for i, n := range nodes {
		fmt.Printf("%d. %s (depth=%d, similarity=%.4f)\n", i+1, n.ID, n.Depth, n.SimilarityScore)
		fmt.Printf("   %s\n", n.Content)
	}
	if len(nodes) == 0 {
		fmt.Println("(no results)")
	}
}

func levelFromString(s string) rlog.Level {
	switch s {
	case "debug":
		return rlog.LevelDebug
	case "warn":
		return rlog.LevelWarn
	case "error":
		return rlog.LevelError
	default:
		return rlog.LevelInfo
	}
}
