// Skimma extracts text from office documents and serves it whole, paged,
// windowed or streamed, over a CLI, a terminal pager and an MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/skimma-cli/internal/adapters/driven/cache"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driven/command"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driven/paths"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/skimma-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/skimma-cli/internal/core/ports/driven"
	"github.com/custodia-labs/skimma-cli/internal/core/services"
	"github.com/custodia-labs/skimma-cli/internal/extractors"
	"github.com/custodia-labs/skimma-cli/internal/extractors/docconv"
	"github.com/custodia-labs/skimma-cli/internal/extractors/docx"
	"github.com/custodia-labs/skimma-cli/internal/extractors/pdf"
	"github.com/custodia-labs/skimma-cli/internal/extractors/pptx"
	"github.com/custodia-labs/skimma-cli/internal/extractors/xlsx"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger.SetVerbose(os.Getenv("SKIMMA_DEBUG") != "")

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	runner := command.New(cfg.GetFloat("extract.command_rate"), 0)

	// Registration order is cosmetic; the registry orders the ladder by
	// priority.
	registry := extractors.NewRegistry(cfg.GetStringSlice("extract.disabled_backends"))
	registry.Register(pdf.NewFitz())
	registry.Register(pdf.NewPoppler(runner))
	registry.Register(xlsx.New())
	registry.Register(docx.New())
	registry.Register(pptx.New())
	registry.Register(docconv.New())
	registry.Register(pdf.NewPDFText())

	var store driven.ExtractionCache = cache.New(
		cfg.GetInt("cache.max_entries"),
		int64(cfg.GetInt("cache.max_bytes")),
	)
	if cfg.GetBool("cache.watch") {
		watched, err := watch.New(store)
		if err != nil {
			logger.Warn("file watching unavailable: %v", err)
		} else {
			defer watched.Close()
			store = watched
		}
	}

	resolver := paths.New(cfg.GetString("project.root"))
	selector := services.NewBackendSelector(registry)
	chunker := services.NewStreamingChunker()

	cli.SetServices(
		services.NewReaderService(resolver, store, selector, chunker),
		services.NewBackendService(registry),
		services.NewCacheAdminService(store),
	)

	return cli.Execute()
}
