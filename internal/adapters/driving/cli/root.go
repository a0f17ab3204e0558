// Package cli implements the skimma command-line interface. Commands talk
// to the core through the driving ports; the composition root in
// cmd/skimma wires the services and hands them in via SetServices.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/core/ports/driving"
	"github.com/custodia-labs/skimma-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Populated via SetServices before Execute;
// tests inject mocks directly.
var (
	readerService  driving.DocumentReader
	backendService driving.BackendCatalog
	cacheService   driving.CacheAdmin
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "skimma",
	Short: "Read office documents as plain text",
	Long: `Skimma extracts text from PDF, Word, Excel and PowerPoint files and
serves it in slices: whole documents, page selections, offset windows or
chunk streams. Extraction runs once per file per process; every read shape
afterwards is served from the in-memory cache.

Run 'skimma mcp serve' to expose the same operations to AI assistants over
the Model Context Protocol.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose || os.Getenv("SKIMMA_DEBUG") != "")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging to stderr")
}

// SetServices hands the wired services to the commands.
func SetServices(reader driving.DocumentReader, backends driving.BackendCatalog, cacheAdmin driving.CacheAdmin) {
	readerService = reader
	backendService = backends
	cacheService = cacheAdmin
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
