package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cacheStatsJSON bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the extraction cache",
	Long:  `Show cache counters, drop all cached extractions, or drop a single file's entry.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache counters",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached extraction",
	RunE:  runCacheClear,
}

var cacheInvalidateCmd = &cobra.Command{
	Use:   "invalidate [file]",
	Short: "Drop one file's cached extraction",
	Long:  `Drops the cached extraction for a file so the next read extracts it afresh. Use after a file changed on disk.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheInvalidate,
}

func init() {
	cacheStatsCmd.Flags().BoolVar(&cacheStatsJSON, "json", false, "output as JSON")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheInvalidateCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	ctx := context.Background()

	stats, err := cacheService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get cache stats: %w", err)
	}

	if cacheStatsJSON {
		return printJSON(cmd, stats)
	}

	cmd.Printf("Entries:   %d\n", stats.Entries)
	cmd.Printf("Bytes:     %d\n", stats.TotalBytes)
	cmd.Printf("Hits:      %d\n", stats.Hits)
	cmd.Printf("Misses:    %d\n", stats.Misses)
	cmd.Printf("Evictions: %d\n", stats.Evictions)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	ctx := context.Background()

	n, err := cacheService.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	cmd.Printf("Cache cleared: %d entries dropped.\n", n)
	return nil
}

func runCacheInvalidate(cmd *cobra.Command, args []string) error {
	if cacheService == nil {
		return errors.New("cache service not configured")
	}

	ctx := context.Background()

	// Cache keys are absolute paths.
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	dropped, err := cacheService.Invalidate(ctx, abs)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}

	if dropped {
		cmd.Printf("Cache entry dropped: %s\n", abs)
	} else {
		cmd.Printf("No cache entry for: %s\n", abs)
	}
	return nil
}
