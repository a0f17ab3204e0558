package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show document size and page count",
	Long: `Probes a document without printing its text: existence, document
family, on-disk size, extracted character count and page count. Probing
extracts the text once, so a following read is served from cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	path := args[0]
	ctx := context.Background()

	info, err := readerService.Probe(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to probe document: %w", err)
	}

	if infoJSON {
		return printJSON(cmd, info)
	}

	if !info.FileExists {
		cmd.Printf("File not found: %s\n", path)
		return nil
	}

	cmd.Printf("File:  %s\n", info.Path)
	cmd.Printf("Kind:  %s\n", info.Kind)
	cmd.Printf("Size:  %d bytes\n", info.SizeBytes)
	cmd.Printf("Text:  %d characters\n", info.TotalLength)
	cmd.Printf("Units: %d %ss\n", info.TotalPages, info.Kind.UnitName())
	cmd.Println()
	cmd.Println(info.Description)
	return nil
}
