package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

var (
	readPages    string
	readOffset   int
	readMaxChars int
	readJSON     bool
	readRaw      bool
)

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Print extracted document text",
	Long: `Extracts and prints the document's text.

By default the whole document is printed under a '# filename' heading.
Use --pages to select pages ("3", "1,3", "5-7", "all") or --offset and
--max-chars to print a single window of the text. Page units follow the
document family: PDF pages, Excel sheets, PowerPoint slides. Word page
numbers are estimates.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVarP(&readPages, "pages", "p", "", `page selection, e.g. "3", "1,3", "5-7", "all"`)
	readCmd.Flags().IntVar(&readOffset, "offset", 0, "character offset to start the window at")
	readCmd.Flags().IntVar(&readMaxChars, "max-chars", 10000, "maximum characters in the window")
	readCmd.Flags().BoolVar(&readJSON, "json", false, "output as JSON")
	readCmd.Flags().BoolVar(&readRaw, "raw", false, "print the text only, without the filename heading")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	path := args[0]
	ctx := context.Background()

	windowed := cmd.Flags().Changed("offset") || cmd.Flags().Changed("max-chars")
	if readPages != "" && windowed {
		return errors.New("--pages cannot be combined with --offset or --max-chars")
	}

	if windowed {
		window, err := readerService.ReadRange(ctx, path, readOffset, readMaxChars)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		return outputWindow(cmd, window)
	}

	var result *domain.ReadResult
	var err error
	if readPages != "" {
		result, err = readerService.ReadPages(ctx, path, readPages)
	} else {
		result, err = readerService.Read(ctx, path)
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	if readJSON {
		return printJSON(cmd, result)
	}
	if readRaw {
		cmd.Println(result.Content)
		return nil
	}

	cmd.Printf("# %s\n\n%s\n", filepath.Base(result.Path), result.Content)
	return nil
}

func outputWindow(cmd *cobra.Command, window *domain.PageResult) error {
	if readJSON {
		return printJSON(cmd, window)
	}

	cmd.Println(window.Content)
	if !readRaw && window.HasMore {
		cmd.Printf("\n(%d of %d characters; continue with --offset %d)\n",
			window.ReturnedLength, window.TotalLength, window.Offset+window.ReturnedLength)
	}
	return nil
}
