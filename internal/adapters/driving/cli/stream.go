package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/skimma-cli/internal/core/domain"
)

var (
	streamChunkSize        int
	streamNoWordBoundaries bool
	streamJSON             bool
)

var streamCmd = &cobra.Command{
	Use:   "stream [file]",
	Short: "Stream document text in chunks",
	Long: `Streams the document's text chunk by chunk until the end.

Chunks cut at word boundaries by default, so no chunk splits a word in
half; concatenating every chunk always reproduces the document exactly.
With --json each chunk is printed as one JSON object per line, including
its session position and progress.`,
	Args: cobra.ExactArgs(1),
	RunE: runStream,
}

func init() {
	streamCmd.Flags().IntVar(&streamChunkSize, "chunk-size", 10000, "maximum characters per chunk")
	streamCmd.Flags().BoolVar(&streamNoWordBoundaries, "no-word-boundaries", false, "cut chunks at exact character counts")
	streamCmd.Flags().BoolVar(&streamJSON, "json", false, "output one JSON object per chunk")
	rootCmd.AddCommand(streamCmd)
}

func runStream(cmd *cobra.Command, args []string) error {
	if readerService == nil {
		return errors.New("reader service not configured")
	}

	path := args[0]
	ctx := context.Background()

	session := domain.NewStreamSession(uuid.New().String(), path, streamChunkSize, !streamNoWordBoundaries)

	for {
		chunk, err := readerService.NextChunk(ctx, session)
		if err != nil {
			return fmt.Errorf("failed to stream document: %w", err)
		}

		if streamJSON {
			data, err := json.Marshal(chunk)
			if err != nil {
				return fmt.Errorf("failed to marshal chunk: %w", err)
			}
			cmd.Println(string(data))
		} else {
			cmd.Print(chunk.Content)
		}

		if chunk.Complete {
			break
		}
	}

	if !streamJSON {
		cmd.Println()
	}
	return nil
}
