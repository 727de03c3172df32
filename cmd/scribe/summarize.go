package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
)

func newSummarizeCmd(configPath *string) *cobra.Command {
	var title string
	var transcript bool

	cmd := &cobra.Command{
		Use:   "summarize FILE|-",
		Short: "Summarize a text file (or stdin) and print the note as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if title == "" && args[0] != "-" {
				base := filepath.Base(args[0])
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}

			a, err := loadApp(*configPath, false)
			if err != nil {
				return err
			}

			req := summarizer.Request{Text: text, Title: title, Kind: summarizer.KindText}
			if transcript {
				req.Kind = summarizer.KindTranscript
			}
			result, err := a.summarizer().Summarize(cmd.Context(), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title (defaults to the file name)")
	cmd.Flags().BoolVar(&transcript, "transcript", false, "treat the input as a voice memo transcript")
	return cmd
}

func readInput(stdin io.Reader, arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
