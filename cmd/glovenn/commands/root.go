package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordvec/glovenn"
)

var (
	topK         int
	excludeQuery bool
	useMean      bool
	verbose      bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glovenn <vectors-file> <word|+|-> [more ...]",
		Short: "Find the nearest neighbor of a word-vector expression",
		Long: `Load GloVe word vectors from a text file, combine the vectors for the
given words, and report the word whose vector is closest by cosine
similarity.

The words form an expression: "+" and "-" set the sign applied to the
words that follow, so analogies work directly.

Examples:
  glovenn glove.6B.50d.txt grimace shake
  glovenn glove.6B.50d.txt king - man + woman
  glovenn --top 10 glove.6B.50d.txt berlin
  glovenn --mean glove.6B.50d.txt cat dog`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runNearest,
	}

	cmd.Flags().IntVar(&topK, "top", 1, "Number of neighbors to report")
	cmd.Flags().BoolVar(&excludeQuery, "exclude-query", true, "Exclude the query words from candidacy")
	cmd.Flags().BoolVar(&useMean, "mean", false, "Average the word vectors instead of summing them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// Execute runs the CLI.
func Execute(version string) error {
	cmd := NewRootCmd()
	cmd.Version = version
	return cmd.Execute()
}

func runNearest(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)

	path := args[0]
	tokens := args[1:]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening vectors file: %w", err)
	}
	defer f.Close()

	start := time.Now()
	embeds, err := glovenn.ReadTextVectors(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("reading vectors from %s: %w", path, err)
	}
	logger.Debug("vectors loaded",
		"path", path,
		"words", embeds.Size(),
		"dims", embeds.Dims(),
		"duration", time.Since(start))

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d word vectors of dimension %d from %s\n",
		embeds.Size(), embeds.Dims(), path)

	query, err := queryVector(embeds, tokens)
	if err != nil {
		return fmt.Errorf("computing query vector: %w", err)
	}

	skips := make(map[string]struct{})
	if excludeQuery {
		for _, word := range queryWords(tokens) {
			skips[word] = struct{}{}
		}
	}

	if topK == 1 {
		match, err := embeds.Nearest(query, skips)
		if err != nil {
			return fmt.Errorf("searching neighbors: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Nearest neighbor: %s (similarity: %.4f)\n",
			match.Word, match.Similarity)
		return nil
	}

	matches, err := embeds.NearestK(query, topK, skips)
	if err != nil {
		return fmt.Errorf("searching neighbors: %w", err)
	}

	for _, match := range matches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %.4f\n", match.Word, match.Similarity)
	}

	return nil
}

func queryVector(embeds *glovenn.Embeddings, tokens []string) (glovenn.Vector, error) {
	if !useMean {
		return embeds.Eval(tokens)
	}

	words := queryWords(tokens)
	if len(words) != len(tokens) {
		return nil, fmt.Errorf("--mean cannot be combined with + or - operators")
	}

	return embeds.Mean(words)
}

// queryWords returns the tokens that are words, dropping operators.
func queryWords(tokens []string) []string {
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "+" || token == "-" {
			continue
		}
		words = append(words, token)
	}

	return words
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
