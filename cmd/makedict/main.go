// Command makedict builds a double-array trie dictionary from a UniDic
// lex.csv file: one positional input, one positional output, errors on
// stderr, a non-zero exit on failure.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "makedict <input.csv> <output.trie>",
	Short: "Build a double-array trie dictionary from a UniDic lex.csv file",
	Long: `makedict reads a UniDic lex.csv file and writes a serialized
double-array trie mapping each surface form to the byte locations of the
source rows it appeared in.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0], args[1])
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "makedict:", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	elements, err := loadLexCSV(in, progressEvery(10000))
	if err != nil {
		return err
	}

	storage, err := buildTrie(elements)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return serializeTrie(storage, out)
}

func progressEvery(n int) func(rows int) {
	return func(rows int) {
		if rows%n == 0 {
			fmt.Fprintf(os.Stderr, "makedict: %d rows processed\n", rows)
		}
	}
}
