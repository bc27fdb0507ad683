package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <scrambles-file> <memo-file>",
	Short: "Match written memos against 3x3 scrambles",
	Long: `Execute each memo of memo-file on every scramble of scrambles-file and
report the scramble it gets closest to solving.

The scrambles file holds one scramble per line. Memos are separated by
blank lines; each memo has "e" lines for edge pairs and "c" lines for
corner pairs, for example:

  e AB CD
  c EF GH

The score counts the edge and corner stickers that end up solved, in
their home slot and correctly oriented.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// readLines returns the non-empty trimmed lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	scrambles, err := readLines(args[0])
	if err != nil {
		return err
	}
	memo, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}
	debugf("%d scrambles\n", len(scrambles))

	results, err := bld.Analyze(scrambles, strings.ReplaceAll(string(memo), "\r\n", "\n"), s.BLD)
	if err != nil {
		return err
	}
	fmt.Print(bld.FormatAnalysis(results))
	return nil
}
