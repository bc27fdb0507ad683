package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Target count statistics over random cubes",
	Long: `Memorize seeded random cubes and report how many edge and corner
targets their memos have and how often they have parity. With --plot a
histogram of the total target count is written as a PNG (or SVG/PDF, by
extension). With --history the stored memos of the selected size are
summarized instead.`,
	Example: `  nxnbld stats --samples 10000
  nxnbld stats -n 5 --plot targets.png
  nxnbld stats --history`,
	RunE: runStats,
}

var (
	statsSamples int
	statsSeed    uint64
	statsPlot    string
	statsHistory bool
)

func init() {
	statsCmd.Flags().IntVar(&statsSamples, "samples", 1000, "Number of random cubes")
	statsCmd.Flags().Uint64Var(&statsSeed, "seed", 0, "First seed")
	statsCmd.Flags().StringVar(&statsPlot, "plot", "", "Write a histogram of target counts to this file")
	statsCmd.Flags().BoolVar(&statsHistory, "history", false, "Summarize stored memos instead of sampling")
	rootCmd.AddCommand(statsCmd)
}

// targetSample summarizes the memos of many random cubes.
type targetSample struct {
	Edges   []float64
	Corners []float64
	Parity  int
}

func (s targetSample) Len() int { return len(s.Edges) }

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Totals returns edge plus corner targets per cube.
func (s targetSample) Totals() plotter.Values {
	totals := make(plotter.Values, s.Len())
	for i := range totals {
		totals[i] = s.Edges[i] + s.Corners[i]
	}
	return totals
}

// sampleTargets memorizes count random n cubes starting at seed.
func sampleTargets(n, count int, seed uint64, buffers bld.Buffers) targetSample {
	s := targetSample{
		Edges:   make([]float64, count),
		Corners: make([]float64, count),
	}
	for i := 0; i < count; i++ {
		m := bld.MemoCube(cube.NewRandom(n, seed+uint64(i)), buffers)
		s.Edges[i] = float64(m.EdgeTargets())
		s.Corners[i] = float64(m.CornerTargets())
		if m.Corners != nil && m.Corners.HasParity() {
			s.Parity++
		}
	}
	return s
}

// writeHistogram saves a histogram of values; the format follows the
// file extension.
func writeHistogram(path, title string, values plotter.Values) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "targets"
	p.Y.Label.Text = "cubes"

	bins := 1
	if lo, hi := plotter.Range(values); hi > lo {
		bins = int(hi-lo) + 1
	}
	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if statsHistory {
		return withMemos(cmd, func(repo *storage.MemoRepository) error {
			st, err := repo.Stats(s.Size)
			if err != nil {
				return err
			}
			fmt.Printf("Stored %dx%d memos: %d\n", s.Size, s.Size, st.Count)
			if st.Count > 0 {
				fmt.Printf("Edge targets:   mean %.2f, max %d\n", st.MeanEdges, st.MaxEdges)
				fmt.Printf("Corner targets: mean %.2f, max %d\n", st.MeanCorners, st.MaxCorners)
			}
			return nil
		})
	}
	if statsSamples < 1 {
		return fmt.Errorf("--samples must be positive, got %d", statsSamples)
	}

	sample := sampleTargets(s.Size, statsSamples, statsSeed, s.BLD.Buffers)
	fmt.Printf("%dx%d cubes: %d\n", s.Size, s.Size, sample.Len())
	fmt.Printf("Edge targets:   mean %.2f\n", mean(sample.Edges))
	fmt.Printf("Corner targets: mean %.2f\n", mean(sample.Corners))
	fmt.Printf("Parity:         %.1f%%\n", 100*float64(sample.Parity)/float64(sample.Len()))

	if statsPlot != "" {
		title := fmt.Sprintf("%dx%d edge + corner targets", s.Size, s.Size)
		if err := writeHistogram(statsPlot, title, sample.Totals()); err != nil {
			return err
		}
		fmt.Printf("Histogram written to %s\n", statsPlot)
	}
	return nil
}
