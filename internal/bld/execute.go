package bld

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
)

func parseLetters(l *Lettering, text string) ([]int, error) {
	var indices []int
	for _, r := range text {
		if r == ' ' {
			continue
		}
		i, err := l.Index(r)
		if err != nil {
			return nil, err
		}
		indices = append(indices, i)
	}
	return indices, nil
}

// shoot cycles the buffer through each pair of targets, or swaps it with a
// trailing single target.
func shoot[S, P, O comparable](pieces Pieces[S, P, O], buffer S, targets []S) {
	for i := 0; i < len(targets); i += 2 {
		if i+1 == len(targets) {
			pieces.Cycle([]S{buffer, targets[i]}, 1)
			continue
		}
		pieces.Cycle([]S{buffer, targets[i], targets[i+1]}, 1)
	}
}

func cutPrefix(line string, prefixes ...string) (string, bool) {
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(line, p); ok {
			return rest, true
		}
	}
	return "", false
}

// Execute performs a written memo on the edges and corners of c. Lines
// starting with "e " or "edges " list edge letters and lines starting with
// "c " or "corners " list corner letters; other lines are ignored.
func Execute(c *cube.Cube, memo string, cfg Config) error {
	for _, line := range strings.Split(memo, "\n") {
		if rest, ok := cutPrefix(line, "e ", "edges "); ok {
			indices, err := parseLetters(cfg.Lettering, rest)
			if err != nil {
				return fmt.Errorf("failed to parse edge memo %q: %w", rest, err)
			}
			targets := make([]cube.EdgeSticker, len(indices))
			for i, idx := range indices {
				targets[i] = cube.EdgeStickerFromIndex(idx)
			}
			shoot(EdgePieces{&c.Edges}, cfg.Buffers.Edges, targets)
		}
		if rest, ok := cutPrefix(line, "c ", "corners "); ok {
			indices, err := parseLetters(cfg.Lettering, rest)
			if err != nil {
				return fmt.Errorf("failed to parse corner memo %q: %w", rest, err)
			}
			targets := make([]cube.CornerSticker, len(indices))
			for i, idx := range indices {
				targets[i] = cube.CornerStickerFromIndex(idx)
			}
			shoot(CornerPieces{&c.Corners}, cfg.Buffers.Corners, targets)
		}
	}
	return nil
}

// Score rates how close a category is to solved. Each sticker counts once
// in Solved when the right sticker is on it, once in Permuted when the
// right piece is in its slot and once in Oriented when the piece that is
// there is correctly oriented.
type Score struct {
	Solved   int
	Permuted int
	Oriented int
}

func (s Score) Total() int { return s.Solved + s.Permuted + s.Oriented }

func (s Score) Add(o Score) Score {
	return Score{s.Solved + o.Solved, s.Permuted + o.Permuted, s.Oriented + o.Oriented}
}

func (s Score) String() string {
	return fmt.Sprintf("%d (solved %d, permuted %d, oriented %d)", s.Total(), s.Solved, s.Permuted, s.Oriented)
}

func scorePieces[S, P, O comparable](pieces Pieces[S, P, O]) Score {
	var score Score
	for _, s := range pieces.Stickers() {
		at := pieces.At(s)
		if at == s {
			score.Solved++
		}
		if pieces.StickerPermutation(at) == pieces.StickerPermutation(s) {
			score.Permuted++
		}
		if pieces.StickerOrientation(at) == pieces.StickerOrientation(s) {
			score.Oriented++
		}
	}
	return score
}

// ScoreCube scores the corners and edges of c.
func ScoreCube(c *cube.Cube) Score {
	return scorePieces(CornerPieces{&c.Corners}).Add(scorePieces(EdgePieces{&c.Edges}))
}

// Analysis is the best match of one memo block against a set of scrambles.
type Analysis struct {
	Memo     string
	Scramble string
	Score    Score
	Solved   bool
}

// Analyze executes every blank-line separated memo block against each 3x3
// scramble and keeps the first best-scoring scramble. It is used to find
// which scramble of a session a written memo belongs to and how close it
// gets to solving it.
func Analyze(scrambles []string, memo string, cfg Config) ([]Analysis, error) {
	if len(scrambles) == 0 {
		return nil, nil
	}
	cubes := make([]*cube.Cube, len(scrambles))
	for i, s := range scrambles {
		moves, err := notation.ParseMoves(3, s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scramble %d: %w", i+1, err)
		}
		r := cube.NewRotated(cube.New(3))
		r.ApplyMoves(moves)
		cubes[i] = r.Cube
	}

	var results []Analysis
	for _, block := range strings.Split(memo, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var best *Analysis
		for i, scrambled := range cubes {
			c := scrambled.Clone()
			if err := Execute(c, block, cfg); err != nil {
				return nil, err
			}
			score := ScoreCube(c)
			if best == nil || score.Total() > best.Score.Total() {
				best = &Analysis{
					Memo:     block,
					Scramble: scrambles[i],
					Score:    score,
					Solved:   c.Corners.AreSolved() && c.Edges.AreSolved(),
				}
			}
		}
		results = append(results, *best)
	}
	return results, nil
}

// FormatAnalysis renders results as plain text records.
func FormatAnalysis(results []Analysis) string {
	var sb strings.Builder
	for _, a := range results {
		fmt.Fprintf(&sb, "memo: \n%s\nscramble: %s\nscore: %s\nsolved: %t\n\n", a.Memo, a.Scramble, a.Score, a.Solved)
	}
	return sb.String()
}
