// Package analysis computes statistics over the moves of recorded sessions.
package analysis

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// DefaultPauseMs is the gap after which a pause is counted.
const DefaultPauseMs = 1500

// Turn is a move with the time it was received.
type Turn struct {
	Move types.Move
	TsMs int64
}

// Summary contains the statistics of one session.
type Summary struct {
	TotalMoves        int                `json:"total_moves"`
	CanceledMoves     int                `json:"canceled_moves"`
	Efficiency        float64            `json:"efficiency"`
	DurationMs        int64              `json:"duration_ms"`
	TPS               float64            `json:"tps"`
	AvgMoveDurationMs float64            `json:"avg_move_duration_ms"`
	LongestPauseMs    int64              `json:"longest_pause_ms"`
	Pauses            []Pause            `json:"pauses,omitempty"`
	FaceCounts        map[types.Face]int `json:"face_counts"`
}

// Pause is a gap between two consecutive moves.
type Pause struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// Summarize computes the statistics of a move sequence. Pauses of at least
// pauseMs are listed.
func Summarize(turns []Turn, pauseMs int64) Summary {
	s := Summary{
		TotalMoves: len(turns),
		Efficiency: Efficiency(0, 0),
		FaceCounts: make(map[types.Face]int),
		Pauses:     FindPauses(turns, pauseMs),
	}
	if len(turns) == 0 {
		return s
	}

	c := notation.NewCanceler()
	for _, t := range turns {
		c.Push(t.Move)
		s.FaceCounts[t.Move.Face]++
	}
	s.CanceledMoves = c.Len()
	s.Efficiency = Efficiency(s.TotalMoves, s.CanceledMoves)

	s.DurationMs = turns[len(turns)-1].TsMs - turns[0].TsMs
	s.TPS = TPS(len(turns), s.DurationMs)
	if len(turns) > 1 {
		s.AvgMoveDurationMs = float64(s.DurationMs) / float64(len(turns)-1)
	}
	for i := 1; i < len(turns); i++ {
		s.LongestPauseMs = max(s.LongestPauseMs, turns[i].TsMs-turns[i-1].TsMs)
	}
	return s
}

// FindPauses lists the gaps of at least thresholdMs.
func FindPauses(turns []Turn, thresholdMs int64) []Pause {
	var pauses []Pause
	for i := 1; i < len(turns); i++ {
		gap := turns[i].TsMs - turns[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, Pause{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           turns[i-1].TsMs,
			})
		}
	}
	return pauses
}

// TPS returns turns per second, or 0 for an empty duration.
func TPS(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000)
}

// Efficiency is the share of executed moves that survive cancellation.
func Efficiency(executed, canceled int) float64 {
	if executed == 0 {
		return 1
	}
	return float64(canceled) / float64(executed)
}

var faceOrder = []types.Face{types.FaceU, types.FaceL, types.FaceF, types.FaceR, types.FaceB, types.FaceD}

// FormatSummary renders a summary followed by the repeated sequences.
func FormatSummary(s Summary, ngrams *NGramReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Moves: %d (%d after cancellation, %.0f%%)\n", s.TotalMoves, s.CanceledMoves, s.Efficiency*100)
	fmt.Fprintf(&sb, "Duration: %.1fs  TPS: %.2f  Avg gap: %.0fms\n",
		float64(s.DurationMs)/1000, s.TPS, s.AvgMoveDurationMs)
	fmt.Fprintf(&sb, "Longest pause: %dms  Pauses: %d\n", s.LongestPauseMs, len(s.Pauses))

	var faces []string
	for _, f := range faceOrder {
		if n := s.FaceCounts[f]; n > 0 {
			faces = append(faces, fmt.Sprintf("%s:%d", f, n))
		}
	}
	if len(faces) > 0 {
		fmt.Fprintf(&sb, "Faces: %s\n", strings.Join(faces, " "))
	}

	if ngrams == nil {
		return sb.String()
	}
	for _, n := range ngrams.Lengths() {
		fmt.Fprintf(&sb, "\nRepeated %d-move sequences:\n", n)
		for _, g := range ngrams.TopNGrams[n] {
			fmt.Fprintf(&sb, "  %2dx  %s\n", g.Count, g)
		}
	}
	return sb.String()
}
