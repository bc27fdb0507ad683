package bld

import (
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
)

// Twist is a piece that sits in its own slot but is misoriented.
type Twist[P, O any] struct {
	Piece       P
	Orientation O
}

// Memo is the decomposition of one piece category relative to a buffer.
// Every cycle and the parity start at the buffer.
type Memo[S, P, O comparable] struct {
	Cycles [][3]S
	Parity *[2]S
	Twists []Twist[P, O]
}

// HasParity reports whether the memo ends with a 2-cycle.
func (m Memo[S, P, O]) HasParity() bool { return m.Parity != nil }

// Targets returns the stickers a solver shoots to, in order: the last two
// entries of each cycle followed by the parity target.
func (m Memo[S, P, O]) Targets() []S {
	targets := make([]S, 0, 2*len(m.Cycles)+1)
	for _, c := range m.Cycles {
		targets = append(targets, c[1], c[2])
	}
	if m.Parity != nil {
		targets = append(targets, m.Parity[1])
	}
	return targets
}

// Apply executes the cycles and parity on pieces.
func (m Memo[S, P, O]) Apply(pieces Pieces[S, P, O]) {
	for _, c := range m.Cycles {
		pieces.Cycle(c[:], 1)
	}
	if m.Parity != nil {
		pieces.Cycle(m.Parity[:], 1)
	}
}

type solvedSet[P comparable] map[P]struct{}

func (s solvedSet[P]) has(p P) bool {
	_, ok := s[p]
	return ok
}

func (s solvedSet[P]) add(p P) { s[p] = struct{}{} }

// findUnsolved returns the first piece in canonical order that is neither
// solved nor excluded, in good orientation.
func findUnsolved[S, P, O comparable](pieces Pieces[S, P, O], solved solvedSet[P], exclude ...P) (S, bool) {
	for _, p := range pieces.Permutations() {
		if solved.has(p) || contains(exclude, p) {
			continue
		}
		return pieces.Sticker(p, pieces.Good()), true
	}
	var zero S
	return zero, false
}

// findUnsolvedOnFace returns the first unsolved, non-excluded sticker on
// face in clockwise order.
func findUnsolvedOnFace[S, P, O comparable](pieces Pieces[S, P, O], solved solvedSet[P], face cube.Face, exclude ...P) (S, bool) {
	for _, s := range pieces.OnFace(face) {
		p := pieces.StickerPermutation(s)
		if solved.has(p) || contains(exclude, p) {
			continue
		}
		return s, true
	}
	var zero S
	return zero, false
}

func contains[P comparable](list []P, p P) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

func mustFindUnsolved[S, P, O comparable](pieces Pieces[S, P, O], solved solvedSet[P], exclude ...P) S {
	s, ok := findUnsolved(pieces, solved, exclude...)
	if !ok {
		panic("bld: no unsolved piece left to start a cycle")
	}
	return s
}

// Memorize decomposes a category whose pieces have distinct identities into
// 3-cycles through buffer, an optional parity swap and in-place twists.
//
// Pieces already home are marked solved first, recording a twist when they
// are misoriented. The chain then follows the piece in the buffer; when it
// reaches a solved piece or the current cycle's start it breaks into the
// first unsolved piece in canonical order.
func Memorize[S, P, O comparable](pieces Pieces[S, P, O], buffer S) Memo[S, P, O] {
	var m Memo[S, P, O]
	perm := pieces.StickerPermutation
	good := pieces.Good()
	bufferPiece := perm(buffer)
	total := len(pieces.Permutations())

	solved := make(solvedSet[P], total)
	for _, p := range pieces.Permutations() {
		at := pieces.At(pieces.Sticker(p, good))
		if perm(at) != p || p == bufferPiece {
			continue
		}
		if o := pieces.StickerOrientation(at); o != good {
			m.Twists = append(m.Twists, Twist[P, O]{Piece: p, Orientation: o})
		}
		solved.add(p)
	}

	// zeroth is the position whose original piece is in the buffer now;
	// cycleEnd is where the open cycle started.
	zeroth, cycleEnd := buffer, buffer
	for {
		if len(solved) == total-1 {
			return m
		}
		first := pieces.At(zeroth)
		second := pieces.At(first)
		if len(solved) == total-2 {
			m.Parity = &[2]S{buffer, first}
			return m
		}

		switch {
		case perm(first) == bufferPiece || solved.has(perm(first)):
			unsolved := mustFindUnsolved(pieces, solved, bufferPiece, perm(cycleEnd))
			next := pieces.At(unsolved)
			m.Cycles = append(m.Cycles, [3]S{buffer, unsolved, next})
			solved.add(perm(next))
			zeroth, cycleEnd = next, unsolved

		case perm(first) == perm(cycleEnd) || perm(second) == bufferPiece:
			unsolved := mustFindUnsolved(pieces, solved, bufferPiece, perm(first))
			m.Cycles = append(m.Cycles, [3]S{buffer, first, unsolved})
			solved.add(perm(first))
			zeroth, cycleEnd = unsolved, unsolved

		default:
			m.Cycles = append(m.Cycles, [3]S{buffer, first, second})
			solved.add(perm(first))
			solved.add(perm(second))
			if perm(second) == perm(cycleEnd) {
				zeroth, cycleEnd = buffer, buffer
			} else {
				zeroth = second
			}
		}
	}
}

// MemorizeCenters decomposes a color-only category, where any slot of the
// right color is a valid home for a piece. Targets are chosen on the face
// of the piece being placed; when that face has no unsolved slot left the
// chain breaks into the first unsolved slot in canonical order. Twists are
// always empty.
func MemorizeCenters[S, P, O comparable](pieces Pieces[S, P, O], buffer S) Memo[S, P, O] {
	var m Memo[S, P, O]
	perm := pieces.StickerPermutation
	bufferPiece := perm(buffer)

	solved := make(solvedSet[P], len(pieces.Stickers()))
	for _, s := range pieces.Stickers() {
		if s != buffer && pieces.Color(pieces.At(s)) == pieces.Color(s) {
			solved.add(perm(s))
		}
	}

	zeroth, hasZeroth := buffer, true
	cycleEnd := buffer
	for {
		var (
			newCycleEnd    S
			hasNewCycleEnd bool
			newSolved      []P
			firstTarget    S
		)

		var (
			target S
			onFace bool
		)
		if hasZeroth {
			target, onFace = findUnsolvedOnFace(pieces, solved, pieces.Color(pieces.At(zeroth)), bufferPiece)
		}
		if onFace {
			newSolved = append(newSolved, perm(target))
			firstTarget = target
		} else {
			t, ok := findUnsolved(pieces, solved, bufferPiece)
			if !ok {
				return m
			}
			newCycleEnd, hasNewCycleEnd = t, true
			firstTarget = t
		}

		var secondTarget S
		if firstTarget == cycleEnd {
			t, ok := findUnsolved(pieces, solved, bufferPiece, perm(firstTarget))
			if !ok {
				m.Parity = &[2]S{buffer, firstTarget}
				return m
			}
			newCycleEnd, hasNewCycleEnd = t, true
			secondTarget = t
		} else {
			second := pieces.At(firstTarget)
			if t, ok := findUnsolvedOnFace(pieces, solved, pieces.Color(second), bufferPiece, perm(firstTarget)); ok {
				newSolved = append(newSolved, perm(t))
				secondTarget = t
			} else {
				t, ok := findUnsolved(pieces, solved, bufferPiece, perm(firstTarget))
				if !ok {
					m.Parity = &[2]S{buffer, firstTarget}
					return m
				}
				newCycleEnd, hasNewCycleEnd = t, true
				secondTarget = t
			}
		}

		m.Cycles = append(m.Cycles, [3]S{buffer, firstTarget, secondTarget})

		if secondTarget == cycleEnd {
			hasZeroth = false
			cycleEnd = buffer
		} else {
			zeroth, hasZeroth = secondTarget, true
			if hasNewCycleEnd {
				cycleEnd = newCycleEnd
			}
		}
		for _, p := range newSolved {
			solved.add(p)
		}
	}
}
