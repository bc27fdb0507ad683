package notation

import (
	"strings"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// Delimiter is the bracket pair around a group.
type Delimiter uint8

const (
	DelimNone Delimiter = iota
	DelimBraces
	DelimBrackets
	DelimParens
)

func (d Delimiter) pair() (string, string) {
	switch d {
	case DelimBraces:
		return "{", "}"
	case DelimParens:
		return "(", ")"
	default:
		return "[", "]"
	}
}

// NodeKind says what a Tree node represents.
type NodeKind uint8

const (
	NodeMove NodeKind = iota
	NodeGroup
	NodeConjugate
	NodeCommutator
	NodeSlash
)

// Tree is a parsed algorithm. A NodeGroup holds a sequence of children;
// conjugate, commutator and slash nodes hold exactly two operands A and B.
type Tree struct {
	Kind      NodeKind
	Delimiter Delimiter
	Move      types.Move
	Children  []*Tree
}

// Leaf returns a single-move node.
func Leaf(m types.Move) *Tree {
	return &Tree{Kind: NodeMove, Move: m}
}

// Group returns a sequence node.
func Group(delim Delimiter, children ...*Tree) *Tree {
	return &Tree{Kind: NodeGroup, Delimiter: delim, Children: children}
}

// Conjugate returns [a: b], which expands to a b a'.
func Conjugate(a, b *Tree) *Tree {
	return &Tree{Kind: NodeConjugate, Delimiter: DelimBrackets, Children: []*Tree{a, b}}
}

// Commutator returns [a, b], which expands to a b a' b'.
func Commutator(a, b *Tree) *Tree {
	return &Tree{Kind: NodeCommutator, Delimiter: DelimBrackets, Children: []*Tree{a, b}}
}

// Slash returns [a / b], which expands to a b a2 b' a.
func Slash(a, b *Tree) *Tree {
	return &Tree{Kind: NodeSlash, Delimiter: DelimBrackets, Children: []*Tree{a, b}}
}

func (t *Tree) visit(fn func(types.Move), invert bool) {
	switch t.Kind {
	case NodeMove:
		if invert {
			fn(t.Move.Inverse())
		} else {
			fn(t.Move)
		}
	case NodeGroup:
		if invert {
			for i := len(t.Children) - 1; i >= 0; i-- {
				t.Children[i].visit(fn, true)
			}
		} else {
			for _, c := range t.Children {
				c.visit(fn, false)
			}
		}
	case NodeConjugate:
		a, b := t.Children[0], t.Children[1]
		a.visit(fn, false)
		b.visit(fn, invert)
		a.visit(fn, true)
	case NodeCommutator:
		a, b := t.Children[0], t.Children[1]
		if invert {
			b.visit(fn, false)
			a.visit(fn, false)
			b.visit(fn, true)
			a.visit(fn, true)
		} else {
			a.visit(fn, false)
			b.visit(fn, false)
			a.visit(fn, true)
			b.visit(fn, true)
		}
	case NodeSlash:
		a, b := t.Children[0], t.Children[1]
		if invert {
			a.visit(fn, true)
			b.visit(fn, false)
			a.visit(fn, true)
			a.visit(fn, true)
			b.visit(fn, true)
			a.visit(fn, true)
		} else {
			a.visit(fn, false)
			b.visit(fn, false)
			a.visit(fn, false)
			a.visit(fn, false)
			b.visit(fn, true)
			a.visit(fn, false)
		}
	}
}

// Moves flattens the tree into the move sequence it stands for.
func (t *Tree) Moves() []types.Move {
	var moves []types.Move
	t.visit(func(m types.Move) { moves = append(moves, m) }, false)
	return moves
}

// InverseMoves returns the sequence that undoes Moves.
func (t *Tree) InverseMoves() []types.Move {
	var moves []types.Move
	t.visit(func(m types.Move) { moves = append(moves, m) }, true)
	return moves
}

// CanonicalMoves returns Canonicalize applied to Moves.
func (t *Tree) CanonicalMoves() []types.Move {
	return Canonicalize(t.Moves())
}

// ApplyTo performs the algorithm on c.
func (t *Tree) ApplyTo(c *cube.RotatedCube) {
	t.visit(c.ApplyMove, false)
}

// ApplyInverseTo performs the inverse algorithm on c.
func (t *Tree) ApplyInverseTo(c *cube.RotatedCube) {
	t.visit(c.ApplyMove, true)
}

// String renders the tree in the notation Parse accepts.
func (t *Tree) String() string {
	var w writer
	w.tree(t)
	return w.sb.String()
}

type writer struct {
	sb        strings.Builder
	wantSpace bool
}

func (w *writer) open(s string) {
	if w.wantSpace {
		w.sb.WriteByte(' ')
	}
	w.sb.WriteString(s)
	w.wantSpace = false
}

func (w *writer) tree(t *Tree) {
	switch t.Kind {
	case NodeMove:
		if w.wantSpace {
			w.sb.WriteByte(' ')
		}
		w.sb.WriteString(t.Move.Notation())
		w.wantSpace = true
	case NodeGroup:
		if t.Delimiter != DelimNone {
			l, r := t.Delimiter.pair()
			w.open(l)
			defer func() {
				w.sb.WriteString(r)
				w.wantSpace = true
			}()
		}
		for _, c := range t.Children {
			w.tree(c)
		}
	default:
		l, r := t.Delimiter.pair()
		w.open(l)
		w.tree(t.Children[0])
		switch t.Kind {
		case NodeConjugate:
			w.sb.WriteByte(':')
		case NodeCommutator:
			w.sb.WriteByte(',')
		default:
			w.sb.WriteString(" /")
		}
		w.wantSpace = true
		w.tree(t.Children[1])
		w.sb.WriteString(r)
		w.wantSpace = true
	}
}
