// Package notation parses, formats and simplifies NxNxN move sequences.
package notation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

type tokenKind uint8

const (
	tokSpace tokenKind = iota
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokLParen
	tokRParen
	tokLAngle
	tokRAngle
	tokComma
	tokColon
	tokSlash
	tokMove
	tokEnd
)

type token struct {
	kind tokenKind
	move types.Move
}

var punctuation = map[rune]tokenKind{
	'!': tokSpace,
	'+': tokSpace,
	'{': tokLBrace,
	'}': tokRBrace,
	'[': tokLBracket,
	']': tokRBracket,
	'(': tokLParen,
	')': tokRParen,
	'<': tokLAngle,
	'>': tokRAngle,
	',': tokComma,
	':': tokColon,
	';': tokColon,
	'/': tokSlash,
}

var tokenNames = [...]string{
	tokSpace:    "space",
	tokLBrace:   "'{'",
	tokRBrace:   "'}'",
	tokLBracket: "'['",
	tokRBracket: "']'",
	tokLParen:   "'('",
	tokRParen:   "')'",
	tokLAngle:   "'<'",
	tokRAngle:   "'>'",
	tokComma:    "','",
	tokColon:    "':'",
	tokSlash:    "'/'",
	tokMove:     "move",
	tokEnd:      "end of input",
}

func (k tokenKind) String() string { return tokenNames[k] }

func tokenize(n int, text string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			tokens = append(tokens, token{kind: tokSpace})
			i += size
			continue
		}
		if kind, ok := punctuation[r]; ok {
			tokens = append(tokens, token{kind: kind})
			i += size
			continue
		}
		m, length, err := ParseMove(n, text[i:])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token{kind: tokMove, move: m})
		i += length
	}
	return tokens, nil
}

// readNumber consumes a run of decimal digits starting at *i.
func readNumber(text string, i *int) (int, bool) {
	v, found := 0, false
	for *i < len(text) && text[*i] >= '0' && text[*i] <= '9' {
		v = v*10 + int(text[*i]-'0')
		if v > 1<<16 {
			v = 1 << 16
		}
		*i++
		found = true
	}
	return v, found
}

var faceLetters = map[byte]types.Face{
	'U': types.FaceU, 'L': types.FaceL, 'F': types.FaceF,
	'R': types.FaceR, 'B': types.FaceB, 'D': types.FaceD,
}

// ParseMove parses one move for an n cube from the start of text and returns
// it along with the number of bytes consumed.
//
// The grammar is [start][-end]letter[w][count]['] where letter is one of
// UFRBLD (outer or wide), ufrbld (inner layers), MES (all inner layers),
// mes (central layer, odd n >= 5) or xyz (rotations).
func ParseMove(n int, text string) (types.Move, int, error) {
	i := 0
	start, hasStart := readNumber(text, &i)

	end, hasEnd := 0, false
	if i < len(text) && text[i] == '-' {
		i++
		end, hasEnd = readNumber(text, &i)
		if !hasEnd {
			return types.Move{}, 0, fmt.Errorf("%w: missing layer after '-' in %q", ErrInvalidMove, text)
		}
	}

	if i >= len(text) {
		return types.Move{}, 0, fmt.Errorf("%w: missing letter in %q", ErrInvalidMove, text)
	}
	letter := text[i]
	i++

	wide := false
	if i < len(text) && text[i] == 'w' {
		wide = true
		i++
	}
	if hasEnd && wide {
		return types.Move{}, 0, fmt.Errorf("%w: layer range and wide marker in %q", ErrInvalidMove, text)
	}

	count, hasCount := readNumber(text, &i)
	if !hasCount {
		count = 1
	}
	count %= 4
	if i < len(text) && text[i] == '\'' {
		count = (4 - count) % 4
		i++
	} else if strings.HasPrefix(text[i:], "’") {
		count = (4 - count) % 4
		i += len("’")
	}

	m := types.Move{N: n, Count: count}
	switch {
	case faceLetters[letter] != "":
		m.Face = faceLetters[letter]
		switch {
		case wide:
			m.End = 2
			if hasStart {
				m.End = start
			}
		case hasStart || hasEnd:
			return types.Move{}, 0, fmt.Errorf("%w: layer prefix on outer move %q", ErrInvalidMove, text)
		default:
			m.End = 1
		}

	case letter >= 'a' && faceLetters[letter-'a'+'A'] != "":
		m.Face = faceLetters[letter-'a'+'A']
		switch {
		case wide:
			return types.Move{}, 0, fmt.Errorf("%w: lowercase move marked wide in %q", ErrInvalidMove, text)
		case n == 3:
			m.End = 2
			if hasStart {
				m.End = start
			}
		case hasStart:
			if start == 0 {
				return types.Move{}, 0, fmt.Errorf("%w: layer 0 in %q", ErrLayerOutOfRange, text)
			}
			m.Start = start - 1
			m.End = start
			if hasEnd {
				m.End = end
			}
		default:
			m.Start, m.End = 1, 2
		}

	case letter == 'm' || letter == 'e' || letter == 's':
		if hasStart || hasEnd || wide {
			return types.Move{}, 0, fmt.Errorf("%w: modifiers on slice move %q", ErrInvalidMove, text)
		}
		if n < 5 || n%2 == 0 {
			return types.Move{}, 0, fmt.Errorf("%w: central slice move on a %dx%d", ErrInvalidMove, n, n)
		}
		m.Face = sliceFace(letter - 'a' + 'A')
		m.Start, m.End = n/2, n/2+1

	case letter == 'M' || letter == 'E' || letter == 'S':
		if hasStart || hasEnd || wide {
			return types.Move{}, 0, fmt.Errorf("%w: modifiers on slice move %q", ErrInvalidMove, text)
		}
		if n < 3 {
			return types.Move{}, 0, fmt.Errorf("%w: slice move on a %dx%d", ErrInvalidMove, n, n)
		}
		m.Face = sliceFace(letter)
		m.Start, m.End = 1, n-1

	case letter == 'x' || letter == 'y' || letter == 'z':
		if hasStart || hasEnd || wide {
			return types.Move{}, 0, fmt.Errorf("%w: modifiers on rotation %q", ErrInvalidMove, text)
		}
		m.Face = map[byte]types.Face{'x': types.FaceR, 'y': types.FaceU, 'z': types.FaceF}[letter]
		m.End = n

	default:
		return types.Move{}, 0, fmt.Errorf("%w: %q", ErrInvalidMove, text)
	}

	if m.End > n || m.Start >= m.End {
		return types.Move{}, 0, fmt.Errorf("%w: %q on a %dx%d", ErrLayerOutOfRange, text[:i], n, n)
	}
	return m, i, nil
}

func sliceFace(letter byte) types.Face {
	switch letter {
	case 'M':
		return types.FaceL
	case 'E':
		return types.FaceD
	default:
		return types.FaceF
	}
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return token{kind: tokEnd}
}

var closers = map[Delimiter]tokenKind{
	DelimNone:     tokEnd,
	DelimBraces:   tokRBrace,
	DelimBrackets: tokRBracket,
	DelimParens:   tokRParen,
}

// item parses one move or one delimited group. It returns nil for a
// separator.
func (p *parser) item() (*Tree, error) {
	tok := p.peek()
	switch tok.kind {
	case tokSpace:
		p.pos++
		return nil, nil
	case tokMove:
		p.pos++
		return Leaf(tok.move), nil
	case tokLBracket:
		p.pos++
		return p.grouped(DelimBrackets)
	case tokLParen:
		p.pos++
		return p.grouped(DelimParens)
	case tokLBrace:
		p.pos++
		return p.grouped(DelimBraces)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok.kind)
	}
}

// grouped parses up to and including the token closing delim. A ',', ':'
// or '/' splits the group into the two operands of a binary node.
func (p *parser) grouped(delim Delimiter) (*Tree, error) {
	var first []*Tree
	for {
		tok := p.peek()
		switch tok.kind {
		case closers[delim]:
			p.pos++
			return Group(delim, first...), nil
		case tokComma, tokColon, tokSlash:
			p.pos++
			second, err := p.grouped(delim)
			if err != nil {
				return nil, err
			}
			second.Delimiter = DelimNone
			kind := map[tokenKind]NodeKind{tokComma: NodeCommutator, tokColon: NodeConjugate, tokSlash: NodeSlash}[tok.kind]
			return &Tree{Kind: kind, Delimiter: delim, Children: []*Tree{Group(DelimNone, first...), second}}, nil
		case tokEnd:
			return nil, fmt.Errorf("%w: expected %v", ErrUnclosedGroup, closers[delim])
		}
		t, err := p.item()
		if err != nil {
			return nil, err
		}
		if t != nil {
			first = append(first, t)
		}
	}
}

// Parse parses an algorithm for an n cube. Moves may be grouped with (),
// [] or {} and combined as conjugates [A: B], commutators [A, B] and
// slashes [A / B].
func Parse(n int, text string) (*Tree, error) {
	tokens, err := tokenize(n, text)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.grouped(DelimNone)
}

// ParseMoves parses text and returns its flattened move sequence.
func ParseMoves(n int, text string) ([]types.Move, error) {
	t, err := Parse(n, text)
	if err != nil {
		return nil, err
	}
	return t.Moves(), nil
}
