package bld

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/SeamusWaldron/nxn_bld/internal/cube"
)

var (
	ErrLettering     = errors.New("bld: lettering must have 24 distinct letters")
	ErrBufferIndex   = errors.New("bld: buffer index out of range")
	ErrUnknownLetter = errors.New("bld: letter not in lettering")
)

// DefaultLettering is the Speffz scheme.
const DefaultLettering = "ABCDEFGHIJKLMNOPQRSTUVWX"

// Buffers holds the buffer sticker of each category.
type Buffers struct {
	Edges         cube.EdgeSticker
	Corners       cube.CornerSticker
	Wings         cube.WingSticker
	XCenters      cube.CornerSticker
	TCenters      cube.EdgeSticker
	LeftObliques  cube.EdgeSticker
	RightObliques cube.EdgeSticker
}

// DefaultBuffers are UF, UFR, the right-handed DF wing and the UFR/UF
// centers.
var DefaultBuffers = Buffers{
	Edges:         cube.EdgeStickerFromIndex(2),
	Corners:       cube.CornerStickerFromIndex(2),
	Wings:         cube.WingStickerFromIndex(17),
	XCenters:      cube.CornerStickerFromIndex(2),
	TCenters:      cube.EdgeStickerFromIndex(2),
	LeftObliques:  cube.EdgeStickerFromIndex(2),
	RightObliques: cube.EdgeStickerFromIndex(2),
}

// BufferIndices are sticker indices as they appear in configuration files.
type BufferIndices struct {
	Edges    int `mapstructure:"edges"`
	Corners  int `mapstructure:"corners"`
	Wings    int `mapstructure:"wings"`
	XCenters int `mapstructure:"xcenters"`
	TCenters int `mapstructure:"tcenters"`
	Obliques int `mapstructure:"obliques"`
}

// Buffers validates the indices and converts them to stickers. The oblique
// index is used for both sides.
func (b BufferIndices) Buffers() (Buffers, error) {
	checks := []struct {
		name  string
		index int
		limit int
	}{
		{"edges", b.Edges, 24},
		{"corners", b.Corners, 24},
		{"wings", b.Wings, 48},
		{"xcenters", b.XCenters, 24},
		{"tcenters", b.TCenters, 24},
		{"obliques", b.Obliques, 24},
	}
	for _, c := range checks {
		if c.index < 0 || c.index >= c.limit {
			return Buffers{}, fmt.Errorf("%w: %s buffer %d", ErrBufferIndex, c.name, c.index)
		}
	}
	return Buffers{
		Edges:         cube.EdgeStickerFromIndex(b.Edges),
		Corners:       cube.CornerStickerFromIndex(b.Corners),
		Wings:         cube.WingStickerFromIndex(b.Wings),
		XCenters:      cube.CornerStickerFromIndex(b.XCenters),
		TCenters:      cube.EdgeStickerFromIndex(b.TCenters),
		LeftObliques:  cube.EdgeStickerFromIndex(b.Obliques),
		RightObliques: cube.EdgeStickerFromIndex(b.Obliques),
	}, nil
}

// Lettering maps sticker indices to letters and back.
type Lettering struct {
	letters [24]rune
	index   map[rune]int
}

// NewLettering parses a 24 letter scheme. Letters are matched without
// regard to case.
func NewLettering(scheme string) (*Lettering, error) {
	if utf8.RuneCountInString(scheme) != 24 {
		return nil, fmt.Errorf("%w: got %q", ErrLettering, scheme)
	}
	l := &Lettering{index: make(map[rune]int, 48)}
	i := 0
	for _, r := range scheme {
		upper, lower := unicode.ToUpper(r), unicode.ToLower(r)
		if _, dup := l.index[upper]; dup {
			return nil, fmt.Errorf("%w: %q repeats %q", ErrLettering, scheme, r)
		}
		l.letters[i] = r
		l.index[upper] = i
		l.index[lower] = i
		i++
	}
	return l, nil
}

// MustLettering is NewLettering for known-good schemes.
func MustLettering(scheme string) *Lettering {
	l, err := NewLettering(scheme)
	if err != nil {
		panic(err)
	}
	return l
}

// Letter returns the letter of sticker index i.
func (l *Lettering) Letter(i int) rune { return l.letters[i] }

// Index returns the sticker index of letter.
func (l *Lettering) Index(letter rune) (int, error) {
	i, ok := l.index[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLetter, letter)
	}
	return i, nil
}

func (l *Lettering) String() string { return string(l.letters[:]) }

// Config selects the lettering and buffers used to render and check memos.
type Config struct {
	Lettering *Lettering
	Buffers   Buffers
}

// DefaultConfig uses Speffz and DefaultBuffers.
func DefaultConfig() Config {
	return Config{Lettering: MustLettering(DefaultLettering), Buffers: DefaultBuffers}
}
