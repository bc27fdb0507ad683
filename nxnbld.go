// Package nxnbld memorizes NxN cube scrambles for blindfolded solving.
//
// # Quick Start
//
// Print the memo of a scramble:
//
//	memo, err := nxnbld.Memorize(5, "Rw U2 3Fw' D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(memo)
//
// The memo lists letter pairs per piece type, with layers counted from the
// outside in:
//
//	Edges: AB CD
//	Corners: EF
//
//	Layer 1
//	X-centers: ...
//
// # Options
//
// Lettering and buffers default to Speffz with UF/UFR buffers:
//
//	memo, err := nxnbld.Memorize(3, "R U R' U'",
//	    nxnbld.WithLettering("ABCDEFGHIJKLMNOPQRSTUVWX"),
//	    nxnbld.WithBuffers(nxnbld.DefaultBuffers))
//
// # Following a GoCube
//
//	g, err := nxnbld.ConnectFirst(ctx, 10*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	g.OnMove(func(m nxnbld.Move) {
//	    fmt.Println(m.Notation())
//	    fmt.Println(g.Memo())
//	})
package nxnbld

import (
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/internal/scramble"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// Re-exported types.
type (
	Move     = types.Move
	Face     = types.Face
	Cube     = cube.Cube
	Buffers  = bld.Buffers
	CubeMemo = bld.CubeMemo
)

// DefaultBuffers are UF, UFR and their counterparts on the inner layers.
var DefaultBuffers = bld.DefaultBuffers

// Sentinel errors, re-exported for errors.Is.
var (
	ErrInvalidMove     = notation.ErrInvalidMove
	ErrLayerOutOfRange = notation.ErrLayerOutOfRange
	ErrLettering       = bld.ErrLettering
)

// Option configures memorization.
type Option func(*config)

type config struct {
	lettering string
	buffers   bld.Buffers
}

func defaultConfig() *config {
	return &config{
		lettering: bld.DefaultLettering,
		buffers:   bld.DefaultBuffers,
	}
}

func (c *config) bld() (bld.Config, error) {
	l, err := bld.NewLettering(c.lettering)
	if err != nil {
		return bld.Config{}, err
	}
	return bld.Config{Lettering: l, Buffers: c.buffers}, nil
}

// WithLettering sets the 24 letter scheme, in sticker order.
func WithLettering(scheme string) Option {
	return func(c *config) {
		c.lettering = scheme
	}
}

// WithBuffers sets the buffer of every piece type.
func WithBuffers(b Buffers) Option {
	return func(c *config) {
		c.buffers = b
	}
}

// Scramble applies a scramble in WCA notation to a solved n cube.
func Scramble(n int, text string) (*Cube, error) {
	moves, err := notation.ParseMoves(n, text)
	if err != nil {
		return nil, err
	}
	r := cube.NewRotated(cube.New(n))
	r.ApplyMoves(moves)
	return r.Cube, nil
}

// Random returns the seeded random scramble for an n cube.
func Random(n int, seed uint64) []Move {
	return scramble.Scramble(n, seed)
}

// MemoOf decomposes a cube into cycles with the configured buffers.
func MemoOf(c *Cube, opts ...Option) CubeMemo {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return bld.MemoCube(c, cfg.buffers)
}

// Memorize scrambles a solved n cube and renders its memo.
func Memorize(n int, text string, opts ...Option) (string, error) {
	c, err := Scramble(n, text)
	if err != nil {
		return "", err
	}
	return Render(c, opts...)
}

// Render renders the memo of c.
func Render(c *Cube, opts ...Option) (string, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	b, err := cfg.bld()
	if err != nil {
		return "", err
	}
	return bld.Render(c, b), nil
}
