package nxnbld

import (
	"context"
	"sync"
	"time"

	"github.com/SeamusWaldron/nxn_bld/internal/ble"
	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/gocube"
)

// Device is a discovered GoCube.
type Device struct {
	Name string
	UUID string
	RSSI int16 // dBm, typically -30 to -90

	result ble.ScanResult
}

// GoCube is a connected GoCube whose moves are tracked on a 3x3.
//
// GoCube keeps the cube state in the standard orientation, white on top and
// green in front. The cube must be solved when the connection is made.
type GoCube struct {
	client *ble.Client
	cfg    bld.Config

	mu       sync.RWMutex
	tracker  *cube.Tracker
	history  []Move
	solved   bool // set by the tracker during handleMove
	onMove   func(Move)
	onSolved func()
}

// Scan discovers nearby GoCubes until timeout.
//
// Note: the cube must not be connected to another device, such as the
// phone app.
func Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}
	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(results))
	for i, r := range results {
		devices[i] = Device{Name: r.Name, UUID: r.UUID, RSSI: r.RSSI, result: r}
	}
	return devices, nil
}

// Connect connects to a scanned GoCube.
func Connect(device Device, opts ...Option) (*GoCube, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}
	if err := client.ConnectToResult(device.result); err != nil {
		return nil, err
	}
	return newGoCube(client, opts...)
}

// ConnectFirst connects to the first GoCube found within timeout.
func ConnectFirst(ctx context.Context, timeout time.Duration, opts ...Option) (*GoCube, error) {
	client, err := ble.NewClient()
	if err != nil {
		return nil, err
	}
	if err := client.ConnectFirst(ctx, timeout); err != nil {
		return nil, err
	}
	return newGoCube(client, opts...)
}

func newGoCube(client *ble.Client, opts ...Option) (*GoCube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	b, err := cfg.bld()
	if err != nil {
		client.Disconnect()
		return nil, err
	}

	g := newTracked(b)
	g.client = client
	client.SetMoveCallback(g.handleMove)
	if err := client.ResetSolved(); err != nil {
		client.Disconnect()
		return nil, err
	}
	return g, nil
}

// Close disconnects from the cube.
func (g *GoCube) Close() error {
	return g.client.Disconnect()
}

// DeviceName returns the connected device name.
func (g *GoCube) DeviceName() string {
	return g.client.DeviceName()
}

// Battery returns the last reported battery level, or -1.
func (g *GoCube) Battery() int {
	return g.client.Battery()
}

// OnMove sets a callback that fires after each move is applied.
func (g *GoCube) OnMove(cb func(Move)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onMove = cb
}

// OnSolved sets a callback that fires when a move solves the cube.
func (g *GoCube) OnSolved(cb func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSolved = cb
}

// Moves returns the moves applied since the last reset.
func (g *GoCube) Moves() []Move {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]Move(nil), g.history...)
}

// IsSolved reports whether the tracked cube is solved.
func (g *GoCube) IsSolved() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tracker.IsSolved()
}

// Memo renders the memo of the tracked cube.
func (g *GoCube) Memo() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return bld.Render(g.tracker.Cube().Cube, g.cfg)
}

// Reset marks the physical cube as solved and clears the history.
func (g *GoCube) Reset() error {
	g.mu.Lock()
	g.tracker.Reset()
	g.history = nil
	g.mu.Unlock()
	return g.client.ResetSolved()
}

func newTracked(cfg bld.Config) *GoCube {
	g := &GoCube{cfg: cfg, tracker: cube.NewTracker(gocube.Size)}
	g.tracker.SetSolvedCallback(func(int) { g.solved = true })
	return g
}

func (g *GoCube) handleMove(m Move) {
	g.mu.Lock()
	g.solved = false
	g.tracker.ApplyMove(m)
	g.history = append(g.history, m)
	onMove, onSolved, solved := g.onMove, g.onSolved, g.solved
	g.mu.Unlock()

	if onMove != nil {
		onMove(m)
	}
	if solved && onSolved != nil {
		onSolved()
	}
}
