// Package ble streams moves from a GoCube over Bluetooth LE.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/nxn_bld/internal/gocube"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
	ErrServiceNotFound  = errors.New("ble: GoCube service not found")
)

var (
	serviceUUID = mustParseUUID(gocube.ServiceUUID)
	txCharUUID  = mustParseUUID(gocube.TxCharUUID)
	rxCharUUID  = mustParseUUID(gocube.RxCharUUID)
)

func mustParseUUID(s string) bluetooth.UUID {
	u, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("ble: bad UUID %q: %v", s, err))
	}
	return u
}

// ScanResult is a discovered GoCube.
type ScanResult struct {
	Name    string
	UUID    string
	RSSI    int16
	Address bluetooth.Address
}

// IsGoCube reports whether an advertised name belongs to a GoCube.
func IsGoCube(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "gocube")
}

// Client manages the connection to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	txChar  bluetooth.DeviceCharacteristic
	rxChar  bluetooth.DeviceCharacteristic

	mu         sync.RWMutex
	connected  bool
	deviceName string
	deviceUUID string
	battery    int

	onMove    func(types.Move)
	onMessage func(*gocube.Message)
}

// NewClient enables the default adapter.
func NewClient() (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter, battery: -1}, nil
}

// SetMoveCallback sets the callback for each face turn the cube reports.
// It runs on the BLE notification goroutine.
func (c *Client) SetMoveCallback(cb func(types.Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMove = cb
}

// SetMessageCallback sets the callback for every parsed message, rotations
// included.
func (c *Client) SetMessageCallback(cb func(*gocube.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// Scan collects GoCubes advertising until timeout or ctx is done.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		done    = make(chan error, 1)
	)

	go func() {
		done <- c.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			addr := result.Address.String()
			mu.Lock()
			defer mu.Unlock()
			if seen[addr] {
				return
			}
			seen[addr] = true
			if name := result.LocalName(); IsGoCube(name) {
				results = append(results, ScanResult{
					Name:    name,
					UUID:    addr,
					RSSI:    result.RSSI,
					Address: result.Address,
				})
			}
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("failed to scan: %w", err)
		}
	}
	c.adapter.StopScan()

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// ConnectFirst scans until the first GoCube appears and connects to it.
func (c *Client) ConnectFirst(ctx context.Context, timeout time.Duration) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	found := make(chan ScanResult, 1)
	var once sync.Once
	go func() {
		c.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
			if name := result.LocalName(); IsGoCube(name) {
				once.Do(func() {
					found <- ScanResult{
						Name:    name,
						UUID:    result.Address.String(),
						RSSI:    result.RSSI,
						Address: result.Address,
					}
				})
			}
		})
	}()

	var target ScanResult
	select {
	case target = <-found:
		c.adapter.StopScan()
	case <-time.After(timeout):
		c.adapter.StopScan()
		return ErrDeviceNotFound
	case <-ctx.Done():
		c.adapter.StopScan()
		return ctx.Err()
	}
	return c.ConnectToResult(target)
}

// ConnectToResult connects to a scanned device and subscribes to its
// notifications.
func (c *Client) ConnectToResult(result ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	tx, rx, err := discover(device)
	if err != nil {
		device.Disconnect()
		return err
	}
	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.txChar = tx
	c.rxChar = rx
	c.connected = true
	c.deviceName = result.Name
	c.deviceUUID = result.UUID
	c.mu.Unlock()

	return c.SendCommand(gocube.CmdRequestBattery)
}

func discover(device bluetooth.Device) (tx, rx bluetooth.DeviceCharacteristic, err error) {
	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return tx, rx, fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		return tx, rx, ErrServiceNotFound
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		return tx, rx, fmt.Errorf("failed to discover characteristics: %w", err)
	}
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx = ch
		case rxCharUUID:
			rx = ch
		}
	}
	return tx, rx, nil
}

// Disconnect disconnects from the current device. It is a no-op when not
// connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.deviceUUID = ""
	c.battery = -1
	return err
}

// IsConnected reports whether a device is connected.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// DeviceUUID returns the connected device address.
func (c *Client) DeviceUUID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceUUID
}

// Battery returns the last reported battery level, or -1.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}
	data := gocube.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		// Write is only provided by the bluetooth package on some platforms.
		w, ok := any(c.rxChar).(interface{ Write([]byte) (int, error) })
		if !ok {
			return fmt.Errorf("failed to send command 0x%02X: %w", cmd, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to send command 0x%02X: %w", cmd, err)
		}
	}
	return nil
}

// ResetSolved tells the cube its current state is solved.
func (c *Client) ResetSolved() error {
	return c.SendCommand(gocube.CmdResetSolved)
}

// Moves streams moves until ctx is done, then closes the channel. A slow
// receiver stalls the notification goroutine rather than losing moves.
func (c *Client) Moves(ctx context.Context) <-chan types.Move {
	ch := make(chan types.Move, 64)
	var mu sync.Mutex
	closed := false

	c.SetMoveCallback(func(m types.Move) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case ch <- m:
		case <-ctx.Done():
		}
	})

	go func() {
		<-ctx.Done()
		c.SetMoveCallback(nil)
		mu.Lock()
		closed = true
		close(ch)
		mu.Unlock()
	}()
	return ch
}

func (c *Client) handleNotification(data []byte) {
	msg, err := gocube.ParseMessage(data)
	if err != nil {
		return
	}

	if msg.Type == gocube.MsgTypeBattery {
		if b, err := gocube.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = b.Level
			c.mu.Unlock()
		}
	}

	c.mu.RLock()
	onMove, onMessage := c.onMove, c.onMessage
	c.mu.RUnlock()

	if onMessage != nil {
		onMessage(msg)
	}
	if onMove != nil && msg.Type == gocube.MsgTypeRotation {
		rotations, err := gocube.DecodeRotation(msg.Payload)
		if err != nil {
			return
		}
		for _, rot := range rotations {
			onMove(gocube.RotationToMove(rot))
		}
	}
}
