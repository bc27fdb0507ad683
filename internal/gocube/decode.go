package gocube

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is a GoCube center color, in the cube's wire order.
type Color uint8

const (
	Blue Color = iota
	Green
	White
	Yellow
	Red
	Orange
)

var colorNames = [6]string{"blue", "green", "white", "yellow", "red", "orange"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// RotationEvent is a single face rotation reported by the cube.
type RotationEvent struct {
	FaceCode          byte // color*2, plus 1 if counter-clockwise
	CenterOrientation byte
	Clockwise         bool
	Color             Color
}

// BatteryEvent is a battery level notification.
type BatteryEvent struct {
	Level int // 0-100
}

// CubeTypeEvent is a cube type notification.
type CubeTypeEvent struct {
	TypeCode byte
	TypeName string
}

// OrientationEvent is a raw orientation quaternion and the faces it points
// up and toward the solver.
type OrientationEvent struct {
	X, Y, Z, W float64

	UpFace    string
	FrontFace string
}

// OfflineStatsEvent holds the counters the cube keeps while disconnected.
type OfflineStatsEvent struct {
	Moves  int
	Time   int // seconds
	Solves int
}

// DecodeRotation decodes a rotation payload made of
// [face code] [center orientation] pairs.
func DecodeRotation(payload []byte) ([]RotationEvent, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("%w: rotation payload has odd length %d", ErrInvalidPayload, len(payload))
	}

	events := make([]RotationEvent, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		color := Color(code / 2)
		if color > Orange {
			return nil, fmt.Errorf("%w: unknown face code 0x%02X", ErrInvalidPayload, code)
		}
		events = append(events, RotationEvent{
			FaceCode:          code,
			CenterOrientation: payload[i+1],
			Clockwise:         code%2 == 0,
			Color:             color,
		})
	}
	return events, nil
}

// DecodeBattery decodes a battery payload.
func DecodeBattery(payload []byte) (*BatteryEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: battery payload too short", ErrInvalidPayload)
	}
	return &BatteryEvent{Level: int(payload[0])}, nil
}

// DecodeCubeType decodes a cube type payload.
func DecodeCubeType(payload []byte) (*CubeTypeEvent, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: cube type payload too short", ErrInvalidPayload)
	}
	name := "standard"
	if payload[0] == 0x01 {
		name = "edge"
	}
	return &CubeTypeEvent{TypeCode: payload[0], TypeName: name}, nil
}

// DecodeOrientation decodes an ASCII "x#y#z#w" orientation payload.
func DecodeOrientation(payload []byte) (*OrientationEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: orientation has %d parts, want 4", ErrInvalidPayload, len(parts))
	}
	// The last part can carry trailing frame bytes.
	parts[3] = leadingNumber(parts[3])

	var q [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: orientation component %d: %v", ErrInvalidPayload, i, err)
		}
		q[i] = v
	}

	e := &OrientationEvent{X: q[0], Y: q[1], Z: q[2], W: q[3]}
	e.UpFace, e.FrontFace = quaternionToFaces(e.X, e.Y, e.Z, e.W)
	return e, nil
}

func leadingNumber(s string) string {
	end := 0
	for i, r := range s {
		if (r == '-' && i == 0) || r == '.' || (r >= '0' && r <= '9') {
			end = i + 1
			continue
		}
		break
	}
	return s[:end]
}

// quaternionToFaces rotates the up (0,1,0) and front (0,0,1) vectors by the
// normalized quaternion and names the faces they point at.
func quaternionToFaces(x, y, z, w float64) (up, front string) {
	if mag := math.Sqrt(x*x + y*y + z*z + w*w); mag > 0 {
		x, y, z, w = x/mag, y/mag, z/mag, w/mag
	}

	up = vectorToFace(2*(x*y-w*z), 1-2*(x*x+z*z), 2*(y*z+w*x))
	front = vectorToFace(2*(x*z+w*y), 2*(y*z-w*x), 1-2*(x*x+y*y))
	return up, front
}

func vectorToFace(x, y, z float64) string {
	ax, ay, az := math.Abs(x), math.Abs(y), math.Abs(z)
	switch {
	case ay >= ax && ay >= az:
		if y > 0 {
			return "U"
		}
		return "D"
	case az >= ax:
		if z > 0 {
			return "F"
		}
		return "B"
	case x > 0:
		return "R"
	default:
		return "L"
	}
}

// DecodeOfflineStats decodes an ASCII "moves#time#solves" payload.
func DecodeOfflineStats(payload []byte) (*OfflineStatsEvent, error) {
	parts := strings.Split(string(payload), "#")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: offline stats has %d parts, want 3", ErrInvalidPayload, len(parts))
	}

	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: offline stats field %d: %v", ErrInvalidPayload, i, err)
		}
		v[i] = n
	}
	return &OfflineStatsEvent{Moves: v[0], Time: v[1], Solves: v[2]}, nil
}
