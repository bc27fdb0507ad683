// Package gocube decodes the GoCube smart cube BLE protocol and translates
// its face rotations into moves.
package gocube

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message types.
const (
	MsgTypeRotation     byte = 0x01
	MsgTypeState        byte = 0x02
	MsgTypeOrientation  byte = 0x03
	MsgTypeBattery      byte = 0x05
	MsgTypeOfflineStats byte = 0x07
	MsgTypeCubeType     byte = 0x08
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery       byte = 0x32
	CmdRequestState         byte = 0x33
	CmdReboot               byte = 0x34
	CmdResetSolved          byte = 0x35
	CmdDisableOrientation   byte = 0x37
	CmdEnableOrientation    byte = 0x38
	CmdRequestOfflineStats  byte = 0x39
	CmdFlashBacklight       byte = 0x41
	CmdToggleAnimatedBL     byte = 0x42
	CmdSlowFlashBacklight   byte = 0x43
	CmdToggleBacklight      byte = 0x44
	CmdRequestCubeType      byte = 0x56
	CmdCalibrateOrientation byte = 0x57
)

// Frame bytes.
const (
	FramePrefix  byte = 0x2A // '*'
	FrameSuffix1 byte = 0x0D // CR
	FrameSuffix2 byte = 0x0A // LF
)

var (
	ErrInvalidPrefix   = errors.New("gocube: invalid message prefix")
	ErrInvalidSuffix   = errors.New("gocube: invalid message suffix")
	ErrInvalidChecksum = errors.New("gocube: invalid checksum")
	ErrMessageTooShort = errors.New("gocube: message too short")
	ErrInvalidLength   = errors.New("gocube: invalid message length")
	ErrInvalidPayload  = errors.New("gocube: invalid payload")
)

// Message is one parsed notification.
type Message struct {
	Type      byte
	Payload   []byte
	RawBase64 string // raw frame, for logging
}

// ParseMessage parses a raw BLE notification.
//
// Frame: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]. The
// length byte counts everything after itself. The checksum is the byte sum of
// everything before it.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}
	if data[0] != FramePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	expectedLen := 2 + length
	if len(data) < expectedLen {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, expectedLen, len(data))
	}

	checksumIdx := expectedLen - 3
	if checksumIdx < 3 {
		return nil, ErrMessageTooShort
	}
	if data[checksumIdx+1] != FrameSuffix1 || data[checksumIdx+2] != FrameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var checksum byte
	for _, b := range data[:checksumIdx] {
		checksum += b
	}
	if checksum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], checksum)
	}

	return &Message{
		Type:      data[2],
		Payload:   data[3:checksumIdx],
		RawBase64: base64.StdEncoding.EncodeToString(data[:expectedLen]),
	}, nil
}

// BuildCommand frames a payload-less command as
// [0x2A] [0x01] [cmd] [checksum] [0x0D 0x0A]. Unlike notifications, the
// cube expects a length byte of 1 here.
func BuildCommand(cmd byte) []byte {
	const length byte = 0x01
	checksum := FramePrefix + length + cmd
	return []byte{FramePrefix, length, cmd, checksum, FrameSuffix1, FrameSuffix2}
}

// MessageTypeName returns a human-readable name for a message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeOfflineStats:
		return "offline_stats"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
