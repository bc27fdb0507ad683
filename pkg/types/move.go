// Package types contains shared type definitions for the nxnbld application.
package types

import (
	"fmt"
	"strings"
)

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceL Face = "L" // Left
	FaceF Face = "F" // Front
	FaceR Face = "R" // Right
	FaceB Face = "B" // Back
	FaceD Face = "D" // Down
)

// Move turns the layers [Start, End) of an N×N×N cube about Face by Count
// quarter turns. Layer 0 is the outer layer of Face.
type Move struct {
	N     int  `json:"n"`
	Face  Face `json:"face"`
	Start int  `json:"start"`
	End   int  `json:"end"`
	Count int  `json:"count"`
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	inv.Count = 4 - m.Count%4
	return inv
}

// IsRotation reports whether the move turns the whole cube.
func (m Move) IsRotation() bool {
	return m.Start == 0 && m.End == m.N
}

// Notation returns the WCA-style notation for this move.
// Examples: R, Rw', 3Rw2, r, 3-4r, M', x2. A layer range n-m names layers
// n through m counted from 1.
func (m Move) Notation() string {
	if m.Start > m.End {
		panic(fmt.Sprintf("types: move start %d after end %d", m.Start, m.End))
	}

	var sb strings.Builder
	count := m.Count % 4
	inv := false
	if count == 3 {
		count = 1
		inv = true
	}

	switch {
	case m.Start == 0 && m.End == 1:
		sb.WriteString(string(m.Face))
	case m.Start == 0 && m.End == 2:
		sb.WriteString(string(m.Face) + "w")
	case m.Start == 0 && m.End == m.N:
		c, invert := rotationLetter(m.Face)
		sb.WriteByte(c)
		inv = inv != invert
	case m.Start == 1 && m.End == m.N-1:
		c, invert := sliceLetter(m.Face)
		sb.WriteByte(c)
		inv = inv != invert
	case m.N%2 == 1 && m.Start == m.N/2 && m.End == m.N/2+1:
		c, invert := sliceLetter(m.Face)
		sb.WriteByte(c + 'a' - 'A')
		inv = inv != invert
	case m.Start == 0 && m.End > 1:
		fmt.Fprintf(&sb, "%d%sw", m.End-m.Start, m.Face)
	case m.Start == m.End-1:
		if m.Start != 1 {
			fmt.Fprintf(&sb, "%d", m.Start+1)
		}
		sb.WriteString(strings.ToLower(string(m.Face)))
	default:
		fmt.Fprintf(&sb, "%d-%d%s", m.Start+1, m.End, strings.ToLower(string(m.Face)))
	}

	if inv {
		count = 4 - count%4
	}
	switch count % 4 {
	case 0:
		sb.WriteByte('0')
	case 2:
		sb.WriteByte('2')
	case 3:
		sb.WriteByte('\'')
	}
	return sb.String()
}

// rotationLetter returns the x/y/z letter for a whole-cube turn about face
// and whether the letter turns the opposite way.
func rotationLetter(f Face) (byte, bool) {
	switch f {
	case FaceR:
		return 'x', false
	case FaceL:
		return 'x', true
	case FaceU:
		return 'y', false
	case FaceD:
		return 'y', true
	case FaceF:
		return 'z', false
	default:
		return 'z', true
	}
}

// sliceLetter returns the M/E/S letter for a slice turned with face.
func sliceLetter(f Face) (byte, bool) {
	switch f {
	case FaceL:
		return 'M', false
	case FaceR:
		return 'M', true
	case FaceD:
		return 'E', false
	case FaceU:
		return 'E', true
	case FaceF:
		return 'S', false
	default:
		return 'S', true
	}
}

// FormatMoves joins moves with single spaces.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InverseMoves returns the sequence that undoes moves.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
