package gocube

import (
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

// ColorFaces maps center colors to faces with white on top and green in
// front.
var ColorFaces = [6]types.Face{
	Blue:   types.FaceB,
	Green:  types.FaceF,
	White:  types.FaceU,
	Yellow: types.FaceD,
	Red:    types.FaceR,
	Orange: types.FaceL,
}

// Size is the only cube size the GoCube comes in.
const Size = 3

// RotationToMove converts a rotation event to an outer-layer 3x3 quarter turn.
func RotationToMove(rot RotationEvent) types.Move {
	count := 1
	if !rot.Clockwise {
		count = 3
	}
	return types.Move{N: Size, Face: ColorFaces[rot.Color], Start: 0, End: 1, Count: count}
}

// RotationsToMoves converts rotation events to moves, merging adjacent turns
// of the same face (R R becomes R2, R R' disappears).
func RotationsToMoves(rotations []RotationEvent) []types.Move {
	c := notation.NewCanceler()
	for _, rot := range rotations {
		c.Push(RotationToMove(rot))
	}
	return c.Moves()
}

// DecodeMoves parses a raw notification and returns the moves it carries.
// Non-rotation messages yield no moves.
func DecodeMoves(data []byte) ([]types.Move, error) {
	msg, err := ParseMessage(data)
	if err != nil {
		return nil, err
	}
	if msg.Type != MsgTypeRotation {
		return nil, nil
	}
	rotations, err := DecodeRotation(msg.Payload)
	if err != nil {
		return nil, err
	}
	moves := make([]types.Move, len(rotations))
	for i, rot := range rotations {
		moves[i] = RotationToMove(rot)
	}
	return moves, nil
}
