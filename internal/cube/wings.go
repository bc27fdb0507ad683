package cube

import (
	"fmt"

	"lukechampine.com/uint128"
)

// WingSticker identifies one of the 48 wing sticker positions of a layer.
// Index 2k is the left-handed wing of edge sticker k, 2k+1 the right-handed
// one.
type WingSticker uint8

const (
	WingUbr WingSticker = iota
	WingBur
	WingUrf
	WingRuf
	WingUfl
	WingFul
	WingUlb
	WingLub
	WingLuf
	WingUlf
	WingLfd
	WingFld
	WingLdb
	WingDlb
	WingLbu
	WingBlu
	WingFur
	WingUfr
	WingFrd
	WingRfd
	WingFdl
	WingDfl
	WingFlu
	WingLfu
	WingRub
	WingUrb
	WingRbd
	WingBrd
	WingRdf
	WingDrf
	WingRfu
	WingFru
	WingBul
	WingUbl
	WingBld
	WingLbd
	WingBdr
	WingDbr
	WingBru
	WingRbu
	WingDfr
	WingFdr
	WingDrb
	WingRdb
	WingDbl
	WingBdl
	WingDlf
	WingLdf
)

var wingStickerNames = [48]string{
	"Ubr", "Bur", "Urf", "Ruf", "Ufl", "Ful", "Ulb", "Lub",
	"Luf", "Ulf", "Lfd", "Fld", "Ldb", "Dlb", "Lbu", "Blu",
	"Fur", "Ufr", "Frd", "Rfd", "Fdl", "Dfl", "Flu", "Lfu",
	"Rub", "Urb", "Rbd", "Brd", "Rdf", "Drf", "Rfu", "Fru",
	"Bul", "Ubl", "Bld", "Lbd", "Bdr", "Dbr", "Bru", "Rbu",
	"Dfr", "Fdr", "Drb", "Rdb", "Dbl", "Bdl", "Dlf", "Ldf",
}

// wingByPermutationAndHandedness maps an edge sticker and handedness to the
// wing on that sticker's face.
var wingByPermutationAndHandedness = [24][2]WingSticker{
	{WingUbr, WingUbl},
	{WingUrf, WingUrb},
	{WingUfl, WingUfr},
	{WingUlb, WingUlf},
	{WingLuf, WingLub},
	{WingLfd, WingLfu},
	{WingLdb, WingLdf},
	{WingLbu, WingLbd},
	{WingFur, WingFul},
	{WingFrd, WingFru},
	{WingFdl, WingFdr},
	{WingFlu, WingFld},
	{WingRub, WingRuf},
	{WingRbd, WingRbu},
	{WingRdf, WingRdb},
	{WingRfu, WingRfd},
	{WingBul, WingBur},
	{WingBld, WingBlu},
	{WingBdr, WingBdl},
	{WingBru, WingBrd},
	{WingDfr, WingDfl},
	{WingDrb, WingDrf},
	{WingDbl, WingDbr},
	{WingDlf, WingDlb},
}

// WingStickerFromIndex returns the wing with index i.
func WingStickerFromIndex(i int) WingSticker {
	if i < 0 || i >= 48 {
		panic(fmt.Sprintf("cube: wing sticker index %d out of range", i))
	}
	return WingSticker(i)
}

// WingStickerOnFace returns the wing of handedness h lying on the face of
// edge sticker p.
func WingStickerOnFace(p EdgeSticker, h Handedness) WingSticker {
	return wingByPermutationAndHandedness[p][h]
}

// WingStickerIgnoring returns the wing 2*p+h, which may lie on the other
// face of p's edge.
func WingStickerIgnoring(p EdgeSticker, h Handedness) WingSticker {
	return WingSticker(int(p)*2 + int(h))
}

func (w WingSticker) Index() int { return int(w) }

func (w WingSticker) String() string { return wingStickerNames[w] }

// Permutation returns the edge sticker whose slot the wing belongs to.
func (w WingSticker) Permutation() EdgeSticker { return EdgeSticker(w / 2) }

// Handedness reports which wing of the pair w is.
func (w WingSticker) Handedness() Handedness { return Handedness(w % 2) }

// EdgeSticker returns the edge sticker on the same face as w.
func (w WingSticker) EdgeSticker() EdgeSticker {
	if w.Handedness() == LeftHanded {
		return w.Permutation()
	}
	return w.Permutation().Flipped()
}

// Color is the face the wing shows when solved.
func (w WingSticker) Color() Face { return w.EdgeSticker().Color() }

// LH returns the left-handed wing of the same slot.
func (w WingSticker) LH() WingSticker { return w &^ 1 }

// RH returns the right-handed wing of the same slot.
func (w WingSticker) RH() WingSticker { return w | 1 }

// WithHandedness returns the wing of the same slot with handedness h.
func (w WingSticker) WithHandedness(h Handedness) WingSticker {
	if h == LeftHanded {
		return w.LH()
	}
	return w.RH()
}

// WingSliceCycleLH returns the wing slots moved by a slice turn parallel to
// face, left-handed variant.
func WingSliceCycleLH(face Face) [4]EdgeSticker {
	var cycle [4]EdgeSticker
	for i, a := range face.Neighbors() {
		cycle[i] = EdgeStickerFromFaces(a, a.mustCrossLH(face))
	}
	return cycle
}

// WingSliceCycleRH is the right-handed counterpart of WingSliceCycleLH.
func WingSliceCycleRH(face Face) [4]EdgeSticker {
	var cycle [4]EdgeSticker
	for i, a := range face.Neighbors() {
		cycle[i] = EdgeStickerFromFaces(a, a.mustCrossRH(face))
	}
	return cycle
}

// Wings holds the wing permutation of one layer. Each of the 24 slots is
// keyed by an edge sticker and holds the edge sticker now occupying it.
type Wings struct {
	Permutation [24]EdgeSticker
}

// NewWings returns solved wings.
func NewWings() Wings {
	return Wings{Permutation: SolvedEdgeStickers}
}

// At returns the wing currently shown at position.
func (w *Wings) At(position WingSticker) WingSticker {
	return WingStickerIgnoring(w.Permutation[position.LH().Permutation()], position.Handedness())
}

// Cycle moves the wing in slot positions[i] to positions[i+count].
func (w *Wings) Cycle(positions []EdgeSticker, count int) {
	stickerCycle(&w.Permutation, positions, count)
}

// RotateFace turns the wings of face by count quarter turns.
func (w *Wings) RotateFace(face Face, count int) {
	cycle := EdgeFaceCycle(face)
	w.Cycle(cycle[:], count)
	flipped := EdgeSliceCenterCycle(face)
	w.Cycle(flipped[:], count)
}

// AreSolved reports whether every wing is in its own slot.
func (w *Wings) AreSolved() bool {
	return w.Permutation == SolvedEdgeStickers
}

// PermutationCoordinate returns the Lehmer rank of the wing permutation.
func (w *Wings) PermutationCoordinate() uint128.Uint128 {
	return lehmerRank128(stickerIndices(w.Permutation[:]))
}

// WingsFromCoordinate inverts Wings.PermutationCoordinate.
func WingsFromCoordinate(coord uint128.Uint128) Wings {
	var w Wings
	for i, p := range lehmerUnrank128(coord, 24) {
		w.Permutation[i] = EdgeSticker(p)
	}
	return w
}
