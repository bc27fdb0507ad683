package cube

import (
	"fmt"
	"math/rand/v2"
)

// NewRNG returns the deterministic generator used for seeded states and
// scrambles.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a uniformly shuffled n cube for seed. Corner and edge
// permutations share one parity; wing, center and oblique parities are drawn
// independently.
func NewRandom(n int, seed uint64) *Cube {
	if n < 1 {
		panic(fmt.Sprintf("cube: invalid size %d", n))
	}
	rng := NewRNG(seed)

	cornerEdgeParity := rng.IntN(2) != 0
	leftObliqueParity := rng.IntN(2) != 0
	rightObliqueParity := rng.IntN(2) != 0
	wingParity := rng.IntN(2) != 0
	tcenterParity := rng.IntN(2) != 0
	xcenterParity := rng.IntN(2) != 0

	c := &Cube{N: n}
	c.Corners.Permutation = SolvedCornerPermutation
	shuffle(rng, c.Corners.Permutation[:], cornerEdgeParity)
	c.Corners.Orientation = randomCornerOrientation(rng)
	c.Edges.Permutation = SolvedEdgePermutation
	shuffle(rng, c.Edges.Permutation[:], cornerEdgeParity)
	c.Edges.Orientation = randomEdgeOrientation(rng)

	c.Layers = make([]Layer, numLayers(n))
	for i := range c.Layers {
		layer := &c.Layers[i]
		layer.Obliques = make([]ObliquesPair, i)
		for j := range layer.Obliques {
			pair := &layer.Obliques[j]
			pair.Left.Permutation = SolvedEdgeStickers
			shuffle(rng, pair.Left.Permutation[:], leftObliqueParity)
			pair.Right.Permutation = SolvedEdgeStickers
			shuffle(rng, pair.Right.Permutation[:], rightObliqueParity)
		}
		layer.Wings.Permutation = SolvedEdgeStickers
		shuffle(rng, layer.Wings.Permutation[:], wingParity)
		layer.TCenters.Permutation = SolvedEdgeStickers
		shuffle(rng, layer.TCenters.Permutation[:], tcenterParity)
		layer.XCenters.Permutation = SolvedCornerStickers
		shuffle(rng, layer.XCenters.Permutation[:], xcenterParity)
	}
	return c
}

// shuffle is a Fisher-Yates shuffle that swaps the first two elements when
// needed so that the number of transpositions is even exactly when even is
// set.
func shuffle[T any](rng *rand.Rand, arr []T, even bool) {
	swaps := 0
	for i := len(arr) - 1; i >= 1; i-- {
		j := rng.IntN(i + 1)
		arr[i], arr[j] = arr[j], arr[i]
		if i != j {
			swaps++
		}
	}
	if (swaps%2 == 0) != even {
		arr[0], arr[1] = arr[1], arr[0]
	}
}

func randomCornerOrientation(rng *rand.Rand) [8]CornerOrientation {
	var ori [8]CornerOrientation
	sum := 0
	for i := range 7 {
		ori[i] = CornerOrientationFromIndex(rng.IntN(3))
		sum += ori[i].Index()
	}
	ori[7] = CornerOrientationFromIndex(sum).Neg()
	return ori
}

func randomEdgeOrientation(rng *rand.Rand) [12]EdgeOrientation {
	var ori [12]EdgeOrientation
	sum := 0
	for i := range 11 {
		ori[i] = EdgeOrientationFromIndex(rng.IntN(2))
		sum += ori[i].Index()
	}
	ori[11] = EdgeOrientationFromIndex(sum)
	return ori
}
