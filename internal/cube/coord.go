package cube

import "lukechampine.com/uint128"

// lehmerRank returns the factorial-base rank of perm: the sum over i of the
// number of earlier elements greater than perm[i], times i!.
func lehmerRank(perm []int) uint64 {
	var x uint64
	for i := len(perm) - 1; i >= 1; i-- {
		var s uint64
		for j := i - 1; j >= 0; j-- {
			if perm[j] > perm[i] {
				s++
			}
		}
		x = (x + s) * uint64(i)
	}
	return x
}

// lehmerUnrank inverts lehmerRank for a permutation of n elements.
func lehmerUnrank(x uint64, n int) []int {
	order := make([]int, n)
	for i := range n {
		order[i] = int(x % uint64(i+1))
		x /= uint64(i + 1)
	}
	return permutationFromDigits(order)
}

// lehmerRank128 is lehmerRank for permutations too long for 64 bits.
func lehmerRank128(perm []int) uint128.Uint128 {
	x := uint128.Zero
	for i := len(perm) - 1; i >= 1; i-- {
		var s uint64
		for j := i - 1; j >= 0; j-- {
			if perm[j] > perm[i] {
				s++
			}
		}
		x = x.Add64(s).Mul64(uint64(i))
	}
	return x
}

// lehmerUnrank128 inverts lehmerRank128.
func lehmerUnrank128(x uint128.Uint128, n int) []int {
	order := make([]int, n)
	for i := range n {
		var r uint64
		x, r = x.QuoRem64(uint64(i + 1))
		order[i] = int(r)
	}
	return permutationFromDigits(order)
}

// permutationFromDigits rebuilds a permutation from its factorial-base
// digits, consuming order.
func permutationFromDigits(order []int) []int {
	n := len(order)
	used := make([]bool, n)
	res := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		k := n - 1
		for used[k] {
			k--
		}
		for ; order[i] > 0; order[i]-- {
			k--
			for used[k] {
				k--
			}
		}
		res[i] = k
		used[k] = true
	}
	return res
}

// encodeOrientation packs orientation digits little-endian in base.
func encodeOrientation[O ~uint8](ori []O, base int) uint16 {
	var x, pow uint16 = 0, 1
	for _, o := range ori {
		x += uint16(o) * pow
		pow *= uint16(base)
	}
	return x
}

// decodeOrientation unpacks n-1 digits and derives the last so the digits
// sum to zero modulo base.
func decodeOrientation(x uint16, base, n int) []uint8 {
	res := make([]uint8, n)
	sum := 0
	for i := range n - 1 {
		d := int(x) % base
		res[i] = uint8(d)
		sum += d
		x /= uint16(base)
	}
	res[n-1] = uint8((base - sum%base) % base)
	return res
}

// permutationParity reports whether perm is odd.
func permutationParity(perm []int) bool {
	odd := false
	seen := make([]bool, len(perm))
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			odd = !odd
		}
	}
	return odd
}
