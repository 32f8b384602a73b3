// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// L/S type of a text position. typeNA occupies index 0 of a types array so
// that "type of position pos-1" can be read as types[pos] without a branch
// on pos==0 — LMS positions are never 0, so typeNA is never consulted as a
// real previous-type.
const (
	typeNA byte = iota
	typeL
	typeS
)

// classify scans text right to left and returns:
//   - types: L/S type of every position, offset by one (types[p+1] is the
//     type of position p; types[0] is typeNA; types[n+1] is the type of the
//     virtual sentinel, always typeS).
//   - bucketSize: character frequency counts, bucketSize[c] = |{p : T[p]=c}|.
//
// Position n-1 is always typeL; the sentinel past the end of text is always
// typeS.
func classify[S symbol](text []S, sigma int32) (types []byte, bucketSize []int32) {
	n := int32(len(text))
	types = make([]byte, n+2)
	bucketSize = make([]int32, sigma)

	types[n+1] = typeS // virtual sentinel at position n
	types[n] = typeL    // position n-1
	bucketSize[charAt(text, n-1)]++

	for p := n - 2; p >= 0; p-- {
		c, next := charAt(text, p), charAt(text, p+1)
		switch {
		case c < next:
			types[p+1] = typeS
		case c > next:
			types[p+1] = typeL
		default:
			types[p+1] = types[p+2]
		}
		bucketSize[c]++
	}
	return types, bucketSize
}

// typeAt returns the L/S type of position p, where p ranges over [0, n]
// (n being the virtual sentinel position). Passing p == -1 is invalid and
// never happens: LMS positions are always >= 1, so "typeAt(p-1)" is never
// called with p == 0.
func typeAt(types []byte, p int32) byte {
	return types[p+1]
}

// isLMS reports whether position p (1 <= p < n) is a leftmost S-type
// position: S-type itself, preceded by an L-type position.
func isLMS(types []byte, p int32) bool {
	return typeAt(types, p) == typeS && typeAt(types, p-1) == typeL
}

// bucketHeads returns, for each non-empty character, the index of the next
// free head slot in its bucket (ascending prefix sum of bucketSize).
func bucketHeads(bucketSize []int32) []int32 {
	heads := make([]int32, len(bucketSize))
	var offset int32
	for c, n := range bucketSize {
		heads[c] = offset
		offset += n
	}
	return heads
}

// bucketTails returns, for each character, the index of the last slot in
// its bucket (inclusive), used as the next free tail slot before any entry
// is pushed.
func bucketTails(bucketSize []int32) []int32 {
	tails := make([]int32, len(bucketSize))
	var offset int32
	for c, n := range bucketSize {
		offset += n
		tails[c] = offset - 1
	}
	return tails
}
