// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// reduction is the outcome of reducing an induced (but not yet final) SA to
// its LMS substructure: either the LMS order is already final (sorted), or
// a reduced text over a smaller alphabet must be recursed on.
type reduction struct {
	sorted     bool
	reducedLen int32
	sigma      int32
}

// extractLMSOrder scans a freshly induced sa (seeded with an unsorted LMS
// set) and collects, into sa[0:m), every LMS position in the order the
// induction placed it — which is exactly LMS-substring order. This is
// equivalent to the bucket-by-bucket, tail-region walk in the engine's
// contract: bucket regions appear in ascending character order within sa,
// and S-type (hence LMS-eligible) entries always occupy a bucket's tail, so
// one left-to-right scan over the whole array visits them in the same
// relative order a region-by-region walk would.
func extractLMSOrder(types []byte, sa []int32) int32 {
	var m int32
	for _, p := range sa {
		if p > 0 && isLMS(types, p) {
			sa[m] = p
			m++
		}
	}
	return m
}

// charOrSentinel returns the character at position p, or a value smaller
// than every real character if p is the virtual sentinel position n. This
// lets the LMS-substring comparison below treat the sentinel uniformly
// instead of special-casing the one substring that runs up against it.
func charOrSentinel[S symbol](text []S, n, p int32) int32 {
	if p == n {
		return -1
	}
	return charAt(text, p)
}

// lmsSubstringsEqual compares the LMS substrings starting at a and b
// (both S-type positions) for exact equality: same length, same
// characters, same L/S type at every offset. Two phases mirror the
// substring's own structure — the opening S-run, then the L-run up to the
// next LMS boundary — and the loop requires both sides to cross each
// S<->L transition simultaneously. The "first L seen" shortcut is not
// sufficient on its own (it ignores the closing S character) and is
// deliberately not used here.
func lmsSubstringsEqual[S symbol](text []S, types []byte, n int32, a, b int32) bool {
	// Opening S-run, including the LMS position itself.
	for {
		if charOrSentinel(text, n, a) != charOrSentinel(text, n, b) {
			return false
		}
		ta, tb := typeAt(types, a), typeAt(types, b)
		if ta != tb {
			return false
		}
		a++
		b++
		if ta == typeL {
			break
		}
	}
	// L-run up to (excluding) the closing LMS boundary.
	for {
		ta, tb := typeAt(types, a), typeAt(types, b)
		if ta != tb {
			return false
		}
		if ta == typeS {
			break
		}
		if charOrSentinel(text, n, a) != charOrSentinel(text, n, b) {
			return false
		}
		a++
		b++
	}
	// Terminal S character closes the substring; nothing past it matters.
	return charOrSentinel(text, n, a) == charOrSentinel(text, n, b)
}

// nameLMSSubstrings assigns a name to every LMS position held in sa[0:m)
// (in induced order), writing name(sa[i]) into sa[m + sa[i]/2] — collision
// free because LMS positions are at least two apart. Equal LMS substrings
// share a name; names are assigned 0, 1, 2, ... in induced order,
// incremented whenever a substring differs from its induced predecessor.
// It returns the reduced alphabet size (one past the largest name used).
func nameLMSSubstrings[S symbol](text []S, types []byte, n int32, sa []int32, m int32) int32 {
	for i := m; i < int32(len(sa)); i++ {
		sa[i] = emptySlot
	}

	var name int32
	sa[m+sa[0]/2] = name
	for i := int32(1); i < m; i++ {
		if !lmsSubstringsEqual(text, types, n, sa[i-1], sa[i]) {
			name++
		}
		sa[m+sa[i]/2] = name
	}
	return name + 1
}

// compactNames scans the named slots sa[m:] left to right (i.e. in
// original text order, since the slot for LMS position p lives at p/2) and
// packs the m assigned names into a reduced text, recording at sa[m+j] the
// p/2 key each name came from so the recursion's result can be mapped back
// to original positions afterward.
func compactNames(sa []int32, m int32) []int32 {
	reduced := make([]int32, m)
	var j int32
	for k := int32(0); j < m; k++ {
		name := sa[m+k]
		if name == emptySlot {
			continue
		}
		reduced[j] = name
		sa[m+j] = k
		j++
	}
	return reduced
}

// reduce implements the full §4.5 pipeline: extract LMS order, name LMS
// substrings, and decide whether the induced order is already final or a
// reduced text must be recursed on. sa must already hold a full induced SA
// seeded with the (unsorted) LMS-enumerator order.
func reduce[S symbol](text []S, types []byte, sa []int32) (reduction, []int32) {
	n := int32(len(text))
	m := extractLMSOrder(types, sa)
	if m < 2 {
		return reduction{sorted: true, reducedLen: m}, nil
	}

	sigma := nameLMSSubstrings(text, types, n, sa, m)
	if sigma == m {
		return reduction{sorted: true, reducedLen: m}, nil
	}

	reducedText := compactNames(sa, m)
	return reduction{sorted: false, reducedLen: m, sigma: sigma}, reducedText
}
