// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// build is the SA-IS recursion driver. It writes the sorted suffix
// permutation of text into sa (which must have length equal to len(text))
// and recurses on a reduced alphabet whenever the LMS substrings of this
// level are not already pairwise distinct.
//
// sa doubles as scratch space for the whole duration of this call: it
// holds the provisional induced order, then the LMS names keyed by
// position/2, then the reduced-to-original recovery table, before finally
// holding the permutation it returns. The recursive call on a reduced
// level reuses the same backing array via sa[:m], per §5's shared-buffer
// model — the child owns that sub-slice exclusively for its call and hands
// it back holding its own sorted LMS order.
func build[S symbol](text []S, sigma int32, sa []int32) {
	n := int32(len(text))
	assertf(n == int32(len(sa)), "suffixarr: sa length %d does not match text length %d", len(sa), n)
	if n == 0 {
		panic("suffixarr: empty text")
	}
	if n == 1 {
		sa[0] = 0
		return
	}

	types, bucketSize := classify(text, sigma)
	assertSum(bucketSize, n)

	lms := collectLMS(types, n)
	induceSort(text, types, bucketSize, sa, lms, false)

	red, reducedText := reduce(text, types, sa)
	m := red.reducedLen
	assertf(m <= n/2, "suffixarr: LMS count %d exceeds n/2 for n=%d", m, n)

	if !red.sorted {
		build(reducedText, red.sigma, sa[:m])
		mapReducedToOriginal(types, sa, m)
	}

	sortedLMS := make([]int32, m)
	copy(sortedLMS, sa[:m])
	induceSort(text, types, bucketSize, sa, sortedLMS, true)
}

// mapReducedToOriginal turns sa[0:m), which after the recursive call holds
// the suffix array of the reduced text (each entry a text-order LMS
// index), back into original text positions using the recovery table the
// reducer left at sa[m:2m). LMS positions are always >= 2 apart, so each
// original position was stored as position/2 during naming; recovering
// the low bit compares against the L/S type, since an LMS position is
// always S-type.
func mapReducedToOriginal(types []byte, sa []int32, m int32) {
	for i := int32(0); i < m; i++ {
		j := sa[i]
		half := sa[m+j]
		p := 2 * half
		if typeAt(types, p) != typeS {
			p++
		}
		sa[i] = p
	}
}
