// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// emptySlot marks an as-yet-unplaced entry in the SA scratch buffer. It is
// distinct from every valid position (which are all >= 0), so a single
// "p <= 0" guard during induction skips both untouched slots and position 0
// (which never has a meaningful predecessor p-1).
const emptySlot int32 = -1

// induceSort performs the two-pass (L then S) induction described in the
// engine's contract: given the L/S types, the bucket frequency table, and a
// seed set of LMS positions, it fills sa with a full permutation of [0, n)
// in which L-suffixes are in final ascending order within their bucket and,
// after the S pass, S-suffixes are too.
//
// When sorted is false, lmsSeed is consumed in the order given (the lazy
// LMS-enumerator order); this yields correct bucketing but not correct
// intra-bucket order, which is exactly enough for the reducer to recover
// the LMS-substring order. When sorted is true, lmsSeed must already be the
// true ascending SA order of the LMS suffixes, and is walked in reverse so
// that order survives being pushed onto the tail of each bucket.
func induceSort[S symbol](text []S, types []byte, bucketSize []int32, sa []int32, lmsSeed []int32, sorted bool) {
	n := int32(len(text))
	for i := range sa {
		sa[i] = emptySlot
	}

	tails := bucketTails(bucketSize)
	if sorted {
		for i := len(lmsSeed) - 1; i >= 0; i-- {
			p := lmsSeed[i]
			c := charAt(text, p)
			sa[tails[c]] = p
			tails[c]--
		}
	} else {
		for _, p := range lmsSeed {
			c := charAt(text, p)
			sa[tails[c]] = p
			tails[c]--
		}
	}

	heads := bucketHeads(bucketSize)
	last := n - 1
	lastChar := charAt(text, last)
	sa[heads[lastChar]] = last
	heads[lastChar]++

	// L-induction: left to right over the whole array. Because bucket
	// regions are laid out in ascending character order and head pointers
	// only ever advance to slots not yet visited by the scan, a single pass
	// over sa is equivalent to visiting every non-empty bucket in ascending
	// order and scanning its head region left to right, including entries
	// appended during the same pass.
	for i := int32(0); i < n; i++ {
		p := sa[i]
		if p <= 0 {
			continue
		}
		if typeAt(types, p-1) == typeL {
			c := charAt(text, p-1)
			sa[heads[c]] = p - 1
			heads[c]++
		}
	}

	// S-induction: right to left, symmetric to the L pass above.
	tails = bucketTails(bucketSize)
	for i := n - 1; i >= 0; i-- {
		p := sa[i]
		if p <= 0 {
			continue
		}
		if typeAt(types, p-1) == typeS {
			c := charAt(text, p-1)
			sa[tails[c]] = p - 1
			tails[c]--
		}
	}
}
