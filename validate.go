// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "fmt"

// validateSA confirms sa is a valid suffix array of text: a permutation of
// [0, n) whose entries' first characters never decrease and such that,
// within every run of entries sharing the same first character,
// ISA[SA[i]+1] is strictly increasing (the suffix ending
// exactly at the text's end is treated as smaller than every other
// suffix, since it has no SA[i]+1 entry of its own).
func validateSA[S symbol](text []S, sa []int32) error {
	n := int32(len(text))
	if int32(len(sa)) != n {
		return fmt.Errorf("suffixarr: suffix array has length %d, want %d", len(sa), n)
	}

	isa := make([]int32, n)
	seen := make([]bool, n)
	for i, p := range sa {
		if p < 0 || p >= n {
			return fmt.Errorf("suffixarr: suffix array entry %d out of range [0,%d)", p, n)
		}
		if seen[p] {
			return fmt.Errorf("suffixarr: position %d appears more than once in suffix array", p)
		}
		seen[p] = true
		isa[p] = int32(i)
	}

	rankAfter := func(p int32) int32 {
		if p+1 == n {
			return -1
		}
		return isa[p+1]
	}

	for i := int32(0); i < n-1; i++ {
		a, b := sa[i], sa[i+1]
		if ca, cb := charAt(text, a), charAt(text, b); ca != cb {
			if ca > cb {
				return fmt.Errorf("suffixarr: suffixes at positions %d and %d are out of order", a, b)
			}
			continue
		}
		if rankAfter(a) >= rankAfter(b) {
			return fmt.Errorf("suffixarr: suffixes at positions %d and %d are out of order", a, b)
		}
	}
	return nil
}

// Validate confirms that sa is the correct suffix array of text: a
// permutation of [0, len(text)) such that the suffixes it orders are in
// strict ascending lexicographic order. It is part of the library's
// external boundary (useful both in tests and for callers that want to
// double-check a suffix array obtained from elsewhere).
func Validate(text []byte, sa []int32) error {
	return validateSA(text, sa)
}
