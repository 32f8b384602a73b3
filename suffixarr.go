// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"iter"
	"slices"
	"sort"
	"unicode/utf8"
)

// sep is a special character used to separate strings in the generalized suffix array.
// It is chosen from the Unicode Private Use Area (PUA), U+E000, to avoid
// conflicts with actual text characters.
const sep int32 = 0xE000

// SuffixArray holds a text and its suffix array. Every constructor below
// guarantees a non-empty text: a suffix array over zero suffixes is not a
// degenerate result, it's a caller error (see build.go's own n==0 panic).
type SuffixArray struct {
	text, sa []int32
}

// Build constructs a suffix array directly from a byte string. The
// alphabet is fixed at 256 (every byte value is a potential character),
// so the engine runs over the raw bytes with no remapping pass.
func Build(text []byte) *SuffixArray {
	assertf(len(text) >= 1, "suffixarr: Build requires a non-empty text")
	n := int32(len(text))
	sa := make([]int32, n)
	if n > 1 {
		build(text, 256, sa)
	}
	widened := make([]int32, n)
	for i, c := range text {
		widened[i] = int32(c)
	}
	return &SuffixArray{widened, sa}
}

// New creates a suffix array for the given text. The text's alphabet may
// be sparse or unbounded (arbitrary int32 values, as produced by rune
// conversion or GSA separators); computeSA remaps it to a dense alphabet
// before construction so bucket tables stay proportional to text length
// rather than to the raw value range.
func New(text []int32) *SuffixArray {
	return &SuffixArray{text, computeSA(text)}
}

// computeSA builds the suffix array of an int32 text of unknown alphabet
// density. It first compresses the alphabet to a dense range [0, k) via a
// sort-and-rank pass — an order-preserving relabeling, so every
// lexicographic comparison the engine makes is unaffected — then runs the
// same build() engine used for byte text. Without this pass a single GSA
// separator (U+E000) or a handful of high code points would force bucket
// tables sized to the raw value range instead of to n.
func computeSA(text []int32) []int32 {
	assertf(len(text) >= 1, "suffixarr: computeSA requires a non-empty text")
	n := int32(len(text))
	sa := make([]int32, n)
	if n == 1 {
		return sa
	}

	uniq := slices.Clone(text)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	dense := make([]int32, n)
	for i, c := range text {
		dense[i] = int32(sort.Search(len(uniq), func(j int) bool { return uniq[j] >= c }))
	}

	build(dense, int32(len(uniq)), sa)
	return sa
}

// AsSlice returns a read-only view of the suffix array: a permutation of
// [0, n) in ascending suffix order.
func (s *SuffixArray) AsSlice() []int32 {
	return s.sa
}

// All returns the suffix array positions in ascending suffix order,
// paired with their rank.
func (s *SuffixArray) All() iter.Seq2[int, int32] {
	return func(yield func(int, int32) bool) {
		for i, p := range s.sa {
			if !yield(i, p) {
				return
			}
		}
	}
}

// comparePrefix orders a suffix against a prefix: equal up to the
// shorter of the two lengths, a suffix that runs out first (is itself a
// strict prefix of prefix) sorts before it, and a suffix that still
// agrees with prefix after matching prefix's full length counts as
// "found" (0) regardless of how much of the suffix is left over.
func comparePrefix(suf, prefix []int32) int {
	n := min(len(suf), len(prefix))
	if c := slices.Compare(suf[:n], prefix[:n]); c != 0 {
		return c
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// search returns the half-open range of rank positions in s.AsSlice()
// whose suffixes start with prefix, via two binary searches over
// comparePrefix's ordering.
func (s *SuffixArray) search(prefix []int32) (lo, hi int) {
	if len(prefix) == 0 {
		return 0, len(s.sa)
	}
	sa := s.AsSlice()
	lo = sort.Search(len(sa), func(i int) bool {
		return comparePrefix(s.text[sa[i]:], prefix) >= 0
	})
	hi = lo + sort.Search(len(sa)-lo, func(i int) bool {
		return comparePrefix(s.text[sa[lo+i]:], prefix) > 0
	})
	return lo, hi
}

// Lookup finds suffixes starting with the given prefix, in ascending
// suffix-array (lexicographic) order.
func (s *SuffixArray) Lookup(prefix []int32) []int32 {
	lo, hi := s.search(prefix)
	return s.AsSlice()[lo:hi]
}

// LookupTextOrder finds suffixes starting with the prefix, sorted by
// their position in the original text rather than by rank.
func (s *SuffixArray) LookupTextOrder(prefix []int32) []int32 {
	cp := slices.Clone(s.Lookup(prefix))
	slices.Sort(cp)
	return cp
}

// LookupSuffix finds the exact suffix in the text.
// For an empty suffix, returns len(sa) as it occurs at the end of the string.
// Otherwise, returns the starting index or -1 if not found.
func (s *SuffixArray) LookupSuffix(suffix []int32) int {
	if len(suffix) == 0 {
		return len(s.sa) // Empty suffix is at the end of the string.
	}
	if len(suffix) > len(s.text) {
		return -1
	}
	l := len(s.text) - len(suffix)
	if slices.Equal(s.text[l:], suffix) {
		return l
	}
	return -1
}

// LookupPrefix checks if the text starts with the given prefix.
// For an empty prefix, returns -1 as it precedes the first character.
// Returns 0 if matched, -2 otherwise.
func (s *SuffixArray) LookupPrefix(prefix []int32) int {
	if len(prefix) == 0 {
		return -1 // Empty prefix is invalid, precedes first character.
	}
	if len(prefix) > len(s.text) {
		return -2
	}
	if slices.Equal(s.text[:len(prefix)], prefix) {
		return 0
	}
	return -2
}

// index stores metadata(l, i) and buffer for a substring in the generalized suffix array.
type index struct {
	l, i int
	sa   []int32
}

// GSA represents a generalized suffix array for multiple strings. It
// delegates its binary-search lookups to an embedded *SuffixArray built
// over the concatenated, separator-joined text, rather than duplicating
// the prefix-search logic against its own text/sa pair.
type GSA struct {
	src    [][]int32 // Original strings.
	sa     *SuffixArray
	strIdx []int32 // String index owning each position of sa.text.
	idx    []index // Buffer and metadata for each substring.
	index  []Index // Buffer for occurrence indices for lookup results.
}

// newGSA_32 builds a generalized suffix array for int32 strings.
func newGSA_32(src [][]int32, strNum int) *GSA {
	// Allocate buffer for text, string indices, and suffix arrays.
	textSz := strNum + len(src) + 1
	buf := make([]int32, textSz*2+strNum)
	text := buf[:textSz]
	strIdx, idxBuf := buf[textSz:textSz*2], buf[textSz*2:]
	idx := make([]index, len(src))

	// Initialize text with separator.
	text[0] = sep
	var (
		l, r    int        // Buffer boundaries for each substring.
		ll, pos int = 1, 1 // Left boundary and current position in text.
	)
	// Concatenate strings with separators, track indices.
	for i := 0; i < len(src); i++ {
		for j := 0; j < len(src[i]); j++ {
			text[pos], strIdx[pos] = src[i][j], int32(i)
			pos++
		}
		r += len(src[i])
		// Store string metadata.
		curr := idx[i]
		curr.l, curr.sa = ll, idxBuf[l:r]
		idx[i], strIdx[pos], text[pos] = curr, int32(i), sep
		pos++
		ll += len(src[i]) + 1
		l = r
	}
	return &GSA{src, New(text), strIdx, idx, make([]Index, len(src))}
}

// NewGSA creates a generalized suffix array from strings.
func NewGSA(src []string) *GSA {
	if len(src) == 0 {
		return nil
	}
	// Convert strings to int32 slices.
	src32 := make([][]int32, len(src))
	var sz int
	for i := 0; i < len(src); i++ {
		sz += utf8.RuneCountInString(src[i])
		src32[i] = []int32(src[i])
	}
	return newGSA_32(src32, sz)
}

// NewGSA_32 creates a generalized suffix array from int32 slices.
func NewGSA_32(src [][]int32) *GSA {
	if len(src) == 0 {
		return nil
	}
	// Calculate total character count.
	var sz int
	for i := 0; i < len(src); i++ {
		sz += len(src[i])
	}
	return newGSA_32(src, sz)
}

// fillIdx fill gsa.idx with indexes from sa according to substrings
// Returns the number of strings with occurrences.
func (gsa *GSA) fillIdx(sa []int32) (sz int) {
	text := gsa.sa.text
	var prev int32 // Previous processed sa index
	for i := 0; i < len(sa); i++ {
		j := sa[i]
		// Skip separator unless followed by a valid character.
		if text[j] == sep {
			if int(j) == len(text)-1 {
				break
			}
			j++
		}
		// Avoid duplicate indices.
		if j == prev {
			continue
		}
		str := gsa.strIdx[j]
		curr := gsa.idx[str]
		// Increment unique string count on first occurrence.
		if curr.i == 0 {
			sz++
		}
		// Store offset relative to string start.
		curr.sa[curr.i] = j - int32(curr.l)
		curr.i++
		gsa.idx[str] = curr
		prev = j
	}
	return
}

// Index holds a string's occurrences in the generalized suffix array.
type Index struct {
	String     int32
	Occurences []int32
}

// makeIndex generates occurrence indices for strings.
func (gsa *GSA) makeIndex(sa []int32, sz int) []Index {
	text := gsa.sa.text
	index := gsa.index[:sz]
	var (
		k    int   // Current index in result.
		prev int32 // Previous processed sa index.
	)
	for i := 0; i < len(sa); i++ {
		j := sa[i]
		// Skip separator unless followed by a valid character.
		if text[j] == sep {
			if int(j) == len(text)-1 {
				break
			}
			j++
		}
		if j == prev {
			continue
		}
		str := gsa.strIdx[j]
		idx := gsa.idx[str]
		if idx.i == 0 {
			continue
		}
		// Store string index and its occurrences.
		curr := Index{str, idx.sa[:idx.i]}
		gsa.idx[str].i = 0
		index[k] = curr
		k++
	}
	return index
}

// LookupTextOrder finds prefix occurrences in the generalized suffix array, sorted by text position.
func (gsa *GSA) LookupTextOrder(prefix []int32) []Index {
	res := gsa.sa.LookupTextOrder(prefix)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}

// LookupSuffix finds suffix occurrences in the generalized suffix array, sorted by text position.
func (gsa *GSA) LookupSuffix(suf []int32) []Index {
	if len(suf) == 0 {
		// Returns the length of each substring as the index of the empty suffix.
		for i := 0; i < len(gsa.src); i++ {
			l := len(gsa.idx[i].sa)
			gsa.idx[i].sa[0] = int32(l)
			gsa.index[i] = Index{int32(i), gsa.idx[i].sa[:1]}
		}
		return gsa.index
	}
	// Append separator to ensure exact suffix match.
	suf = append(suf, sep)
	res := gsa.sa.LookupTextOrder(suf)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}

// LookupPrefix finds prefix occurrences in the generalized suffix array, sorted by text position.
func (gsa *GSA) LookupPrefix(suf []int32) []Index {
	if len(suf) == 0 {
		// Return -1 for each string if prefix is empty.
		for i := 0; i < len(gsa.src); i++ {
			gsa.idx[i].sa[0] = -1
			gsa.index[i] = Index{int32(i), gsa.idx[i].sa[:1]}
		}
		return gsa.index
	}
	// Prepend separator to match string start.
	cp := make([]int32, len(suf)+1)
	cp[0] = sep
	copy(cp[1:], suf)
	res := gsa.sa.LookupTextOrder(cp)
	sz := gsa.fillIdx(res)
	return gsa.makeIndex(res, sz)
}
