// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyBoundary exercises the classifier's edges: the final
// position is always L, the virtual sentinel is always S, and the bucket
// frequencies sum to the text length.
func TestClassifyBoundary(t *testing.T) {
	text := []int32("aabab")
	types, bucketSize := classify(text, 256)
	assert.Equal(t, typeS, typeAt(types, int32(len(text))))
	assert.Equal(t, typeL, typeAt(types, int32(len(text)-1)))

	var sum int32
	for _, c := range bucketSize {
		sum += c
	}
	assert.Equal(t, int32(len(text)), sum)
}

// TestAllIdenticalCharacters covers the degenerate case where every
// position shares one character: the classifier's tie-break rule (a run
// of equal characters takes the type of its right neighbor) propagates the
// final position's L type to every position, so there are no LMS positions.
func TestAllIdenticalCharacters(t *testing.T) {
	text := []byte("zzzzzzzzzzzz")
	sa := Build(text)
	assert.NoError(t, Validate(text, sa.AsSlice()))
	n := int32(len(text))
	for i, p := range sa.AsSlice() {
		// Shorter suffixes sort first: a run of identical characters means
		// every suffix is a prefix of every longer one starting to its left.
		assert.Equal(t, n-1-int32(i), p)
	}
}

// TestStrictlyIncreasingCharacters covers the opposite degenerate case:
// every position is S-type except the final one, which is L-type, so there
// are no LMS positions at all and the reducer's m < 2 fast path fires.
func TestStrictlyIncreasingCharacters(t *testing.T) {
	text := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	sa := Build(text)
	assert.NoError(t, Validate(text, sa.AsSlice()))
	want := make([]int32, len(text))
	for i := range want {
		want[i] = int32(i)
	}
	assert.Equal(t, want, sa.AsSlice())
}

// TestAlphabetWithHoles exercises a byte alphabet where only a handful
// of the 256 possible values actually occur — the bucket table still
// spans the full range, so this checks that a tail offset pointing into
// an empty bucket never misroutes an entry.
func TestAlphabetWithHoles(t *testing.T) {
	text := []byte{200, 10, 200, 10, 250, 10, 200}
	sa := Build(text)
	assert.NoError(t, Validate(text, sa.AsSlice()))
}

// TestManyRecursionLevels forces a recursive call on a reduced text: in
// the periodic "abc" input every LMS substring but the last is identical,
// so the 666 LMS positions get only two names. The reduced text has no LMS
// positions of its own, so the recursion stops after that one level.
func TestManyRecursionLevels(t *testing.T) {
	text := make([]byte, 2000)
	for i := range text {
		text[i] = byte('a' + i%3)
	}
	sa := Build(text)
	assert.NoError(t, Validate(text, sa.AsSlice()))
}

// TestReducedAlphabetDense checks the fast path where every LMS
// substring is already pairwise distinct (sigma == m), so reduce
// reports sorted=true and no recursive call is made.
func TestReducedAlphabetDense(t *testing.T) {
	text := []byte("xabcdefghijklmnoabcdefghijklmno")
	sa := Build(text)
	assert.NoError(t, Validate(text, sa.AsSlice()))
}

func TestValidateRejectsBadPermutation(t *testing.T) {
	text := []byte("banana")
	sa := []int32{0, 1, 2, 3, 4, 4} // 4 repeated, 5 missing
	assert.Error(t, Validate(text, sa))
}

func TestValidateRejectsWrongOrder(t *testing.T) {
	text := []byte("banana")
	sa := Build(text).AsSlice()
	bad := append([]int32(nil), sa...)
	bad[0], bad[1] = bad[1], bad[0]
	assert.Error(t, Validate(text, bad))
}

func TestValidateRejectsWrongLength(t *testing.T) {
	text := []byte("banana")
	assert.Error(t, Validate(text, []int32{0, 1, 2}))
}

// TestComputeSAAlphabetNormalization checks that a GSA-style separator
// far outside the text's natural character range does not change the
// resulting order relative to an equivalent dense encoding.
func TestComputeSAAlphabetNormalization(t *testing.T) {
	a := append([]int32("banana"), sep)
	b := append([]int32("ananas"), sep)
	combined := append(append([]int32{}, a...), b...)
	sa := computeSA(combined)
	assert.NoError(t, Validate32(combined, sa))
}

// TestBuildConcreteScenarios pins down the naming/ordering convention
// directly, independent of oracle-equivalence fuzzing.
func TestBuildConcreteScenarios(t *testing.T) {
	tests := map[string]struct {
		text string
		want []int32
	}{
		"a":         {"a", []int32{0}},
		"aaaaaaab":  {"aaaaaaab", []int32{0, 1, 2, 3, 4, 5, 6, 7}},
		"baaaaaaa":  {"baaaaaaa", []int32{7, 6, 5, 4, 3, 2, 1, 0}},
		"abaaaaaa":  {"abaaaaaa", []int32{7, 6, 5, 4, 3, 2, 0, 1}},
		"abababab":  {"abababab", []int32{6, 4, 2, 0, 7, 5, 3, 1}},
		"abcbabcba": {"abcbabcba", []int32{8, 4, 0, 7, 3, 5, 1, 6, 2}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := Build([]byte(tc.text))
			assert.Equal(t, tc.want, sa.AsSlice())
		})
	}
}

func TestBuildAgainstOracleRandomized(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		n := rand.Intn(64) + 1
		text := make([]byte, n)
		for i := range text {
			text[i] = byte('a' + rand.Intn(4))
		}
		sa := Build(text)
		if err := Validate(text, sa.AsSlice()); err != nil {
			t.Fatalf("text=%q: %v", text, err)
		}
		text32 := make([]int32, n)
		for i, c := range text {
			text32[i] = int32(c)
		}
		assert.Equal(t, makeSA(text32), sa.AsSlice())
	}
}
