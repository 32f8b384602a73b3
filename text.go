// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// symbol is the capability set the SA-IS engine needs from a text: byte
// sequences at the top level, and int32-named sequences in every recursive
// call on a reduced alphabet. Constraining on it instead of dispatching
// through an interface lets classify/induce/reduce be instantiated once per
// concrete element type with no indirection in the hot loops.
type symbol interface {
	~byte | ~int32
}

// charAt returns the character at position i as a uniform int32, regardless
// of whether text is byte-backed (sigma=256) or int32-backed (recursive,
// reduced-alphabet levels).
func charAt[S symbol](text []S, i int32) int32 {
	return int32(text[i])
}
