// Package hebrew implements the pure text-processing engine for vocalized
// Hebrew: stripping vowel points and cantillation marks, extracting the
// distinct words of a passage, and computing gematria values.
//
// Every function in this package is total over arbitrary Unicode input and
// free of side effects, so callers may use them concurrently without
// coordination.
package hebrew
