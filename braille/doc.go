// Package braille translates single characters between 8-bit ASCII codes,
// 6-dot Braille cells and Unicode Braille Patterns.
//
// A cell is written as a 6-character bit string, one character per dot in
// dot order (dots 1-2-3 in the left column, 4-5-6 in the right one):
//
//	1 o o 4
//	2 o o 5    "100000" is dot 1 only (A), "110000" is dots 1 and 2 (B)
//	3 o o 6
//
// Each conversion is a lookup in a bittrie.Trie built from a literal table on
// first use.
package braille
