// Package bittrie defines a binary trie keyed by fixed-length bit strings.
//
// Every key is a string of '0' and '1' characters of exactly BitLength bytes.
// A Trie consists of interior nodes (at most two children, no value) and leaves
// (a value, no children). All leaves live at depth BitLength:
//
//	                  ,-- [0] -- [leaf:"A"]    key "00"
//	[root] --+-- [0] -+
//	         |        `-- [1] -- [leaf:"B"]    key "01"
//	         |
//	         `-- [1] ---- [1] -- [leaf:"C"]    key "11"
//
// A node is created as a leaf only when it terminates a full-length path, and
// it never changes its kind afterwards. Reads never mutate the trie, so a fully
// loaded Trie is safe for concurrent readers.
package bittrie
