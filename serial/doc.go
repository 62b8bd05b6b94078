// Package serial provides the byte-level (de)serializers shared by the trie
// storage format: fixed-width big-endian integers (with an optional 0xFE
// escape so a serialized integer can never be confused with the trie's key
// terminator), length-prefixed byte strings, and a small adapter that turns
// an arbitrary caller type into a value codec.
//
// These are pure functions over byte slices; none of them retain state
// beyond their own configuration (escaping on/off, fixed size), matching the
// "no shared mutable state" resource model of the packages that consume
// them.
package serial
