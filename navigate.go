// navigate.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file adds prefix-oriented queries on top of Dictionary.Follow:
// PrefixesOf and LongestPrefixOf. The double array has no compressed
// multi-byte edges, so there is no push/pop/accept dance here — each
// step is a single Follow call, and a match is recorded whenever the
// walk lands on a unit with HasValue set.

package dawgdict

// PrefixesOf returns every prefix of key that is itself a stored key,
// in increasing length order. An empty result means no prefix of key
// (including key itself) is present.
func (d *Dictionary) PrefixesOf(key []byte) [][]byte {
	var matches [][]byte
	index := d.Root()
	if d.HasValue(index) {
		matches = append(matches, []byte{})
	}
	for i, ch := range key {
		next, ok := d.Follow(ch, index)
		if !ok {
			break
		}
		index = next
		if d.HasValue(index) {
			prefix := make([]byte, i+1)
			copy(prefix, key[:i+1])
			matches = append(matches, prefix)
		}
	}
	return matches
}

// LongestPrefixOf returns the longest prefix of key that is itself a
// stored key, and true if any such prefix exists.
func (d *Dictionary) LongestPrefixOf(key []byte) ([]byte, bool) {
	matches := d.PrefixesOf(key)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[len(matches)-1], true
}
