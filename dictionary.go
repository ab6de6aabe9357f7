// dictionary.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements Dictionary, the immutable double-array
// dictionary produced by DictionaryBuilder.Build. Every reader method
// is a pure function of the unit array, so a built Dictionary is freely
// shareable by concurrent readers without synchronization.
//
// Serialization is a little-endian u32 unit count followed by that
// many little-endian u32 units, no checksum, no version, no padding.

package dawgdict

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Dictionary is an immutable double-array dictionary. The root is
// always unit index 0.
type Dictionary struct {
	units Pool[dictionaryUnit]
}

// Root returns the dictionary's root index.
func (d *Dictionary) Root() BaseType { return 0 }

// Size returns the number of units in the dictionary.
func (d *Dictionary) Size() BaseType { return d.units.Len() }

// Follow attempts a single-byte transition from index on label. It
// returns the index of the next unit and true if that transition
// exists, or false if the arrival label at the computed cell does not
// match (unused cells are fixed up at build time to fail here
// deterministically).
func (d *Dictionary) Follow(label byte, index BaseType) (BaseType, bool) {
	unit := *d.units.Index(index)
	next := index ^ unit.offset() ^ BaseType(label)
	if d.units.Index(next).label() != BaseType(label) {
		return 0, false
	}
	return next, true
}

// FollowBytes walks Follow over every byte of key, starting from index.
// It short-circuits and returns false as soon as any byte fails to
// transition.
func (d *Dictionary) FollowBytes(key []byte, index BaseType) (BaseType, bool) {
	for _, ch := range key {
		var ok bool
		index, ok = d.Follow(ch, index)
		if !ok {
			return 0, false
		}
	}
	return index, true
}

// HasValue reports whether the unit at index has a terminating child
// (a leaf transition labeled 0 carrying a payload).
func (d *Dictionary) HasValue(index BaseType) bool {
	return d.units.Index(index).hasLeaf()
}

// Value returns the payload stored at the implicit label-0 leaf child
// of index. Call it only after HasValue(index) reports true.
func (d *Dictionary) Value(index BaseType) BaseType {
	unit := *d.units.Index(index)
	leafIndex := index ^ unit.offset()
	return d.units.Index(leafIndex).value()
}

// Contains reports whether key was one of the keys the dictionary was
// built from.
func (d *Dictionary) Contains(key []byte) bool {
	index, ok := d.FollowBytes(key, d.Root())
	if !ok {
		return false
	}
	return d.HasValue(index)
}

// Find returns the payload stored under key, and true if key is present.
func (d *Dictionary) Find(key []byte) (BaseType, bool) {
	index, ok := d.FollowBytes(key, d.Root())
	if !ok {
		return 0, false
	}
	if !d.HasValue(index) {
		return 0, false
	}
	return d.Value(index), true
}

// Write serializes the dictionary to w: a little-endian unit count
// followed by that many little-endian units.
func (d *Dictionary) Write(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, d.units.Len()); err != nil {
		return err
	}
	for _, unit := range d.units.Iter() {
		if err := binary.Write(w, binary.LittleEndian, BaseType(unit)); err != nil {
			return err
		}
	}
	return nil
}

// ReadDictionary deserializes a Dictionary previously produced by Write.
// It returns an error on a short read, a truncated header, or any
// underlying I/O error.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var size BaseType
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("dawgdict: reading unit count: %w", err)
	}
	units := make([]dictionaryUnit, size)
	for i := range units {
		var raw BaseType
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, fmt.Errorf("dawgdict: reading unit %d of %d: %w", i, size, err)
		}
		units[i] = dictionaryUnit(raw)
	}
	pool := FromSlice(units)
	return &Dictionary{units: pool}, nil
}
