// dawgunit.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file defines the two transition representations used while
// building and querying a DAWG: the packed, immutable baseUnit (32
// bits, committed once a sibling group is fixed) and the mutable
// dawgUnit (the ephemeral building block that lives in the builder's
// unit arena until its sibling group is minimized away). It also
// carries the order-sensitive hash used for equivalence-class lookup.

package dawgdict

// baseUnit is a packed DAWG transition:
//
//	leaf (label == 0): bits [31:1] = value, bit 0 = hasSibling
//	edge:               bits [31:2] = child, bit 1 = isState, bit 0 = hasSibling
type baseUnit BaseType

func (u baseUnit) child() BaseType { return BaseType(u) >> 2 }
func (u baseUnit) value() BaseType { return BaseType(u) >> 1 }
func (u baseUnit) isState() bool   { return u&2 != 0 }
func (u baseUnit) hasSibling() bool {
	return u&1 != 0
}

// dawgUnit is the mutable, ephemeral building block held in the
// builder's unit arena. label == 0 marks a leaf (terminal) transition
// carrying a value instead of a child pointer; child and value share
// the same field since a unit is never both at once.
type dawgUnit struct {
	child      BaseType
	sibling    BaseType
	label      byte
	isState    bool
	hasSibling bool
}

// base packs this dawgUnit into its committed baseUnit representation.
func (u *dawgUnit) base() baseUnit {
	if u.label == 0 {
		b := u.child << 1
		if u.hasSibling {
			b |= 1
		}
		return baseUnit(b)
	}
	b := u.child << 2
	if u.isState {
		b |= 2
	}
	if u.hasSibling {
		b |= 1
	}
	return baseUnit(b)
}

func (u *dawgUnit) setValue(value BaseType)     { u.child = value }
func (u *dawgUnit) setChild(child BaseType)     { u.child = child }
func (u *dawgUnit) setSibling(sibling BaseType) { u.sibling = sibling }
func (u *dawgUnit) setLabel(label byte)         { u.label = label }
func (u *dawgUnit) setIsState(v bool)           { u.isState = v }
func (u *dawgUnit) setHasSibling(v bool)        { u.hasSibling = v }

// hashFromBase mixes a packed base and its label into a 32-bit hash
// using a Wang-style integer hash. All arithmetic wraps modulo 2^32,
// which is exactly what Go's uint32 arithmetic does.
func hashFromBase(base baseUnit, label byte) BaseType {
	v := BaseType(base) ^ (BaseType(label) << 24)
	v = ^(v + (v << 15))
	v ^= v >> 12
	v += v << 2
	v ^= v >> 4
	v *= 2057
	v ^= v >> 16
	return v
}

// findUnitResult is returned by the hash-table probe: transitionID is
// the matched committed transition (0 if none matched yet), and hashID
// is the open-addressing slot at which the probe stopped (either the
// match, or the first empty slot where a new entry should be recorded).
type findUnitResult struct {
	transitionID BaseType
	hashID       BaseType
}
