// dawgbuilder.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements DawgBuilder, the online-minimizing builder that
// turns a strictly-ordered stream of (key, value) pairs into an
// immutable Dawg. It maintains a working trie of "unfixed" nodes (the
// right spine of the most recently inserted key) and a committed store
// of "fixed" transitions, merging equivalent sibling groups via an
// open-addressed hash table as soon as it is safe to do so.

package dawgdict

import "fmt"

// initialHashTableSize is the starting capacity of the equivalence-class
// hash table.
const initialHashTableSize = 1 << 8

// DawgBuilder performs online minimization of an ordered key stream into
// a Dawg. A DawgBuilder must not be reused after Insert returns an
// error: it is left in an unspecified, poisoned state once an
// out-of-order key is rejected.
type DawgBuilder struct {
	basePool  Pool[baseUnit]
	labelPool Pool[byte]
	flagPool  Pool[bool]

	unitPool Pool[dawgUnit]

	hashTable Pool[BaseType]

	unfixedUnits []BaseType
	unusedUnits  []BaseType

	numStates            BaseType
	numMergedTransitions BaseType
	numMergingStates     BaseType
}

// NewDawgBuilder creates an empty DawgBuilder, ready for strictly
// ordered Insert calls.
func NewDawgBuilder() *DawgBuilder {
	b := &DawgBuilder{}
	b.hashTable.Resize(initialHashTableSize, 0)
	b.numStates = 1

	root := b.reuseOrCreateUnit()
	b.allocateTransition()
	b.unitPool.Index(root).setLabel(0xFF)
	b.unfixedUnits = append(b.unfixedUnits, root)
	return b
}

// Insert adds key/value to the builder. Keys must arrive in strict
// lexicographic byte order; Insert returns an error and leaves the
// builder poisoned if key is not strictly greater than the previously
// inserted key. value must fit in 31 bits; a caller passing a larger
// value invites undefined lookup results (this is a contract violation,
// not a recoverable error).
func (b *DawgBuilder) Insert(key []byte, value BaseType) error {
	bytes := make([]byte, len(key)+1)
	copy(bytes, key)
	bytes[len(key)] = 0
	return b.insertKeyBytes(bytes, value)
}

// InsertString is a convenience wrapper around Insert for string keys.
func (b *DawgBuilder) InsertString(key string, value BaseType) error {
	return b.Insert([]byte(key), value)
}

func (b *DawgBuilder) insertKeyBytes(key []byte, value BaseType) error {
	var index BaseType
	keyPos := 0

	for pos, ch := range key {
		keyPos = pos
		childIndex := b.unitPool.Index(index).child
		if childIndex == 0 {
			break
		}

		unitLabel := b.unitPool.Index(childIndex).label
		if ch < unitLabel {
			return fmt.Errorf("dawgdict: key inserted out of order at byte %d", pos)
		}
		if ch > unitLabel {
			b.unitPool.Index(childIndex).setHasSibling(true)
			b.fixUnits(childIndex)
			break
		}
		index = childIndex
		if pos == len(key)-1 {
			return fmt.Errorf("dawgdict: key inserted out of order: it repeats the previous key")
		}
	}

	for _, ch := range key[keyPos:] {
		childIndex := b.reuseOrCreateUnit()

		if b.unitPool.Index(index).child == 0 {
			b.unitPool.Index(childIndex).setIsState(true)
		}
		child := b.unitPool.Index(index).child
		b.unitPool.Index(childIndex).setSibling(child)
		b.unitPool.Index(childIndex).setLabel(ch)
		b.unitPool.Index(index).setChild(childIndex)
		b.unfixedUnits = append(b.unfixedUnits, childIndex)

		index = childIndex
	}

	b.unitPool.Index(index).setValue(value)
	return nil
}

// Build drains the remaining unfixed right spine and returns the
// resulting immutable Dawg. The builder must not be used afterwards.
func (b *DawgBuilder) Build() *Dawg {
	b.fixUnits(0)
	b.basePool.Index(0).setFrom(b.unitPool.Index(0))
	*b.labelPool.Index(0) = b.unitPool.Index(0).label

	numTransitions := b.basePool.Len() - 1
	numMergedStates := numTransitions + b.numMergedTransitions + 1 - b.numStates

	return &Dawg{
		basePool:             b.basePool,
		labelPool:            b.labelPool,
		flagPool:             b.flagPool,
		numStates:            b.numStates,
		numMergedTransitions: b.numMergedTransitions,
		numMergedStates:      numMergedStates,
		numMergingStates:     b.numMergingStates,
	}
}

// fixUnits pops unfixed units off the right-spine stack, bottom-up,
// freezing each sibling group into the committed pools (or reusing an
// equivalent already-committed group) until index itself is popped.
func (b *DawgBuilder) fixUnits(index BaseType) {
	for len(b.unfixedUnits) > 0 {
		unfixedIndex := b.unfixedUnits[len(b.unfixedUnits)-1]
		b.unfixedUnits = b.unfixedUnits[:len(b.unfixedUnits)-1]
		if unfixedIndex == index {
			break
		}

		expansionThreshold := b.hashTable.Len() - (b.hashTable.Len() >> 2)
		if b.numStates >= expansionThreshold {
			b.expandHashTable()
		}

		numOfSiblings := BaseType(0)
		for i := unfixedIndex; i != 0; i = b.unitPool.Index(i).sibling {
			numOfSiblings++
		}

		result := b.findUnit(unfixedIndex)
		matchedIndex := result.transitionID

		if matchedIndex != 0 {
			b.numMergedTransitions += numOfSiblings
			if !*b.flagPool.Index(matchedIndex) {
				b.numMergingStates++
				*b.flagPool.Index(matchedIndex) = true
			}
		} else {
			var transitionIndex BaseType
			for i := BaseType(0); i < numOfSiblings; i++ {
				transitionIndex = b.allocateTransition()
			}
			i := unfixedIndex
			for i != 0 {
				b.basePool.Index(transitionIndex).setFrom(b.unitPool.Index(i))
				*b.labelPool.Index(transitionIndex) = b.unitPool.Index(i).label
				transitionIndex--
				i = b.unitPool.Index(i).sibling
			}
			matchedIndex = transitionIndex + 1
			*b.hashTable.Index(result.hashID) = matchedIndex
			b.numStates++
		}

		// Return every unit in the fixed chain to the free list.
		current := unfixedIndex
		for current != 0 {
			next := b.unitPool.Index(current).sibling
			b.unusedUnits = append(b.unusedUnits, current)
			current = next
		}

		nextUnfixed := b.unfixedUnits[len(b.unfixedUnits)-1]
		b.unitPool.Index(nextUnfixed).setChild(matchedIndex)
	}
}

// hashTransition computes the order-sensitive XOR hash over a
// committed sibling group starting at index (used when rebuilding the
// hash table after it grows).
func (b *DawgBuilder) hashTransition(index BaseType) BaseType {
	var hash BaseType
	for index != 0 {
		base := *b.basePool.Index(index)
		label := *b.labelPool.Index(index)
		hash ^= hashFromBase(base, label)
		if !base.hasSibling() {
			break
		}
		index++
	}
	return hash
}

// hashUnit computes the same hash over an unfixed (mutable) sibling
// group, by walking dawgUnit.sibling.
func (b *DawgBuilder) hashUnit(index BaseType) BaseType {
	var hash BaseType
	for index != 0 {
		u := b.unitPool.Index(index)
		hash ^= hashFromBase(u.base(), u.label)
		index = u.sibling
	}
	return hash
}

// findUnit probes the hash table for a committed sibling group equal to
// the unfixed group rooted at unitIndex.
func (b *DawgBuilder) findUnit(unitIndex BaseType) findUnitResult {
	size := b.hashTable.Len()
	hashID := b.hashUnit(unitIndex) % size
	for {
		transitionID := *b.hashTable.Index(hashID)
		if transitionID == 0 {
			break
		}
		if b.areEqual(unitIndex, transitionID) {
			return findUnitResult{hashID: hashID, transitionID: transitionID}
		}
		hashID = (hashID + 1) % size
	}
	return findUnitResult{hashID: hashID, transitionID: 0}
}

// findTransition probes the hash table for the committed sibling group
// starting at index itself, used only while rebuilding after a hash
// table expansion (the group is already known distinct, so only an
// empty slot is sought).
func (b *DawgBuilder) findTransition(index BaseType) findUnitResult {
	size := b.hashTable.Len()
	hashID := b.hashTransition(index) % size
	for *b.hashTable.Index(hashID) != 0 {
		hashID = (hashID + 1) % size
	}
	return findUnitResult{hashID: hashID, transitionID: 0}
}

// areEqual compares the unfixed sibling chain rooted at unitIndex
// against the committed sibling block starting at transitionIndex,
// label-for-label and base-for-base, requiring both groups to end at
// the same position.
func (b *DawgBuilder) areEqual(unitIndex BaseType, transitionIndex BaseType) bool {
	i := b.unitPool.Index(unitIndex).sibling
	for i != 0 {
		if !b.basePool.Index(transitionIndex).hasSibling() {
			return false
		}
		transitionIndex++
		i = b.unitPool.Index(i).sibling
	}
	if b.basePool.Index(transitionIndex).hasSibling() {
		return false
	}

	i = unitIndex
	for i != 0 {
		u := b.unitPool.Index(i)
		if u.base() != *b.basePool.Index(transitionIndex) {
			return false
		}
		if u.label != *b.labelPool.Index(transitionIndex) {
			return false
		}
		transitionIndex--
		i = u.sibling
	}
	return true
}

// reuseOrCreateUnit pops a slot off the free list, or grows the unit
// arena if the free list is empty, and resets it to its zero value.
func (b *DawgBuilder) reuseOrCreateUnit() BaseType {
	var index BaseType
	if n := len(b.unusedUnits); n > 0 {
		index = b.unusedUnits[n-1]
		b.unusedUnits = b.unusedUnits[:n-1]
	} else {
		index = b.unitPool.Push(dawgUnit{})
	}
	*b.unitPool.Index(index) = dawgUnit{}
	return index
}

// expandHashTable doubles the hash table and re-hashes every committed
// state (a transition whose label is 0, i.e. a leaf, or whose base has
// isState set). The isState flag is never consulted elsewhere; it
// exists solely so this rebuild can find every state without a full
// rescan of sibling topology.
func (b *DawgBuilder) expandHashTable() {
	size := b.hashTable.Len() << 1
	b.hashTable.Clear()
	b.hashTable.Resize(size, 0)

	for index := BaseType(1); index < b.basePool.Len(); index++ {
		label := *b.labelPool.Index(index)
		base := *b.basePool.Index(index)
		if label == 0 || base.isState() {
			result := b.findTransition(index)
			*b.hashTable.Index(result.hashID) = index
		}
	}
}

// allocateTransition appends one fresh committed transition slot across
// the base, label and flag pools and returns its index.
func (b *DawgBuilder) allocateTransition() BaseType {
	b.flagPool.Push(false)
	b.basePool.Push(0)
	return b.labelPool.Push(0)
}

// setFrom packs src's fields into u in place.
func (u *baseUnit) setFrom(src *dawgUnit) {
	*u = src.base()
}
