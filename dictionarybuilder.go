// dictionarybuilder.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements DictionaryBuilder, which traverses a Dawg
// depth-first and embeds it into a double array: a flat, XOR-indexed
// vector of dictionaryUnit cells. Candidate XOR offsets are searched
// for via a circular doubly-linked free list of unfixed cells; merged
// DAWG sub-structures are deduplicated via a link table keyed by DAWG
// transition index.

package dawgdict

import "fmt"

// numOfUnfixedBlocks bounds how much of the tail of the dictionary the
// offset search and the final fix-up pass will consider "still open",
// trading output density for build speed.
const numOfUnfixedBlocks = 16

// dictionaryGrowthBlock is how many cells expandDictionary appends at
// a time.
const dictionaryGrowthBlock = 256

// DictionaryBuilder compiles a Dawg into an immutable Dictionary.
type DictionaryBuilder struct {
	dawg *Dawg

	units  Pool[dictionaryUnit]
	extras Pool[dictionaryExtra]
	labels Pool[byte]

	linkTable map[BaseType]BaseType

	unfixedIndex  BaseType
	numUnusedNuts BaseType
}

// NewDictionaryBuilder creates a DictionaryBuilder that will embed dawg.
func NewDictionaryBuilder(dawg *Dawg) *DictionaryBuilder {
	return &DictionaryBuilder{
		dawg:      dawg,
		linkTable: make(map[BaseType]BaseType),
	}
}

// Build embeds the DAWG into a double array and returns the resulting
// Dictionary. It fails if some required XOR offset cannot be encoded.
func (b *DictionaryBuilder) Build() (*Dictionary, error) {
	b.reserveUnit(0)
	b.extra(0).setIsUsed()
	b.units.Index(0).setOffset(1)
	b.units.Index(0).setLabel(0)

	if !b.buildDictionaryIndexes(0, 0) {
		return nil, fmt.Errorf("dawgdict: could not encode a required offset while compiling the dictionary")
	}

	b.fixAllBlocks()

	return &Dictionary{units: b.units}, nil
}

func (b *DictionaryBuilder) buildDictionaryIndexes(dawgIndex, dicIndex BaseType) bool {
	if b.dawg.IsLeaf(dawgIndex) {
		return true
	}

	dawgChildIndex := b.dawg.Child(dawgIndex)
	if dawgChildIndex == 0 {
		// No children at all: this only happens at the root of a Dawg
		// built from zero keys, since every other non-leaf transition
		// is guaranteed a child by the inserted 0-byte terminator.
		return true
	}
	if b.dawg.IsMerging(dawgChildIndex) {
		if storedOffset, ok := b.linkTable[dawgChildIndex]; ok {
			reuseOffset := storedOffset ^ dicIndex
			if (reuseOffset&upperMask == 0) || (reuseOffset&lowerMask == 0) {
				if b.dawg.IsLeaf(dawgChildIndex) {
					b.units.Index(dicIndex).setHasLeaf()
				}
				b.units.Index(dicIndex).setOffset(reuseOffset)
				return true
			}
		}
	}

	offset, ok := b.arrangeChildNodes(dawgIndex, dicIndex)
	if !ok {
		return false
	}

	if b.dawg.IsMerging(dawgChildIndex) {
		b.linkTable[dawgChildIndex] = offset
	}

	for {
		dicChildIndex := offset ^ BaseType(b.dawg.Label(dawgChildIndex))
		if !b.buildDictionaryIndexes(dawgChildIndex, dicChildIndex) {
			return false
		}
		dawgChildIndex = b.dawg.Sibling(dawgChildIndex)
		if dawgChildIndex == 0 {
			break
		}
	}
	return true
}

// reserveUnit unlinks cell index from the circular free list, growing
// the array first if index has not yet been allocated.
func (b *DictionaryBuilder) reserveUnit(index BaseType) {
	if index >= b.units.Len() {
		b.expandDictionary()
	}

	if index == b.unfixedIndex {
		b.unfixedIndex = b.extra(index).next()
		if b.unfixedIndex == index {
			b.unfixedIndex = b.units.Len()
		}
	}

	prev := b.extra(index).prev()
	next := b.extra(index).next()
	b.extra(prev).setNext(next)
	b.extra(next).setPrev(prev)

	b.extra(index).setIsFixed()
}

// fixAllBlocks freezes every still-unfixed cell in the tail window of
// the array (fixBlock on each of the last numOfUnfixedBlocks blocks),
// so the build never leaves unreachable cells without a deterministic,
// self-inconsistent label.
func (b *DictionaryBuilder) fixAllBlocks() {
	numBlocks := b.units.Len() / dictionaryGrowthBlock
	var begin BaseType
	if numBlocks > numOfUnfixedBlocks {
		begin = numBlocks - numOfUnfixedBlocks
	}
	end := numBlocks
	for blockID := begin; blockID < end; blockID++ {
		b.fixBlock(blockID)
	}
}

// fixBlock converts every still-unfixed cell in block blockID (a block
// is dictionaryGrowthBlock consecutive cells) into a terminator whose
// label can never match an arriving byte, by giving it the label of
// some offset known not to be in use.
func (b *DictionaryBuilder) fixBlock(blockID BaseType) {
	const blockSize = dictionaryGrowthBlock
	begin := blockID * blockSize
	end := begin + blockSize

	var unusedOffsetForLabel BaseType
	for offset := begin; offset < end; offset++ {
		if !b.extra(offset).isUsed() {
			unusedOffsetForLabel = offset
			break
		}
	}

	for index := begin; index < end; index++ {
		if !b.extra(index).isFixed() {
			b.reserveUnit(index)
			b.units.Index(index).setLabel(index ^ unusedOffsetForLabel)
			b.numUnusedNuts++
		}
	}
}

// arrangeChildNodes collects dawgIndex's children's labels in DAWG
// sibling order, picks an XOR offset that places all of them in free
// cells, writes that offset into dicIndex, and claims each child's cell
// (storing its leaf value or label as appropriate). It returns false if
// the chosen offset cannot be encoded.
func (b *DictionaryBuilder) arrangeChildNodes(dawgIndex, dicIndex BaseType) (BaseType, bool) {
	b.labels.Clear()

	dawgChildIndex := b.dawg.Child(dawgIndex)
	for dawgChildIndex != 0 {
		b.labels.Push(b.dawg.Label(dawgChildIndex))
		dawgChildIndex = b.dawg.Sibling(dawgChildIndex)
	}

	offset := b.findGoodOffset(dicIndex)
	if !b.units.Index(dicIndex).setOffset(dicIndex ^ offset) {
		return 0, false
	}

	dawgChildIndex = b.dawg.Child(dawgIndex)
	for i := BaseType(0); i < b.labels.Len(); i++ {
		label := *b.labels.Index(i)
		dicChildIndex := offset ^ BaseType(label)
		b.reserveUnit(dicChildIndex)

		if b.dawg.IsLeaf(dawgChildIndex) {
			b.units.Index(dicIndex).setHasLeaf()
			b.units.Index(dicChildIndex).setValue(b.dawg.Value(dawgChildIndex))
		} else {
			b.units.Index(dicChildIndex).setLabel(BaseType(label))
		}
		dawgChildIndex = b.dawg.Sibling(dawgChildIndex)
	}

	b.extra(offset).setIsUsed()
	return offset, true
}

// findGoodOffset walks the circular free list looking for an offset
// that places every label in labels into a free, not-yet-used cell. It
// falls back to units.Len() | (index & 0xFF), which is always free
// because it lies past the current end of the array.
func (b *DictionaryBuilder) findGoodOffset(index BaseType) BaseType {
	if b.unfixedIndex >= b.units.Len() {
		return b.units.Len() | (index & 0xFF)
	}

	unfixedIndex := b.unfixedIndex
	for {
		offset := unfixedIndex ^ BaseType(*b.labels.Index(0))
		if b.isGoodOffset(index, offset) {
			return offset
		}
		unfixedIndex = b.extra(unfixedIndex).next()
		if unfixedIndex == b.unfixedIndex {
			break
		}
	}

	return b.units.Len() | (index & 0xFF)
}

// isGoodOffset reports whether offset is usable for a parent at index:
// its own cell must be unused, the parent-relative offset must fit one
// of the two packed encodings, and every other child label must land on
// a not-yet-fixed cell.
func (b *DictionaryBuilder) isGoodOffset(index, offset BaseType) bool {
	if b.extra(offset).isUsed() {
		return false
	}

	relativeOffset := index ^ offset
	if (relativeOffset&lowerMask != 0) && (relativeOffset&upperMask != 0) {
		return false
	}

	for i := BaseType(1); i < b.labels.Len(); i++ {
		extraIndex := offset ^ BaseType(*b.labels.Index(i))
		if b.extra(extraIndex).isFixed() {
			return false
		}
	}

	return true
}

// expandDictionary grows the unit and extra arrays by
// dictionaryGrowthBlock cells, links the new range into a self-loop,
// and splices that sub-ring into the circular free list immediately
// before unfixedIndex. If the array has grown past the unfixed-blocks
// horizon, it first freezes the oldest still-open block so the offset
// search's horizon stays bounded.
func (b *DictionaryBuilder) expandDictionary() {
	srcNumUnits := b.units.Len()
	srcNumBlocks := srcNumUnits / dictionaryGrowthBlock

	destNumUnits := srcNumUnits + dictionaryGrowthBlock
	destNumBlocks := srcNumBlocks + 1

	if destNumBlocks > numOfUnfixedBlocks {
		b.fixBlock(srcNumBlocks - numOfUnfixedBlocks)
	}

	b.units.Resize(destNumUnits, dictionaryUnit(0))
	b.extras.Resize(destNumUnits, dictionaryExtra{})

	for i := srcNumUnits + 1; i < destNumUnits; i++ {
		b.extra(i - 1).setNext(i)
		b.extra(i).setPrev(i - 1)
	}

	b.extra(srcNumUnits).setPrev(destNumUnits - 1)
	b.extra(destNumUnits - 1).setNext(srcNumUnits)

	unfixedIndex := b.unfixedIndex
	prev := b.extra(unfixedIndex).prev()
	b.extra(srcNumUnits).setPrev(prev)
	b.extra(destNumUnits - 1).setNext(unfixedIndex)

	prev2 := b.extra(b.unfixedIndex).prev()
	b.extra(prev2).setNext(srcNumUnits)
	b.extra(b.unfixedIndex).setPrev(destNumUnits - 1)
}

func (b *DictionaryBuilder) extra(i BaseType) *dictionaryExtra {
	return b.extras.Index(i)
}
