// dawg_smoketest_test.go
//
// Copyright (C) 2024 dawgdict contributors
//
// Exercises the fixed ~500-word corpus scenario against the exact
// counters and serialized size it is specified to produce. The corpus
// itself lives in testdata/dawg_smoketest.txt, one "key\tvalue" pair
// per line; the test skips if that fixture is not present in the
// working tree rather than failing the whole suite.

package dawgdict

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"
)

func loadSmoketestCorpus(t *testing.T) ([][]byte, []BaseType) {
	t.Helper()
	f, err := os.Open("testdata/dawg_smoketest.txt")
	if err != nil {
		t.Skipf("skipping: %v", err)
	}
	defer f.Close()

	var keys [][]byte
	var values []BaseType
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			t.Fatalf("malformed corpus line: %q", line)
		}
		value, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			t.Fatalf("malformed value in corpus line %q: %v", line, err)
		}
		keys = append(keys, []byte(parts[0]))
		values = append(values, BaseType(value))
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("reading corpus: %v", err)
	}
	return keys, values
}

func TestDawgSmoketestShape(t *testing.T) {
	keys, values := loadSmoketestCorpus(t)

	b := NewDawgBuilder()
	for i, key := range keys {
		if err := b.Insert(key, values[i]); err != nil {
			t.Fatalf("Insert(%q, %v) returned error: %v", key, values[i], err)
		}
	}
	dawg := b.Build()

	if dawg.StatesCount() != 3085 {
		t.Errorf("StatesCount() == %v, want 3085", dawg.StatesCount())
	}
	if dawg.TransitionCount() != 4082 {
		t.Errorf("TransitionCount() == %v, want 4082", dawg.TransitionCount())
	}
	if dawg.MergedStatesCount() != 998 {
		t.Errorf("MergedStatesCount() == %v, want 998", dawg.MergedStatesCount())
	}
	if dawg.MergingStatesCount() != 0 {
		t.Errorf("MergingStatesCount() == %v, want 0", dawg.MergingStatesCount())
	}
	if dawg.MergedTransitionsCount() != 0 {
		t.Errorf("MergedTransitionsCount() == %v, want 0", dawg.MergedTransitionsCount())
	}
}

func TestDawgSmoketestDictionary(t *testing.T) {
	keys, values := loadSmoketestCorpus(t)

	b := NewDawgBuilder()
	for i, key := range keys {
		if err := b.Insert(key, values[i]); err != nil {
			t.Fatalf("Insert(%q, %v) returned error: %v", key, values[i], err)
		}
	}
	dict, err := NewDictionaryBuilder(b.Build()).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if !dict.Contains([]byte("this")) {
		t.Errorf("Contains(\"this\") == false, want true")
	}
	if dict.Contains([]byte("loremaster")) {
		t.Errorf("Contains(\"loremaster\") == true, want false")
	}
	if value, ok := dict.Find([]byte("act")); !ok || value != 510473 {
		t.Errorf("Find(\"act\") == (%v, %v), want (510473, true)", value, ok)
	}
	if _, ok := dict.Find([]byte("annulment")); ok {
		t.Errorf("Find(\"annulment\") found a value, want none")
	}

	for i, key := range keys {
		value, ok := dict.Find(key)
		if !ok || value != values[i] {
			t.Errorf("Find(%q) == (%v, %v), want (%v, true)", key, value, ok, values[i])
		}
	}

	var buf bytes.Buffer
	if err := dict.Write(&buf); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}
	if buf.Len() != 17412 {
		t.Errorf("serialized size == %v bytes, want 17412", buf.Len())
	}
}
