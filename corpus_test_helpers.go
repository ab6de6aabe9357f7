// corpus_test_helpers.go
//
// Copyright (C) 2024 dawgdict contributors
//
// Test-only helpers for generating large, strictly ordered synthetic
// key sets, used to exercise the hash table expansion and the
// double array's block-fixing path at a scale a hand-written word
// list can't reach.

package dawgdict

import (
	"math/rand"
	"sort"
)

// generateCorpus returns n distinct, lexicographically sorted byte
// keys of length wordLen drawn from alphabet, seeded deterministically
// from seed so a failing test can be reproduced.
func generateCorpus(n, wordLen int, alphabet string, seed int64) [][]byte {
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[string]bool, n)
	keys := make([][]byte, 0, n)

	for len(keys) < n {
		word := make([]byte, wordLen)
		for i := range word {
			word[i] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(word)
		if seen[s] {
			continue
		}
		seen[s] = true
		keys = append(keys, word)
	}

	sort.Slice(keys, func(i, j int) bool {
		return string(keys[i]) < string(keys[j])
	})
	return keys
}
