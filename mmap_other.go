// mmap_other.go
//
// Copyright (C) 2024 dawgdict contributors
//
// Fallback for platforms without the unix mmap path: read the whole
// file into memory instead. The returned closer is a no-op since there
// is no mapping to release.

//go:build !unix

package dawgdict

import "os"

func mmapFile(f *os.File, size int64) ([]byte, func() error, error) {
	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, 0); err != nil {
		return nil, nil, err
	}
	return buf, func() error { return nil }, nil
}
