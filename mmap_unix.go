// mmap_unix.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements the unix mmap path for Dictionary.Open: map the
// file read-only and private, and hand back the raw bytes plus an
// unmap closer.

//go:build unix

package dawgdict

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmapFile(f *os.File, size int64) ([]byte, func() error, error) {
	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return mem, func() error { return unix.Munmap(mem) }, nil
}
