// dictionaryfile.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements Dictionary.Open, which loads a dictionary
// previously written by Dictionary.Write from disk. On unix it maps
// the file read-only via mmap_unix.go instead of copying it through a
// buffered read, since a compiled dictionary is read-only for the
// remainder of the process and may be large; elsewhere it falls back
// to a plain read (mmap_other.go).

package dawgdict

import (
	"bytes"
	"fmt"
	"os"
)

// Open loads a dictionary previously produced by Write from the file
// at path. The returned closer must be called once the Dictionary is
// no longer needed, to release the backing mapping.
func Open(path string) (*Dictionary, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dawgdict: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("dawgdict: statting %s: %w", path, err)
	}

	mem, closer, err := mmapFile(f, info.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("dawgdict: mapping %s: %w", path, err)
	}

	dict, err := ReadDictionary(bytes.NewReader(mem))
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("dawgdict: parsing %s: %w", path, err)
	}
	return dict, closer, nil
}
