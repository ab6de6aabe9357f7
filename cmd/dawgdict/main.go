// cmd/dawgdict/main.go
//
// Copyright (C) 2024 dawgdict contributors
//
// Driver for the dictionary lookup server: load configuration, open
// the compiled dictionary, and serve /lookup over HTTP until the
// process is killed.

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/dawgdict/dawgdict"
)

func main() {
	log.SetOutput(os.Stderr)

	cfg := dawgdict.LoadConfig()
	if cfg.DictionaryPath == "" {
		log.Fatal("dawgdict: DAWGDICT_PATH must name a compiled dictionary file")
	}

	log.Printf("dawgdict: loading %s", cfg.DictionaryPath)
	dict, closer, err := dawgdict.Open(cfg.DictionaryPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closer()

	server, err := dawgdict.NewLookupServer(dict, cfg.CacheSize)
	if err != nil {
		log.Fatal(err)
	}

	http.Handle("/lookup", server)
	log.Printf("dawgdict: listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatal(err)
	}
}
