// lookupserver_test.go
//
// Copyright (C) 2024 dawgdict contributors

package dawgdict

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupServerFindsKnownKey(t *testing.T) {
	dict := buildDictionary(t, [][]byte{[]byte("act"), []byte("actor")})
	server, err := NewLookupServer(dict, 8)
	if err != nil {
		t.Fatalf("NewLookupServer returned error: %v", err)
	}

	body, _ := json.Marshal(LookupRequest{Keys: []string{"act", "missing"}})
	req := httptest.NewRequest(http.MethodPost, "/lookup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status == %v, want 200", rec.Code)
	}
	var resp LookupResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("Count == %v, want 2", resp.Count)
	}
	if !resp.Results[0].Found || resp.Results[0].Value != 0 {
		t.Errorf("Results[0] == %+v, want Found=true Value=0", resp.Results[0])
	}
	if resp.Results[1].Found {
		t.Errorf("Results[1] == %+v, want Found=false", resp.Results[1])
	}
}

func TestLookupServerRejectsEmptyKeys(t *testing.T) {
	dict := buildDictionary(t, [][]byte{[]byte("act")})
	server, err := NewLookupServer(dict, 8)
	if err != nil {
		t.Fatalf("NewLookupServer returned error: %v", err)
	}

	body, _ := json.Marshal(LookupRequest{})
	req := httptest.NewRequest(http.MethodPost, "/lookup", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status == %v, want 400", rec.Code)
	}
}

func TestLookupServerRejectsGet(t *testing.T) {
	dict := buildDictionary(t, [][]byte{[]byte("act")})
	server, err := NewLookupServer(dict, 8)
	if err != nil {
		t.Fatalf("NewLookupServer returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/lookup", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status == %v, want 405", rec.Code)
	}
}
