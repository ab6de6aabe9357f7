// store.go
//
// Copyright (C) 2024 dawgdict contributors
//
// This file implements DatastoreStore, a remote blob store for
// compiled dictionaries: Dictionary.Write's bytes, keyed by a name,
// held in a Cloud Datastore entity so a fleet of lookup servers can
// share one compiled dictionary without each one shipping its own
// copy of the file at deploy time.

package dawgdict

import (
	"bytes"
	"context"
	"fmt"

	"cloud.google.com/go/datastore"
)

const datastoreKind = "DawgDictionary"

// dictionaryEntity is the Cloud Datastore representation of one
// compiled, serialized dictionary.
type dictionaryEntity struct {
	Data []byte `datastore:",noindex"`
}

// DatastoreStore persists and retrieves serialized dictionaries in
// Google Cloud Datastore.
type DatastoreStore struct {
	client *datastore.Client
}

// NewDatastoreStore dials Cloud Datastore for the given project.
func NewDatastoreStore(ctx context.Context, projectID string) (*DatastoreStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("dawgdict: connecting to datastore: %w", err)
	}
	return &DatastoreStore{client: client}, nil
}

// Put serializes dict and stores it under name, overwriting any
// previous dictionary stored under that name.
func (s *DatastoreStore) Put(ctx context.Context, name string, dict *Dictionary) error {
	var buf bytes.Buffer
	if err := dict.Write(&buf); err != nil {
		return fmt.Errorf("dawgdict: serializing %s: %w", name, err)
	}
	key := datastore.NameKey(datastoreKind, name, nil)
	_, err := s.client.Put(ctx, key, &dictionaryEntity{Data: buf.Bytes()})
	if err != nil {
		return fmt.Errorf("dawgdict: storing %s: %w", name, err)
	}
	return nil
}

// Get retrieves and deserializes the dictionary stored under name.
func (s *DatastoreStore) Get(ctx context.Context, name string) (*Dictionary, error) {
	key := datastore.NameKey(datastoreKind, name, nil)
	var entity dictionaryEntity
	if err := s.client.Get(ctx, key, &entity); err != nil {
		return nil, fmt.Errorf("dawgdict: fetching %s: %w", name, err)
	}
	dict, err := ReadDictionary(bytes.NewReader(entity.Data))
	if err != nil {
		return nil, fmt.Errorf("dawgdict: parsing %s: %w", name, err)
	}
	return dict, nil
}

// Close releases the underlying Datastore client.
func (s *DatastoreStore) Close() error {
	return s.client.Close()
}
