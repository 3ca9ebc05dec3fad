/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package session persists issuance role objects keyed by session id.
package session

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/edgeagent/backchannel/pkg/issuance"
)

const (
	storeName = "issuance_session"

	issuerKeyFmt = "issuer_%s"
	holderKeyFmt = "holder_%s"
)

// ErrNotFound is returned when no role object exists for a session id.
var ErrNotFound = errors.New("session not found")

// Store is the typed session store. A session id maps to at most one role
// object of exactly one role; the issuer and holder key spaces are disjoint.
type Store struct {
	store storage.Store
}

// New opens the session store.
func New(provider storage.Provider) (*Store, error) {
	store, err := provider.OpenStore(storeName)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", storeName, err)
	}

	return &Store{store: store}, nil
}

// PutIssuer persists the issuer role object under its session id.
func (s *Store) PutIssuer(id string, issuer *issuance.Issuer) error {
	return s.put(issuerKey(id), issuer)
}

// GetIssuer returns the issuer role object for the session id.
func (s *Store) GetIssuer(id string) (*issuance.Issuer, error) {
	issuer := &issuance.Issuer{}

	if err := s.get(issuerKey(id), issuer); err != nil {
		return nil, err
	}

	return issuer, nil
}

// PutHolder persists the holder role object under its session id.
func (s *Store) PutHolder(id string, holder *issuance.Holder) error {
	return s.put(holderKey(id), holder)
}

// GetHolder returns the holder role object for the session id.
func (s *Store) GetHolder(id string) (*issuance.Holder, error) {
	holder := &issuance.Holder{}

	if err := s.get(holderKey(id), holder); err != nil {
		return nil, err
	}

	return holder, nil
}

func (s *Store) put(key string, value interface{}) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", key, err)
	}

	if err := s.store.Put(key, bytes); err != nil {
		return fmt.Errorf("save session %s: %w", key, err)
	}

	return nil
}

func (s *Store) get(key string, value interface{}) error {
	bytes, err := s.store.Get(key)
	if errors.Is(err, storage.ErrDataNotFound) {
		return fmt.Errorf("get session %s: %w", key, ErrNotFound)
	}

	if err != nil {
		return fmt.Errorf("get session %s: %w", key, err)
	}

	if err := json.Unmarshal(bytes, value); err != nil {
		return fmt.Errorf("unmarshal session %s: %w", key, err)
	}

	return nil
}

func issuerKey(id string) string {
	return fmt.Sprintf(issuerKeyFmt, id)
}

func holderKey(id string) string {
	return fmt.Sprintf(holderKeyFmt, id)
}
