// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package oauthstate holds the outstanding CSRF state tokens of in-flight
// OAuth authorization flows. The store is process-local and non-durable:
// a restart drops all pending flows, which then fail verification and
// restart from the beginning.
package oauthstate

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

// DefaultTTL bounds the CSRF exposure window while tolerating normal user
// latency through the CRM consent screen.
const DefaultTTL = 10 * time.Minute

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

type StoreInterface interface {
	Issue(tenantID string) (string, error)
	Verify(token string) (string, bool)
}

var _ StoreInterface = (*Store)(nil)

type entry struct {
	tenantID  string
	createdAt time.Time
}

// Store is shared by all request handlers of the process; every mutation
// happens under one mutex so concurrent verifiers of the same token resolve
// to exactly one winner.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry

	ttl time.Duration
	now func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue generates an unguessable token bound to the given tenant id, which
// may be a provisional id for a tenant that does not exist yet. Expired
// entries are evicted opportunistically; there is no background timer.
func (s *Store) Issue(tenantID string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	s.entries[token] = entry{tenantID: tenantID, createdAt: s.now()}

	return token, nil
}

// Verify consumes the token: a fresh token is deleted and its tenant id
// returned; any other outcome reports false. An expired token is deleted
// and indistinguishable from one that never existed, and a second call for
// a previously valid token always fails.
func (s *Store) Verify(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return "", false
	}

	delete(s.entries, token)

	if s.now().Sub(e.createdAt) > s.ttl {
		return "", false
	}

	return e.tenantID, true
}

func (s *Store) evictExpiredLocked() {
	now := s.now()
	for token, e := range s.entries {
		if now.Sub(e.createdAt) > s.ttl {
			delete(s.entries, token)
		}
	}
}

// Len reports the number of outstanding tokens, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
