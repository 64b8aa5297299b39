// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package oauthstate

import (
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	s := NewStore(ttl)
	clock := &fakeClock{now: time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)}
	s.now = clock.Now
	return s, clock
}

func TestStore_IssueThenVerify(t *testing.T) {
	s, _ := newTestStore(DefaultTTL)

	token, err := s.Issue("tenant-42")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	tenantID, ok := s.Verify(token)
	if !ok {
		t.Fatal("expected first verify to succeed")
	}
	if tenantID != "tenant-42" {
		t.Errorf("expected tenant-42, got %q", tenantID)
	}

	// single-use: replay of the same token must fail
	if _, ok := s.Verify(token); ok {
		t.Error("expected second verify to fail")
	}
}

func TestStore_VerifyUnknownToken(t *testing.T) {
	s, _ := newTestStore(DefaultTTL)

	tenantID, ok := s.Verify("never-issued")
	if ok || tenantID != "" {
		t.Errorf("expected (\"\", false), got (%q, %v)", tenantID, ok)
	}
}

func TestStore_VerifyExpiredToken(t *testing.T) {
	s, clock := newTestStore(DefaultTTL)

	token, err := s.Issue("tenant-42")
	if err != nil {
		t.Fatal(err)
	}

	clock.Advance(DefaultTTL + time.Second)

	tenantID, ok := s.Verify(token)
	if ok || tenantID != "" {
		t.Errorf("expected expired token to be invalid, got (%q, %v)", tenantID, ok)
	}

	// the expired entry must be gone entirely
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestStore_TokensAreUnique(t *testing.T) {
	s, _ := newTestStore(DefaultTTL)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := s.Issue("tenant-1")
		if err != nil {
			t.Fatal(err)
		}
		if seen[token] {
			t.Fatalf("duplicate token issued: %s", token)
		}
		seen[token] = true
	}
}

func TestStore_IssueEvictsExpired(t *testing.T) {
	s, clock := newTestStore(time.Minute)

	for i := 0; i < 10; i++ {
		if _, err := s.Issue("tenant-old"); err != nil {
			t.Fatal(err)
		}
	}

	clock.Advance(2 * time.Minute)

	if _, err := s.Issue("tenant-new"); err != nil {
		t.Fatal(err)
	}

	if got := s.Len(); got != 1 {
		t.Errorf("expected only the fresh entry to survive, got %d", got)
	}
}

func TestStore_ConcurrentVerifySingleWinner(t *testing.T) {
	s, _ := newTestStore(DefaultTTL)

	token, err := s.Issue("tenant-race")
	if err != nil {
		t.Fatal(err)
	}

	const callers = 64

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, results[i] = s.Verify(token)
		}(i)
	}

	close(start)
	wg.Wait()

	winners := 0
	for _, ok := range results {
		if ok {
			winners++
		}
	}

	if winners != 1 {
		t.Errorf("expected exactly one winner, got %d", winners)
	}
}

func TestStore_ConcurrentIssueAndVerify(t *testing.T) {
	s, _ := newTestStore(DefaultTTL)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.Issue("tenant-n")
			if err != nil {
				t.Error(err)
				return
			}
			if _, ok := s.Verify(token); !ok {
				t.Error("verify of own token failed")
			}
		}()
	}
	wg.Wait()

	if s.Len() != 0 {
		t.Errorf("expected drained store, got %d entries", s.Len())
	}
}

func TestNewStore_ZeroTTLUsesDefault(t *testing.T) {
	s := NewStore(0)
	if s.ttl != DefaultTTL {
		t.Errorf("expected default TTL, got %v", s.ttl)
	}
}
