package sms

import (
	"sync"
	"time"
)

type storedCode struct {
	code      string
	createdAt time.Time
}

// CodeStore keeps at most one pending verification code per phone number,
// in process memory. Entries older than the TTL are evicted when read, so
// an expired code can never verify.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]storedCode
	ttl   time.Duration
	now   func() time.Time
}

func NewCodeStore(ttl time.Duration) *CodeStore {
	return &CodeStore{
		codes: make(map[string]storedCode),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Set stores a code for the phone, overwriting any previous one.
func (s *CodeStore) Set(phone, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[phone] = storedCode{
		code:      code,
		createdAt: s.now(),
	}
}

// Get returns the pending code for the phone, expiring stale entries on
// access.
func (s *CodeStore) Get(phone string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phone]
	if !ok {
		return "", false
	}

	if s.now().Sub(entry.createdAt) > s.ttl {
		delete(s.codes, phone)
		return "", false
	}

	return entry.code, true
}

// Delete removes the pending code for the phone, if any. Called after a
// code has been consumed by a successful registration.
func (s *CodeStore) Delete(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.codes, phone)
}
