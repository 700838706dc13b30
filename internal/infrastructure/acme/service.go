// Package acme simulates the AcmeCRM backend with a process-local store.
// Records live only as long as the Service value that owns them.
package acme

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linq/acme-integration/internal/domain/contact"
)

// IDPrefix starts every generated record identifier.
const IDPrefix = "acme_"

// TimestampLayout renders creation times as ISO-8601 UTC with a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Option configures a Service
type Option func(*Service)

// WithClock replaces the wall clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator replaces the identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

// Service is the in-memory AcmeCRM. It is safe for concurrent use and
// implements contact.CRMGateway.
type Service struct {
	mu      sync.RWMutex
	records map[string]*contact.StoredRecord
	order   []string
	issued  map[string]struct{}

	now   func() time.Time
	newID func() string
}

var _ contact.CRMGateway = (*Service)(nil)

// NewService creates an empty store
func NewService(opts ...Option) *Service {
	s := &Service{
		records: make(map[string]*contact.StoredRecord),
		issued:  make(map[string]struct{}),
		now:     time.Now,
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns IDPrefix followed by 8 lowercase hex characters taken from a
// random UUID.
func NewID() string {
	return IDPrefix + uuid.NewString()[:8]
}

// Create stores c and returns the full record including generated fields.
func (s *Service) Create(c contact.AcmeContact) contact.StoredRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for {
		if _, used := s.issued[id]; !used {
			break
		}
		id = s.newID()
	}
	s.issued[id] = struct{}{}

	rec := &contact.StoredRecord{
		ID:        id,
		Contact:   c,
		CreatedAt: s.now().UTC().Format(TimestampLayout),
		Status:    contact.StatusActive,
	}
	s.records[id] = rec
	s.order = append(s.order, id)
	return *rec
}

// Get returns the record stored under id. The bool is false when no such
// record exists.
func (s *Service) Get(id string) (contact.StoredRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return contact.StoredRecord{}, false
	}
	return *rec, true
}

// List returns a snapshot of every record in insertion order.
func (s *Service) List() []contact.StoredRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contact.StoredRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id])
	}
	return out
}

// UpdateStatus sets the status of an existing record. It reports false if
// id is unknown.
func (s *Service) UpdateStatus(id, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return false
	}
	rec.Status = status
	return true
}

// Delete removes the record. It reports false if id is unknown.
func (s *Service) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Stats counts records by status.
func (s *Service) Stats() contact.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := contact.Stats{Total: len(s.records)}
	for _, rec := range s.records {
		if rec.Status == contact.StatusActive {
			st.Active++
		}
	}
	st.Inactive = st.Total - st.Active
	return st
}

// Clear empties the store. Issued identifiers stay reserved.
// Intended for test isolation.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]*contact.StoredRecord)
	s.order = nil
}
