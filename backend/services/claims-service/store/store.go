package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/Ya-m-i/agri-fabric/backend/services/claims-service/models"
)

// Store is the transient fallback for claim logs when the ledger is
// unreachable. It is shared across all organizations, volatile, and
// never reconciled with the ledger. The lock keeps concurrent appends
// from racing.
type Store struct {
	mu     sync.Mutex
	claims []models.ClaimLog
}

func New() *Store {
	return &Store{}
}

// Append assigns the server-side id and creation timestamp, stores the
// record, and returns it as stored.
func (s *Store) Append(claim models.ClaimLog) models.ClaimLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	claim.ID = strconv.FormatInt(now.UnixMilli(), 10)
	claim.CreatedAt = now.UTC().Format(time.RFC3339)
	s.claims = append(s.claims, claim)
	return claim
}

// List returns a copy of the stored records, oldest first. Never nil.
func (s *Store) List() []models.ClaimLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ClaimLog, len(s.claims))
	copy(out, s.claims)
	return out
}
