package analysis

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Repository persists analysis records. The engine itself is stateless;
// all history lives behind this interface.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)
	CountAll(ctx context.Context) (int64, error)
}

var ErrNotFound = errors.New("analysis record not found")

// MemoryRepository is the in-process implementation. All access happens
// under the mutex; the shared engine stages never touch this state.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]Record
	total   int64
}

// NewMemoryRepository creates an empty in-memory store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string][]Record)}
}

func (r *MemoryRepository) Create(_ context.Context, record *Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.UserID] = append(r.records[record.UserID], *record)
	r.total++
	return nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := append([]Record(nil), r.records[userID]...)
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *MemoryRepository) CountAll(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total, nil
}
