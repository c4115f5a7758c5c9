package certificates

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// Repository persists issued certificates.
type Repository interface {
	Create(ctx context.Context, cert *Certificate) error
	GetByCertificateID(ctx context.Context, certificateID string) (*Certificate, error)
	GetByVerificationCode(ctx context.Context, code string) (*Certificate, error)
	ListByUser(ctx context.Context, userName string) ([]Certificate, error)
}

var ErrNotFound = errors.New("certificate not found")

// MemoryRepository is the in-process certificate store.
type MemoryRepository struct {
	mu    sync.RWMutex
	certs []Certificate
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, cert *Certificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.certs = append(r.certs, *cert)
	return nil
}

func (r *MemoryRepository) GetByCertificateID(_ context.Context, certificateID string) (*Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.certs {
		if r.certs[i].CertificateID == certificateID {
			cert := r.certs[i]
			return &cert, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) GetByVerificationCode(_ context.Context, code string) (*Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.certs {
		if r.certs[i].VerificationCode == code {
			cert := r.certs[i]
			return &cert, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) ListByUser(_ context.Context, userName string) ([]Certificate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Certificate
	for _, c := range r.certs {
		if c.UserName == userName {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IssuedAt.After(out[j].IssuedAt)
	})
	return out, nil
}
