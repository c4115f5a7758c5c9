package certificates

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// PostgresRepository stores certificates in Postgres via gorm.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) (*PostgresRepository, error) {
	if err := db.AutoMigrate(&Certificate{}); err != nil {
		return nil, fmt.Errorf("failed to migrate certificates: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cert *Certificate) error {
	if err := r.db.WithContext(ctx).Create(cert).Error; err != nil {
		return fmt.Errorf("failed to save certificate: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByCertificateID(ctx context.Context, certificateID string) (*Certificate, error) {
	var cert Certificate
	err := r.db.WithContext(ctx).Where("certificate_id = ?", certificateID).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}
	return &cert, nil
}

func (r *PostgresRepository) GetByVerificationCode(ctx context.Context, code string) (*Certificate, error) {
	var cert Certificate
	err := r.db.WithContext(ctx).Where("verification_code = ?", code).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate: %w", err)
	}
	return &cert, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userName string) ([]Certificate, error) {
	var certs []Certificate
	err := r.db.WithContext(ctx).
		Where("user_name = ?", userName).
		Order("issued_at DESC").
		Find(&certs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certs, nil
}
