package repository

import (
	"context"
	"fmt"

	"github.com/magscene/magsav-api/internal/domain"
	"github.com/magscene/magsav-api/internal/repository/dao"
)

var ErrPreferenceNotFound = dao.ErrPreferenceNotFound

type PreferenceDAO interface {
	Get(ctx context.Context, key string) (dao.Preference, error)
	Upsert(ctx context.Context, key, value string) (dao.Preference, error)
	Delete(ctx context.Context, key string) error
}

type PreferenceRepository struct {
	dao PreferenceDAO
}

func NewPreferenceRepository(dao PreferenceDAO) *PreferenceRepository {
	return &PreferenceRepository{
		dao: dao,
	}
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) (domain.Preference, error) {
	found, err := r.dao.Get(ctx, key)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("r.dao.Get -> %w", err)
	}

	return domain.Preference{Key: found.Key, Value: found.Value}, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, key, value string) (domain.Preference, error) {
	saved, err := r.dao.Upsert(ctx, key, value)
	if err != nil {
		return domain.Preference{}, fmt.Errorf("r.dao.Upsert -> %w", err)
	}

	return domain.Preference{Key: saved.Key, Value: saved.Value}, nil
}

func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	if err := r.dao.Delete(ctx, key); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
