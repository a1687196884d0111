package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stonetrade/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type scope = func(*gorm.DB) *gorm.DB

// gormStore holds the query plumbing shared by every repository.
type gormStore[T any] struct {
	db            *gorm.DB
	sortFields    map[string]bool
	defaultSort   string
	searchColumns []string
	filterColumns map[string]bool
	dateColumn    string
}

func (s *gormStore[T]) query(ctx context.Context, scopes ...scope) *gorm.DB {
	return s.db.WithContext(ctx).Model(new(T)).Scopes(scopes...)
}

func (s *gormStore[T]) findByID(ctx context.Context, id uuid.UUID, scopes ...scope) (*T, error) {
	var entity T
	if err := s.query(ctx, scopes...).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (s *gormStore[T]) findAll(ctx context.Context, filter shared.Filter, scopes ...scope) ([]T, error) {
	var items []T
	query := s.applyFilter(s.query(ctx, scopes...), filter)
	query = s.applyOrder(query, filter)
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore[T]) count(ctx context.Context, filter shared.Filter, scopes ...scope) (int64, error) {
	var count int64
	if err := s.applyFilter(s.query(ctx, scopes...), filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *gormStore[T]) exists(ctx context.Context, id uuid.UUID, scopes ...scope) (bool, error) {
	var count int64
	if err := s.query(ctx, scopes...).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *gormStore[T]) create(ctx context.Context, entity *T) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

// updateWithLock writes every column except id and created_at, provided the stored
// version is the one the entity was loaded at (version - 1 after IncrementVersion).
func (s *gormStore[T]) updateWithLock(ctx context.Context, entity *T, id uuid.UUID, version int) error {
	result := s.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "created_at").
		Where("version = ?", version-1).
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		found, err := s.exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return shared.ErrNotFound
		}
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func (s *gormStore[T]) delete(ctx context.Context, id uuid.UUID, scopes ...scope) error {
	result := s.db.WithContext(ctx).Scopes(scopes...).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (s *gormStore[T]) each(ctx context.Context, batchSize int, fn func(*T) error, scopes ...scope) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	var batch []T
	var fnErr error
	result := s.query(ctx, scopes...).FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
		for i := range batch {
			if err := fn(&batch[i]); err != nil {
				fnErr = err
				return err
			}
		}
		return nil
	})
	if fnErr != nil {
		return fnErr
	}
	return result.Error
}

// applyFilter applies search, whitelisted column filters and the date range.
func (s *gormStore[T]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" && len(s.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(search) + "%"
		conds := make([]string, len(s.searchColumns))
		args := make([]any, len(s.searchColumns))
		for i, col := range s.searchColumns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	for key, value := range filter.Filters {
		if s.filterColumns[key] {
			query = query.Where(key+" = ?", value)
		}
	}
	if s.dateColumn != "" {
		if filter.DateFrom != nil {
			query = query.Where(s.dateColumn+" >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where(s.dateColumn+" <= ?", *filter.DateTo)
		}
	}
	return query
}

func (s *gormStore[T]) applyOrder(query *gorm.DB, filter shared.Filter) *gorm.DB {
	field := ValidateSortField(filter.OrderBy, s.sortFields, s.defaultSort)
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

func columnSet(cols ...string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[c] = true
	}
	return m
}
