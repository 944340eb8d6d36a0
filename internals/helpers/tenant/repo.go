// Package tenant holds the tenant-scoped data access used by every entity service.
package tenant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
)

// Model is implemented by every school-owned row.
type Model interface {
	SetSchoolID(uuid.UUID)
}

// Repo applies the id + school_id predicates for T.
type Repo[T any] struct {
	db     *gorm.DB
	name   string
	column string
}

func NewRepo[T any](db *gorm.DB, name string) *Repo[T] {
	return &Repo[T]{db: db, name: name, column: "school_id"}
}

// WithColumn overrides the tenant column (schools are keyed by their own id).
func (r *Repo[T]) WithColumn(col string) *Repo[T] {
	cp := *r
	cp.column = col
	return &cp
}

func (r *Repo[T]) DB() *gorm.DB { return r.db }

func (r *Repo[T]) NotFound() error { return helper.ErrNotFound(r.name + " not found") }

// Query starts a scoped query on T.
func (r *Repo[T]) Query(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope) *gorm.DB {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Model(new(T)).Scopes(scope.Fn(r.column))
}

func (r *Repo[T]) Find(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, id uuid.UUID) (*T, error) {
	var m T
	err := r.Query(ctx, tx, scope).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.NotFound()
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns one page plus the total count; filters are applied before both.
func (r *Repo[T]) List(ctx context.Context, scope helperAuth.Scope, p helper.Paging, order string, filters ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	q := r.Query(ctx, nil, scope).Scopes(filters...)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	out := make([]T, 0)
	q = q.Order(order)
	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Create forces the scope's school onto m before inserting.
func (r *Repo[T]) Create(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, m Model) error {
	schoolID, err := scope.Require()
	if err != nil {
		return err
	}
	m.SetSchoolID(schoolID)
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(m).Error
}

// Update applies a partial update and re-reads the row.
func (r *Repo[T]) Update(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, id uuid.UUID, updates map[string]any) (*T, error) {
	delete(updates, r.column)
	delete(updates, "id")
	if len(updates) == 0 {
		return r.Find(ctx, tx, scope, id)
	}
	res := r.Query(ctx, tx, scope).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, r.NotFound()
	}
	return r.Find(ctx, tx, scope, id)
}

func (r *Repo[T]) Delete(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, id uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.WithContext(ctx).Scopes(scope.Fn(r.column)).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.NotFound()
	}
	return nil
}

// EnsureAll fails with NotFound unless every id resolves inside the scope.
func (r *Repo[T]) EnsureAll(ctx context.Context, tx *gorm.DB, scope helperAuth.Scope, ids ...uuid.UUID) error {
	uniq := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	if len(uniq) == 0 {
		return nil
	}
	list := make([]uuid.UUID, 0, len(uniq))
	for id := range uniq {
		list = append(list, id)
	}
	var n int64
	if err := r.Query(ctx, tx, scope).Where("id IN ?", list).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(list) {
		return r.NotFound()
	}
	return nil
}
