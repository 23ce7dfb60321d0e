package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// crudCore is the shared command/query handling strategy. Each aggregate
// service composes one, binding its repository methods and, when the
// aggregate carries a natural-key uniqueness invariant, its key extractor
// and uniqueness checks.
type crudCore[A any] struct {
	kind string

	// keyOf extracts the natural key; nil for aggregates without a
	// uniqueness invariant, in which case both exists checks stay unset.
	keyOf                  func(*A) string
	existsByKey            func(ctx context.Context, key string) (bool, error)
	existsByKeyExcludingID func(ctx context.Context, key string, id int64) (bool, error)

	existsByID func(ctx context.Context, id int64) (bool, error)
	findByID   func(ctx context.Context, id int64) (*A, error)
	findAll    func(ctx context.Context) ([]A, error)
	save       func(ctx context.Context, row *A) error
	deleteByID func(ctx context.Context, id int64) error

	// apply overwrites every mutable field of dst with src's values.
	apply func(dst, src *A)
}

func (c *crudCore[A]) create(ctx context.Context, row *A) (*A, error) {
	if c.keyOf != nil {
		key := c.keyOf(row)
		taken, err := c.existsByKey(ctx, key)
		if err != nil {
			return nil, apperrors.NewPersistenceFailure(c.kind, err)
		}
		if taken {
			return nil, apperrors.NewDuplicateKey(c.kind, key)
		}
	}
	if err := c.save(ctx, row); err != nil {
		return nil, apperrors.NewPersistenceFailure(c.kind, err)
	}
	return row, nil
}

func (c *crudCore[A]) update(ctx context.Context, id int64, src *A) (*A, error) {
	// Uniqueness runs before existence; both run before any mutation. A
	// row's own current value never conflicts with itself.
	if c.keyOf != nil {
		key := c.keyOf(src)
		taken, err := c.existsByKeyExcludingID(ctx, key, id)
		if err != nil {
			return nil, apperrors.NewPersistenceFailure(c.kind, err)
		}
		if taken {
			return nil, apperrors.NewDuplicateKey(c.kind, key)
		}
	}

	row, err := c.findByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(c.kind, id)
		}
		return nil, apperrors.NewPersistenceFailure(c.kind, err)
	}

	c.apply(row, src)
	if err := c.save(ctx, row); err != nil {
		return nil, apperrors.NewPersistenceFailure(c.kind, err)
	}
	return row, nil
}

func (c *crudCore[A]) delete(ctx context.Context, id int64) error {
	found, err := c.existsByID(ctx, id)
	if err != nil {
		return apperrors.NewPersistenceFailure(c.kind, err)
	}
	if !found {
		return apperrors.NewNotFound(c.kind, id)
	}
	if err := c.deleteByID(ctx, id); err != nil {
		return apperrors.NewPersistenceFailure(c.kind, err)
	}
	return nil
}

// getByID treats absence as a normal result, not a failure.
func (c *crudCore[A]) getByID(ctx context.Context, id int64) (*A, error) {
	row, err := c.findByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceFailure(c.kind, err)
	}
	return row, nil
}

func (c *crudCore[A]) getAll(ctx context.Context) ([]A, error) {
	rows, err := c.findAll(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure(c.kind, err)
	}
	return rows, nil
}
