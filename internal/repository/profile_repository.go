package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thecoders/cartunn-backend/internal/domain"
)

// ProfileRepository is the store contract for the Profile aggregate.
type ProfileRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailExcludingID(ctx context.Context, email string, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.Profile, error)
	FindAll(ctx context.Context) ([]domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	DeleteByID(ctx context.Context, id int64) error
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM profiles WHERE email=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *profileRepository) ExistsByEmailExcludingID(ctx context.Context, email string, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM profiles WHERE email=$1 AND id<>$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, email, id).Scan(&exists)
	return exists, err
}

func (r *profileRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM profiles WHERE id=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *profileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	const query = `
        SELECT id, first_name, last_name, email, created_at, updated_at
        FROM profiles WHERE id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	const query = `
        SELECT id, first_name, last_name, email, created_at, updated_at
        FROM profiles ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Profile
	for rows.Next() {
		var profile domain.Profile
		if err := rows.Scan(
			&profile.ID,
			&profile.FirstName,
			&profile.LastName,
			&profile.Email,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if profile.ID == 0 {
		const query = `
        INSERT INTO profiles (first_name, last_name, email)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

		return r.pool.QueryRow(ctx, query,
			profile.FirstName,
			profile.LastName,
			profile.Email,
		).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	}

	const query = `
        UPDATE profiles SET first_name=$1, last_name=$2, email=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		profile.FirstName,
		profile.LastName,
		profile.Email,
		profile.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM profiles WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
