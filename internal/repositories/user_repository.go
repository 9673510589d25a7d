package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dashboard_seed/internal/database"
	"dashboard_seed/internal/models"
)

type UserRepository struct {
	db database.DBTX
}

func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateTable(ctx context.Context) error {
	return database.CreateUsersTable(ctx, r.db)
}

// InsertMany writes users whose PasswordHash is already set. Rows whose id
// exists are skipped.
func (r *UserRepository) InsertMany(ctx context.Context, users []models.User) (int64, error) {
	query := `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for i := range users {
		user := &users[i]
		user.Prepare()
		if user.PasswordHash == "" {
			return 0, fmt.Errorf("user %s: password is not hashed", user.ID)
		}
		batch.Queue(query, user.ID, user.Name, user.Email, user.PasswordHash)
	}

	return execBatch(ctx, r.db, batch)
}

// FindUserByEmail reads back a stored user so the password hash round trip
// can be checked. It returns nil, nil when no row matches.
func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, name, email, password FROM users WHERE email = $1`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "users")
}
