package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// User mirrors one row of the users table.  Accounts are tenant-scoped:
// the same email may exist under different tenants.
type User struct {
	TenantID     string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepo manages account records.  Unlike the entity repositories it
// is typed rather than schemaless: user rows carry a password hash and
// are looked up on every login, so they stay out of the item store.
type UserRepo struct {
	db    *sql.DB
	table string
}

// NewUserRepo constructs a UserRepo over the given DB handle and table.
func NewUserRepo(db *sql.DB, table string) *UserRepo {
	return &UserRepo{db: db, table: table}
}

// Create inserts a new account with a bcrypt-hashed password.  It
// returns ErrEmailExists when the (tenant_id, email) pair is taken.
func (r *UserRepo) Create(ctx context.Context, tenantID, email, name, password string, cost int) error {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO `"+r.table+"` (tenant_id, email, name, password_hash) VALUES (?,?,?,?)",
		tenantID, email, name, hash)
	if err != nil {
		// MySQL duplicate-key errors carry code 1062.
		if strings.Contains(err.Error(), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches an account by tenant and normalized email.  It
// returns ErrUserNotFound when no row matches.
func (r *UserRepo) GetByEmail(ctx context.Context, tenantID, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.db.QueryRowContext(ctx,
		"SELECT tenant_id, email, name, password_hash, created_at FROM `"+r.table+"` WHERE tenant_id=? AND email=? LIMIT 1",
		tenantID, email).Scan(&u.TenantID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}
