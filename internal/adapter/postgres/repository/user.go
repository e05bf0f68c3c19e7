package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/kasarab/user_directory_service/internal/core/domain"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

const (
	uniqueViolation  = "23505"
	notNullViolation = "23502"
)

const userColumns = `id, firstname, lastname, birthdate, email, address, phone_number`

type rowScanner interface {
	Scan(dest ...any) error
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

var _ ports.UserRepository = (*PostgresUserRepository)(nil)

func NewUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db,
	}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (firstname, lastname, birthdate, email, address, phone_number)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, domain.Date(user.BirthDate), user.Email,
		nullString(user.Address), nullString(user.PhoneNumber),
	).Scan(&user.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresUserRepository) GetUserByFirstName(ctx context.Context, firstName string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE firstname = $1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, query, firstName)
}

func (r *PostgresUserRepository) GetUserByLastName(ctx context.Context, lastName string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lastname = $1 ORDER BY id LIMIT 1`
	return r.getOne(ctx, query, lastName)
}

func (r *PostgresUserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	return r.list(ctx, query)
}

func (r *PostgresUserRepository) ListUsersByBirthDate(ctx context.Context, from, to time.Time) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
              WHERE birthdate BETWEEN $1 AND $2
              ORDER BY id`
	return r.list(ctx, query, domain.Date(from), domain.Date(to))
}

func (r *PostgresUserRepository) ListUsersPage(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	// One snapshot for both statements, so the total matches the rows returned.
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("begin page transaction: %w", err)
	}
	defer tx.Rollback()

	var total int64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id LIMIT $1 OFFSET $2`
	users, err := queryUsers(ctx, tx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("commit page transaction: %w", err)
	}
	return users, total, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
        SET
        firstname = $1,
        lastname = $2,
        birthdate = $3,
        email = $4,
        address = $5,
        phone_number = $6
        WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, domain.Date(user.BirthDate), user.Email,
		nullString(user.Address), nullString(user.PhoneNumber), user.ID)
	if err != nil {
		return translateError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.NewUserIDNotFoundError(user.ID)
	}
	return nil
}

func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewUserIDNotFoundError(id)
	}

	return nil
}

func (r *PostgresUserRepository) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresUserRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) list(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	return queryUsers(ctx, r.db, query, args...)
}

func queryUsers(ctx context.Context, q queryer, query string, args ...any) ([]domain.User, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var address, phoneNumber sql.NullString
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.BirthDate,
		&user.Email,
		&address,
		&phoneNumber,
	)
	if err != nil {
		return nil, err
	}
	user.BirthDate = domain.Date(user.BirthDate)
	user.Address = address.String
	user.PhoneNumber = phoneNumber.String
	return user, nil
}

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return domain.ErrEmailTaken
		case notNullViolation:
			return fmt.Errorf("required field is missing: %s", pqErr.Column)
		}
	}
	return err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
