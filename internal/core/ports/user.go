package ports

import (
	"context"
	"time"

	"github.com/kasarab/user_directory_service/internal/core/domain"
)

// UserRepository is the persistence gateway. Single-record lookups return
// (nil, nil) when nothing matches.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByFirstName(ctx context.Context, firstName string) (*domain.User, error)
	GetUserByLastName(ctx context.Context, lastName string) (*domain.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByBirthDate(ctx context.Context, from, to time.Time) ([]domain.User, error)
	ListUsersPage(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type UserService interface {
	CreateUser(ctx context.Context, view domain.UserView) (*domain.UserView, error)
	UpdateUser(ctx context.Context, id int64, view domain.UserView) (*domain.UserView, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUser(ctx context.Context, id int64) (*domain.UserView, error)
	GetUserByFirstName(ctx context.Context, firstName string) (*domain.UserView, error)
	GetUserByLastName(ctx context.Context, lastName string) (*domain.UserView, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]domain.UserView, error)
	ListUsersByBirthDate(ctx context.Context, from, to time.Time) ([]domain.UserView, error)
	ListUsersPage(ctx context.Context, pageNo, pageSize int) (*domain.PaginatedUsers, error)
	CheckUserAge(birthDate time.Time) bool
}
