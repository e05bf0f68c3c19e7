package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/kasarab/user_directory_service/internal/core/domain"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

type UserService struct {
	repo       ports.UserRepository
	logger     ports.LoggerPort
	email      *EmailMatcher
	minimumAge int
	now        func() time.Time
}

func NewUserService(
	repo ports.UserRepository,
	logger ports.LoggerPort,
	email *EmailMatcher,
	minimumAge int,
) *UserService {
	return &UserService{
		repo:       repo,
		logger:     logger,
		email:      email,
		minimumAge: minimumAge,
		now:        time.Now,
	}
}

var _ ports.UserService = (*UserService)(nil)

// CreateUser checks age, then email uniqueness, then email syntax, and stops
// at the first failure. It returns the submitted view, not the stored record.
func (us *UserService) CreateUser(ctx context.Context, view domain.UserView) (*domain.UserView, error) {
	us.logger.Info("Creating user", map[string]interface{}{
		"email":  view.Email,
		"method": "CreateUser",
	})

	if !us.CheckUserAge(view.BirthDate) {
		us.logger.Error("User birthdate is not eligible", map[string]interface{}{
			"birthdate":   view.BirthDate.Format(time.DateOnly),
			"minimum_age": us.minimumAge,
			"method":      "CreateUser",
		})
		return nil, domain.NewAgeNotEligibleError(us.minimumAge)
	}

	exists, err := us.repo.ExistsByEmail(ctx, view.Email)
	if err != nil {
		us.logger.Error("Failed to check email", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateUser",
		})
		return nil, err
	}
	if exists {
		us.logger.Error("User already exists with email", map[string]interface{}{
			"email":  view.Email,
			"method": "CreateUser",
		})
		return nil, domain.NewEmailAlreadyExistsError(view.Email, nil)
	}

	if !us.email.Valid(view.Email) {
		us.logger.Error("Invalid email", map[string]interface{}{
			"email":  view.Email,
			"method": "CreateUser",
		})
		return nil, domain.NewInvalidEmailFormatError()
	}

	// The pre-check above is not atomic with the insert; the storage unique
	// constraint catches a concurrent create with the same email.
	if _, err := us.repo.CreateUser(ctx, domain.NewUserFromView(view)); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.NewEmailAlreadyExistsError(view.Email, err)
		}
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateUser",
		})
		return nil, err
	}

	us.logger.Info("User successfully created", map[string]interface{}{
		"email": view.Email,
	})
	return &view, nil
}

// UpdateUser overwrites every field of an existing record.
//
// NOTE: unlike CreateUser, no age, email syntax or email uniqueness check runs
// here. This mirrors the behavior existing clients depend on. A duplicate email
// is still rejected by the storage unique constraint.
func (us *UserService) UpdateUser(ctx context.Context, id int64, view domain.UserView) (*domain.UserView, error) {
	us.logger.Info("Updating user", map[string]interface{}{
		"id":     id,
		"method": "UpdateUser",
	})

	user, err := us.repo.GetUserByID(ctx, id)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		us.logger.Error("User does not exist", map[string]interface{}{
			"id":     id,
			"method": "UpdateUser",
		})
		return nil, domain.NewUserIDNotFoundError(id)
	}

	user.Overwrite(view)

	if err := us.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.NewEmailAlreadyExistsError(view.Email, err)
		}
		us.logger.Error("Failed to update user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	us.logger.Info("User successfully updated", map[string]interface{}{
		"id": id,
	})
	return &view, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id int64) error {
	us.logger.Info("Deleting user", map[string]interface{}{
		"id":     id,
		"method": "DeleteUser",
	})

	exists, err := us.repo.ExistsByID(ctx, id)
	if err != nil {
		us.logger.Error("Failed to check user before deletion", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}
	if !exists {
		us.logger.Error("User does not exist", map[string]interface{}{
			"id":     id,
			"method": "DeleteUser",
		})
		return domain.NewUserIDNotFoundError(id)
	}

	if err := us.repo.DeleteUser(ctx, id); err != nil {
		us.logger.Error("Failed to delete user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	us.logger.Info("User deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

func (us *UserService) GetUser(ctx context.Context, id int64) (*domain.UserView, error) {
	us.logger.Info("Finding user", map[string]interface{}{
		"id": id,
	})

	user, err := us.repo.GetUserByID(ctx, id)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		return nil, domain.NewUserIDNotFoundError(id)
	}

	view := user.View()
	return &view, nil
}

func (us *UserService) GetUserByFirstName(ctx context.Context, firstName string) (*domain.UserView, error) {
	us.logger.Info("Finding user", map[string]interface{}{
		"firstname": firstName,
	})

	user, err := us.repo.GetUserByFirstName(ctx, firstName)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"firstname": firstName,
			"error":     err.Error(),
			"method":    "GetUserByFirstName",
		})
		return nil, err
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(firstName)
	}

	view := user.View()
	return &view, nil
}

func (us *UserService) GetUserByLastName(ctx context.Context, lastName string) (*domain.UserView, error) {
	us.logger.Info("Finding user", map[string]interface{}{
		"lastname": lastName,
	})

	user, err := us.repo.GetUserByLastName(ctx, lastName)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"lastname": lastName,
			"error":    err.Error(),
			"method":   "GetUserByLastName",
		})
		return nil, err
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(lastName)
	}

	view := user.View()
	return &view, nil
}

func (us *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	us.logger.Info("Checking if user exists with email", map[string]interface{}{
		"email": email,
	})
	return us.repo.ExistsByEmail(ctx, email)
}

func (us *UserService) ListUsers(ctx context.Context) ([]domain.UserView, error) {
	users, err := us.repo.ListUsers(ctx)
	if err != nil {
		us.logger.Error("Failed to list users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	views := toViews(users)
	us.logger.Info("Found users", map[string]interface{}{
		"count": len(views),
	})
	return views, nil
}

// ListUsersByBirthDate returns users born between from and to, both inclusive.
func (us *UserService) ListUsersByBirthDate(ctx context.Context, from, to time.Time) ([]domain.UserView, error) {
	from, to = domain.Date(from), domain.Date(to)
	if from.After(to) {
		us.logger.Error("Invalid birthdate range", map[string]interface{}{
			"date_from": from.Format(time.DateOnly),
			"date_to":   to.Format(time.DateOnly),
		})
		return nil, domain.NewInvalidDateRangeError()
	}

	users, err := us.repo.ListUsersByBirthDate(ctx, from, to)
	if err != nil {
		us.logger.Error("Failed to search users by birthdate", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	views := toViews(users)
	us.logger.Info("Found users", map[string]interface{}{
		"count": len(views),
	})
	return views, nil
}

func (us *UserService) ListUsersPage(ctx context.Context, pageNo, pageSize int) (*domain.PaginatedUsers, error) {
	// pageNo*pageSize must fit in an int to be usable as an offset.
	if pageNo < 0 || pageSize < 1 || pageNo > math.MaxInt/pageSize {
		return nil, domain.NewInvalidPageRequestError(pageNo, pageSize)
	}

	users, total, err := us.repo.ListUsersPage(ctx, pageNo*pageSize, pageSize)
	if err != nil {
		us.logger.Error("Failed to get users page", map[string]interface{}{
			"page_no":   pageNo,
			"page_size": pageSize,
			"error":     err.Error(),
		})
		return nil, err
	}

	totalPages := int(total / int64(pageSize))
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return &domain.PaginatedUsers{
		Users:         toViews(users),
		PageNo:        pageNo,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          pageNo >= totalPages-1,
	}, nil
}

// CheckUserAge reports whether the whole-year age at today's date reaches the minimum.
func (us *UserService) CheckUserAge(birthDate time.Time) bool {
	return AgeOn(birthDate, us.now()) >= us.minimumAge
}

// AgeOn returns the number of whole years between birthDate and day.
// A Feb 29 birthday is reached on Mar 1 in non-leap years.
func AgeOn(birthDate, day time.Time) int {
	age := day.Year() - birthDate.Year()
	if day.Month() < birthDate.Month() ||
		(day.Month() == birthDate.Month() && day.Day() < birthDate.Day()) {
		age--
	}
	return age
}

func toViews(users []domain.User) []domain.UserView {
	views := make([]domain.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}
	return views
}
