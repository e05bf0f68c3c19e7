package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kasarab/user_directory_service/internal/core/domain"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

// UserRepository keeps users in process memory, ordered by ID. Like the users
// table, it rejects a second record with the same email.
type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*domain.User
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		store:  make(map[int64]*domain.User),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTakenLocked(user.Email, 0) {
		return nil, domain.ErrEmailTaken
	}

	userCopy := *user
	userCopy.ID = r.nextID
	userCopy.BirthDate = domain.Date(user.BirthDate)
	r.nextID++
	r.store[userCopy.ID] = &userCopy

	result := userCopy
	return &result, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *UserRepository) GetUserByFirstName(ctx context.Context, firstName string) (*domain.User, error) {
	return r.findFirst(func(u *domain.User) bool { return u.FirstName == firstName }), nil
}

func (r *UserRepository) GetUserByLastName(ctx context.Context, lastName string) (*domain.User, error) {
	return r.findFirst(func(u *domain.User) bool { return u.LastName == lastName }), nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store[id]
	return ok, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.findFirst(func(u *domain.User) bool { return u.Email == email }) != nil, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(nil), nil
}

func (r *UserRepository) ListUsersByBirthDate(ctx context.Context, from, to time.Time) ([]domain.User, error) {
	from, to = domain.Date(from), domain.Date(to)

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(func(u *domain.User) bool {
		return !u.BirthDate.Before(from) && !u.BirthDate.After(to)
	}), nil
}

func (r *UserRepository) ListUsersPage(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedLocked(nil)
	total := int64(len(all))
	if offset < 0 || limit < 1 || offset >= len(all) {
		return []domain.User{}, total, nil
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.ID]; !ok {
		return domain.NewUserIDNotFoundError(user.ID)
	}
	if r.emailTakenLocked(user.Email, user.ID) {
		return domain.ErrEmailTaken
	}

	stored := *user
	stored.BirthDate = domain.Date(user.BirthDate)
	r.store[user.ID] = &stored
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.NewUserIDNotFoundError(id)
	}
	delete(r.store, id)
	return nil
}

func (r *UserRepository) findFirst(match func(*domain.User) bool) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := r.sortedLocked(match)
	if len(found) == 0 {
		return nil
	}
	return &found[0]
}

func (r *UserRepository) emailTakenLocked(email string, exceptID int64) bool {
	for id, u := range r.store {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (r *UserRepository) sortedLocked(match func(*domain.User) bool) []domain.User {
	result := make([]domain.User, 0, len(r.store))
	for _, user := range r.store {
		if match == nil || match(user) {
			result = append(result, *user)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
