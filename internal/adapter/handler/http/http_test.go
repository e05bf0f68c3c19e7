package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kasarab/user_directory_service/internal/adapter/logger"
	"github.com/kasarab/user_directory_service/internal/adapter/memory"
	"github.com/kasarab/user_directory_service/internal/core/domain"
	"github.com/kasarab/user_directory_service/internal/core/ports"
	"github.com/kasarab/user_directory_service/internal/core/services"
)

// ---- mock implementations ----

type mockUserService struct {
	createFn      func(domain.UserView) (*domain.UserView, error)
	updateFn      func(int64, domain.UserView) (*domain.UserView, error)
	deleteFn      func(int64) error
	getFn         func(int64) (*domain.UserView, error)
	firstNameFn   func(string) (*domain.UserView, error)
	lastNameFn    func(string) (*domain.UserView, error)
	existsFn      func(string) (bool, error)
	listFn        func() ([]domain.UserView, error)
	birthDateFn   func(time.Time, time.Time) ([]domain.UserView, error)
	pageFn        func(int, int) (*domain.PaginatedUsers, error)
	checkUserAgeF func(time.Time) bool
}

var errNotConfigured = errors.New("not configured")

func (m *mockUserService) CreateUser(_ context.Context, view domain.UserView) (*domain.UserView, error) {
	if m.createFn != nil {
		return m.createFn(view)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) UpdateUser(_ context.Context, id int64, view domain.UserView) (*domain.UserView, error) {
	if m.updateFn != nil {
		return m.updateFn(id, view)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) DeleteUser(_ context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return errNotConfigured
}

func (m *mockUserService) GetUser(_ context.Context, id int64) (*domain.UserView, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) GetUserByFirstName(_ context.Context, name string) (*domain.UserView, error) {
	if m.firstNameFn != nil {
		return m.firstNameFn(name)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) GetUserByLastName(_ context.Context, name string) (*domain.UserView, error) {
	if m.lastNameFn != nil {
		return m.lastNameFn(name)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(email)
	}
	return false, errNotConfigured
}

func (m *mockUserService) ListUsers(context.Context) ([]domain.UserView, error) {
	if m.listFn != nil {
		return m.listFn()
	}
	return nil, errNotConfigured
}

func (m *mockUserService) ListUsersByBirthDate(_ context.Context, from, to time.Time) ([]domain.UserView, error) {
	if m.birthDateFn != nil {
		return m.birthDateFn(from, to)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) ListUsersPage(_ context.Context, pageNo, pageSize int) (*domain.PaginatedUsers, error) {
	if m.pageFn != nil {
		return m.pageFn(pageNo, pageSize)
	}
	return nil, errNotConfigured
}

func (m *mockUserService) CheckUserAge(birthDate time.Time) bool {
	if m.checkUserAgeF != nil {
		return m.checkUserAgeF(birthDate)
	}
	return false
}

type mockMetrics struct {
	counters []string
	labels   []map[string]string
	recorded int
}

func (m *mockMetrics) IncrementCounter(name string, labels map[string]string) {
	m.counters = append(m.counters, name)
	m.labels = append(m.labels, labels)
}

func (m *mockMetrics) RecordDuration(string, time.Duration, map[string]string) {}

func (m *mockMetrics) RecordMetrics(*gin.Context, time.Time) {
	m.recorded++
}

var _ ports.MetricsPort = (*mockMetrics)(nil)

// ---- helpers ----

func newTestRouter(t *testing.T, svc ports.UserService) (*gin.Engine, *mockMetrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	validate := validator.New()
	if err := RegisterValidations(validate); err != nil {
		t.Fatalf("RegisterValidations: %v", err)
	}

	metrics := &mockMetrics{}
	h := NewUserHandler(svc, logger.Nop{}, validate, metrics, 5)

	r := gin.New()
	h.Register(r.Group("/api/users"))
	return r, metrics
}

func doRequest(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not JSON: %v (%s)", err, w.Body.String())
	}
	return resp
}

// ---- test data ----

func testView() *domain.UserView {
	return &domain.UserView{
		FirstName:   "Taras",
		LastName:    "Shevchenko",
		BirthDate:   time.Date(2000, time.August, 19, 0, 0, 0, 0, time.UTC),
		Email:       "taras@example.com",
		Address:     "Kyiv",
		PhoneNumber: "+380501234567",
	}
}

const validBody = `{"firstname":"Taras","lastname":"Shevchenko","birthdate":"19-08-2000","email":"taras@example.com","address":"Kyiv","phoneNumber":"+380501234567"}`

// ---- tests ----

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createFn       func(domain.UserView) (*domain.UserView, error)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			body: validBody,
			createFn: func(v domain.UserView) (*domain.UserView, error) {
				return &v, nil
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "User Successfully Created",
		},
		{
			name:           "malformed json",
			body:           `{"firstname":`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid JSON format",
		},
		{
			name:           "missing firstname",
			body:           `{"lastname":"S","birthdate":"19-08-2000","email":"a@b.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Firstname cannot be empty",
		},
		{
			name:           "blank lastname",
			body:           `{"firstname":"T","lastname":"   ","birthdate":"19-08-2000","email":"a@b.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Lastname cannot be empty",
		},
		{
			name:           "firstname too long",
			body:           `{"firstname":"` + strings.Repeat("a", 51) + `","lastname":"S","birthdate":"19-08-2000","email":"a@b.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Firstname must contain from 1 to 50 characters",
		},
		{
			name:           "birthdate in wrong layout",
			body:           `{"firstname":"T","lastname":"S","birthdate":"2000-08-19","email":"a@b.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Birthdate must be in dd-MM-yyyy format",
		},
		{
			name: "too young",
			body: validBody,
			createFn: func(domain.UserView) (*domain.UserView, error) {
				return nil, domain.NewAgeNotEligibleError(18)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User must be at least 18 years old.",
		},
		{
			name: "email taken",
			body: validBody,
			createFn: func(domain.UserView) (*domain.UserView, error) {
				return nil, domain.NewEmailAlreadyExistsError("taras@example.com", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User with Email taras@example.com already exists.",
		},
		{
			name: "invalid email",
			body: validBody,
			createFn: func(domain.UserView) (*domain.UserView, error) {
				return nil, domain.NewInvalidEmailFormatError()
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "User must be with a valid Email address.",
		},
		{
			name: "storage failure",
			body: validBody,
			createFn: func(domain.UserView) (*domain.UserView, error) {
				return nil, errors.New("connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, &mockUserService{createFn: tt.createFn})
			w := doRequest(router, http.MethodPost, "/api/users/add", tt.body)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			var resp map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if resp["message"] != tt.expectedMsg {
				t.Errorf("expected message %q, got %v", tt.expectedMsg, resp["message"])
			}
		})
	}
}

func TestCreateUserResponseShape(t *testing.T) {
	var received domain.UserView
	router, _ := newTestRouter(t, &mockUserService{
		createFn: func(v domain.UserView) (*domain.UserView, error) {
			received = v
			return &v, nil
		},
	})

	w := doRequest(router, http.MethodPost, "/api/users/add", validBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	if received != *testView() {
		t.Errorf("service received %+v", received)
	}

	var resp struct {
		Success bool    `json:"success"`
		Message string  `json:"message"`
		Data    UserDTO `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Data.BirthDate != "19-08-2000" || resp.Data.PhoneNumber != "+380501234567" {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestErrorEnvelope(t *testing.T) {
	router, metrics := newTestRouter(t, &mockUserService{
		getFn: func(id int64) (*domain.UserView, error) {
			return nil, domain.NewUserIDNotFoundError(id)
		},
	})

	w := doRequest(router, http.MethodGet, "/api/users/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	resp := decodeError(t, w)
	if resp.Message != "User with id 999 was not found." {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.HTTPStatus != "NOT_FOUND" {
		t.Errorf("httpStatus = %q", resp.HTTPStatus)
	}
	if _, err := time.Parse("2006-01-02 15:04:05", resp.Timestamp); err != nil {
		t.Errorf("timestamp %q: %v", resp.Timestamp, err)
	}

	if len(metrics.counters) != 1 || metrics.counters[0] != ports.MetricUserRuleRejections {
		t.Errorf("counters = %v", metrics.counters)
	}
	if metrics.labels[0]["kind"] != string(domain.KindNotFound) {
		t.Errorf("labels = %v", metrics.labels[0])
	}
	if metrics.recorded != 1 {
		t.Errorf("RecordMetrics called %d times", metrics.recorded)
	}
}

func TestInternalErrorIsNotCountedAsRejection(t *testing.T) {
	router, metrics := newTestRouter(t, &mockUserService{
		listFn: func() ([]domain.UserView, error) {
			return nil, errors.New("db down")
		},
	})

	w := doRequest(router, http.MethodGet, "/api/users/", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if resp := decodeError(t, w); resp.HTTPStatus != "INTERNAL_SERVER_ERROR" {
		t.Errorf("httpStatus = %q", resp.HTTPStatus)
	}
	if len(metrics.counters) != 0 {
		t.Errorf("counters = %v", metrics.counters)
	}
}

func TestUserIDRoutes(t *testing.T) {
	notFound := func(id int64) error { return domain.NewUserIDNotFoundError(id) }

	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		svc            *mockUserService
		expectedStatus int
	}{
		{
			name:   "get found",
			method: http.MethodGet,
			url:    "/api/users/1",
			svc: &mockUserService{getFn: func(int64) (*domain.UserView, error) {
				return testView(), nil
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "get non numeric id",
			method:         http.MethodGet,
			url:            "/api/users/abc",
			svc:            &mockUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "get zero id",
			method:         http.MethodGet,
			url:            "/api/users/0",
			svc:            &mockUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update success",
			method: http.MethodPut,
			url:    "/api/users/1",
			body:   validBody,
			svc: &mockUserService{updateFn: func(_ int64, v domain.UserView) (*domain.UserView, error) {
				return &v, nil
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "update missing",
			method: http.MethodPut,
			url:    "/api/users/999",
			body:   validBody,
			svc: &mockUserService{updateFn: func(id int64, _ domain.UserView) (*domain.UserView, error) {
				return nil, notFound(id)
			}},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "update invalid body",
			method:         http.MethodPut,
			url:            "/api/users/1",
			body:           `{"firstname":""}`,
			svc:            &mockUserService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete success",
			method: http.MethodDelete,
			url:    "/api/users/1",
			svc: &mockUserService{deleteFn: func(int64) error {
				return nil
			}},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			url:    "/api/users/999",
			svc: &mockUserService{deleteFn: func(id int64) error {
				return notFound(id)
			}},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, tt.svc)
			w := doRequest(router, tt.method, tt.url, tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestDeleteUserMessage(t *testing.T) {
	router, _ := newTestRouter(t, &mockUserService{deleteFn: func(int64) error { return nil }})

	w := doRequest(router, http.MethodDelete, "/api/users/3", "")
	var resp successResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Message != "User Successfully Deleted from Database" || resp.Data != nil {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestSearchUsersByBirthDate(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		birthDateFn    func(time.Time, time.Time) ([]domain.UserView, error)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "success",
			query: "?dateFrom=01-01-2000&dateTo=01-01-2002",
			birthDateFn: func(from, to time.Time) ([]domain.UserView, error) {
				if from.Year() != 2000 || to.Year() != 2002 {
					return nil, errors.New("wrong dates")
				}
				return []domain.UserView{*testView()}, nil
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:  "empty result",
			query: "?dateFrom=01-01-1900&dateTo=01-01-1901",
			birthDateFn: func(time.Time, time.Time) ([]domain.UserView, error) {
				return []domain.UserView{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "missing dateTo",
			query:          "?dateFrom=01-01-2000",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad dateFrom layout",
			query:          "?dateFrom=2000-01-01&dateTo=01-01-2002",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "reversed range",
			query: "?dateFrom=01-01-1995&dateTo=01-01-1990",
			birthDateFn: func(time.Time, time.Time) ([]domain.UserView, error) {
				return nil, domain.NewInvalidDateRangeError()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, &mockUserService{birthDateFn: tt.birthDateFn})
			w := doRequest(router, http.MethodGet, "/api/users/search"+tt.query, "")
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if w.Code != http.StatusOK {
				return
			}
			var users []UserDTO
			if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
				t.Fatal(err)
			}
			if len(users) != tt.expectedCount {
				t.Errorf("expected %d users, got %d", tt.expectedCount, len(users))
			}
		})
	}
}

func TestListUsersPage(t *testing.T) {
	var gotNo, gotSize int
	svc := &mockUserService{pageFn: func(pageNo, pageSize int) (*domain.PaginatedUsers, error) {
		gotNo, gotSize = pageNo, pageSize
		if pageNo < 0 || pageSize < 1 {
			return nil, domain.NewInvalidPageRequestError(pageNo, pageSize)
		}
		return &domain.PaginatedUsers{
			Users:         []domain.UserView{*testView()},
			PageNo:        pageNo,
			PageSize:      pageSize,
			TotalElements: 12,
			TotalPages:    3,
			Last:          pageNo == 2,
		}, nil
	}}
	router, _ := newTestRouter(t, svc)

	t.Run("defaults", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/users/all/pagination", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if gotNo != 0 || gotSize != 5 {
			t.Errorf("service got pageNo=%d pageSize=%d", gotNo, gotSize)
		}
	})

	t.Run("explicit page", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/users/all/pagination?pageNo=2&pageSize=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		for _, key := range []string{"users", "pageNo", "pageSize", "totalElements", "totalPages", "last"} {
			if _, ok := resp[key]; !ok {
				t.Errorf("missing key %q in %s", key, w.Body.String())
			}
		}
		if resp["last"] != true {
			t.Errorf("last = %v", resp["last"])
		}
	})

	t.Run("non numeric", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/users/all/pagination?pageNo=x", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative page", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/users/all/pagination?pageNo=-1", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListUsersPageExtremeValues(t *testing.T) {
	repo := memory.NewUserRepository()
	for i := 1; i <= 12; i++ {
		_, err := repo.CreateUser(context.Background(), &domain.User{
			FirstName: "Paged",
			LastName:  "User",
			BirthDate: time.Date(1990, time.January, i, 0, 0, 0, 0, time.UTC),
			Email:     "paged" + strconv.Itoa(i) + "@example.com",
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	svc := services.NewUserService(repo, logger.Nop{}, services.NewEmailMatcher(), 18)
	router, _ := newTestRouter(t, svc)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedUsers  int
		expectedPages  int
	}{
		{"page size is max int64", "?pageNo=0&pageSize=9223372036854775807", http.StatusOK, 12, 1},
		{"offset overflows", "?pageNo=2&pageSize=4611686018427387904", http.StatusBadRequest, 0, 0},
		{"page number is max int64", "?pageNo=9223372036854775807&pageSize=2", http.StatusBadRequest, 0, 0},
		{"page size beyond int64", "?pageNo=0&pageSize=9223372036854775808", http.StatusBadRequest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/users/all/pagination"+tt.query, "")
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if w.Code != http.StatusOK {
				return
			}
			var page PaginatedUsersDTO
			if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
				t.Fatal(err)
			}
			if len(page.Users) != tt.expectedUsers || page.TotalPages != tt.expectedPages || !page.Last {
				t.Errorf("unexpected page: %d users, totalPages %d, last %v", len(page.Users), page.TotalPages, page.Last)
			}
		})
	}
}

func TestLookupRoutes(t *testing.T) {
	svc := &mockUserService{
		firstNameFn: func(name string) (*domain.UserView, error) {
			if name == "Taras" {
				return testView(), nil
			}
			return nil, domain.NewUserNotFoundError(name)
		},
		lastNameFn: func(name string) (*domain.UserView, error) {
			return nil, domain.NewUserNotFoundError(name)
		},
		existsFn: func(email string) (bool, error) {
			return email == "taras@example.com", nil
		},
		listFn: func() ([]domain.UserView, error) {
			return []domain.UserView{}, nil
		},
	}
	router, _ := newTestRouter(t, svc)

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedBody   string
	}{
		{"first name found", "/api/users/firstname/Taras", http.StatusOK, `"firstname":"Taras"`},
		{"first name missing", "/api/users/firstname/Petro", http.StatusNotFound, `"message":"User Petro was not found."`},
		{"last name missing", "/api/users/lastname/Nobody", http.StatusNotFound, `"httpStatus":"NOT_FOUND"`},
		{"email exists", "/api/users/exists?email=taras@example.com", http.StatusOK, `{"exists":true}`},
		{"email free", "/api/users/exists?email=other@example.com", http.StatusOK, `{"exists":false}`},
		{"email missing", "/api/users/exists", http.StatusBadRequest, `"message":"Email cannot be empty"`},
		{"list empty", "/api/users/", http.StatusOK, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.url, "")
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("body %s does not contain %s", w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestStatusForKind(t *testing.T) {
	tests := map[domain.ErrorKind]int{
		domain.KindNotFound:           http.StatusNotFound,
		domain.KindAgeNotEligible:     http.StatusBadRequest,
		domain.KindEmailAlreadyExists: http.StatusBadRequest,
		domain.KindInvalidEmailFormat: http.StatusBadRequest,
		domain.KindInvalidDateRange:   http.StatusBadRequest,
		domain.KindInvalidPageRequest: http.StatusBadRequest,
		domain.KindInternal:           http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := statusForKind(kind); got != want {
			t.Errorf("statusForKind(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := doRequest(r, http.MethodGet, "/ping", "")
	if w.Header().Get(requestIDHeader) == "" || w.Body.String() != w.Header().Get(requestIDHeader) {
		t.Errorf("generated id mismatch: header %q body %q", w.Header().Get(requestIDHeader), w.Body.String())
	}

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Body.String() != "abc-123" {
		t.Errorf("caller id not reused: %q", w.Body.String())
	}
}
