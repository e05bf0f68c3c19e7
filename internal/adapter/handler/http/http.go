package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kasarab/user_directory_service/internal/core/domain"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

type UserHandler struct {
	userService     ports.UserService
	logger          ports.LoggerPort
	validate        *validator.Validate
	metrics         ports.MetricsPort
	defaultPageSize int
}

type UserRequest struct {
	FirstName   string `json:"firstname" validate:"required,notblank,min=1,max=50" example:"Taras"`
	LastName    string `json:"lastname" validate:"required,notblank,min=1,max=50" example:"Shevchenko"`
	BirthDate   string `json:"birthdate" validate:"required,datetime=02-01-2006" example:"19-08-2000"`
	Email       string `json:"email" validate:"required,notblank,min=1,max=50" example:"taras@example.com"`
	Address     string `json:"address" example:"Kyiv, Khreshchatyk 1"`
	PhoneNumber string `json:"phoneNumber" example:"+380501234567"`
}

type UserDTO struct {
	FirstName   string `json:"firstname" example:"Taras"`
	LastName    string `json:"lastname" example:"Shevchenko"`
	BirthDate   string `json:"birthdate" example:"19-08-2000"`
	Email       string `json:"email" example:"taras@example.com"`
	Address     string `json:"address" example:"Kyiv, Khreshchatyk 1"`
	PhoneNumber string `json:"phoneNumber" example:"+380501234567"`
}

type PaginatedUsersDTO struct {
	Users         []UserDTO `json:"users"`
	PageNo        int       `json:"pageNo" example:"0"`
	PageSize      int       `json:"pageSize" example:"5"`
	TotalElements int64     `json:"totalElements" example:"12"`
	TotalPages    int       `json:"totalPages" example:"3"`
	Last          bool      `json:"last" example:"false"`
}

type ExistsResponse struct {
	Exists bool `json:"exists" example:"true"`
}

func toUserDTO(view *domain.UserView) UserDTO {
	return UserDTO{
		FirstName:   view.FirstName,
		LastName:    view.LastName,
		BirthDate:   formatDate(view.BirthDate),
		Email:       view.Email,
		Address:     view.Address,
		PhoneNumber: view.PhoneNumber,
	}
}

func toUserDTOs(views []domain.UserView) []UserDTO {
	dtos := make([]UserDTO, 0, len(views))
	for i := range views {
		dtos = append(dtos, toUserDTO(&views[i]))
	}
	return dtos
}

// toUserView expects a request that already passed validation.
func toUserView(req *UserRequest) (domain.UserView, error) {
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return domain.UserView{}, err
	}
	return domain.UserView{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   birthDate,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}, nil
}

func NewUserHandler(
	userService ports.UserService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	metrics ports.MetricsPort,
	defaultPageSize int,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		logger:          logger,
		validate:        validate,
		metrics:         metrics,
		defaultPageSize: defaultPageSize,
	}
}

// @Summary List users
// @Description All users in storage order
// @Tags users
// @Produce json
// @Success 200 {array} UserDTO "Users"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /api/users/ [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	views, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "ListUsers")
		return
	}

	c.JSON(http.StatusOK, toUserDTOs(views))
}

// @Summary List users page
// @Description One page of users with totals
// @Tags users
// @Produce json
// @Param pageNo query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Page size" default(5)
// @Success 200 {object} PaginatedUsersDTO "Page"
// @Failure 400 {object} errorResponse "Invalid paging parameters"
// @Router /api/users/all/pagination [get]
func (h *UserHandler) ListUsersPage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	pageNo, err := strconv.Atoi(c.DefaultQuery("pageNo", "0"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "pageNo must be an integer")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(h.defaultPageSize)))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "pageSize must be an integer")
		return
	}

	h.logger.Info("Getting users page", map[string]interface{}{
		"page_no":   pageNo,
		"page_size": pageSize,
	})

	page, err := h.userService.ListUsersPage(c.Request.Context(), pageNo, pageSize)
	if err != nil {
		h.respondWithError(c, err, "ListUsersPage")
		return
	}

	c.JSON(http.StatusOK, PaginatedUsersDTO{
		Users:         toUserDTOs(page.Users),
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		Last:          page.Last,
	})
}

// @Summary Create user
// @Description Creates a user after the age, email uniqueness and email format checks
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User data"
// @Success 201 {object} successResponse{data=UserDTO} "User created"
// @Failure 400 {object} errorResponse "Validation failed"
// @Router /api/users/add [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	view, ok := h.bindUserRequest(c, "CreateUser")
	if !ok {
		return
	}

	created, err := h.userService.CreateUser(c.Request.Context(), view)
	if err != nil {
		h.respondWithError(c, err, "CreateUser")
		return
	}

	h.logger.Info("User created successfully", map[string]interface{}{
		"email": created.Email,
	})
	newSuccessResponse(c, http.StatusCreated, "User Successfully Created", toUserDTO(created))
}

// @Summary Get user
// @Description Get a user by id
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} UserDTO "User found"
// @Failure 400 {object} errorResponse "Invalid id"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/{userId} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondWithError(c, err, "GetUser")
		return
	}

	c.JSON(http.StatusOK, toUserDTO(view))
}

// @Summary Update user
// @Description Overwrites every field of an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param request body UserRequest true "User data"
// @Success 200 {object} successResponse{data=UserDTO} "User updated"
// @Failure 400 {object} errorResponse "Validation failed"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/{userId} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	view, ok := h.bindUserRequest(c, "UpdateUser")
	if !ok {
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), userID, view)
	if err != nil {
		h.respondWithError(c, err, "UpdateUser")
		return
	}

	h.logger.Info("User updated successfully", map[string]interface{}{
		"user_id": userID,
	})
	newSuccessResponse(c, http.StatusOK, "User Successfully Updated", toUserDTO(updated))
}

// @Summary Delete user
// @Description Deletes a user by id
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} successResponse "User deleted"
// @Failure 400 {object} errorResponse "Invalid id"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/{userId} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	userID, err := parseUserID(c.Param("userId"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		h.respondWithError(c, err, "DeleteUser")
		return
	}

	h.logger.Info("User deleted successfully", map[string]interface{}{
		"user_id": userID,
	})
	newSuccessResponse(c, http.StatusOK, "User Successfully Deleted from Database", nil)
}

// @Summary Search users by birthdate
// @Description Users born between dateFrom and dateTo, both inclusive
// @Tags users
// @Produce json
// @Param dateFrom query string true "Start date, dd-MM-yyyy" example(01-01-2000)
// @Param dateTo query string true "End date, dd-MM-yyyy" example(01-01-2002)
// @Success 200 {array} UserDTO "Users"
// @Failure 400 {object} errorResponse "Invalid dates or range"
// @Router /api/users/search [get]
func (h *UserHandler) SearchUsersByBirthDate(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	dateFrom, err := parseDate(c.Query("dateFrom"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "dateFrom must be in dd-MM-yyyy format")
		return
	}
	dateTo, err := parseDate(c.Query("dateTo"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "dateTo must be in dd-MM-yyyy format")
		return
	}

	views, err := h.userService.ListUsersByBirthDate(c.Request.Context(), dateFrom, dateTo)
	if err != nil {
		h.respondWithError(c, err, "SearchUsersByBirthDate")
		return
	}

	c.JSON(http.StatusOK, toUserDTOs(views))
}

// @Summary Check email
// @Description Reports whether a user with the email exists
// @Tags users
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} ExistsResponse "Result"
// @Failure 400 {object} errorResponse "Email missing"
// @Router /api/users/exists [get]
func (h *UserHandler) ExistsByEmail(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	email := c.Query("email")
	if email == "" {
		newErrorResponse(c, http.StatusBadRequest, "Email cannot be empty")
		return
	}

	exists, err := h.userService.ExistsByEmail(c.Request.Context(), email)
	if err != nil {
		h.respondWithError(c, err, "ExistsByEmail")
		return
	}

	c.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// @Summary Get user by first name
// @Tags users
// @Produce json
// @Param firstname path string true "First name"
// @Success 200 {object} UserDTO "User found"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/firstname/{firstname} [get]
func (h *UserHandler) GetUserByFirstName(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	view, err := h.userService.GetUserByFirstName(c.Request.Context(), c.Param("firstname"))
	if err != nil {
		h.respondWithError(c, err, "GetUserByFirstName")
		return
	}

	c.JSON(http.StatusOK, toUserDTO(view))
}

// @Summary Get user by last name
// @Tags users
// @Produce json
// @Param lastname path string true "Last name"
// @Success 200 {object} UserDTO "User found"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/lastname/{lastname} [get]
func (h *UserHandler) GetUserByLastName(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	view, err := h.userService.GetUserByLastName(c.Request.Context(), c.Param("lastname"))
	if err != nil {
		h.respondWithError(c, err, "GetUserByLastName")
		return
	}

	c.JSON(http.StatusOK, toUserDTO(view))
}

func (h *UserHandler) bindUserRequest(c *gin.Context, method string) (domain.UserView, bool) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse", map[string]interface{}{
			"error":  err.Error(),
			"method": method,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return domain.UserView{}, false
	}

	if msg := firstValidationMessage(h.validate, &req); msg != "" {
		h.logger.Info("Request validation failed", map[string]interface{}{
			"error":  msg,
			"method": method,
		})
		newErrorResponse(c, http.StatusBadRequest, msg)
		return domain.UserView{}, false
	}

	view, err := toUserView(&req)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Birthdate must be in dd-MM-yyyy format")
		return domain.UserView{}, false
	}
	return view, true
}

func (h *UserHandler) respondWithError(c *gin.Context, err error, method string) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	fields := map[string]interface{}{
		"error":  err.Error(),
		"kind":   string(kind),
		"method": method,
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", fields)
	} else {
		h.logger.Info("Request rejected", fields)
		h.metrics.IncrementCounter(ports.MetricUserRuleRejections, map[string]string{
			"kind": string(kind),
		})
	}

	newErrorResponse(c, status, err.Error())
}
