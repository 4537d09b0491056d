package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"wishlisthub/internal/service"

	"github.com/gin-gonic/gin"
)

// Fixed user-facing error strings; details only go to the logs.
const (
	errUserNotFound   = "user not found"
	errBadCredentials = "invalid username/email or password"
	errRegisterFailed = "failed to register user"
	errListUsers      = "failed to list users"
	errUpdateUser     = "failed to update user"
	errDeleteUser     = "failed to delete user"
	errLoadUser       = "failed to load user"
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 JSON on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSONOrBadRequest for endpoints where an absent
// body means "no changes"; io.EOF leaves dst zero-valued.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// parseIDParam reads a numeric path parameter and writes a 400 JSON when it
// is not an integer. Returns false if the request was already handled.
func (h *Handler) parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " parameter"})
		return 0, false
	}
	return id, true
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}

// @Summary      List users
// @Description  Public fields of every account; no auth required.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "users"
// @Failure      500  {object}  map[string]string
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsers, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary      Register
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201   {object}  map[string]interface{}  "user"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string  "includes duplicate username/email"
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.Authorization.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		// Unique violations land here too and stay a generic 500.
		h.logAndJSONError(c, http.StatusInternalServerError, errRegisterFailed, "user_register_failed", err,
			"username", req.Username)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// @Summary      Login
// @Description  The username field also accepts an email address.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "user, token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, token, err := h.services.Authorization.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": errBadCredentials})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "user_login_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, err := h.services.Users.GetByID(c.Request.Context(), c.GetInt(ctxUserID))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "user_me_failed", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoadUser, "user_get_failed", err, "id", id)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Update user
// @Description  Merges the provided fields; a supplied password is re-hashed.
// @Description  An empty body changes nothing and returns the current row.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "User id"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.User
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if ok := h.bindOptionalJSON(c, &req); !ok {
		return
	}

	user, err := h.services.Users.Update(c.Request.Context(), id, service.UserUpdateParams{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateUser, "user_update_failed", err, "id", id)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Delete user
// @Description  Cascades to the user's wishlists and their items.
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Users.Delete(c.Request.Context(), id); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeleteUser, "user_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
