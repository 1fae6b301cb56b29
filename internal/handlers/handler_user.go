package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/blog_api/internal/apperrors"
	"github.com/SscSPs/blog_api/internal/core/domain"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/dto"
	"github.com/SscSPs/blog_api/internal/middleware"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const codeSuccess = "Success"

// userHandler handles HTTP requests related to the current user.
type userHandler struct {
	userService portssvc.UserSvcFacade
	cookie      refreshCookie
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, cfg *config.Config) *userHandler {
	return &userHandler{
		userService: us,
		cookie:      newRefreshCookie(cfg),
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newUserHandler(services.User, cfg)

	users := rg.Group("/users",
		middleware.Authenticate(services.Token),
		middleware.Authorize(services.Authorizer, domain.RoleAdmin, domain.RoleUser),
	)
	{
		users.GET("/current", h.getCurrentUser)
		users.PUT("/current", h.updateCurrentUser)
		users.DELETE("/current", h.deleteCurrentUser)
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.AbortWithError(c, apperrors.NewUnauthorizedError("Access token missing"))
	}
	return userID, ok
}

// getCurrentUser godoc
// @Summary Get current user
// @Description Retrieves the profile of the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserEnvelope
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users/current [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	// Authorize has already loaded the caller.
	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var err error
		user, err = h.userService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			middleware.AbortWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "User Found", Code: codeSuccess, Data: dto.ToUserResponse(user)})
}

// updateCurrentUser godoc
// @Summary Update current user
// @Description Applies the provided fields to the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserEnvelope
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "Username or email already in use"
// @Security BearerAuth
// @Router /users/current [put]
func (h *userHandler) updateCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "User Updated", Code: codeSuccess, Data: dto.ToUserResponse(user)})
}

// deleteCurrentUser godoc
// @Summary Delete current user
// @Description Deletes the authenticated user and revokes all of its sessions
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserEnvelope
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /users/current [delete]
func (h *userHandler) deleteCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.cookie.clear(c)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User deleted", slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.UserEnvelope{Message: "User deleted", Code: codeSuccess, Data: dto.ToUserResponse(user)})
}
