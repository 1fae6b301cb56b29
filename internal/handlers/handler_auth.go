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

// refreshCookie describes how the refresh token travels to the client.
type refreshCookie struct {
	name   string
	path   string
	secure bool
	maxAge int
}

func newRefreshCookie(cfg *config.Config) refreshCookie {
	return refreshCookie{
		name:   cfg.RefreshTokenCookieName,
		path:   cfg.RefreshTokenCookiePath,
		secure: cfg.IsProduction,
		maxAge: int(cfg.RefreshTokenExpiryDuration.Seconds()),
	}
}

func (rc refreshCookie) set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(rc.name, token, rc.maxAge, rc.path, "", rc.secure, true)
}

func (rc refreshCookie) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(rc.name, "", -1, rc.path, "", rc.secure, true)
}

// AuthHandler handles authentication requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cookie      refreshCookie
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: as,
		cookie:      newRefreshCookie(cfg),
	}
}

// registerAuthRoutes registers routes related to authentication. Register and
// login sit behind the tighter authLimit.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, authLimit gin.HandlerFunc) {
	h := NewAuthHandler(services.Auth, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authLimit, h.Register)
		auth.POST("/login", authLimit, h.Login)
		auth.POST("/refresh-token", h.RefreshToken)
		auth.GET("/logout", middleware.Authenticate(services.Token), h.Logout)
	}
}

func clientInfo(c *gin.Context) domain.ClientInfo {
	return domain.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account and opens a session. The refresh token is set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 403 {object} middleware.ErrorResponse "Admin registration not allowed for this email"
// @Failure 409 {object} middleware.ErrorResponse "Username or email already exists"
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, tokens, err := h.authService.Register(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.cookie.set(c, tokens.RefreshToken)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToAuthResponse("User registered successfully", user, tokens.AccessToken))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user, returns an access token and sets the refresh token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Failure 429 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, tokens, err := h.authService.Login(c.Request.Context(), req, clientInfo(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.cookie.set(c, tokens.RefreshToken)
	c.JSON(http.StatusOK, dto.ToAuthResponse("User logged in successfully", user, tokens.AccessToken))
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cookie.name)
	if err != nil || refreshToken == "" {
		middleware.AbortWithError(c, apperrors.NewUnauthorizedError("Refresh token required"))
		return
	}

	tokens, err := h.authService.RefreshAccessToken(c.Request.Context(), refreshToken, clientInfo(c))
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	if tokens.RefreshToken != "" {
		h.cookie.set(c, tokens.RefreshToken)
	}
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{
		Message:     "Token refreshed successfully",
		AccessToken: tokens.AccessToken,
	})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the session held in the refresh token cookie and clears the cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cookie.name)
	if err != nil || refreshToken == "" {
		middleware.AbortWithError(c, apperrors.NewUnauthorizedError("Refresh token required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	h.cookie.clear(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User logged out successfully"})
}
