package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/api/metrics"
	"github.com/userhub/users-api/internal/api/middleware"
	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// AuthHandler handles account registration and the token cookie lifecycle.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signUpRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=255"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authEnvelope struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SignUp handles POST /auth/sign-up. It creates an account and sets the token cookie.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  authEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Message: "Invalid request payload",
		})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role == "" {
		req.Role = string(domain.RoleUser)
	}

	if err := c.Validate(&req); err != nil {
		var fe FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: fe,
			})
		}
		return err
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, errorResponse{
				Error:   "Conflict",
				Message: "Email already in use",
			})
		}
		return err
	}

	metrics.MutationsTotal.WithLabelValues("sign_up").Inc()
	setTokenCookie(c, token, h.authService.TokenTTL())
	return c.JSON(http.StatusCreated, authEnvelope{
		Message: "User registered successfully",
		User:    toUserResponse(*user),
	})
}

// SignIn handles POST /auth/sign-in. It verifies credentials and sets the token cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  authEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Validation failed",
			Message: "Invalid request payload",
		})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := c.Validate(&req); err != nil {
		var fe FieldErrors
		if errors.As(err, &fe) {
			return c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: fe,
			})
		}
		return err
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, errorResponse{
				Error:   "Unauthorized",
				Message: "Invalid email or password",
			})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "Not found",
				Message: "User not found",
			})
		}
		return err
	}

	setTokenCookie(c, token, h.authService.TokenTTL())
	return c.JSON(http.StatusOK, authEnvelope{
		Message: "Signed in successfully",
		User:    toUserResponse(*user),
	})
}

// SignOut handles POST /auth/sign-out. It revokes the cookie token (best
// effort) and clears the cookie. Always 200: signing out with a missing or
// stale cookie is not an error.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.TokenCookie); err == nil && cookie.Value != "" {
		if err := h.authService.SignOut(c.Request().Context(), cookie.Value); err == nil {
			metrics.TokensRevokedTotal.Inc()
		}
	}

	clearTokenCookie(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "Signed out successfully"})
}

func setTokenCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
