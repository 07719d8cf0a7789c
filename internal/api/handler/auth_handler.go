package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/batarcade/arcade-api/internal/api/metrics"
	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

// sessionCookie is the name under which the signed session token travels.
const sessionCookie = "token"

type AuthHandler struct {
	credentials ports.CredentialService
	sessions    ports.SessionService
}

func NewAuthHandler(credentials ports.CredentialService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{credentials: credentials, sessions: sessions}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Register creates a new account and opens a session for it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Desired credentials"
// @Success      200   {object}  identityResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})
	}

	user, err := h.credentials.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing fields"})
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Username already exists"})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		}
	}

	if err := h.openSession(c, user); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, identityResponse{ID: user.ID, Username: user.Username})
}

// Login verifies credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Account credentials"
// @Success      200   {object}  identityResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	user, err := h.credentials.VerifyLogin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	if err := h.openSession(c, user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, identityResponse{ID: user.ID, Username: user.Username})
}

// Me returns the identity decoded from the caller's session token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{ID: identity.ID, Username: identity.Username})
}

// Logout clears the session cookie. The server keeps no session state, so
// this only affects the client's copy of the token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// openSession issues a token for the user and sets the session cookie. The
// cookie is HTTP-only, secure, and cross-site-sendable so the embedded-frame
// portal can reach the API from another origin.
func (h *AuthHandler) openSession(c echo.Context, user *domain.User) error {
	token, err := h.sessions.Issue(domain.Identity{ID: user.ID, Username: user.Username})
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return nil
}
