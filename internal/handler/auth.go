package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-commerce-api/internal/config"
	"github.com/iliyamo/cinema-commerce-api/internal/repository"
	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

// UserStore is the persistence slice used by the auth endpoints.
// *repository.UserRepo satisfies it.
type UserStore interface {
	Create(ctx context.Context, tenantID, email, name, password string, cost int) error
	GetByEmail(ctx context.Context, tenantID, email string) (repository.User, error)
}

// AuthHandler bundles dependencies for the register and login endpoints.
// These are the only unauthenticated routes besides the health check:
// every other endpoint requires the token minted here.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	if users == nil {
		panic("nil store passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type registerReq struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginReq struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a tenant-scoped account.  The password is stored only
// as a bcrypt hash.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.TenantID == "" || req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id, email, password and name are required"})
	}

	err := h.Users.Create(c.Request().Context(), req.TenantID, req.Email, req.Name, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered for this tenant"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user", "details": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "user created successfully", "email": req.Email})
}

// Login verifies credentials and mints the access token the protected
// routes require.  Unknown accounts and wrong passwords are rejected
// identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.TenantID == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id, email and password are required"})
	}

	u, err := h.Users.GetByEmail(c.Request().Context(), req.TenantID, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch user", "details": err.Error()})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.Email, u.TenantID, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "login successful", "token": access.Token})
}
