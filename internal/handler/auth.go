package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/kpa-form-data/internal/config"
	"github.com/iliyamo/kpa-form-data/internal/model"
	"github.com/iliyamo/kpa-form-data/internal/repository"
	"github.com/iliyamo/kpa-form-data/internal/utils"
)

// UserStore is the slice of the user repository used by auth endpoints.
type UserStore interface {
	GetByPhone(ctx context.Context, phoneNumber string) (model.User, error)
}

// AuthHandler bundles dependencies for the login endpoint.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, users UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

// The login body uses snake_case keys, unlike the form endpoints; that is the
// external contract as shipped and is kept as-is.
type loginReq struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type userPart struct {
	ID          uint64 `json:"id"`
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
}

type loginResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userPart `json:"user"`
}

// Login handles POST /api/auth/login: verify phone + password, issue a
// bearer access token. Unknown phone and wrong password produce the same 401
// so callers cannot probe which phone numbers exist. The password hash never
// appears in any response or log.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.PhoneNumber == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "phone_number/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByPhone(ctx, req.PhoneNumber)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid phone number or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid phone number or password"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.PhoneNumber, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		AccessToken: access.Token,
		TokenType:   "bearer",
		User: userPart{
			ID:          u.ID,
			UserID:      u.UserID,
			PhoneNumber: u.PhoneNumber,
			FullName:    u.FullName,
			Email:       u.Email,
		},
	})
}

// Me handles GET /api/auth/me (bearer protected). Returns the profile of the
// user identified by the token's subject.
func (h *AuthHandler) Me(c echo.Context) error {
	phone, _ := c.Get("phone_number").(string)
	if phone == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByPhone(ctx, phone)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, userPart{
		ID:          u.ID,
		UserID:      u.UserID,
		PhoneNumber: u.PhoneNumber,
		FullName:    u.FullName,
		Email:       u.Email,
	})
}
