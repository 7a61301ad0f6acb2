package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/railway-ticket-reservation/internal/config"
	"github.com/iliyamo/railway-ticket-reservation/internal/service"
	"github.com/iliyamo/railway-ticket-reservation/internal/utils"
)

// AuthHandler bundles dependencies for session endpoints.  Authentication
// here is demonstration-grade by design: any well-formed email logs in and
// the password is never verified, so the handlers' job is shaping requests
// and responses around the SessionService state machine.
type AuthHandler struct {
	Cfg      config.Config
	Sessions *service.SessionService
}

func NewAuthHandler(cfg config.Config, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Sessions: sessions}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type registerReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	IsAdmin  bool   `json:"isAdmin"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Login: validate the email shape, synthesize a session, return a token.
// 401 is returned for empty or malformed credentials; nothing else can
// fail.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)

	u, err := h.Sessions.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:   userPart{ID: u.ID, FullName: u.FullName, Email: u.Email, Mobile: u.Mobile, IsAdmin: u.IsAdmin},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Register: create a fresh session user and return tokens immediately.
// Registration always succeeds once the body parses.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	u, err := h.Sessions.Register(req.FullName, strings.TrimSpace(req.Email), req.Mobile, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "register failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:   userPart{ID: u.ID, FullName: u.FullName, Email: u.Email, Mobile: u.Mobile, IsAdmin: u.IsAdmin},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout: clear the session slot and its persisted blob.  The bearer token
// itself is stateless and simply expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Sessions.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Me: return the current session profile.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := h.Sessions.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, FullName: u.FullName, Email: u.Email, Mobile: u.Mobile, IsAdmin: u.IsAdmin})
}

// ToggleAdminMode: flip the session's local admin-view flag.  Any
// authenticated user may do this; it is a UI gate, not authorization.
func (h *AuthHandler) ToggleAdminMode(c echo.Context) error {
	isAdmin, err := h.Sessions.ToggleAdminMode()
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"isAdmin": isAdmin})
}
