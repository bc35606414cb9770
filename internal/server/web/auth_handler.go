package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/logging"
	"github.com/ozyalhan/ozyblog/internal/server/users"
)

// storageErrorMessage is flashed whenever the store fails for a reason the
// visitor cannot fix.
const storageErrorMessage = "Something went wrong. Please report this error to ozguryasaralhan@gmail.com"

// AuthHandler serves registration, login, and logout.
type AuthHandler struct {
	users      *users.Service
	logger     logging.Logger
	cookieName string
	cookieTTL  time.Duration
}

func NewAuthHandler(svc *users.Service, logger logging.Logger, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: svc, logger: logger, cookieName: cookieName, cookieTTL: cookieTTL}
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, http.StatusOK, "register.tmpl", gin.H{
		"FullName": "", "Username": "", "Email": "",
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	fullName := c.PostForm("fullname")
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, err := h.users.Register(c.Request.Context(), fullName, username, email, password)
	if err != nil {
		var vErr *common.ValidationError
		switch {
		case errors.Is(err, common.ErrUsernameAndEmailTaken):
			setFlash(c, "warning", "Your email and username used before. Please try another ones.")
		case errors.Is(err, common.ErrUsernameTaken):
			setFlash(c, "warning", "Your username used before. Please try another one.")
		case errors.Is(err, common.ErrEmailTaken):
			setFlash(c, "warning", "Your email used before. Please try another one.")
		case errors.As(err, &vErr):
			setFlash(c, "warning", vErr.Reason)
		default:
			h.logger.Error(c.Request.Context(), "registration failed", "error", err)
			setFlash(c, "warning", storageErrorMessage)
		}
		redirect(c, "/register")
		return
	}

	setFlash(c, "success", "You registred succesfuly")
	redirect(c, "/login")
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"Email": ""})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.users.Login(c.Request.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoSuchEmail):
			setFlash(c, "danger", "There is no user with this email.")
		case errors.Is(err, common.ErrBadPassword):
			setFlash(c, "danger", "Your password is incorrect.")
		default:
			h.logger.Error(c.Request.Context(), "login failed", "error", err)
			setFlash(c, "danger", storageErrorMessage)
		}
		redirect(c, "/login")
		return
	}

	c.SetCookie(h.cookieName, token, int(h.cookieTTL.Seconds()), "/", "", false, true)
	setFlash(c, "success", "Logined succesfully.")
	redirect(c, "/")
}

// Logout clears the session cookie. Logging out while already logged out is
// harmless and reports success either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	setFlash(c, "success", "You logout successfuly.")
	redirect(c, "/")
}
