package controllers

import (
	"net/http"
	"time"

	"github.com/WangRL15/Health-Management-Web-Application/middlewares"
	"github.com/WangRL15/Health-Management-Web-Application/services"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type registerInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
}

type loginInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthController struct {
	auth         *services.AuthService
	signer       *utils.SessionSigner
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthController(auth *services.AuthService, signer *utils.SessionSigner, sessionTTL time.Duration, cookieSecure bool) *AuthController {
	return &AuthController{auth: auth, signer: signer, sessionTTL: sessionTTL, cookieSecure: cookieSecure}
}

func (h *AuthController) RegisterPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields":  []string{"username", "password", "email"},
		"notices": middlewares.Flashes(c),
	})
}

func (h *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, bindingError(err))
		return
	}

	if _, err := h.auth.Register(c.Request.Context(), input.Username, input.Password, input.Email); err != nil {
		respondError(c, err)
		return
	}

	middlewares.AddFlash(c, "Registration successful, please log in")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthController) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields":  []string{"username", "password"},
		"notices": middlewares.Flashes(c),
	})
}

func (h *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, bindingError(err))
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.signer.Sign(sess.ID)
	if err != nil {
		_ = h.auth.Logout(c.Request.Context(), sess.ID)
		respondError(c, err)
		return
	}

	// A fresh login replaces whatever session the browser had before.
	if previous := middlewares.CurrentSessionID(c); previous != "" {
		_ = h.auth.Logout(c.Request.Context(), previous)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
	middlewares.AddFlash(c, "Login successful!")
	c.Redirect(http.StatusSeeOther, "/profile")
}

func (h *AuthController) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middlewares.CurrentSessionID(c)); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("logout: session not deleted")
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	middlewares.AddFlash(c, "You have been logged out")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthController) Index(c *gin.Context) {
	if _, ok := middlewares.CurrentUserID(c); ok {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
