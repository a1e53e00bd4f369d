package middlewares

import (
	"errors"
	"net/http"

	"github.com/WangRL15/Health-Management-Web-Application/sessions"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	SessionCookie = "hm_session"

	ctxUserID    = "userID"
	ctxSessionID = "sessionID"
)

// SessionLoader resolves the session cookie to a user id and stores it on the
// context. It never rejects a request; RequireLogin does that.
func SessionLoader(signer *utils.SessionSigner, store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		sid, err := signer.Parse(raw)
		if err != nil {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, sessions.ErrNotFound) {
				zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("session lookup failed")
			}
			c.Next()
			return
		}

		c.Set(ctxUserID, sess.UserID)
		c.Set(ctxSessionID, sess.ID)
		c.Next()
	}
}

// RequireLogin sends anonymous callers to /login with a notice and stops the
// chain before the wrapped handler runs.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUserID(c); !ok {
			AddFlash(c, "Please log in first")
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id > 0
}

func CurrentSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}
