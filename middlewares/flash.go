package middlewares

import (
	"encoding/base64"
	"encoding/json"
	"slices"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie     = "hm_flash"
	ctxFlashQueue   = "flashQueue"
	ctxCookieSecure = "cookieSecure"
)

// CookiePolicy marks cookies set by this package Secure when secure is true,
// for deployments where TLS ends at a proxy.
func CookiePolicy(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxCookieSecure, secure)
		c.Next()
	}
}

func secureCookies(c *gin.Context) bool {
	return c.GetBool(ctxCookieSecure) || c.Request.TLS != nil
}

// AddFlash queues a one-shot notice for the next page the client loads.
// Notices the client has not read yet are kept.
func AddFlash(c *gin.Context, msg string) {
	queue := pendingFlashes(c)
	if !slices.Contains(queue, msg) {
		queue = append(queue, msg)
	}
	c.Set(ctxFlashQueue, queue)

	payload, _ := json.Marshal(queue)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(payload), 0, "/", "", secureCookies(c), true)
}

// Flashes returns and clears every pending notice.
func Flashes(c *gin.Context) []string {
	out := pendingFlashes(c)
	c.Set(ctxFlashQueue, []string{})
	if raw, err := c.Cookie(flashCookie); err == nil && raw != "" {
		c.SetCookie(flashCookie, "", -1, "/", "", secureCookies(c), true)
	}
	if out == nil {
		return []string{}
	}
	return out
}

// pendingFlashes is the queue built during this request, or the one the
// client sent back when nothing has touched it yet.
func pendingFlashes(c *gin.Context) []string {
	if v, ok := c.Get(ctxFlashQueue); ok {
		if queue, ok := v.([]string); ok {
			return slices.Clone(queue)
		}
	}
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var queue []string
	if err := json.Unmarshal(payload, &queue); err != nil {
		return nil
	}
	return queue
}
