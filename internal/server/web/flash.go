package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie  = "ozy_flash"
	flashPending = "flashPending"
)

// Flash is a one-shot notification shown on the next rendered page.
// Severity is a bootstrap alert class: success, warning, or danger.
type Flash struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// setFlash queues a flash for this request. Flashes queued before a render
// appear on that page; flashes queued before a redirect travel to the next
// page in a cookie.
func setFlash(c *gin.Context, severity, message string) {
	pending := pendingFlashes(c)
	pending = append(pending, Flash{Severity: severity, Message: message})
	c.Set(flashPending, pending)
}

// redirect answers with a 302 and carries any queued flashes across in the
// flash cookie. The payload is base64-encoded because cookie values cannot
// hold arbitrary characters.
func redirect(c *gin.Context, location string) {
	flashes := append(cookieFlashes(c), pendingFlashes(c)...)
	if len(flashes) > 0 {
		if data, err := json.Marshal(flashes); err == nil {
			c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(data),
				0, "/", "", false, true)
		}
	}
	c.Redirect(http.StatusFound, location)
}

// popFlashes collects the flashes to show on the page being rendered, both
// those carried over in the cookie and those queued during this request,
// and clears the cookie so each flash is shown exactly once.
func popFlashes(c *gin.Context) []Flash {
	carried := cookieFlashes(c)
	if len(carried) > 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return append(carried, pendingFlashes(c)...)
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, ok := c.Get(flashPending); ok {
		if flashes, ok := v.([]Flash); ok {
			return flashes
		}
	}
	return nil
}

func cookieFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal(data, &flashes); err != nil {
		return nil
	}
	return flashes
}
