package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flashContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestFlash_SurvivesRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// first request: queue a flash and redirect
	c, w := flashContext(httptest.NewRequest(http.MethodPost, "/login", nil))
	setFlash(c, "success", "Logined succesfully.")
	redirect(c, "/")

	var carrier *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flashCookie {
			carrier = cookie
		}
	}
	require.NotNil(t, carrier, "redirect must write the flash cookie")

	// second request: the flash comes back once
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(carrier)
	c2, w2 := flashContext(req)

	flashes := popFlashes(c2)
	require.Len(t, flashes, 1)
	assert.Equal(t, "success", flashes[0].Severity)
	assert.Equal(t, "Logined succesfully.", flashes[0].Message)

	// popping clears the cookie
	var cleared *http.Cookie
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == flashCookie {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Equal(t, "", cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestFlash_ShownOnSameRequestRender(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := flashContext(httptest.NewRequest(http.MethodPost, "/contact", nil))
	setFlash(c, "danger", "All fields are required.")

	flashes := popFlashes(c)
	require.Len(t, flashes, 1)
	assert.Equal(t, "All fields are required.", flashes[0].Message)
}

func TestFlash_GarbageCookieIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "not-base64!"})
	c, _ := flashContext(req)

	assert.Empty(t, popFlashes(c))
}
