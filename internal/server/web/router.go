// Package web is the HTTP surface of the site: gin routes, session and
// flash plumbing, and the HTML handlers.
package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/logging"
	"github.com/ozyalhan/ozyblog/internal/server/contact"
	"github.com/ozyalhan/ozyblog/internal/server/posts"
	"github.com/ozyalhan/ozyblog/internal/server/users"
)

// RouterConfig carries everything the route table needs.
type RouterConfig struct {
	Users         *users.Service
	Posts         map[posts.Kind]*posts.Service
	Contact       *contact.Service
	Logger        logging.Logger
	SessionSecret []byte
	CookieName    string
	CookieTTL     time.Duration
}

// NewRouter builds the gin engine with the full route table. Every request
// passes through the session middleware; member-only pages additionally
// pass through the login guard.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger))
	r.Use(SessionMiddleware(cfg.SessionSecret, cfg.CookieName))
	r.SetHTMLTemplate(Templates())

	authH := NewAuthHandler(cfg.Users, cfg.Logger, cfg.CookieName, cfg.CookieTTL)
	siteH := NewSiteHandler(cfg.Posts, cfg.Contact, cfg.Logger)

	r.GET("/", siteH.Index)
	r.GET("/about", siteH.About)
	r.GET("/contact", siteH.ContactForm)
	r.POST("/contact", siteH.Contact)

	r.GET("/register", authH.RegisterForm)
	r.POST("/register", authH.Register)
	r.GET("/login", authH.LoginForm)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	r.GET("/dashboard", RequireLogin(), siteH.Dashboard)

	for _, kind := range posts.Kinds {
		h := NewPostHandler(cfg.Posts[kind], cfg.Logger)
		k := string(kind)

		r.GET("/add"+k, RequireLogin(), h.AddForm)
		r.POST("/add"+k, RequireLogin(), h.Add)
		r.GET("/edit-"+k+"/:id", RequireLogin(), h.EditForm)
		r.POST("/edit-"+k+"/:id", RequireLogin(), h.Edit)
		r.GET("/delete-"+k+"/:id", RequireLogin(), h.Delete)

		r.GET("/"+kind.Table(), h.List)
		r.GET("/"+k+"/:id", h.Detail)
		r.GET("/search-"+k, h.SearchRedirect)
		r.POST("/search-"+k, h.Search)
	}

	return r
}

// RequestLogger logs one line per request.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
