package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/logging"
	"github.com/ozyalhan/ozyblog/internal/server/contact"
	"github.com/ozyalhan/ozyblog/internal/server/posts"
)

// SiteHandler serves the static pages, the dashboard, and the contact form.
type SiteHandler struct {
	postServices map[posts.Kind]*posts.Service
	contact      *contact.Service
	logger       logging.Logger
}

func NewSiteHandler(postServices map[posts.Kind]*posts.Service, contactSvc *contact.Service, logger logging.Logger) *SiteHandler {
	return &SiteHandler{postServices: postServices, contact: contactSvc, logger: logger}
}

func (h *SiteHandler) Index(c *gin.Context) {
	render(c, http.StatusOK, "index.tmpl", nil)
}

func (h *SiteHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.tmpl", nil)
}

type dashboardSection struct {
	Kind  string
	Label string
	Posts []*posts.Post
}

// Dashboard shows the caller's own posts across all three kinds.
func (h *SiteHandler) Dashboard(c *gin.Context) {
	identity := identityFrom(c)

	sections := make([]dashboardSection, 0, len(posts.Kinds))
	for _, kind := range posts.Kinds {
		own, err := h.postServices[kind].ListByAuthor(c.Request.Context(), identity.Username)
		if err != nil {
			h.logger.Error(c.Request.Context(), "dashboard list failed", "kind", kind, "error", err)
			setFlash(c, "warning", storageErrorMessage)
		}
		sections = append(sections, dashboardSection{
			Kind:  string(kind),
			Label: kind.Label(),
			Posts: own,
		})
	}

	render(c, http.StatusOK, "dashboard.tmpl", gin.H{"Sections": sections})
}

func (h *SiteHandler) ContactForm(c *gin.Context) {
	render(c, http.StatusOK, "contact.tmpl", gin.H{
		"Name": "", "Email": "", "Subject": "", "Message": "",
	})
}

func (h *SiteHandler) Contact(c *gin.Context) {
	msg := &contact.Message{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Subject: c.PostForm("subject"),
		Body:    c.PostForm("message"),
	}

	if err := h.contact.Submit(c.Request.Context(), msg); err != nil {
		if common.IsValidation(err) {
			setFlash(c, "danger", "All fields are required.")
		} else {
			h.logger.Error(c.Request.Context(), "contact submit failed", "error", err)
			setFlash(c, "warning", storageErrorMessage)
		}
		render(c, http.StatusOK, "contact.tmpl", gin.H{
			"Name":    msg.Name,
			"Email":   msg.Email,
			"Subject": msg.Subject,
			"Message": msg.Body,
		})
		return
	}

	render(c, http.StatusOK, "contact.tmpl", gin.H{
		"Success": true,
		"Name":    "", "Email": "", "Subject": "", "Message": "",
	})
}
