package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/logging"
	"github.com/ozyalhan/ozyblog/internal/server/posts"
)

// PostHandler serves one content kind's pages. Three instances are mounted,
// one per kind, each on its own route family (/addblog, /edit-blog/:id, ...).
type PostHandler struct {
	svc    *posts.Service
	logger logging.Logger
}

func NewPostHandler(svc *posts.Service, logger logging.Logger) *PostHandler {
	return &PostHandler{svc: svc, logger: logger}
}

func (h *PostHandler) kind() posts.Kind { return h.svc.Kind() }
func (h *PostHandler) label() string    { return h.svc.Kind().Label() }
func (h *PostHandler) listPath() string { return "/" + h.svc.Kind().Table() }

func (h *PostHandler) AddForm(c *gin.Context) {
	render(c, http.StatusOK, "post_form.tmpl", gin.H{
		"Heading": "Add " + h.label(),
		"Action":  "/add" + string(h.kind()),
		"Title":   "",
		"Content": "",
	})
}

func (h *PostHandler) Add(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	_, err := h.svc.Create(c.Request.Context(), identityFrom(c), title, content)
	if err != nil {
		var vErr *common.ValidationError
		switch {
		case errors.As(err, &vErr):
			setFlash(c, "warning", vErr.Reason)
			redirect(c, "/add"+string(h.kind()))
		default:
			h.logger.Error(c.Request.Context(), "post create failed", "kind", h.kind(), "error", err)
			setFlash(c, "warning", storageErrorMessage)
			redirect(c, "/dashboard")
		}
		return
	}

	setFlash(c, "success", h.label()+" Post has been added successfuly.")
	redirect(c, "/dashboard")
}

func (h *PostHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, "/")
		return
	}

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, "/")
		return
	}

	render(c, http.StatusOK, "post_form.tmpl", gin.H{
		"Heading": "Edit " + h.label(),
		"Action":  "/edit-" + string(h.kind()) + "/" + strconv.FormatInt(id, 10),
		"Title":   post.Title,
		"Content": post.Content,
	})
}

func (h *PostHandler) Edit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, "/")
		return
	}

	title := c.PostForm("title")
	content := c.PostForm("content")

	err = h.svc.Update(c.Request.Context(), identityFrom(c), id, title, content)
	if err != nil {
		switch {
		case common.IsValidation(err):
			setFlash(c, "warning", "Title size can be maximum 40 character and content should not be empty.")
			redirect(c, "/dashboard")
		case errors.Is(err, common.ErrNotFound):
			setFlash(c, "danger", "There is no such post or you are not authorized for this.")
			redirect(c, "/")
		default:
			h.logger.Error(c.Request.Context(), "post update failed", "kind", h.kind(), "id", id, "error", err)
			setFlash(c, "warning", storageErrorMessage)
			redirect(c, "/dashboard")
		}
		return
	}

	setFlash(c, "success", "Your "+h.label()+" Post has been updated successfuly.")
	redirect(c, "/dashboard")
}

// Delete removes the caller's own post. The ownership filter sits in the
// delete query, so someone else's post reads as not found.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, "/dashboard")
		return
	}

	err = h.svc.Delete(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		default:
			h.logger.Error(c.Request.Context(), "post delete failed", "kind", h.kind(), "id", id, "error", err)
			setFlash(c, "warning", storageErrorMessage)
		}
		redirect(c, "/dashboard")
		return
	}

	setFlash(c, "success", "Your "+h.label()+" Post been deleted successfuly.")
	redirect(c, "/dashboard")
}

func (h *PostHandler) List(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "post list failed", "kind", h.kind(), "error", err)
		setFlash(c, "warning", storageErrorMessage)
	}
	render(c, http.StatusOK, "posts.tmpl", gin.H{
		"Label": h.label(),
		"Kind":  string(h.kind()),
		"Posts": all,
	})
}

func (h *PostHandler) Detail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, h.listPath())
		return
	}

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			h.logger.Error(c.Request.Context(), "post read failed", "kind", h.kind(), "id", id, "error", err)
		}
		setFlash(c, "danger", "There is no such post or you are not authorized for this.")
		redirect(c, h.listPath())
		return
	}

	render(c, http.StatusOK, "post.tmpl", gin.H{"Post": post})
}

// SearchRedirect sends GET visitors of the search endpoint back to the
// front page; searching is POST-only.
func (h *PostHandler) SearchRedirect(c *gin.Context) {
	redirect(c, "/")
}

func (h *PostHandler) Search(c *gin.Context) {
	keyword := c.PostForm("keyword")

	found, err := h.svc.Search(c.Request.Context(), keyword)
	if err != nil {
		h.logger.Error(c.Request.Context(), "post search failed", "kind", h.kind(), "error", err)
		setFlash(c, "warning", storageErrorMessage)
		redirect(c, h.listPath())
		return
	}

	if len(found) == 0 {
		setFlash(c, "warning", "No result")
		redirect(c, h.listPath())
		return
	}

	render(c, http.StatusOK, "posts.tmpl", gin.H{
		"Label": h.label(),
		"Kind":  string(h.kind()),
		"Posts": found,
	})
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
