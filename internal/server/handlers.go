package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vatsalraicha/portfolio/internal/contact"
	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/preview"
	"github.com/vatsalraicha/portfolio/internal/reqlog"
	"github.com/vatsalraicha/portfolio/internal/view"
	"github.com/vatsalraicha/portfolio/internal/visits"
)

type siteHandler struct {
	profile content.Profile
	contact *contact.Controller
	limiter *contact.Limiter
	visits  *visits.Store
}

func (h *siteHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.home)
	r.GET("/projects/:slug/preview", h.openPreview)
	r.DELETE("/projects/:slug/preview", h.closePreview)
	r.POST(view.ContactPath, h.submitContact)
	r.GET("/stats/visits", h.visitStats)
}

func (h *siteHandler) home(c *gin.Context) {
	renderNode(c, http.StatusOK, view.Portfolio(h.profile, view.PageState{}))
}

func (h *siteHandler) notFound(c *gin.Context) {
	renderNode(c, http.StatusNotFound, view.NotFound())
}

// previewable finds the project behind :slug. Only projects with an image
// have a preview.
func (h *siteHandler) previewable(c *gin.Context) (content.Project, bool) {
	project, ok := h.profile.Project(c.Param("slug"))
	if !ok || project.Image == "" {
		return content.Project{}, false
	}
	return project, true
}

func (h *siteHandler) openPreview(c *gin.Context) {
	project, ok := h.previewable(c)
	if !ok {
		h.notFound(c)
		return
	}

	if !isHTMX(c) {
		renderNode(c, http.StatusOK, view.Portfolio(h.profile, view.PageState{OpenProject: project.Slug}))
		return
	}

	var state preview.State
	state.Open(project.Image, project.PreviewAlt())
	renderNode(c, http.StatusOK, view.ImageModal(project.Slug, state))
}

func (h *siteHandler) closePreview(c *gin.Context) {
	project, ok := h.previewable(c)
	if !ok {
		h.notFound(c)
		return
	}

	var state preview.State
	state.Close()
	renderNode(c, http.StatusOK, view.ImageModal(project.Slug, state))
}

func (h *siteHandler) submitContact(c *gin.Context) {
	logger := reqlog.New(c.Request.Context())

	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		logger.Warnf("contact_submit", "rejected form: %v", err)
		h.renderContact(c, http.StatusUnprocessableEntity, failedContact(form))
		return
	}

	if !h.limiter.Allow(c.ClientIP()) {
		logger.Warnf("contact_submit", "rate limited")
		h.renderContact(c, http.StatusTooManyRequests, failedContact(form))
		return
	}

	res := h.contact.Submit(c.Request.Context(), form)
	status := http.StatusOK
	if res.Status == contact.StatusFailed {
		status = http.StatusBadGateway
	}
	h.renderContact(c, status, view.ContactStateFor(res))
}

func failedContact(form contact.Form) view.ContactState {
	return view.ContactStateFor(contact.Result{Status: contact.StatusFailed, Form: form})
}

func (h *siteHandler) renderContact(c *gin.Context, status int, st view.ContactState) {
	if isHTMX(c) {
		renderNode(c, fragmentStatus(c, status), view.ContactForm(st))
		return
	}
	renderNode(c, status, view.Portfolio(h.profile, view.PageState{Contact: st}))
}

func (h *siteHandler) visitStats(c *gin.Context) {
	if h.visits == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "visit tracking is disabled"})
		return
	}
	stats, err := h.visits.Stats(c.Request.Context())
	if err != nil {
		reqlog.New(c.Request.Context()).Error("visit_stats", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
