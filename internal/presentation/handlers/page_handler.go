package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/content"
	"portfolio-core/internal/middleware"
)

// pageView is the data every page template receives
type pageView struct {
	Title         string
	Active        string
	Site          content.Site
	Featured      []*dto.RepositoryResponse
	FeaturedError string
	Browser       *dto.BrowserPageResponse
	Wall          wallView
}

// PageHandler renders the public pages
type PageHandler struct {
	repositoryService *service.RepositoryService
	site              content.Site
	logger            hclog.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(repositoryService *service.RepositoryService, site content.Site, logger hclog.Logger) *PageHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PageHandler{
		repositoryService: repositoryService,
		site:              site,
		logger:            logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	view := pageView{Active: "home", Site: h.site}

	featured, err := h.repositoryService.Featured(c.Request.Context(), service.FeaturedCount)
	if err != nil {
		middleware.Logger(c, h.logger).Warn("featured projects unavailable", "error", err)
		view.FeaturedError = err.Error()
	}
	view.Featured = featured

	c.HTML(http.StatusOK, "home.html", view)
}

// Projects handles GET /projects
func (h *PageHandler) Projects(c *gin.Context) {
	page := h.repositoryService.Browse(c.Request.Context(), browseQuery(c))
	c.HTML(http.StatusOK, "projects.html", pageView{
		Title:   "Projects",
		Active:  "projects",
		Site:    h.site,
		Browser: page,
	})
}

// Chat handles GET /chat
func (h *PageHandler) Chat(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", pageView{Title: "Chat", Active: "chat", Site: h.site})
}

// browseQuery reads search, language and page from the query string.
// A missing or malformed page means the first page.
func browseQuery(c *gin.Context) dto.BrowseQuery {
	q := dto.BrowseQuery{
		Search:   c.Query("search"),
		Language: c.Query("language"),
		Page:     1,
	}
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		q.Page = p
	}
	return q
}
