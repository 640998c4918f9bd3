package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/service"
)

// RepositoryHandler handles repository-related HTTP requests
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
	}
}

// ListRepositories handles GET /repos
// @Summary Browse projects
// @Description Returns one page of the owner's non-fork repositories, newest first, filtered by search term and language
// @Tags Repositories
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive match on name, description or topics"
// @Param language query string false "Exact language, or All" default(All)
// @Param page query int false "Page number, clamped to the available pages" default(1) minimum(1)
// @Success 200 {object} dto.BrowserPageResponse
// @Router /api/v1/repos [get]
func (h *RepositoryHandler) ListRepositories(c *gin.Context) {
	c.JSON(http.StatusOK, h.repositoryService.Browse(c.Request.Context(), browseQuery(c)))
}
