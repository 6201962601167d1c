package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// HomeHandler serves the public landing page.
type HomeHandler struct {
	BaseHandler
	catalogService services.CatalogService
}

func NewHomeHandler(catalogService services.CatalogService, logger utils.Logger) *HomeHandler {
	return &HomeHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
	}
}

// Index handles GET /.
func (h *HomeHandler) Index(c *gin.Context) {
	catalog, err := h.catalogService.GetCatalog(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "catalog load failed")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":    currentUser(c),
		"courses": catalog.Courses,
		"videos":  catalog.Videos,
		"quote":   catalog.Quote,
		"notices": TakeNotices(c),
	})
}
