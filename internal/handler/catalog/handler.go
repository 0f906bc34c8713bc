package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	catalogService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/catalog"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
)

type Handler struct {
	service catalogService.CatalogServicer
}

func NewHandler(service catalogService.CatalogServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/services", h.ListServices)
	r.GET("/areas", h.ListAreas)
}

// ListServices filters by ?id= or, failing that, ?searchname=.
func (h *Handler) ListServices(c *gin.Context) {
	id, err := handler.QueryInt(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	filter := model.ServiceFilter{ID: id}
	if name := c.Query("searchname"); id == nil && name != "" {
		filter.SearchName = &name
	}

	services, err := h.service.ListServices(c.Request.Context(), filter)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, services)
}

func (h *Handler) ListAreas(c *gin.Context) {
	areas, err := h.service.ListAreas(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, areas)
}
