package location

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler"
	catalogService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/catalog"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
)

type Handler struct {
	service catalogService.CatalogServicer
}

func NewHandler(service catalogService.CatalogServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/locations", h.ListLocations)
	r.GET("/location-service", h.ListLocationServices)
	r.GET("/imgLocation", h.ListPhotos)
}

// ListLocations returns all locations, or those with ?id=. An id that is
// not an integer is ignored.
func (h *Handler) ListLocations(c *gin.Context) {
	var id *int
	if v, err := strconv.Atoi(c.Query("id")); err == nil {
		id = &v
	}

	locations, err := h.service.ListLocations(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, locations)
}

// ListLocationServices resolves ?service= to the locations offering it,
// or ?location= to the services offered there. service wins when both are
// given.
func (h *Handler) ListLocationServices(c *gin.Context) {
	ctx := c.Request.Context()

	if service := c.Query("service"); service != "" {
		rows, err := h.service.LocationsByService(ctx, service)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithList(c, rows)
		return
	}

	if location := c.Query("location"); location != "" {
		rows, err := h.service.ServicesByLocation(ctx, location)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithList(c, rows)
		return
	}

	httputil.RespondWithError(c, apperrors.Validation("service or location is required", nil))
}

func (h *Handler) ListPhotos(c *gin.Context) {
	id, err := handler.RequiredQueryInt(c, "id")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	photos, err := h.service.PhotoGallery(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, photos)
}
