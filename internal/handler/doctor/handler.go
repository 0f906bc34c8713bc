package doctor

import (
	"github.com/gin-gonic/gin"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/handler"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	doctorService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/doctor"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
)

type Handler struct {
	service doctorService.DoctorServicer
	limits  handler.PageLimits
}

func NewHandler(service doctorService.DoctorServicer, limits handler.PageLimits) *Handler {
	return &Handler{service: service, limits: limits}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/doctorsreq", h.ListDoctors)
	r.GET("/doctorsServices", h.ListDoctorServices)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	filters, err := h.parseFilters(c)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), filters)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, doctors)
}

func (h *Handler) parseFilters(c *gin.Context) (*model.DoctorFilters, error) {
	page, err := handler.QueryPagination(c, h.limits)
	if err != nil {
		return nil, err
	}
	filters := &model.DoctorFilters{Pagination: page}

	for key, dst := range map[string]**int{
		"id":         &filters.ID,
		"arearespid": &filters.AreaRespID,
		"servrespid": &filters.ServRespID,
		"locationid": &filters.LocationID,
	} {
		v, err := handler.QueryInt(c, key)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return filters, nil
}

func (h *Handler) ListDoctorServices(c *gin.Context) {
	serviceID, err := handler.QueryInt(c, "serviceid")
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	rows, err := h.service.ListDoctorServices(c.Request.Context(), serviceID)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithList(c, rows)
}
