package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/middleware"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/model"
	notificationService "github.com/AlessandroArtoni/AmadelliArtoniBacceli/internal/service/notification"
	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/validator"
)

// acknowledged is the body the site's forms expect back.
var acknowledged = gin.H{"error": "none"}

type Handler struct {
	service notificationService.Service
}

func NewHandler(service notificationService.Service) *Handler {
	validator.Register()
	return &Handler{service: service}
}

// RegisterRoutes mounts the form endpoints. guards run before the POST
// handlers only.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guards ...gin.HandlerFunc) {
	r.POST("/booking", chain(guards, h.Booking)...)
	r.POST("/requestinfo", chain(guards, h.RequestInfo)...)
	r.GET("/notifications/:id", h.GetNotification)
}

func chain(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(append(make([]gin.HandlerFunc, 0, len(guards)+1), guards...), h)
}

// Booking accepts the booking form as JSON or urlencoded. The confirmation
// mail is sent in the background.
func (h *Handler) Booking(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Describe(err), err))
		return
	}

	n, err := h.service.SubmitBooking(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	h.acknowledge(c, n)
}

func (h *Handler) RequestInfo(c *gin.Context) {
	var req model.InfoRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation(validator.Describe(err), err))
		return
	}

	n, err := h.service.SubmitInfoRequest(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	h.acknowledge(c, n)
}

func (h *Handler) acknowledge(c *gin.Context, n model.Notification) {
	c.Header(middleware.HeaderXNotificationID, n.ID.String())
	c.JSON(http.StatusOK, acknowledged)
}

func (h *Handler) GetNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid notification ID", err))
		return
	}

	n, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}
