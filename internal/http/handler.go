package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/orders-service/internal/service"
)

const deletedMessage = "The database object was successfully deleted"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	users   *service.UserService
	orders  *service.OrderService
	offers  *service.OfferService
	reports *service.ReportService
	health  Pinger
	log     zerolog.Logger
}

type Services struct {
	Users   *service.UserService
	Orders  *service.OrderService
	Offers  *service.OfferService
	Reports *service.ReportService
}

func NewHandler(services Services, health Pinger, log zerolog.Logger) *Handler {
	return &Handler{
		users:   services.Users,
		orders:  services.Orders,
		offers:  services.Offers,
		reports: services.Reports,
		health:  health,
		log:     log,
	}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.healthz)

	users := router.Group("/users")
	users.GET("", h.listUsers)
	users.POST("", h.createUser)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.deleteUser)

	orders := router.Group("/orders")
	orders.GET("", h.listOrders)
	orders.POST("", h.createOrder)
	orders.GET("/export", h.exportOrders)
	orders.GET("/export/pdf", h.exportOrdersPDF)
	orders.GET("/:id", h.getOrder)
	orders.PUT("/:id", h.updateOrder)
	orders.DELETE("/:id", h.deleteOrder)

	offers := router.Group("/offers")
	offers.GET("", h.listOffers)
	offers.POST("", h.createOffer)
	offers.GET("/:id", h.getOffer)
	offers.PUT("/:id", h.updateOffer)
	offers.DELETE("/:id", h.deleteOffer)
}

func (h *Handler) healthz(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": deletedMessage})
}

// bind decodes the JSON body, reporting decode and binding failures as invalid input.
func (h *Handler) bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		h.handleError(c, fmt.Errorf("%w: %s", service.ErrInvalidInput, err.Error()))
		return false
	}
	return true
}

func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		h.handleError(c, fmt.Errorf("%w: invalid id %q", service.ErrInvalidInput, raw))
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	kind := service.Kind(err)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": kind})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": kind})
	case errors.Is(err, service.ErrConstraintViolation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "kind": kind})
	default:
		_ = c.Error(err)
		h.log.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "kind": kind})
	}
}
