package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/orders-service/internal/service"
)

type offerRequest struct {
	ID         uint  `json:"id"`
	OrderID    *uint `json:"order_id"`
	ExecutorID *uint `json:"executor_id"`
}

func (r offerRequest) toInput() service.OfferInput {
	return service.OfferInput{ID: r.ID, OrderID: r.OrderID, ExecutorID: r.ExecutorID}
}

func (h *Handler) listOffers(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *Handler) createOffer(c *gin.Context) {
	var req offerRequest
	if !h.bind(c, &req) {
		return
	}

	offer, err := h.offers.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *Handler) getOffer(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	offer, err := h.offers.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *Handler) updateOffer(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req offerRequest
	if !h.bind(c, &req) {
		return
	}

	offer, err := h.offers.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *Handler) deleteOffer(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.offers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	h.deleted(c)
}
