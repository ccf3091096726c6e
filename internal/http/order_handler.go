package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/orders-service/internal/service"
)

type orderRequest struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Address     *string `json:"address"`
	Price       *int    `json:"price"`
	CustomerID  *uint   `json:"customer_id"`
	ExecutorID  *uint   `json:"executor_id"`
}

func (r orderRequest) toInput() service.OrderInput {
	return service.OrderInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Address:     r.Address,
		Price:       r.Price,
		CustomerID:  r.CustomerID,
		ExecutorID:  r.ExecutorID,
	}
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) createOrder(c *gin.Context) {
	var req orderRequest
	if !h.bind(c, &req) {
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req orderRequest
	if !h.bind(c, &req) {
		return
	}

	order, err := h.orders.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	h.deleted(c)
}

func (h *Handler) exportOrders(c *gin.Context) {
	result, err := h.reports.GenerateReport(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", result.Content)
}

func (h *Handler) exportOrdersPDF(c *gin.Context) {
	result, err := h.reports.GenerateReportPDF(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
