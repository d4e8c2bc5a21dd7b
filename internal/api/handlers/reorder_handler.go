package handlers

import (
	"errors"
	"net/http"

	"github.com/andresuchdata/replenish/internal/domain"
	"github.com/andresuchdata/replenish/internal/service"
	"github.com/gin-gonic/gin"
)

type ReorderHandler struct {
	service *service.ReorderService
}

func NewReorderHandler(service *service.ReorderService) *ReorderHandler {
	return &ReorderHandler{service: service}
}

type calculateOrderItem struct {
	ProductID      int64    `json:"product_id"`
	CurrentStock   *float64 `json:"current_stock"`
	InTransitStock *float64 `json:"in_transit_stock"`
	ReferenceDays  int      `json:"reference_days"`
}

type calculateOrderRequest struct {
	OrderDate string               `json:"order_date" binding:"required"`
	Items     []calculateOrderItem `json:"items" binding:"dive"`
}

func (r calculateOrderRequest) toDomain() (domain.OrderRequest, error) {
	orderDate, err := domain.ParseOrderTimestamp(r.OrderDate)
	if err != nil {
		return domain.OrderRequest{}, err
	}

	items := make([]domain.OrderRequestItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.OrderRequestItem{
			ProductID:      item.ProductID,
			CurrentStock:   item.CurrentStock,
			InTransitStock: item.InTransitStock,
			ReferenceDays:  item.ReferenceDays,
		}
	}

	return domain.OrderRequest{OrderDate: orderDate, Items: items}, nil
}

// CalculateOrder returns the full report: results plus skipped items.
func (h *ReorderHandler) CalculateOrder(c *gin.Context) {
	report, ok := h.calculate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report)
}

// CalculateOrderLegacy serves the original route, which answers with the bare
// list of results.
func (h *ReorderHandler) CalculateOrderLegacy(c *gin.Context) {
	report, ok := h.calculate(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report.Results)
}

func (h *ReorderHandler) calculate(c *gin.Context) (*domain.ReorderReport, bool) {
	var body calculateOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return nil, false
	}

	req, err := body.toDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return nil, false
	}

	report, err := h.service.CalculateOrder(c.Request.Context(), req)
	if errors.Is(err, domain.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order request", "details": err.Error()})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate order", "details": err.Error()})
		return nil, false
	}

	return report, true
}
