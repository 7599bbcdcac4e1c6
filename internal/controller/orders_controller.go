// internal/controller/orders_controller.go
package controller

import (
    "net/http"
    "time"

    "github.com/pr-poehali-dev/furniture-modern-site/internal/model"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/service"
)

type OrdersController struct {
    OrderService *service.OrderService
    OrderRepo    repository.OrderRepositoryInterface
}

// orderRecord is the wire shape of a listed order: camelCase fields, numeric
// total, ISO-8601 timestamp.
type orderRecord struct {
    ID         int               `json:"id"`
    LastName   string            `json:"lastName"`
    FirstName  string            `json:"firstName"`
    MiddleName string            `json:"middleName"`
    Phone      string            `json:"phone"`
    City       string            `json:"city"`
    Address    string            `json:"address"`
    Items      []model.OrderItem `json:"items"`
    Total      float64           `json:"total"`
    Status     string            `json:"status"`
    Notes      string            `json:"notes,omitempty"`
    CreatedAt  string            `json:"createdAt"`
}

// ListOrders returns every order, newest first
func (c *OrdersController) ListOrders(w http.ResponseWriter, r *http.Request) {
    orders, err := c.OrderRepo.ListAll()
    if err != nil {
        writeError(w, err)
        return
    }

    result := make([]orderRecord, 0, len(orders))
    for _, o := range orders {
        result = append(result, orderRecord{
            ID:         o.ID,
            LastName:   o.LastName,
            FirstName:  o.FirstName,
            MiddleName: o.MiddleName,
            Phone:      o.Phone,
            City:       o.City,
            Address:    o.Address,
            Items:      o.Items,
            Total:      o.Total.InexactFloat64(),
            Status:     o.Status,
            Notes:      o.Notes,
            CreatedAt:  o.CreatedAt.Format(time.RFC3339),
        })
    }

    writeJSON(w, http.StatusOK, result)
}

// SubmitOrder handles a storefront checkout
func (c *OrdersController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
    var req service.SubmitOrderRequest
    if err := decodeBody(r, &req); err != nil {
        writeError(w, err)
        return
    }

    result, err := c.OrderService.SubmitOrder(&req)
    if err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "success":   true,
        "orderId":   result.OrderID,
        "createdAt": result.CreatedAt.Format(time.RFC3339),
    })
}

// UpdateStatus applies a partial status/notes update. The response echoes
// only the fields that were actually updated.
func (c *OrdersController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
    var req service.UpdateStatusRequest
    if err := decodeBody(r, &req); err != nil {
        writeError(w, err)
        return
    }

    if err := c.OrderService.UpdateOrderStatus(&req); err != nil {
        writeError(w, err)
        return
    }

    resp := map[string]any{
        "success": true,
        "orderId": req.OrderID,
    }
    if req.Status != nil {
        resp["status"] = *req.Status
    }
    if req.Notes != nil {
        resp["notes"] = *req.Notes
    }
    writeJSON(w, http.StatusOK, resp)
}
