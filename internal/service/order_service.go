// internal/service/order_service.go
package service

import (
    "log"
    "strings"
    "time"

    "github.com/shopspring/decimal"

    appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/model"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/queue"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
)

type OrderService struct {
    OrderRepo repository.OrderRepositoryInterface
    Queue     queue.Queue
}

// CustomerPayload is the contact block of an order submission.
type CustomerPayload struct {
    LastName   string `json:"lastName"`
    FirstName  string `json:"firstName"`
    MiddleName string `json:"middleName"`
    Phone      string `json:"phone"`
    City       string `json:"city"`
    Address    string `json:"address"`
}

type SubmitOrderRequest struct {
    Customer CustomerPayload   `json:"customer"`
    Items    []model.OrderItem `json:"items"`
    Total    decimal.Decimal   `json:"total"`
}

type SubmitOrderResult struct {
    OrderID   int
    CreatedAt time.Time
}

// SubmitOrder validates the payload, runs the transactional upsert+insert and
// queues the notification after the commit. Queue failures are logged only —
// the order is already durable by then.
func (s *OrderService) SubmitOrder(req *SubmitOrderRequest) (*SubmitOrderResult, error) {
    if err := validateSubmitOrder(req); err != nil {
        return nil, err
    }

    items := req.Items
    if items == nil {
        items = []model.OrderItem{}
    }

    order := &model.Order{
        LastName:   req.Customer.LastName,
        FirstName:  req.Customer.FirstName,
        MiddleName: req.Customer.MiddleName,
        Phone:      req.Customer.Phone,
        City:       req.Customer.City,
        Address:    req.Customer.Address,
        Items:      items,
        Total:      req.Total,
    }

    if err := s.OrderRepo.Submit(order); err != nil {
        return nil, err
    }

    if s.Queue != nil {
        if err := s.Queue.Publish(queue.OrderNotifications, order.ID); err != nil {
            log.Println("⚠️ failed to queue notification for order", order.ID, ":", err)
        }
    }

    return &SubmitOrderResult{OrderID: order.ID, CreatedAt: order.CreatedAt}, nil
}

func validateSubmitOrder(req *SubmitOrderRequest) error {
    required := []struct {
        field, value string
    }{
        {"customer.lastName", req.Customer.LastName},
        {"customer.firstName", req.Customer.FirstName},
        {"customer.phone", req.Customer.Phone},
        {"customer.city", req.Customer.City},
        {"customer.address", req.Customer.Address},
    }
    for _, f := range required {
        if strings.TrimSpace(f.value) == "" {
            return appErrors.NewMissingField(f.field)
        }
    }
    return nil
}

type UpdateStatusRequest struct {
    OrderID int     `json:"orderId"`
    Status  *string `json:"status"`
    Notes   *string `json:"notes"`
}

// UpdateOrderStatus applies a partial update of status and/or notes.
func (s *OrderService) UpdateOrderStatus(req *UpdateStatusRequest) error {
    if req.OrderID == 0 {
        return appErrors.NewMissingField("orderId")
    }
    if req.Status == nil && req.Notes == nil {
        return appErrors.NewValidation("no fields to update")
    }
    if req.Status != nil && !model.ValidOrderStatus(*req.Status) {
        return appErrors.NewValidation("invalid status. Allowed: %s", strings.Join(model.OrderStatuses, ", "))
    }
    return s.OrderRepo.UpdateStatus(req.OrderID, req.Status, req.Notes)
}
