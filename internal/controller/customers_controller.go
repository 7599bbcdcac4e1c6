// internal/controller/customers_controller.go
package controller

import (
    "net/http"
    "time"

    "github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
)

type CustomersController struct {
    CustomerRepo repository.CustomerRepositoryInterface
}

type customerRecord struct {
    ID          int     `json:"id"`
    LastName    string  `json:"lastName"`
    FirstName   string  `json:"firstName"`
    MiddleName  string  `json:"middleName"`
    Phone       string  `json:"phone"`
    City        string  `json:"city"`
    Address     string  `json:"address"`
    TotalOrders int     `json:"totalOrders"`
    TotalSpent  float64 `json:"totalSpent"`
    CreatedAt   string  `json:"createdAt"`
    UpdatedAt   string  `json:"updatedAt"`
}

// ListCustomers returns every customer, most recently updated first
func (c *CustomersController) ListCustomers(w http.ResponseWriter, r *http.Request) {
    customers, err := c.CustomerRepo.ListAll()
    if err != nil {
        writeError(w, err)
        return
    }

    result := make([]customerRecord, 0, len(customers))
    for _, cust := range customers {
        result = append(result, customerRecord{
            ID:          cust.ID,
            LastName:    cust.LastName,
            FirstName:   cust.FirstName,
            MiddleName:  cust.MiddleName,
            Phone:       cust.Phone,
            City:        cust.City,
            Address:     cust.Address,
            TotalOrders: cust.TotalOrders,
            TotalSpent:  cust.TotalSpent.InexactFloat64(),
            CreatedAt:   cust.CreatedAt.Format(time.RFC3339),
            UpdatedAt:   cust.UpdatedAt.Format(time.RFC3339),
        })
    }

    writeJSON(w, http.StatusOK, result)
}
