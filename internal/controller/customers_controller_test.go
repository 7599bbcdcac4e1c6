package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/controller"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

type mockCustomerRepo struct {
	customers []model.Customer
}

func (m *mockCustomerRepo) ListAll() ([]model.Customer, error) {
	return m.customers, nil
}

func TestListCustomersWireFormat(t *testing.T) {
	repo := &mockCustomerRepo{customers: []model.Customer{{
		ID:          1,
		LastName:    "Ivanov",
		FirstName:   "Petr",
		MiddleName:  "Sergeevich",
		Phone:       "+7900",
		City:        "Moscow",
		Address:     "Main st 1",
		TotalOrders: 2,
		TotalSpent:  decimal.NewFromFloat(250.50),
		CreatedAt:   time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}}}
	ctrl := &controller.CustomersController{CustomerRepo: repo}

	req := httptest.NewRequest("GET", "/customers", nil)
	w := httptest.NewRecorder()
	ctrl.ListCustomers(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res []map[string]any
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(res))
	}

	c := res[0]
	if c["lastName"] != "Ivanov" || c["totalOrders"] != float64(2) {
		t.Errorf("unexpected record: %v", c)
	}
	if c["totalSpent"] != 250.5 {
		t.Errorf("expected numeric totalSpent 250.5, got %v (%T)", c["totalSpent"], c["totalSpent"])
	}
	if c["updatedAt"] != "2024-03-01T12:00:00Z" {
		t.Errorf("unexpected updatedAt: %v", c["updatedAt"])
	}
	if _, ok := c["total_spent"]; ok {
		t.Error("wire format must be camelCase, found snake_case key")
	}
}

func TestListCustomersEmpty(t *testing.T) {
	ctrl := &controller.CustomersController{CustomerRepo: &mockCustomerRepo{}}

	req := httptest.NewRequest("GET", "/customers", nil)
	w := httptest.NewRecorder()
	ctrl.ListCustomers(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty array, got %q", body)
	}
}
