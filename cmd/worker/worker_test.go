package main

import (
	"testing"

	appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

// MockOrderRepo serves a single in-memory order
type MockOrderRepo struct {
	order *model.Order
}

func (m *MockOrderRepo) Submit(o *model.Order) error              { return nil }
func (m *MockOrderRepo) ListAll() ([]model.Order, error)          { return nil, nil }
func (m *MockOrderRepo) UpdateStatus(int, *string, *string) error { return nil }

func (m *MockOrderRepo) GetByID(id int) (*model.Order, error) {
	if m.order != nil && m.order.ID == id {
		return m.order, nil
	}
	return nil, appErrors.NewOrderNotFound(id)
}

// MockMailer records what was sent
type MockMailer struct {
	sent []int
}

func (m *MockMailer) SendOrderNotification(o *model.Order) error {
	m.sent = append(m.sent, o.ID)
	return nil
}

func TestProcessNotification(t *testing.T) {
	repo := &MockOrderRepo{order: &model.Order{ID: 1, LastName: "Ivanov", Phone: "+7900"}}
	m := &MockMailer{}

	if err := processNotification(1, repo, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.sent) != 1 || m.sent[0] != 1 {
		t.Errorf("expected order 1 mailed, got %v", m.sent)
	}
}

func TestProcessNotificationUnknownOrder(t *testing.T) {
	repo := &MockOrderRepo{}
	m := &MockMailer{}

	if err := processNotification(2, repo, m); err == nil {
		t.Fatal("expected error for unknown order")
	}
	if len(m.sent) != 0 {
		t.Errorf("nothing should be mailed, got %v", m.sent)
	}
}
