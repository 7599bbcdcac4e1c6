package mailer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/mailer"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

func TestRenderOrderMessage(t *testing.T) {
	order := &model.Order{
		ID:         12,
		LastName:   "Ivanov",
		FirstName:  "Petr",
		MiddleName: "Sergeevich",
		Phone:      "+7900",
		City:       "Moscow",
		Address:    "Main st 1",
		Items: []model.OrderItem{
			{Name: "Chair", Price: 100, Quantity: 2},
			{Name: "Table", Price: 50.5, Quantity: 1},
		},
		Total:     decimal.NewFromFloat(250.5),
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	msg := mailer.RenderOrderMessage(order)

	for _, want := range []string{
		"Order #12",
		"Ivanov Petr Sergeevich",
		"+7900",
		"Moscow",
		"Main st 1",
		"Chair x2 @ 100.00",
		"Table x1 @ 50.50",
		"Total: 250.50",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestSendWithoutRelayConfigured(t *testing.T) {
	m := &mailer.SMTPMailer{}
	if err := m.SendOrderNotification(&model.Order{ID: 1}); err == nil {
		t.Fatal("expected error when relay is not configured")
	}
}
