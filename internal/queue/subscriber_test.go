package queue_test

import (
	"fmt"
	"testing"
	"time"

	appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/queue"
)

type stubOrderRepo struct {
	order *model.Order
}

func (s *stubOrderRepo) Submit(o *model.Order) error        { return nil }
func (s *stubOrderRepo) ListAll() ([]model.Order, error)    { return nil, nil }
func (s *stubOrderRepo) UpdateStatus(int, *string, *string) error { return nil }

func (s *stubOrderRepo) GetByID(id int) (*model.Order, error) {
	if s.order != nil && s.order.ID == id {
		return s.order, nil
	}
	return nil, appErrors.NewOrderNotFound(id)
}

type stubMailer struct {
	sent    chan int
	sendErr error
}

func (m *stubMailer) SendOrderNotification(o *model.Order) error {
	m.sent <- o.ID
	return m.sendErr
}

func TestOrderNotificationSubscriberSendsMail(t *testing.T) {
	q := queue.NewInMemoryQueue()
	repo := &stubOrderRepo{order: &model.Order{ID: 5, LastName: "Ivanov"}}
	m := &stubMailer{sent: make(chan int, 10)}

	queue.StartOrderNotificationSubscriber(q, repo, m)

	// subscription happens in a goroutine
	deadline := time.Now().Add(time.Second)
	for {
		if err := q.Publish(queue.OrderNotifications, 5); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case id := <-m.sent:
		if id != 5 {
			t.Errorf("expected order 5, got %d", id)
		}
	case <-time.After(time.Second):
		t.Fatal("mail was never sent")
	}
}

func TestOrderNotificationSingleAttempt(t *testing.T) {
	q := queue.NewInMemoryQueue()
	repo := &stubOrderRepo{order: &model.Order{ID: 5}}
	m := &stubMailer{sent: make(chan int, 10), sendErr: fmt.Errorf("smtp down")}

	queue.StartOrderNotificationSubscriber(q, repo, m)

	deadline := time.Now().Add(time.Second)
	for {
		if err := q.Publish(queue.OrderNotifications, 5); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-m.sent:
	case <-time.After(time.Second):
		t.Fatal("send never attempted")
	}

	// a failed send must not be retried
	select {
	case <-m.sent:
		t.Fatal("notification retried after failure")
	case <-time.After(200 * time.Millisecond):
	}
}
