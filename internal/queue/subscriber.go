package queue

import (
	"log"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/mailer"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
)

// StartOrderNotificationSubscriber wires the in-process notification path:
// fetch the committed order and send the mail once. Failures are logged and
// never retried — the order itself is already durable.
func StartOrderNotificationSubscriber(q Queue, orderRepo repository.OrderRepositoryInterface, m mailer.Mailer) {
	go func() {
		err := q.Subscribe(OrderNotifications, func(payload any) error {
			orderID, ok := payload.(int)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected int")
				return nil
			}

			order, err := orderRepo.GetByID(orderID)
			if err != nil {
				log.Println("⚠️ Failed to fetch order for notification:", err)
				return nil
			}

			if err := m.SendOrderNotification(order); err != nil {
				log.Println("⚠️ Failed to send order notification:", err)
				return nil // single attempt, no retry
			}

			log.Println("✅ Order notification sent for order", orderID)
			return nil
		})
		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", OrderNotifications, ":", err)
		}
	}()
}
