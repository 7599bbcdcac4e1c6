// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/controller"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/db"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/mailer"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/queue"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	customerRepo := &repository.CustomerRepository{DB: db.DB}
	orderRepo := &repository.OrderRepository{DB: db.DB}
	productRepo := &repository.ProductRepository{DB: db.DB}

	m := mailer.NewFromEnv()

	// Notifications go through RabbitMQ when a broker is configured
	// (consumed by cmd/worker); otherwise an in-process subscriber sends
	// the mail itself.
	var q queue.Queue
	if url := os.Getenv("AMQP_URL"); url != "" {
		aq, err := queue.NewAMQPQueue(url)
		if err != nil {
			log.Fatal("failed to connect to RabbitMQ:", err)
		}
		defer aq.Close()
		q = aq
	} else {
		mq := queue.NewInMemoryQueue()
		queue.StartOrderNotificationSubscriber(mq, orderRepo, m)
		q = mq
	}

	orderService := &service.OrderService{
		OrderRepo: orderRepo,
		Queue:     q,
	}

	ordersController := &controller.OrdersController{
		OrderService: orderService,
		OrderRepo:    orderRepo,
	}
	customersController := &controller.CustomersController{
		CustomerRepo: customerRepo,
	}
	productsController := &controller.ProductsController{
		ProductRepo: productRepo,
	}

	r := chi.NewRouter()
	r.Use(controller.CORS)
	r.Use(controller.RequestLogger)
	r.MethodNotAllowed(controller.MethodNotAllowed)

	r.Get("/health", controller.Health(db.DB))

	r.Get("/customers", customersController.ListCustomers)

	r.Get("/orders", ordersController.ListOrders)
	r.Post("/orders", ordersController.SubmitOrder)
	r.Put("/orders/status", ordersController.UpdateStatus)

	r.Get("/products", productsController.ListProducts)
	r.Post("/products", productsController.CreateProduct)
	r.Put("/products", productsController.UpdateProduct)
	r.Delete("/products", productsController.DeleteProduct)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(srv.ListenAndServe())
}
