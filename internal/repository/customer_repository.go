package repository

import (
	"database/sql"

	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

// CustomerRepositoryInterface defines methods used by controllers
type CustomerRepositoryInterface interface {
	ListAll() ([]model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// ListAll fetches every customer, most recently updated first
func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	query := `
        SELECT id, last_name, first_name, middle_name, phone, city, address,
               total_orders, total_spent, created_at, updated_at
        FROM customers
        ORDER BY updated_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.LastName, &c.FirstName, &c.MiddleName, &c.Phone, &c.City, &c.Address,
			&c.TotalOrders, &c.TotalSpent, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
