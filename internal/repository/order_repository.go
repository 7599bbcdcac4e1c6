package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

type OrderRepositoryInterface interface {
	// Submit upserts the customer by phone and inserts the order in one
	// transaction, filling in o.ID and o.CreatedAt.
	Submit(o *model.Order) error
	ListAll() ([]model.Order, error)
	GetByID(id int) (*model.Order, error)
	// UpdateStatus applies only the supplied fields; nil means untouched.
	UpdateStatus(orderID int, status, notes *string) error
}

type OrderRepository struct {
	DB *sql.DB
}

// Submit runs the customer upsert and the order insert as a single
// transaction: the order must not exist without its counter update.
// Concurrent submissions for the same phone are serialized by Postgres'
// ON CONFLICT handling, not by anything in this process.
func (r *OrderRepository) Submit(o *model.Order) error {
	items := o.Items
	if items == nil {
		items = []model.OrderItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Upsert customer keyed by phone
	var customerID int
	err = tx.QueryRow(`
		INSERT INTO customers (last_name, first_name, middle_name, phone, city, address, total_orders, total_spent)
		VALUES ($1, $2, $3, $4, $5, $6, 1, $7)
		ON CONFLICT (phone)
		DO UPDATE SET
			last_name = EXCLUDED.last_name,
			first_name = EXCLUDED.first_name,
			middle_name = EXCLUDED.middle_name,
			city = EXCLUDED.city,
			address = EXCLUDED.address,
			total_orders = customers.total_orders + 1,
			total_spent = customers.total_spent + EXCLUDED.total_spent,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`,
		o.LastName, o.FirstName, o.MiddleName, o.Phone, o.City, o.Address, o.Total,
	).Scan(&customerID)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	// 2. Insert order with the submitted customer snapshot
	err = tx.QueryRow(`
		INSERT INTO orders (last_name, first_name, middle_name, phone, city, address, items, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		o.LastName, o.FirstName, o.MiddleName, o.Phone, o.City, o.Address, itemsJSON, o.Total,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	o.Items = items
	o.Status = "pending"
	return nil
}

// ListAll fetches every order, newest first
func (r *OrderRepository) ListAll() ([]model.Order, error) {
	query := `
        SELECT id, last_name, first_name, middle_name, phone, city, address,
               items, total, status, notes, created_at
        FROM orders
        ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(id int) (*model.Order, error) {
	query := `
        SELECT id, last_name, first_name, middle_name, phone, city, address,
               items, total, status, notes, created_at
        FROM orders
        WHERE id = $1
    `
	o, err := scanOrder(r.DB.QueryRow(query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewOrderNotFound(id)
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(scan func(dest ...any) error) (*model.Order, error) {
	var o model.Order
	var itemsRaw []byte
	var notes sql.NullString
	if err := scan(
		&o.ID, &o.LastName, &o.FirstName, &o.MiddleName, &o.Phone, &o.City, &o.Address,
		&itemsRaw, &o.Total, &o.Status, &notes, &o.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items for order %d: %w", o.ID, err)
		}
	}
	if o.Items == nil {
		o.Items = []model.OrderItem{}
	}
	o.Notes = notes.String
	return &o, nil
}

// UpdateStatus builds a partial UPDATE touching only the supplied fields.
// RETURNING id confirms the row exists.
func (r *OrderRepository) UpdateStatus(orderID int, status, notes *string) error {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if status != nil {
		sets = append(sets, fmt.Sprintf("status=$%d", argPos))
		args = append(args, *status)
		argPos++
	}
	if notes != nil {
		sets = append(sets, fmt.Sprintf("notes=$%d", argPos))
		args = append(args, *notes)
		argPos++
	}

	query := fmt.Sprintf("UPDATE orders SET %s WHERE id=$%d RETURNING id", strings.Join(sets, ", "), argPos)
	args = append(args, orderID)

	var id int
	if err := r.DB.QueryRow(query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.NewOrderNotFound(orderID)
		}
		return err
	}
	return nil
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
