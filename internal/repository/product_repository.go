package repository

import (
	"database/sql"

	"github.com/lib/pq"

	appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
	"github.com/pr-poehali-dev/furniture-modern-site/internal/model"
)

type ProductRepositoryInterface interface {
	ListAll() ([]model.Product, error)
	Create(p *model.Product) error
	Update(p *model.Product) error
	Delete(id int) error
}

type ProductRepository struct {
	DB *sql.DB
}

func (r *ProductRepository) ListAll() ([]model.Product, error) {
	query := `
        SELECT id, name, price, images, category, material, style, color,
               manufacturer, description,
               dimension_length, dimension_width, dimension_height,
               created_at, updated_at
        FROM products
        ORDER BY id
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, pq.Array(&p.Images), &p.Category, &p.Material,
			&p.Style, &p.Color, &p.Manufacturer, &p.Description,
			&p.Dimensions.Length, &p.Dimensions.Width, &p.Dimensions.Height,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(p *model.Product) error {
	query := `
        INSERT INTO products (
            name, price, images, category, material, style, color,
            manufacturer, description,
            dimension_length, dimension_width, dimension_height
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		p.Name, p.Price, pq.Array(p.Images), p.Category, p.Material, p.Style, p.Color,
		p.Manufacturer, p.Description,
		p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height,
	).Scan(&p.ID)
}

// Update replaces every column unconditionally. A missing id is reported as
// not found rather than silently affecting zero rows.
func (r *ProductRepository) Update(p *model.Product) error {
	query := `
        UPDATE products SET
            name = $1,
            price = $2,
            images = $3,
            category = $4,
            material = $5,
            style = $6,
            color = $7,
            manufacturer = $8,
            description = $9,
            dimension_length = $10,
            dimension_width = $11,
            dimension_height = $12,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $13
    `
	res, err := r.DB.Exec(query,
		p.Name, p.Price, pq.Array(p.Images), p.Category, p.Material, p.Style, p.Color,
		p.Manufacturer, p.Description,
		p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height,
		p.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewProductNotFound(p.ID)
	}
	return nil
}

// Delete is idempotent: deleting an absent id is not an error.
func (r *ProductRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM products WHERE id = $1`, id)
	return err
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
