// internal/controller/products_controller.go
package controller

import (
    "net/http"
    "strconv"

    "github.com/shopspring/decimal"

    appErrors "github.com/pr-poehali-dev/furniture-modern-site/internal/errors"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/model"
    "github.com/pr-poehali-dev/furniture-modern-site/internal/repository"
)

type ProductsController struct {
    ProductRepo repository.ProductRepositoryInterface
}

// productPayload uses pointers so absent fields are distinguishable from
// zero values: every field is validated before any SQL runs.
type productPayload struct {
    ID           *int               `json:"id"`
    Name         *string            `json:"name"`
    Price        *float64           `json:"price"`
    Images       []string           `json:"images"`
    Category     *string            `json:"category"`
    Material     *string            `json:"material"`
    Style        *string            `json:"style"`
    Color        *string            `json:"color"`
    Manufacturer *string            `json:"manufacturer"`
    Description  *string            `json:"description"`
    Dimensions   *dimensionsPayload `json:"dimensions"`
}

type dimensionsPayload struct {
    Length *float64 `json:"length"`
    Width  *float64 `json:"width"`
    Height *float64 `json:"height"`
}

type productRecord struct {
    ID           int              `json:"id"`
    Name         string           `json:"name"`
    Price        float64          `json:"price"`
    Images       []string         `json:"images"`
    Category     string           `json:"category"`
    Material     string           `json:"material"`
    Style        string           `json:"style"`
    Color        string           `json:"color"`
    Manufacturer string           `json:"manufacturer"`
    Description  string           `json:"description"`
    Dimensions   model.Dimensions `json:"dimensions"`
}

// ListProducts returns every product ordered by id, with the flat dimension
// columns reshaped into a nested object.
func (c *ProductsController) ListProducts(w http.ResponseWriter, r *http.Request) {
    products, err := c.ProductRepo.ListAll()
    if err != nil {
        writeError(w, err)
        return
    }

    result := make([]productRecord, 0, len(products))
    for _, p := range products {
        result = append(result, productRecord{
            ID:           p.ID,
            Name:         p.Name,
            Price:        p.Price.InexactFloat64(),
            Images:       p.Images,
            Category:     p.Category,
            Material:     p.Material,
            Style:        p.Style,
            Color:        p.Color,
            Manufacturer: p.Manufacturer,
            Description:  p.Description,
            Dimensions:   p.Dimensions,
        })
    }

    writeJSON(w, http.StatusOK, result)
}

func (c *ProductsController) CreateProduct(w http.ResponseWriter, r *http.Request) {
    var payload productPayload
    if err := decodeBody(r, &payload); err != nil {
        writeError(w, err)
        return
    }

    product, err := payload.toModel(false)
    if err != nil {
        writeError(w, err)
        return
    }

    if err := c.ProductRepo.Create(product); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusCreated, map[string]any{"id": product.ID, "message": "Product created"})
}

func (c *ProductsController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
    var payload productPayload
    if err := decodeBody(r, &payload); err != nil {
        writeError(w, err)
        return
    }

    product, err := payload.toModel(true)
    if err != nil {
        writeError(w, err)
        return
    }

    if err := c.ProductRepo.Update(product); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{"message": "Product updated"})
}

// DeleteProduct removes a product by query-string id. Deleting an absent id
// is an idempotent success.
func (c *ProductsController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
    idStr := r.URL.Query().Get("id")
    if idStr == "" {
        writeError(w, appErrors.NewMissingField("id"))
        return
    }
    id, err := strconv.Atoi(idStr)
    if err != nil {
        writeError(w, appErrors.NewValidation("invalid product id: %s", idStr))
        return
    }

    if err := c.ProductRepo.Delete(id); err != nil {
        writeError(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// toModel validates the payload completely and maps it onto a model.Product.
// withID additionally requires the id field (update).
func (p *productPayload) toModel(withID bool) (*model.Product, error) {
    if withID && p.ID == nil {
        return nil, appErrors.NewMissingField("id")
    }
    if p.Name == nil {
        return nil, appErrors.NewMissingField("name")
    }
    if p.Price == nil {
        return nil, appErrors.NewMissingField("price")
    }
    if p.Images == nil {
        return nil, appErrors.NewMissingField("images")
    }
    if p.Category == nil {
        return nil, appErrors.NewMissingField("category")
    }
    if p.Material == nil {
        return nil, appErrors.NewMissingField("material")
    }
    if p.Style == nil {
        return nil, appErrors.NewMissingField("style")
    }
    if p.Color == nil {
        return nil, appErrors.NewMissingField("color")
    }
    if p.Manufacturer == nil {
        return nil, appErrors.NewMissingField("manufacturer")
    }
    if p.Description == nil {
        return nil, appErrors.NewMissingField("description")
    }
    if p.Dimensions == nil {
        return nil, appErrors.NewMissingField("dimensions")
    }
    if p.Dimensions.Length == nil {
        return nil, appErrors.NewMissingField("dimensions.length")
    }
    if p.Dimensions.Width == nil {
        return nil, appErrors.NewMissingField("dimensions.width")
    }
    if p.Dimensions.Height == nil {
        return nil, appErrors.NewMissingField("dimensions.height")
    }

    product := &model.Product{
        Name:         *p.Name,
        Price:        decimal.NewFromFloat(*p.Price),
        Images:       p.Images,
        Category:     *p.Category,
        Material:     *p.Material,
        Style:        *p.Style,
        Color:        *p.Color,
        Manufacturer: *p.Manufacturer,
        Description:  *p.Description,
        Dimensions: model.Dimensions{
            Length: *p.Dimensions.Length,
            Width:  *p.Dimensions.Width,
            Height: *p.Dimensions.Height,
        },
    }
    if withID {
        product.ID = *p.ID
    }
    return product, nil
}
