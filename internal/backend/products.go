package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"guestadmin/internal/domain"
)

// ProductInput is the create/update payload for a product. The backend
// expects multipart form data so the image upload can ride along;
// CategoryIDs are written as one repeated "categories" field per id.
type ProductInput struct {
	Name        string
	ProductCode string
	CategoryIDs []int64
	Cost        float64
	Price       float64
	Quantity    int
	Description string
	IsActive    bool

	ImageName string
	Image     io.Reader
}

func (in ProductInput) fields() url.Values {
	fields := url.Values{}
	fields.Set("name", in.Name)
	if in.ProductCode != "" {
		fields.Set("product_code", in.ProductCode)
	}
	for _, id := range in.CategoryIDs {
		fields.Add("categories", strconv.FormatInt(id, 10))
	}
	fields.Set("cost", strconv.FormatFloat(in.Cost, 'f', 2, 64))
	fields.Set("price", strconv.FormatFloat(in.Price, 'f', 2, 64))
	fields.Set("quantity", strconv.Itoa(in.Quantity))
	fields.Set("description", in.Description)
	fields.Set("is_active", strconv.FormatBool(in.IsActive))
	return fields
}

func (c *Client) ListProducts(ctx context.Context, params ListParams) ([]domain.Product, error) {
	var out Collection[domain.Product]
	if err := c.get(ctx, "/products/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (domain.Product, error) {
	var out domain.Product
	if err := c.sendMultipart(ctx, http.MethodPost, "/products/", input.fields(), "image", input.ImageName, input.Image, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (domain.Product, error) {
	var out domain.Product
	if err := c.sendMultipart(ctx, http.MethodPut, fmt.Sprintf("/products/%d/", id), input.fields(), "image", input.ImageName, input.Image, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d/", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out Collection[domain.Category]
	if err := c.get(ctx, "/categories/", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// CategoryInput is the create/update payload for a product category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (domain.Category, error) {
	var out domain.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/categories/", input, &out); err != nil {
		return domain.Category{}, err
	}
	return out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, input CategoryInput) (domain.Category, error) {
	var out domain.Category
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/categories/%d/", id), input, &out); err != nil {
		return domain.Category{}, err
	}
	return out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/", id), nil, nil)
}
