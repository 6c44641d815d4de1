package services

import (
	"context"
	"io"
	"sync"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/listview"
	"guestadmin/internal/utils"
)

// ProductService drives the product list page, including the category
// picker and image upload.
type ProductService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal

	mu         sync.Mutex
	store      Store[domain.Product]
	lastFilter listview.Filter
	hasFilter  bool
}

func NewProductService(client *backend.Client) *ProductService {
	return &ProductService{Client: client, Modal: NewModal()}
}

type ProductListView struct {
	listview.Page[domain.Product]
	Stats ProductStats
	Stale bool
}

func (s *ProductService) List(ctx context.Context, f listview.Filter, sortBy listview.Sort, page int) (ProductListView, error) {
	page = s.resetPageOnFilterChange(f, page)
	token := s.store.Begin()
	items, err := s.Client.ListProducts(ctx, listParams(f, sortBy))
	if err != nil {
		s.store.Fail(token)
		if domain.IsUnauthorized(err) {
			return ProductListView{}, err
		}
		if snap, ok := s.store.Snapshot(); ok {
			utils.LogEvent(s.RequestID, "products", "list", "serving stale collection: "+err.Error())
			return s.render(snap.Items, f, sortBy, page, true), nil
		}
		return ProductListView{}, err
	}
	if !s.store.Commit(token, items) {
		if snap, ok := s.store.Snapshot(); ok {
			items = snap.Items
		}
	}
	return s.render(items, f, sortBy, page, false), nil
}

func (s *ProductService) render(items []domain.Product, f listview.Filter, sortBy listview.Sort, page int, stale bool) ProductListView {
	return ProductListView{
		Page:  listview.Visible(items, listview.ProductProfile(), f, sortBy, page),
		Stats: ComputeProductStats(items),
		Stale: stale,
	}
}

func (s *ProductService) resetPageOnFilterChange(f listview.Filter, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasFilter || !s.lastFilter.Equal(f) {
		page = 1
	}
	s.lastFilter = f
	s.hasFilter = true
	return page
}

func (s *ProductService) input(f ProductForm, imageName string, image io.Reader) backend.ProductInput {
	cost, _ := parsePositive(f.Cost)
	price, _ := parsePositive(f.Price)
	quantity, _ := parseNonNegativeInt(f.Quantity)
	return backend.ProductInput{
		Name:        utils.NormalizeSpace(f.Name),
		ProductCode: utils.TrimOrEmpty(f.ProductCode),
		CategoryIDs: f.CategoryIDs,
		Cost:        cost,
		Price:       price,
		Quantity:    quantity,
		Description: utils.TrimOrEmpty(f.Description),
		IsActive:    f.IsActive,
		ImageName:   imageName,
		Image:       image,
	}
}

func (s *ProductService) Create(ctx context.Context, f ProductForm, imageName string, image io.Reader) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateProductForm(f)
	}, func() error {
		if _, err := s.Client.CreateProduct(ctx, s.input(f, imageName, image)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "products", "create", "product created")
		return nil
	})
}

func (s *ProductService) Update(ctx context.Context, id int64, f ProductForm, imageName string, image io.Reader) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateProductForm(f)
	}, func() error {
		if _, err := s.Client.UpdateProduct(ctx, id, s.input(f, imageName, image)); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "products", "update", "product updated")
		return nil
	})
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteProduct(ctx, id); err != nil {
			return err
		}
		s.store.Invalidate()
		utils.LogEvent(s.RequestID, "products", "delete", "product deleted")
		return nil
	})
}
