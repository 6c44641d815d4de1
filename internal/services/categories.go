package services

import (
	"context"

	"guestadmin/internal/backend"
	"guestadmin/internal/domain"
	"guestadmin/internal/utils"
)

// CategoryService drives the product category management dialog. The
// collection is a small lookup table, so it is fetched fresh instead of
// going through a page store.
type CategoryService struct {
	Client    *backend.Client
	RequestID string
	Modal     *Modal
}

func NewCategoryService(client *backend.Client) *CategoryService {
	return &CategoryService{Client: client, Modal: NewModal()}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.Client.ListCategories(ctx)
}

func (s *CategoryService) input(f CategoryForm) backend.CategoryInput {
	return backend.CategoryInput{
		Name:        utils.NormalizeSpace(f.Name),
		Description: utils.TrimOrEmpty(f.Description),
	}
}

func (s *CategoryService) Create(ctx context.Context, f CategoryForm) error {
	if err := s.Modal.Open(ModalAdd); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateCategoryForm(f)
	}, func() error {
		if _, err := s.Client.CreateCategory(ctx, s.input(f)); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "categories", "create", "category created")
		return nil
	})
}

func (s *CategoryService) Update(ctx context.Context, id int64, f CategoryForm) error {
	if err := s.Modal.Open(ModalEdit); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: false}, func() domain.FieldErrors {
		return ValidateCategoryForm(f)
	}, func() error {
		if _, err := s.Client.UpdateCategory(ctx, id, s.input(f)); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "categories", "update", "category updated")
		return nil
	})
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.Modal.Open(ModalDelete); err != nil {
		return err
	}
	return s.Modal.Submit(SubmitOptions{CloseOnError: true}, nil, func() error {
		if err := s.Client.DeleteCategory(ctx, id); err != nil {
			return err
		}
		utils.LogEvent(s.RequestID, "categories", "delete", "category deleted")
		return nil
	})
}
