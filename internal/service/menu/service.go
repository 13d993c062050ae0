package menu

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	menuRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/menu"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/service/menu/models"
)

const defaultCategory = "altro"

// Service сервис цифрового меню
type Service struct {
	repo   MenuRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(repo MenuRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает меню ресторана, сгруппированное по категориям.
// Порядок категорий и позиций внутри - алфавитный, как в хранилище.
func (s *Service) List(ctx context.Context, restaurantID int64) (*models.MenuResponse, error) {
	items, err := s.repo.List(ctx, restaurantID)
	if err != nil {
		s.logger.Error("List: restaurant=%d failed: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	resp := &models.MenuResponse{Categories: make([]models.CategoryResponse, 0)}
	var current *models.CategoryResponse
	for _, item := range items {
		if current == nil || current.Name != item.Category {
			resp.Categories = append(resp.Categories, models.CategoryResponse{
				Name:  item.Category,
				Items: make([]models.ItemResponse, 0),
			})
			current = &resp.Categories[len(resp.Categories)-1]
		}
		current.Items = append(current.Items, models.ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.PriceEuros(),
			Category:  item.Category,
			Available: item.Available,
		})
	}

	return resp, nil
}

// CreateItem добавляет позицию меню
func (s *Service) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if req.PriceEuros < 0 {
		return nil, fmt.Errorf("%w: negative price", ErrInvalidItem)
	}

	category := strings.TrimSpace(strings.ToLower(req.Category))
	if category == "" {
		category = defaultCategory
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &domain.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         name,
		PriceCents:   int64(math.Round(req.PriceEuros * 100)),
		Category:     category,
		Available:    available,
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error("CreateItem: restaurant=%d failed: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: CreateItem: %v", ErrInternal, err)
	}
	item.ID = id

	s.logger.Info("CreateItem: restaurant=%d created item id=%d name=%q", req.RestaurantID, id, name)

	return &models.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.PriceEuros(),
		Category:  item.Category,
		Available: item.Available,
	}, nil
}

// DeleteItem удаляет позицию меню
func (s *Service) DeleteItem(ctx context.Context, restaurantID, itemID int64) error {
	err := s.repo.Delete(ctx, restaurantID, itemID)
	if errors.Is(err, menuRepo.ErrMenuItemNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		s.logger.Error("DeleteItem: restaurant=%d item=%d failed: %v", restaurantID, itemID, err)
		return fmt.Errorf("%w: DeleteItem: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteItem: restaurant=%d item=%d deleted", restaurantID, itemID)
	return nil
}
