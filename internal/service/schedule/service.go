package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"

	scheduleRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/schedule"

	"github.com/xalexyi/prenotazioni-ai/internal/domain"
	"github.com/xalexyi/prenotazioni-ai/internal/service/schedule/models"
	"github.com/xalexyi/prenotazioni-ai/pkg/types"
)

// Service сервис админских мутаций расписания.
// Семантика записи везде replace: delete + insert одной транзакцией,
// частичных обновлений окон нет. История изменений не ведется.
type Service struct {
	repo      ScheduleRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// ReplaceWeekly заменяет все окна одного дня недели.
// Пустой список окон закрывает день.
func (s *Service) ReplaceWeekly(ctx context.Context, req *models.ReplaceWeeklyRequest) error {
	if err := validateWeekday(req.Weekday); err != nil {
		s.logger.Warn("ReplaceWeekly: restaurant=%d validation failed: %v", req.RestaurantID, err)
		return err
	}
	windows, err := validateWindows(req.Windows)
	if err != nil {
		s.logger.Warn("ReplaceWeekly: restaurant=%d validation failed: %v", req.RestaurantID, err)
		return err
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.ReplaceWeeklyWindows(ctx, req.RestaurantID, req.Weekday, windows)
	})
	if err != nil {
		s.logger.Error("ReplaceWeekly: restaurant=%d weekday=%d failed: %v", req.RestaurantID, req.Weekday, err)
		return fmt.Errorf("%w: ReplaceWeekly: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWeekly: restaurant=%d weekday=%d replaced with %d windows", req.RestaurantID, req.Weekday, len(windows))
	return nil
}

// ReplaceWeeklyBulk атомарно заменяет всю неделю.
// Дни, отсутствующие в запросе, становятся закрытыми.
func (s *Service) ReplaceWeeklyBulk(ctx context.Context, req *models.ReplaceWeeklyBulkRequest) error {
	week := make(map[int][]domain.Window, domain.MaxWeekday+1)
	for weekday, inputs := range req.Week {
		if err := validateWeekday(weekday); err != nil {
			s.logger.Warn("ReplaceWeeklyBulk: restaurant=%d validation failed: %v", req.RestaurantID, err)
			return err
		}
		windows, err := validateWindows(inputs)
		if err != nil {
			s.logger.Warn("ReplaceWeeklyBulk: restaurant=%d weekday=%d validation failed: %v", req.RestaurantID, weekday, err)
			return err
		}
		week[weekday] = windows
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		for weekday := domain.MinWeekday; weekday <= domain.MaxWeekday; weekday++ {
			if err := s.repo.ReplaceWeeklyWindows(ctx, req.RestaurantID, weekday, week[weekday]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceWeeklyBulk: restaurant=%d failed: %v", req.RestaurantID, err)
		return fmt.Errorf("%w: ReplaceWeeklyBulk: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceWeeklyBulk: restaurant=%d replaced full week", req.RestaurantID)
	return nil
}

// UpsertSpecialDay заменяет override на дату
func (s *Service) UpsertSpecialDay(ctx context.Context, req *models.UpsertSpecialDayRequest) error {
	date, err := validateDate(req.Date)
	if err != nil {
		s.logger.Warn("UpsertSpecialDay: restaurant=%d validation failed: %v", req.RestaurantID, err)
		return err
	}

	var windows []domain.Window
	if !req.IsClosed {
		windows, err = validateWindows(req.Windows)
		if err != nil {
			s.logger.Warn("UpsertSpecialDay: restaurant=%d date=%s validation failed: %v", req.RestaurantID, req.Date, err)
			return err
		}
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.UpsertSpecialDay(ctx, req.RestaurantID, date, req.IsClosed, windows)
	})
	if err != nil {
		s.logger.Error("UpsertSpecialDay: restaurant=%d date=%s failed: %v", req.RestaurantID, req.Date, err)
		return fmt.Errorf("%w: UpsertSpecialDay: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSpecialDay: restaurant=%d date=%s closed=%t windows=%d", req.RestaurantID, req.Date, req.IsClosed, len(windows))
	return nil
}

// DeleteSpecialDay удаляет override на дату
func (s *Service) DeleteSpecialDay(ctx context.Context, restaurantID int64, rawDate string) error {
	date, err := validateDate(rawDate)
	if err != nil {
		s.logger.Warn("DeleteSpecialDay: restaurant=%d validation failed: %v", restaurantID, err)
		return err
	}

	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		return s.repo.DeleteSpecialDay(ctx, restaurantID, date)
	})
	if errors.Is(err, scheduleRepo.ErrSpecialDayNotFound) {
		s.logger.Warn("DeleteSpecialDay: restaurant=%d date=%s not found", restaurantID, rawDate)
		return ErrSpecialDayNotFound
	}
	if err != nil {
		s.logger.Error("DeleteSpecialDay: restaurant=%d date=%s failed: %v", restaurantID, rawDate, err)
		return fmt.Errorf("%w: DeleteSpecialDay: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDay: restaurant=%d date=%s deleted", restaurantID, rawDate)
	return nil
}

// UpdateSettings частично обновляет настройки: читает текущие (или
// дефолты), накладывает переданные поля, валидирует результат целиком
// и упсертит одной транзакцией.
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	var merged *domain.Settings

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetSettings(ctx, req.RestaurantID)
		if errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
			current = domain.DefaultSettings(req.RestaurantID)
		} else if err != nil {
			return err
		}

		merged = applySettingsUpdate(current, req)
		if err := validateSettingsUpdate(req, merged); err != nil {
			return err
		}

		return s.repo.UpsertSettings(ctx, merged)
	})

	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			s.logger.Warn("UpdateSettings: restaurant=%d validation failed: %v", req.RestaurantID, err)
			return nil, err
		}
		s.logger.Error("UpdateSettings: restaurant=%d failed: %v", req.RestaurantID, err)
		return nil, fmt.Errorf("%w: UpdateSettings: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: restaurant=%d settings updated", req.RestaurantID)
	return settingsToResponse(merged), nil
}

// State возвращает полный снимок расписания ресторана
func (s *Service) State(ctx context.Context, restaurantID int64) (*models.StateResponse, error) {
	weekly, err := s.repo.GetWeeklyWindows(ctx, restaurantID)
	if err != nil {
		s.logger.Error("State: restaurant=%d failed to get weekly windows: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: State - get weekly windows: %v", ErrInternal, err)
	}

	specialRows, err := s.repo.GetSpecialDayRows(ctx, restaurantID)
	if err != nil {
		s.logger.Error("State: restaurant=%d failed to get special days: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: State - get special days: %v", ErrInternal, err)
	}

	settings, err := s.repo.GetSettings(ctx, restaurantID)
	if errors.Is(err, scheduleRepo.ErrSettingsNotFound) {
		settings = domain.DefaultSettings(restaurantID)
	} else if err != nil {
		s.logger.Error("State: restaurant=%d failed to get settings: %v", restaurantID, err)
		return nil, fmt.Errorf("%w: State - get settings: %v", ErrInternal, err)
	}

	resp := &models.StateResponse{
		Weekly:      make(map[int][]models.WindowResponse, domain.MaxWeekday+1),
		SpecialDays: make([]models.SpecialDayResponse, 0),
		Settings:    *settingsToResponse(settings),
	}
	for weekday := domain.MinWeekday; weekday <= domain.MaxWeekday; weekday++ {
		resp.Weekly[weekday] = make([]models.WindowResponse, 0)
	}
	for _, w := range weekly {
		resp.Weekly[w.Weekday] = append(resp.Weekly[w.Weekday], models.WindowResponse{
			Start: w.Start.String(),
			End:   w.End.String(),
		})
	}

	byDate := make(map[types.DateString]*models.SpecialDayResponse)
	order := make([]types.DateString, 0)
	for _, row := range specialRows {
		day, ok := byDate[row.Date]
		if !ok {
			day = &models.SpecialDayResponse{Date: row.Date.String(), Windows: make([]models.WindowResponse, 0)}
			byDate[row.Date] = day
			order = append(order, row.Date)
		}
		if row.IsClosed {
			day.IsClosed = true
			day.Windows = day.Windows[:0]
			continue
		}
		if day.IsClosed || row.Start == nil || row.End == nil {
			continue
		}
		day.Windows = append(day.Windows, models.WindowResponse{Start: row.Start.String(), End: row.End.String()})
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	for _, date := range order {
		resp.SpecialDays = append(resp.SpecialDays, *byDate[date])
	}

	return resp, nil
}

func applySettingsUpdate(current *domain.Settings, req *models.UpdateSettingsRequest) *domain.Settings {
	merged := *current
	merged.RestaurantID = req.RestaurantID
	if req.Timezone != nil {
		merged.Timezone = *req.Timezone
	}
	if req.SlotStepMin != nil {
		merged.SlotStepMin = *req.SlotStepMin
	}
	if req.LastOrderMin != nil {
		merged.LastOrderMin = *req.LastOrderMin
	}
	if req.MinParty != nil {
		merged.MinParty = *req.MinParty
	}
	if req.MaxParty != nil {
		merged.MaxParty = *req.MaxParty
	}
	if req.CapacityPerSlot != nil {
		merged.CapacityPerSlot = *req.CapacityPerSlot
	}
	return &merged
}

func settingsToResponse(s *domain.Settings) *models.SettingsResponse {
	return &models.SettingsResponse{
		Timezone:        s.Timezone,
		SlotStepMin:     s.SlotStepMin,
		LastOrderMin:    s.LastOrderMin,
		MinParty:        s.MinParty,
		MaxParty:        s.MaxParty,
		CapacityPerSlot: s.CapacityPerSlot,
	}
}
