package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/diegoclair/prep-rotation/internal/domain/location"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"go.uber.org/zap"
)

var _ contract.PrepService = (*prepService)(nil)

type prepService struct {
	dm       contract.DataManager
	src      contract.ItemSource
	rotation schedule.Rotation
	loc      *time.Location
	clock    func() time.Time
	log      *zap.Logger
}

func newPrep(dm contract.DataManager, src contract.ItemSource, opts Options, log *zap.Logger) *prepService {
	return &prepService{
		dm:       dm,
		src:      src,
		rotation: opts.Rotation,
		loc:      opts.Location,
		clock:    opts.Now,
		log:      log,
	}
}

func (s *prepService) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *prepService) Suggest() entity.Suggestion {
	return s.rotation.Suggest(s.now())
}

func (s *prepService) WeekdayOptions() []entity.WeekdayOption {
	return schedule.WeekdayOptions()
}

func (s *prepService) FilterWeekdayOptions(query string) []entity.WeekdayOption {
	return schedule.FilterWeekdayOptions(schedule.WeekdayOptions(), query)
}

// ResolveSelection applies a free-text override on top of fallback, which
// defaults to today's suggestion. The bool reports whether text changed anything.
func (s *prepService) ResolveSelection(text string, fallback *entity.Selection) (*entity.Selection, bool) {
	if fallback == nil {
		suggestion := s.Suggest()
		fallback = &entity.Selection{Week: suggestion.Week, Day: suggestion.DayShort}
	}

	selection := schedule.ParseUserInput(text, fallback.Week, fallback.Day)
	if selection == nil {
		return fallback, false
	}
	return selection, true
}

func (s *prepService) Items() ([]entity.Item, error) {
	items, err := s.dm.Item().List()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *prepService) Locations() ([]string, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	return location.BuildLocationOptions(items), nil
}

func (s *prepService) FilterItems(selected []string) ([]entity.Item, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	return location.FilterByLocations(items, selected), nil
}

// SyncItems replaces the stored snapshot with the source's current item list
func (s *prepService) SyncItems(ctx context.Context) (int, error) {
	if s.src == nil {
		return 0, fmt.Errorf("no item source configured")
	}

	items, err := s.src.FetchItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch items: %w", err)
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Item().ReplaceAll(items); err != nil {
			return fmt.Errorf("failed to store items: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("items synced", zap.Int("count", len(items)))
	return len(items), nil
}
