package contract

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/service_mock.go -package=mocks . PrepService

import (
	"context"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

type PrepService interface {
	Suggest() entity.Suggestion
	WeekdayOptions() []entity.WeekdayOption
	FilterWeekdayOptions(query string) []entity.WeekdayOption
	ResolveSelection(text string, fallback *entity.Selection) (*entity.Selection, bool)
	Items() ([]entity.Item, error)
	Locations() ([]string, error)
	FilterItems(selected []string) ([]entity.Item, error)
	SyncItems(ctx context.Context) (int, error)
}
