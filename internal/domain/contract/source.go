package contract

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/source_mock.go -package=mocks . ItemSource

import (
	"context"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

// ItemSource loads the item list from wherever the page's JSON lives
type ItemSource interface {
	FetchItems(ctx context.Context) ([]entity.Item, error)
}
