package contract

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/repo_mock.go -package=mocks . DataManager,ItemRepo

import (
	"context"

	"github.com/diegoclair/prep-rotation/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Item() ItemRepo
}

// ItemRepo defines the contract for the synced item snapshot
type ItemRepo interface {
	ReplaceAll(items []entity.Item) error
	List() ([]entity.Item, error)
	Count() (int, error)
}
