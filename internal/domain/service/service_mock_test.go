package service

import (
	"testing"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"github.com/diegoclair/prep-rotation/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockItemRepo    *mocks.MockItemRepo
	mockItemSource  *mocks.MockItemSource
	mockSlackClient *mocks.MockSlackClient
}

// fixedNow is Thursday 2025-12-04 10:00 UTC, a week 2 day
var fixedNow = time.Date(2025, 12, 4, 10, 0, 0, 0, time.UTC)

func testOptions(now time.Time) Options {
	return Options{
		Rotation:         schedule.DefaultRotation(),
		Location:         time.UTC,
		Now:              func() time.Time { return now },
		SlackChannelID:   "C123456789",
		NotificationTime: "09:30",
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	itemRepo := mocks.NewMockItemRepo(ctrl)
	dm.EXPECT().Item().Return(itemRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockItemRepo:    itemRepo,
		mockItemSource:  mocks.NewMockItemSource(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockItemSource, m.mockSlackClient, testOptions(fixedNow), zap.NewNop())
	require.NotNil(t, instance.Prep)
	require.NotNil(t, instance.Notifier)

	return
}

func newTestPrep(m allMocks, now time.Time) *prepService {
	return newPrep(m.mockDataManager, m.mockItemSource, testOptions(now), zap.NewNop())
}
