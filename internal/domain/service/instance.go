package service

import (
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"go.uber.org/zap"
)

// Options carries the rotation settings shared by all services
type Options struct {
	Rotation         schedule.Rotation
	Location         *time.Location
	Now              func() time.Time
	SlackChannelID   string
	NotificationTime string
}

type Instance struct {
	Prep     *prepService
	Notifier *notifier
}

func NewInstance(dm contract.DataManager, src contract.ItemSource, slackClient contract.SlackClient, opts Options, log *zap.Logger) *Instance {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	prep := newPrep(dm, src, opts, log)

	return &Instance{
		Prep:     prep,
		Notifier: newNotifier(prep, slackClient, opts, log),
	}
}
