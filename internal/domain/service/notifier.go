package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// notifier posts the day's rotation slot to a Slack channel every workday
type notifier struct {
	prep             *prepService
	slackClient      contract.SlackClient
	channelID        string
	notificationTime string
	log              *zap.Logger

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func newNotifier(prep *prepService, slackClient contract.SlackClient, opts Options, log *zap.Logger) *notifier {
	notificationTime := opts.NotificationTime
	if notificationTime == "" {
		notificationTime = domain.DefaultNotificationTime
	}

	return &notifier{
		prep:             prep,
		slackClient:      slackClient,
		channelID:        opts.SlackChannelID,
		notificationTime: notificationTime,
		log:              log,
		stopChan:         make(chan struct{}),
	}
}

// Enabled reports whether there is a channel and client to post to
func (n *notifier) Enabled() bool {
	return n.channelID != "" && n.slackClient != nil
}

// Start launches the reminder loop. A malformed notification time is returned
// here rather than discovered later inside the loop.
func (n *notifier) Start() error {
	if !n.Enabled() {
		return nil
	}
	if _, _, err := parseClock(n.notificationTime); err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.running {
		return nil
	}
	n.running = true
	n.stopChan = make(chan struct{})

	n.log.Info("notifier starting", zap.String("channel", n.channelID), zap.String("time", n.notificationTime))
	go n.mainLoop(n.stopChan)
	return nil
}

func (n *notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.running {
		return
	}
	n.log.Info("notifier stopping")
	close(n.stopChan)
	n.running = false
}

func (n *notifier) isRunning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.running
}

func (n *notifier) mainLoop(stop <-chan struct{}) {
	for {
		nextTime, err := n.calculateNext(n.prep.now())
		if err != nil {
			n.log.Error("cannot schedule notifications", zap.Error(err))
			return
		}

		n.log.Info("next notification scheduled", zap.Time("at", nextTime))

		timer := time.NewTimer(time.Until(nextTime))
		select {
		case <-timer.C:
			if err := n.sendNotification(); err != nil {
				n.log.Error("failed to send notification", zap.Error(err))
			}
		case <-stop:
			timer.Stop()
			return
		}
	}
}

// calculateNext returns the next Monday-Friday occurrence of the notification
// time strictly after now, in now's location.
func (n *notifier) calculateNext(now time.Time) (time.Time, error) {
	hour, minute, err := parseClock(n.notificationTime)
	if err != nil {
		return time.Time{}, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if isWorkday(today) && today.After(now) {
		return today, nil
	}

	for i := 1; i <= 7; i++ {
		next := time.Date(now.Year(), now.Month(), now.Day()+i, hour, minute, 0, 0, now.Location())
		if isWorkday(next) {
			return next, nil
		}
	}

	// unreachable: any 7-day window has a workday
	return time.Time{}, fmt.Errorf("no workday found after %s", now)
}

func (n *notifier) sendNotification() error {
	suggestion := n.prep.Suggest()
	label := schedule.OptionLabel(suggestion.Week, suggestion.DayLabel)

	message := fmt.Sprintf("📅 *Prep rotation*\n\nToday is *%s*.\n\nUse `/prep <week> <day>` to look up another slot.", label)

	_, _, err := n.slackClient.PostMessage(
		n.channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	n.log.Info("notification sent", zap.String("channel", n.channelID), zap.String("slot", label))
	return nil
}

func isWorkday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// parseClock reads an HH:MM time of day
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid notification time %q, expected HH:MM", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in notification time %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in notification time %q", value)
	}

	return hour, minute, nil
}
