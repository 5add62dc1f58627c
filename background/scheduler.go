package background

import (
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
)

// TaskSender enqueues machinery tasks
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// Scheduler periodically enqueues the expiry sweep
type Scheduler struct {
	scheduler gocron.Scheduler
	sender    TaskSender
	interval  time.Duration
}

// NewScheduler returns a scheduler that sends expire_donations every interval
func NewScheduler(sender TaskSender, interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.Errorf("invalid expire interval %s", interval)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	sc := &Scheduler{
		scheduler: s,
		sender:    sender,
		interval:  interval,
	}

	if _, err := s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(sc.enqueueExpiry),
		gocron.WithName(TaskExpireDonations),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = s.Shutdown()
		return nil, errors.Wrap(err, "schedule expiry sweep")
	}

	return sc, nil
}

func (sc *Scheduler) enqueueExpiry() {
	if _, err := sc.sender.SendTask(&tasks.Signature{Name: TaskExpireDonations}); err != nil {
		log.WithError(err).Error("enqueue expiry sweep")
		sentry.CaptureException(err)
	}
}

func (sc *Scheduler) Start() {
	log.WithField("interval", sc.interval).Info("expiry sweep scheduled")
	sc.scheduler.Start()
}

func (sc *Scheduler) Shutdown() error {
	return sc.scheduler.Shutdown()
}
