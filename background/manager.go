package background

import (
	"context"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	TaskExpireDonations = "expire_donations"

	workerConcurrency = 5
)

var log = logrus.WithField("prefix", "background")

// DonationExpirer stores the expired status on overdue donations
type DonationExpirer interface {
	ExpireDonations(ctx context.Context, now time.Time) (int64, error)
}

// BackgroundManager is a struct for zerowaste background manager
type BackgroundManager struct {
	store DonationExpirer

	taskServer *machinery.Server

	worker *machinery.Worker

	now func() time.Time
}

func New(s DonationExpirer, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      s,
		taskServer: taskServer,
		now:        time.Now,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task this manager serves
func (m *BackgroundManager) RegisterTasks() error {
	return m.RegisterTask(TaskExpireDonations, m.ExpireDonations)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("zerowaste-worker", workerConcurrency)
	return m.worker.Launch()
}

// Quit stops the worker started by Run
func (m *BackgroundManager) Quit() {
	if m.worker != nil {
		m.worker.Quit()
	}
}
