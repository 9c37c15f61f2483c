package background

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"stockwatch/internal/jobs"
)

// JobScheduler manages the background jobs of the service.
type JobScheduler struct {
	scheduler gocron.Scheduler
	sweep     *jobs.LowStockSweep
	interval  time.Duration
	jobsByName map[string]gocron.Job
	mu        sync.RWMutex
}

func NewJobScheduler(sweep *jobs.LowStockSweep, interval time.Duration) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		sweep:      sweep,
		interval:   interval,
		jobsByName: make(map[string]gocron.Job),
	}
	js.registerJobs()
	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.interval),
		gocron.NewTask(js.runSweep),
		gocron.WithName("low-stock-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create low stock sweep job: %v", err)
		return
	}

	js.mu.Lock()
	js.jobsByName["low-stock-sweep"] = sweepJob
	js.mu.Unlock()
}

func (js *JobScheduler) runSweep() {
	if err := js.sweep.Run(context.Background()); err != nil {
		log.Printf("Scheduled low stock sweep failed: %v", err)
	}
}
