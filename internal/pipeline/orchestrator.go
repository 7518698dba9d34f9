package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/qaboard/internal/config"
)

var (
	// ErrQueueFull is returned by Submit when no queue slot is free.
	ErrQueueFull = errors.New("job queue is full")
	// ErrStopped is returned by Submit once Stop has been called.
	ErrStopped = errors.New("pipeline is stopped")
)

// Orchestrator manages the export pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	stats *RenderStats
	log   *slog.Logger
	cfg   config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu guards stopped and the queue send against close.
	mu      sync.Mutex
	stopped bool
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, stats *RenderStats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		stats: stats,
		log:   log,
		cfg:   cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.stats, o.log, o.cfg.MaxConcurrentRender)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(cleanupInterval(o.cfg.JobTTL))
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl > 0 && ttl < 5*time.Minute {
		return ttl
	}
	return 5 * time.Minute
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	close(o.queue)
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing. Unset export options are filled
// from the service configuration.
func (o *Orchestrator) Submit(job *Job) error {
	if job.opts.EventTitle == "" {
		job.opts.EventTitle = o.cfg.EventTitle
	}
	if job.opts.Location == nil {
		job.opts.Location = o.cfg.Location()
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped {
		job.AddError(ErrStopped.Error())
		job.SetStatus(StatusFailed, "stopped")
		return ErrStopped
	}
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.AddError(ErrQueueFull.Error())
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("%w (%d)", ErrQueueFull, o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the render latency tracker shared by all workers.
func (o *Orchestrator) Stats() *RenderStats {
	return o.stats
}
