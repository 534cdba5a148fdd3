package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgallion1/pdfoutline/internal/outline"
)

// Orchestrator runs extraction jobs submitted through the HTTP API on a
// fixed pool of workers.
type Orchestrator struct {
	jobs      *JobStore
	queue     chan *Job
	extractor *outline.Extractor
	stats     *ExtractStats
	log       *slog.Logger
	workers   int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrchestrator(workers, queueSize int, jobTTL time.Duration, ex *outline.Extractor, stats *ExtractStats, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:      NewJobStore(jobTTL),
		queue:     make(chan *Job, queueSize),
		extractor: ex,
		stats:     stats,
		log:       log,
		workers:   workers,
	}
}

// Start launches worker goroutines and the job store cleanup loop.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.workers; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(job)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
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

// Stop gracefully shuts down the pool.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("queue full")
		return fmt.Errorf("job queue is full (%d)", cap(o.queue))
	}
}

// GetJob returns a job by ID, or nil.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns the current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// process extracts one job. The source adapters open files by path, so
// the uploaded bytes land in a temp file carrying the original extension.
func (o *Orchestrator) process(job *Job) {
	log := o.log.With("job_id", job.ID, "file", job.Filename)
	job.SetStatus(StatusExtracting)

	tmp, err := os.CreateTemp("", "pdfoutline-*"+filepath.Ext(job.Filename))
	if err != nil {
		log.Error("create temp file", "error", err)
		job.Fail(fmt.Sprintf("create temp file: %s", err))
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(job.FileData()); err != nil {
		tmp.Close()
		log.Error("write temp file", "error", err)
		job.Fail(fmt.Sprintf("write temp file: %s", err))
		return
	}
	tmp.Close()

	start := time.Now()
	res := o.extractor.ExtractFile(tmpPath)
	if o.stats != nil {
		o.stats.Record(time.Since(start))
	}

	job.SetResult(res)
	log.Info("job complete", "headings", len(res.Outline), "title", res.Title)
}
