// Pitwall - Motorsport Analytics and Race Outcome Prediction
// Copyright 2026 ApexGrid
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/apexgrid/pitwall

package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apexgrid/pitwall/internal/inference"
	"github.com/apexgrid/pitwall/internal/logging"
	"github.com/apexgrid/pitwall/internal/models"
)

// jobQueueDepth bounds pending submissions; past it, new jobs are rejected
// rather than queued without limit.
const jobQueueDepth = 64

// submission is one queued prediction request.
type submission struct {
	id       string
	modelID  string
	features map[string]any
}

// JobQueue runs predictions on a fixed worker pool and tracks each job from
// submission to result. It implements suture.Service; workers live for the
// supervisor's lifetime.
type JobQueue struct {
	infer   *inference.Service
	workers int

	mu    sync.RWMutex
	jobs  map[string]*models.PredictionJob
	queue chan submission
}

// NewJobQueue creates a queue with the given worker pool size.
func NewJobQueue(infer *inference.Service, workers int) *JobQueue {
	if workers < 1 {
		workers = 1
	}
	return &JobQueue{
		infer:   infer,
		workers: workers,
		jobs:    make(map[string]*models.PredictionJob),
		queue:   make(chan submission, jobQueueDepth),
	}
}

// Serve runs the worker pool until the context is canceled.
func (q *JobQueue) Serve(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < q.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.worker(ctx)
		}()
	}
	<-ctx.Done()
	wg.Wait()
	return ctx.Err()
}

func (q *JobQueue) String() string { return "prediction-job-queue" }

// Submit registers a job and enqueues it. When the queue is full the job is
// recorded as rejected so the client still gets a resolvable job ID.
func (q *JobQueue) Submit(modelID string, features map[string]any) *models.PredictionJob {
	job := &models.PredictionJob{
		ID:          uuid.NewString(),
		ModelID:     modelID,
		Status:      models.PredictionPending,
		SubmittedAt: time.Now(),
	}

	q.mu.Lock()
	q.jobs[job.ID] = job
	q.mu.Unlock()

	select {
	case q.queue <- submission{id: job.ID, modelID: modelID, features: features}:
	default:
		q.finish(job.ID, models.PredictionRejected, nil, "prediction queue is full")
	}
	return q.snapshot(job.ID)
}

// Get returns a copy of the job, or nil when the ID is unknown.
func (q *JobQueue) Get(id string) *models.PredictionJob {
	return q.snapshot(id)
}

func (q *JobQueue) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-q.queue:
			q.setStatus(s.id, models.PredictionRunning)
			result, err := q.infer.Predict(ctx, s.modelID, s.features)
			switch {
			case err == nil:
				q.finish(s.id, models.PredictionDone, &result, "")
			case errors.Is(err, inference.ErrFeatureValidation):
				q.finish(s.id, models.PredictionRejected, nil, err.Error())
			default:
				logging.Error().Err(err).
					Str("job_id", s.id).
					Str("model_id", s.modelID).
					Msg("Prediction job failed")
				q.finish(s.id, models.PredictionFailed, nil, err.Error())
			}
		}
	}
}

func (q *JobQueue) setStatus(id string, status models.PredictionJobStatus) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if job, ok := q.jobs[id]; ok {
		job.Status = status
	}
}

func (q *JobQueue) finish(id string, status models.PredictionJobStatus, result *float64, errMsg string) {
	now := time.Now()
	q.mu.Lock()
	defer q.mu.Unlock()
	if job, ok := q.jobs[id]; ok {
		job.Status = status
		job.Result = result
		job.Error = errMsg
		job.FinishedAt = &now
	}
}

func (q *JobQueue) snapshot(id string) *models.PredictionJob {
	q.mu.RLock()
	defer q.mu.RUnlock()
	job, ok := q.jobs[id]
	if !ok {
		return nil
	}
	copied := *job
	return &copied
}
