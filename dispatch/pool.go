// seehuhn.de/go/fumengif - render Tetris board sequences as animated GIFs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package dispatch runs renders on background goroutines.
//
// Rendering is CPU bound and may take much longer than an interactive
// caller wants to block.  A [Pool] accepts render jobs, runs them on a
// bounded number of goroutines, and delivers each result on a channel.
package dispatch

import (
	"context"
	"time"

	log "github.com/mgutz/logxi/v1"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"seehuhn.de/go/fumengif"
	"seehuhn.de/go/fumengif/board"
)

// Job is a single render request.
type Job struct {
	// ID identifies the job in log messages.
	ID string

	Pages   []board.Page
	Options string
}

// Result is the outcome of a job.  Exactly one of Data and Err is set.
type Result struct {
	ID   string
	Data []byte
	Err  error
}

// Pool runs render jobs with bounded concurrency.
// A Pool is safe for concurrent use.
type Pool struct {
	cfg    fumengif.Config
	sem    *semaphore.Weighted
	logger log.Logger
}

// New creates a pool which runs at most workers renders at the same time.
// If logger is nil, a logger named "dispatch" is used.
func New(cfg fumengif.Config, workers int, logger log.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.New("dispatch")
	}
	return &Pool{
		cfg:    cfg,
		sem:    semaphore.NewWeighted(int64(workers)),
		logger: logger,
	}
}

// Submit starts rendering job in the background and returns immediately.
// The returned channel receives exactly one result and is then closed.
//
// If ctx is cancelled before a worker becomes available, the job is
// dropped and the result carries the context error.  Once started, a
// render always runs to completion.
func (p *Pool) Submit(ctx context.Context, job Job) <-chan Result {
	resC := make(chan Result, 1)
	go func() {
		defer close(resC)
		resC <- p.run(ctx, job)
	}()
	return resC
}

// RenderAll renders a batch of jobs and waits for all of them.
// Results are returned in the order of jobs.  The error is that of the
// first job that failed; the results of the other jobs are still filled
// in.
func (p *Pool) RenderAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	g := errgroup.Group{}
	for i := range jobs {
		g.Go(func() error {
			results[i] = p.run(ctx, jobs[i])
			return results[i].Err
		})
	}
	err := g.Wait()
	return results, err
}

func (p *Pool) run(ctx context.Context, job Job) Result {
	res := Result{ID: job.ID}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		p.logger.Warn("render dropped", "job", job.ID, "err", err)
		res.Err = err
		return res
	}
	defer p.sem.Release(1)

	start := time.Now()
	if p.logger.IsDebug() {
		p.logger.Debug("render started", "job", job.ID, "pages", len(job.Pages))
	}
	res.Data, res.Err = p.cfg.Render(job.Pages, job.Options)
	if res.Err != nil {
		p.logger.Error("render failed", "job", job.ID, "err", res.Err)
		return res
	}
	if p.logger.IsDebug() {
		p.logger.Debug("render finished", "job", job.ID,
			"bytes", len(res.Data), "elapsed", time.Since(start))
	}
	return res
}
