// Package parallel runs per-file jobs on a fixed number of workers. Jobs
// never share images, so pixels are always processed by a single
// goroutine.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type (
	// Job processes one unit of work and reports whether it failed.
	Job        func() error
	WorkerFunc func(Job)
	WaitFunc   func() Stats
)

// Stats counts finished jobs.
type Stats struct {
	Processed uint64
	Failed    uint64
}

func (s Stats) Total() uint64 { return s.Processed + s.Failed }

type Pool struct {
	wg        sync.WaitGroup
	processed atomic.Uint64
	failed    atomic.Uint64

	// Do schedules a job. It must not be called after Wait.
	Do WorkerFunc
	// Wait stops accepting jobs, waits for the scheduled ones and
	// returns their tally.
	Wait WaitFunc
}

// Start returns a pool with numWorkers goroutines, or GOMAXPROCS when
// numWorkers < 1. A single worker pool runs jobs inline.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	pool.Do = pool.run
	pool.Wait = pool.stats

	if numWorkers > 1 {
		jobs := make(chan Job, numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for job := range jobs {
					pool.run(job)
				}
			})
		}

		pool.Do = func(job Job) {
			jobs <- job
		}

		closeJobs := sync.OnceFunc(func() { close(jobs) })
		pool.Wait = func() Stats {
			closeJobs()
			pool.wg.Wait()
			return pool.stats()
		}
	}

	return pool
}

func (p *Pool) run(job Job) {
	if err := job(); err != nil {
		p.failed.Add(1)
		return
	}
	p.processed.Add(1)
}

func (p *Pool) stats() Stats {
	return Stats{Processed: p.processed.Load(), Failed: p.failed.Load()}
}
