package reduce

import "sync"

// Pool is a bounded worker pool. Submitted functions become eligible to
// run in submission order; at most numWorkers run concurrently.
type Pool struct {
	numWorkers int
	tasks      chan func()
	once       sync.Once
	wg         sync.WaitGroup
}

func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan func(), numWorkers),
	}
}

func (p *Pool) Start() {
	p.once.Do(func() {
		for range p.numWorkers {
			p.wg.Go(func() {
				for task := range p.tasks {
					if task != nil {
						task()
					}
				}
			})
		}
	})
}

func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops accepting submissions and blocks until every submitted
// function has returned.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
