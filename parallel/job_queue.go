package parallel

import (
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	group := &JobQueue{
		jobsChannel: make(chan func(), queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

type JobQueue struct {
	jobsChannel chan func()
	waitGroup   *sync.WaitGroup
	lock        sync.RWMutex
	closed      bool
}

func (queue *JobQueue) Add(function func()) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.lock.RLock()
	defer queue.lock.RUnlock()
	if queue.closed {
		return fmt.Errorf("job queue is closed")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	return nil
}

// Close stops the workers once queued jobs drain, it is safe to call more than once
func (queue *JobQueue) Close() {
	queue.lock.Lock()
	defer queue.lock.Unlock()
	if queue.closed {
		return
	}
	queue.closed = true
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		job()
		queue.waitGroup.Done()
	}
}
