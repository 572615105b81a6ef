package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Workers are started in the order
// they are passed in.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
