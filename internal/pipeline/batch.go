package pipeline

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/finsim/internal/model"
)

// Case is one labeled input tuple in a batch.
type Case struct {
	Label  string
	Inputs model.Inputs
}

// CaseResult pairs a case with its evaluation.
type CaseResult struct {
	Label string
	Result
}

// ProgressFunc is called during batch evaluation to report progress.
// current is the number of cases evaluated so far, total is the total count.
type ProgressFunc func(current, total int)

// EvaluateAll evaluates every case against base using a bounded worker pool.
// Results are returned in case order.
func EvaluateAll(base model.Baseline, cases []Case, progressFn ProgressFunc) []CaseResult {
	if len(cases) == 0 {
		return nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(cases) {
		numWorkers = len(cases)
	}

	work := make(chan int, len(cases))
	results := make([]CaseResult, len(cases))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range cases {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				c := cases[idx]
				results[idx] = CaseResult{
					Label:  c.Label,
					Result: Evaluate(base, c.Inputs),
				}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(cases))
				}
			}
		}()
	}

	wg.Wait()
	return results
}
