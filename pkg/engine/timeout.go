package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/voidcut/pkg/model"
)

// EvalTimeout bounds a single scene evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	doc    *model.Document
	errors []EvalError
	err    error
}

// waitWithTimeout waits for ch or EvalTimeout, whichever comes first. A
// result whose generation is no longer current is discarded; an evaluation
// that timed out may still finish in the background and is dropped the same
// way.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*model.Document, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.doc, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
