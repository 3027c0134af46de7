package codec

import (
	"context"
	"runtime"
	"sync"

	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/panjf2000/ants/v2"
)

// Op selects what Batch does with each input.
type Op int

const (
	OpEncode Op = iota
	OpDecode
)

func (op Op) String() string {
	if op == OpDecode {
		return "decode"
	}
	return "encode"
}

// Result is the outcome of one batch job. For OpEncode Output holds the
// encoded string.
type Result struct {
	Output []byte
	Err    error
}

func (c *Codec) run(op Op, input []byte) Result {
	if op == OpDecode {
		output, err := c.Decode(string(input))
		return Result{Output: output, Err: err}
	}
	return Result{Output: []byte(c.Encode(input))}
}

// Batch runs op over every input on a pool of workers goroutines and returns
// the results in input order. A failed job doesn't stop the others, its
// error is kept in its Result. Batch only fails as a whole when ctx is done
// or the pool can't be created. workers <= 0 means one per CPU.
func Batch(ctx context.Context, c *Codec, op Op, inputs [][]byte, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]Result, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		i := i
		wg.Add(1)
		c.metrics.batchJobs.Inc(1)
		err := pool.Submit(func() {
			defer wg.Done()
			c.metrics.batchRunning.Update(int64(pool.Running()))
			if ctx.Err() != nil {
				results[i].Err = ctx.Err()
				return
			}
			results[i] = c.run(op, inputs[i])
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Event(batchEvent(op), "Batch finished", "codec", c.name, "jobs", len(inputs), "failed", failed, "workers", workers)
	return results, nil
}

func batchEvent(op Op) string {
	if op == OpDecode {
		return log.DecodeEvent
	}
	return log.EncodeEvent
}
