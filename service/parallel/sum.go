package parallel

import (
	"context"
	"fmt"

	"code.hybscloud.com/lfq"
	"golang.org/x/sync/errgroup"
)

const (
	// Modulus bounds reported sums
	Modulus = 1_000_000
	// MaxWorkers caps the number of concurrent workers of a single sum
	MaxWorkers = 1024
)

// Range represents an inclusive [From, To] interval; From > To means empty
type Range struct {
	From int64
	To   int64
}

// Len returns the number of elements in the range
func (r Range) Len() int64 {
	if r.From > r.To {
		return 0
	}
	return r.To - r.From + 1
}

// Sum returns From+...+To reduced by Modulus; From must not be negative.
// The arithmetic series (From+To)*n/2 is evaluated in uint64: one of the two
// factors is even, and both fit since From+To <= 2*math.MaxInt64.
func (r Range) Sum() int64 {
	if r.From > r.To {
		return 0
	}
	pairs := uint64(r.From) + uint64(r.To)
	count := uint64(r.To-r.From) + 1
	if pairs%2 == 0 {
		pairs /= 2
	} else {
		count /= 2
	}
	return int64((pairs % Modulus) * (count % Modulus) % Modulus)
}

// Partition splits [1, x] into parts contiguous chunks of x/parts elements;
// the last chunk absorbs the remainder.
func Partition(x int64, parts int) []Range {
	if parts < 1 {
		parts = 1
	}
	chunk := x / int64(parts)
	ret := make([]Range, parts)
	from := int64(1)
	for i := 0; i < parts; i++ {
		to := from + chunk - 1
		if i == parts-1 {
			to = x
		}
		ret[i] = Range{From: from, To: to}
		from = to + 1
	}
	return ret
}

// Sum returns (1+...+x) mod Modulus computed by workers concurrent workers.
// A single worker computes the sum inline.
func Sum(ctx context.Context, x int64, workers int) (int64, error) {
	if x < 0 {
		return 0, fmt.Errorf("invalid sum bound: %d", x)
	}
	if workers > MaxWorkers {
		return 0, fmt.Errorf("invalid worker count: %d exceeds %d", workers, MaxWorkers)
	}
	workers = int(min(int64(workers), x))
	if workers <= 1 {
		return Range{From: 1, To: x}.Sum(), nil
	}

	ranges := Partition(x, workers)
	partials := lfq.NewMPSC[int64](max(workers, 2))
	group, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial := r.Sum()
			if err := partials.Enqueue(&partial); err != nil {
				return fmt.Errorf("failed to publish partial sum of %d..%d: %w", r.From, r.To, err)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	partials.Drain()

	var total int64
	for range ranges {
		partial, err := partials.Dequeue()
		if err != nil {
			return 0, fmt.Errorf("missing partial sum: %w", err)
		}
		total = (total + partial) % Modulus
	}
	return total, nil
}
