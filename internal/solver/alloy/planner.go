package alloy

// BatchPlan is the precomputed back-off schedule of candidate batch
// volumes: Fibonacci ingot counts up to the configured maximum, reversed
// to descending order. Backing off along the Fibonacci steps bounds the
// number of distinct sizes tried to O(log(max)) instead of decrementing
// one ingot at a time.
type BatchPlan struct {
	volumes []int // mB, descending
}

// NewBatchPlan builds the schedule for the given maximum batch size in
// ingots and the unit size in mB per ingot
func NewBatchPlan(maxIngots, unitSizeMB int) *BatchPlan {
	fib := []int{1, 1}
	for {
		next := fib[len(fib)-1] + fib[len(fib)-2]
		if next > maxIngots {
			break
		}
		fib = append(fib, next)
	}

	volumes := make([]int, 0, len(fib))
	for i := len(fib) - 1; i >= 0; i-- {
		if fib[i] > maxIngots {
			continue
		}
		volumes = append(volumes, fib[i]*unitSizeMB)
	}

	return &BatchPlan{volumes: volumes}
}

// MaxVolume returns the largest batch volume in the schedule
func (p *BatchPlan) MaxVolume() int {
	if len(p.volumes) == 0 {
		return 0
	}
	return p.volumes[0]
}

// Next scans the descending schedule and returns the first volume that
// does not exceed remaining and is strictly smaller than previous. The
// second return is false when the schedule is exhausted. Because previous
// is always the last size attempted, attempted sizes strictly decrease
// across one solve.
func (p *BatchPlan) Next(remaining, previous int) (int, bool) {
	for _, v := range p.volumes {
		if v > remaining {
			continue
		}
		if v < previous {
			return v, true
		}
	}
	return 0, false
}
