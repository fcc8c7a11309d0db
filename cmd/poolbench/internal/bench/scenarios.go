// Package bench runs the workload scenarios used to validate pool.Pool's
// throughput, ordering, growth, and concurrency properties.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ecloudclub/threadpool/pool"
)

// Result is one scenario's outcome.
type Result struct {
	Name     string
	Passed   bool
	Detail   string
	Duration time.Duration
}

type scenario struct {
	name string
	run  func() Result
}

var scenarios = []scenario{
	{"throughput", throughputScenario},
	{"fifo", fifoScenario},
	{"growth", growthScenario},
	{"concurrent", concurrentScenario},
}

// Run executes every scenario, or just the one named by only (if non-empty).
func Run(only string) ([]Result, error) {
	if only == "" {
		results := make([]Result, 0, len(scenarios))
		for _, s := range scenarios {
			results = append(results, s.run())
		}
		return results, nil
	}

	for _, s := range scenarios {
		if s.name == only {
			return []Result{s.run()}, nil
		}
	}
	return nil, fmt.Errorf("unknown scenario %q", only)
}

// throughputScenario schedules 100 thunks sleeping 10ms each onto a 4-worker
// pool and checks the wall clock stays near 100/4 * 10ms instead of 100*10ms.
func throughputScenario() Result {
	p, err := pool.New(4)
	if err != nil {
		return Result{Name: "throughput", Passed: false, Detail: err.Error()}
	}
	defer p.Close()

	var count int64
	start := time.Now()
	for i := 0; i < 100; i++ {
		p.Schedule(func() {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&count, 1)
		})
	}
	p.Wait()
	elapsed := time.Since(start)

	passed := count == 100 && elapsed < 500*time.Millisecond
	return Result{
		Name:     "throughput",
		Passed:   passed,
		Detail:   fmt.Sprintf("completed=%d elapsed=%s", count, elapsed),
		Duration: elapsed,
	}
}

// fifoScenario schedules 10 thunks onto a single-worker pool and checks they
// ran in submission order.
func fifoScenario() Result {
	p, err := pool.New(1)
	if err != nil {
		return Result{Name: "fifo", Passed: false, Detail: err.Error()}
	}
	defer p.Close()

	var mu sync.Mutex
	var order []int
	start := time.Now()
	for i := 0; i < 10; i++ {
		i := i
		p.Schedule(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	p.Wait()
	elapsed := time.Since(start)

	passed := len(order) == 10
	for i, v := range order {
		if v != i {
			passed = false
		}
	}
	return Result{Name: "fifo", Passed: passed, Detail: fmt.Sprintf("order=%v", order), Duration: elapsed}
}

// growthScenario checks that an 8-capacity pool given only 3 instant thunks
// never spawns more than 3 workers.
func growthScenario() Result {
	p, err := pool.New(8)
	if err != nil {
		return Result{Name: "growth", Passed: false, Detail: err.Error()}
	}
	defer p.Close()

	start := time.Now()
	for i := 0; i < 3; i++ {
		p.Schedule(func() {})
	}
	p.Wait()
	elapsed := time.Since(start)

	workers := p.CurrentWorkers()
	return Result{
		Name:     "growth",
		Passed:   workers <= 3,
		Detail:   fmt.Sprintf("spawned=%d capacity=%d", workers, p.Capacity()),
		Duration: elapsed,
	}
}

// concurrentScenario has 4 goroutines each schedule 250 thunks onto a shared
// pool and checks the counter lands on exactly 1000 with no deadlock.
func concurrentScenario() Result {
	p, err := pool.New(4)
	if err != nil {
		return Result{Name: "concurrent", Passed: false, Detail: err.Error()}
	}
	defer p.Close()

	var count int64
	var wg sync.WaitGroup
	start := time.Now()
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				p.Schedule(func() { atomic.AddInt64(&count, 1) })
			}
		}()
	}
	wg.Wait()
	p.Wait()
	elapsed := time.Since(start)

	return Result{
		Name:     "concurrent",
		Passed:   count == 1000,
		Detail:   fmt.Sprintf("count=%d", count),
		Duration: elapsed,
	}
}
