package main

import (
	"context"
	"time"

	"github.com/pavanmanishd/nativelist"
)

// workload fills a container of n elements and runs one operation over it.
// The returned sum keeps the work observable.
type workload struct {
	name string
	run  func(a nativelist.Allocator, n int) int64
	size func(n int) int // elements touched per round; n when nil
}

// ops returns the number of elements one round of w touches.
func (w workload) ops(n int) int {
	if w.size == nil {
		return n
	}
	return w.size(n)
}

// maxRemoveFront caps remove-front, which is quadratic in its size.
const maxRemoveFront = 4096

func removeFrontSize(n int) int { return min(n, maxRemoveFront) }

// subject is one container implementation measured by every workload.
type subject struct {
	name      string
	workloads []workload
}

// resetter is implemented by allocators that reclaim everything at once.
type resetter interface {
	Reset()
}

type result struct {
	subject  string
	workload string
	nsPerOp  float64
	checksum int64
}

func subjects() []subject {
	return []subject{
		{name: "List[int64]", workloads: listWorkloads()},
		{name: "ErasedList", workloads: erasedWorkloads()},
		{name: "[]int64", workloads: sliceWorkloads()},
	}
}

// measure runs every workload of every subject rounds times. It stops
// between workloads once ctx is done.
func measure(ctx context.Context, a nativelist.Allocator, n, rounds int) ([]result, error) {
	var results []result
	for _, s := range subjects() {
		for _, w := range s.workloads {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			var sum int64
			start := time.Now()
			for r := 0; r < rounds; r++ {
				sum += w.run(a, n)
				if rs, ok := a.(resetter); ok {
					rs.Reset()
				}
			}
			elapsed := time.Since(start)
			results = append(results, result{
				subject:  s.name,
				workload: w.name,
				nsPerOp:  float64(elapsed.Nanoseconds()) / float64(rounds*w.ops(n)),
				checksum: sum,
			})
		}
	}
	return results, nil
}

func fillList(a nativelist.Allocator, n int) *nativelist.List[int64] {
	l := nativelist.NewList[int64](0, nativelist.WithAllocator(a))
	for i := 0; i < n; i++ {
		l.Add(int64(i))
	}
	return l
}

func listWorkloads() []workload {
	return []workload{
		{name: "append", run: func(a nativelist.Allocator, n int) int64 {
			l := fillList(a, n)
			defer l.Dispose()
			return int64(l.Count())
		}},
		{name: "index", run: func(a nativelist.Allocator, n int) int64 {
			l := fillList(a, n)
			defer l.Dispose()
			var sum int64
			for i := 0; i < n; i++ {
				sum += l.Get(i)
			}
			return sum
		}},
		{name: "search", run: func(a nativelist.Allocator, n int) int64 {
			l := fillList(a, n)
			defer l.Dispose()
			var sum int64
			for i := 0; i < 16; i++ {
				sum += int64(l.IndexOf(int64(n - 1 - i)))
			}
			return sum
		}},
		{name: "remove-front", run: func(a nativelist.Allocator, n int) int64 {
			l := fillList(a, removeFrontSize(n))
			defer l.Dispose()
			var removed int64
			for l.TryRemoveAt(0) {
				removed++
			}
			return removed
		}, size: removeFrontSize},
		{name: "enumerate", run: func(a nativelist.Allocator, n int) int64 {
			l := fillList(a, n)
			defer l.Dispose()
			var sum int64
			for v := range l.Values() {
				sum += v
			}
			return sum
		}},
	}
}

func fillErased(a nativelist.Allocator, n int) *nativelist.ErasedList {
	l := nativelist.NewErasedList(0, nativelist.TypeFor[int64](), nativelist.WithAllocator(a))
	for i := 0; i < n; i++ {
		nativelist.TryAdd(l, int64(i))
	}
	return l
}

func erasedWorkloads() []workload {
	return []workload{
		{name: "append", run: func(a nativelist.Allocator, n int) int64 {
			l := fillErased(a, n)
			defer l.Dispose()
			return int64(l.Count())
		}},
		{name: "index", run: func(a nativelist.Allocator, n int) int64 {
			l := fillErased(a, n)
			defer l.Dispose()
			var sum int64
			for i := 0; i < n; i++ {
				v, _ := nativelist.TryGet[int64](l, i)
				sum += v
			}
			return sum
		}},
		{name: "search", run: func(a nativelist.Allocator, n int) int64 {
			l := fillErased(a, n)
			defer l.Dispose()
			var sum int64
			for i := 0; i < 16; i++ {
				sum += int64(nativelist.IndexOf(l, int64(n-1-i)))
			}
			return sum
		}},
		{name: "remove-front", run: func(a nativelist.Allocator, n int) int64 {
			l := fillErased(a, removeFrontSize(n))
			defer l.Dispose()
			var removed int64
			for l.TryRemoveAt(0) {
				removed++
			}
			return removed
		}, size: removeFrontSize},
		{name: "enumerate", run: func(a nativelist.Allocator, n int) int64 {
			l := fillErased(a, n)
			defer l.Dispose()
			var sum int64
			c := nativelist.ErasedCursor[int64](l)
			for c.Next() {
				sum += c.Current()
			}
			return sum
		}},
	}
}

func fillSlice(n int) []int64 {
	var s []int64
	for i := 0; i < n; i++ {
		s = append(s, int64(i))
	}
	return s
}

// sliceWorkloads ignore the allocator; they are the baseline.
func sliceWorkloads() []workload {
	return []workload{
		{name: "append", run: func(_ nativelist.Allocator, n int) int64 {
			return int64(len(fillSlice(n)))
		}},
		{name: "index", run: func(_ nativelist.Allocator, n int) int64 {
			s := fillSlice(n)
			var sum int64
			for i := 0; i < n; i++ {
				sum += s[i]
			}
			return sum
		}},
		{name: "search", run: func(_ nativelist.Allocator, n int) int64 {
			s := fillSlice(n)
			var sum int64
			for i := 0; i < 16; i++ {
				target := int64(n - 1 - i)
				idx := -1
				for j, v := range s {
					if v == target {
						idx = j
						break
					}
				}
				sum += int64(idx)
			}
			return sum
		}},
		{name: "remove-front", run: func(_ nativelist.Allocator, n int) int64 {
			s := fillSlice(removeFrontSize(n))
			var removed int64
			for len(s) > 0 {
				s = append(s[:0], s[1:]...)
				removed++
			}
			return removed
		}, size: removeFrontSize},
		{name: "enumerate", run: func(_ nativelist.Allocator, n int) int64 {
			var sum int64
			for _, v := range fillSlice(n) {
				sum += v
			}
			return sum
		}},
	}
}
