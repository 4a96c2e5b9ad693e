package economy

import (
	"sync/atomic"

	"github.com/lixenwraith/constellation/parameter"
)

// RequestQueue is a lock-free MPSC ring buffer of unlock requests
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest requests overwritten when full
type RequestQueue struct {
	ids       [parameter.RequestQueueSize]string
	published [parameter.RequestQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
}

func NewRequestQueue() *RequestQueue {
	return &RequestQueue{}
}

// Push enqueues a node id. O(1) amortized
func (q *RequestQueue) Push(id string) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.RequestQueueMask

			q.ids[idx] = id
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread requests
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.RequestQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.RequestQueueSize)
			}
			return
		}
	}
}

// Len returns the number of pending requests
func (q *RequestQueue) Len() int {
	n := q.tail.Load() - q.head.Load()
	return int(min(n, parameter.RequestQueueSize))
}

// Consume returns pending requests in FIFO order, duplicates collapsed to the first occurrence
func (q *RequestQueue) Consume() []string {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		available := currentTail - currentHead
		if available > parameter.RequestQueueSize {
			available = parameter.RequestQueueSize
			currentHead = currentTail - parameter.RequestQueueSize
		}

		result := make([]string, 0, available)
		taken := uint64(0)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.RequestQueueMask
			if !q.published[idx].Load() {
				break // Writer incomplete
			}
			result = appendUnique(result, q.ids[idx])
			q.published[idx].Store(false)
			taken++
		}

		if q.head.CompareAndSwap(currentHead, currentHead+taken) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

func appendUnique(ids []string, id string) []string {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}
