// decodequeue.go: Lock-free MPSC ring buffer feeding epeedump's decode loop
//
// Producers queue raw bytes (in cmd/epeedump, the -stream frame reader);
// a single consumer drains them in order and decodes each as an epee
// record. The -stream path selects
// BlockOnFull (a converter must not silently drop a frame, so a slow
// consumer backpressures the stdin reader instead); DropOnFull remains
// the ring's own default for callers that prefer losing work to
// stalling.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package decodequeue

import (
	"fmt"
	"runtime"
	"time"
)

// DecodeFunc processes one queued item in place.
type DecodeFunc[T any] func(*T)

// BackpressurePolicy controls what happens when the ring is full.
type BackpressurePolicy int

const (
	// DropOnFull drops new items when the buffer is full (default).
	DropOnFull BackpressurePolicy = iota

	// BlockOnFull blocks the caller until buffer space is available.
	BlockOnFull
)

func (bp BackpressurePolicy) String() string {
	switch bp {
	case DropOnFull:
		return "DropOnFull"
	case BlockOnFull:
		return "BlockOnFull"
	default:
		return "Unknown"
	}
}

// Ring is a lock-free MPSC ring buffer: many producers queue decode
// tasks, a single consumer loop drains and decodes them in order.
type Ring[T any] struct {
	buffer   []T
	capacity int64
	mask     int64

	writerCursor AtomicPaddedInt64
	readerCursor AtomicPaddedInt64

	availableBuffer []AtomicPaddedInt64

	decode             DecodeFunc[T]
	batchSize          int64
	backpressurePolicy BackpressurePolicy
	idleStrategy       IdleStrategy

	closed AtomicPaddedInt64

	processed AtomicPaddedInt64
	dropped   AtomicPaddedInt64

	_ [64]byte
}

// Builder provides a fluent interface for constructing a Ring.
type Builder[T any] struct {
	capacity           int64
	decode             DecodeFunc[T]
	batchSize          int64
	backpressurePolicy BackpressurePolicy
	idleStrategy       IdleStrategy
}

// NewBuilder starts a Ring builder with the given capacity, which must
// be a power of two. The batch size defaults to 64, or to the capacity
// when that is smaller.
func NewBuilder[T any](capacity int64) *Builder[T] {
	batchSize := int64(64)
	if capacity > 0 && capacity < batchSize {
		batchSize = capacity
	}
	return &Builder[T]{
		capacity:           capacity,
		batchSize:          batchSize,
		backpressurePolicy: DropOnFull,
	}
}

// WithDecoder sets the function that decodes each queued item.
func (b *Builder[T]) WithDecoder(decode DecodeFunc[T]) *Builder[T] {
	b.decode = decode
	return b
}

// WithBatchSize sets the fixed number of items drained per ProcessBatch
// call.
func (b *Builder[T]) WithBatchSize(batchSize int64) *Builder[T] {
	b.batchSize = batchSize
	return b
}

// WithBackpressurePolicy sets the full-buffer behavior.
func (b *Builder[T]) WithBackpressurePolicy(policy BackpressurePolicy) *Builder[T] {
	b.backpressurePolicy = policy
	return b
}

// WithIdleStrategy sets the consumer's wait behavior when no work is
// queued.
func (b *Builder[T]) WithIdleStrategy(strategy IdleStrategy) *Builder[T] {
	b.idleStrategy = strategy
	return b
}

// Build validates the configuration and constructs the Ring.
func (b *Builder[T]) Build() (*Ring[T], error) {
	if b.capacity <= 0 || (b.capacity&(b.capacity-1)) != 0 {
		return nil, ErrInvalidCapacity
	}
	if b.decode == nil {
		return nil, ErrMissingDecoder
	}
	if b.batchSize <= 0 || b.batchSize > b.capacity {
		return nil, ErrInvalidBatchSize
	}

	idleStrategy := b.idleStrategy
	if idleStrategy == nil {
		idleStrategy = NewSleepingIdleStrategy(time.Millisecond, 64)
	}

	z := &Ring[T]{
		buffer:             make([]T, b.capacity),
		capacity:           b.capacity,
		mask:               b.capacity - 1,
		availableBuffer:    make([]AtomicPaddedInt64, b.capacity),
		decode:             b.decode,
		batchSize:          b.batchSize,
		backpressurePolicy: b.backpressurePolicy,
		idleStrategy:       idleStrategy,
	}
	for i := range z.availableBuffer {
		z.availableBuffer[i].Store(-1)
	}
	return z, nil
}

// Push queues one item, letting writerFunc populate the claimed slot.
// Multiple producer goroutines may call Push concurrently.
func (z *Ring[T]) Push(writerFunc func(*T)) bool {
	if z.closed.Load() != 0 {
		z.dropped.Add(1)
		return false
	}

	switch z.backpressurePolicy {
	case BlockOnFull:
		return z.pushBlockOnFull(writerFunc)
	default:
		return z.pushDropOnFull(writerFunc)
	}
}

func (z *Ring[T]) pushDropOnFull(writerFunc func(*T)) bool {
	for {
		sequence := z.writerCursor.Load()
		if sequence >= z.readerCursor.Load()+z.capacity {
			z.dropped.Add(1)
			return false
		}
		if !z.writerCursor.CompareAndSwap(sequence, sequence+1) {
			continue
		}
		slot := &z.buffer[sequence&z.mask]
		writerFunc(slot)
		z.availableBuffer[sequence&z.mask].Store(sequence)
		return true
	}
}

func (z *Ring[T]) pushBlockOnFull(writerFunc func(*T)) bool {
	for {
		if z.closed.Load() != 0 {
			z.dropped.Add(1)
			return false
		}
		sequence := z.writerCursor.Load()
		currentReader := z.readerCursor.Load()
		if sequence >= currentReader+z.capacity {
			runtime.Gosched()
			time.Sleep(time.Microsecond)
			continue
		}
		if !z.writerCursor.CompareAndSwap(sequence, sequence+1) {
			continue
		}
		slot := &z.buffer[sequence&z.mask]
		writerFunc(slot)
		z.availableBuffer[sequence&z.mask].Store(sequence)
		return true
	}
}

// ProcessBatch decodes one contiguous run of available items, up to the
// configured batch size, and returns how many it decoded.
func (z *Ring[T]) ProcessBatch() int {
	current := z.readerCursor.Load()
	writerPos := z.writerCursor.Load()
	if current >= writerPos {
		return 0
	}

	maxProcess := min(z.batchSize, writerPos-current)
	available := current - 1
	maxScan := current + maxProcess

	for seq := current; seq < maxScan; seq++ {
		if z.availableBuffer[seq&z.mask].Load() == seq {
			available = seq
		} else {
			break
		}
	}
	if available < current {
		return 0
	}

	processed := int(available - current + 1)
	for seq := current; seq <= available; seq++ {
		idx := seq & z.mask
		z.decode(&z.buffer[idx])
		z.availableBuffer[idx].Store(-1)
	}
	z.readerCursor.Store(available + 1)
	z.processed.Add(int64(processed))
	return processed
}

// Loop runs the consumer until Close is called, then drains whatever
// remains queued.
func (z *Ring[T]) Loop() {
	for z.closed.Load() == 0 {
		if z.ProcessBatch() > 0 {
			z.idleStrategy.Reset()
		} else if !z.idleStrategy.Idle() {
			continue
		}
	}
	for z.ProcessBatch() > 0 {
	}
}

// Close stops the consumer loop. Idempotent and safe to call from any
// goroutine.
func (z *Ring[T]) Close() {
	z.closed.Store(1)
}

// Flush blocks until every item queued so far has been decoded, or
// returns an error after a bounded wait.
func (z *Ring[T]) Flush() error {
	targetPosition := z.writerCursor.Load()
	currentReader := z.readerCursor.Load()
	pendingCount := targetPosition - currentReader
	if pendingCount <= 0 {
		return nil
	}

	initialProcessed := z.processed.Load()
	targetProcessed := initialProcessed + pendingCount
	timeout := time.Now().Add(5 * time.Second)

	for time.Now().Before(timeout) {
		if z.processed.Load() >= targetProcessed {
			return nil
		}
		runtime.Gosched()
		time.Sleep(100 * time.Microsecond)
	}

	return fmt.Errorf("decodequeue: flush timeout: target_pos=%d reader_pos=%d target_processed=%d current_processed=%d",
		targetPosition, z.readerCursor.Load(), targetProcessed, z.processed.Load())
}

// Stats returns current throughput counters.
type Stats struct {
	WriterPosition int64
	ReaderPosition int64
	BufferSize     int64
	ItemsQueued    int64
	ItemsProcessed int64
	ItemsDropped   int64
}

// Stats returns a snapshot of the ring's current counters.
func (z *Ring[T]) Stats() Stats {
	writerPos := z.writerCursor.Load()
	readerPos := z.readerCursor.Load()
	return Stats{
		WriterPosition: writerPos,
		ReaderPosition: readerPos,
		BufferSize:     z.capacity,
		ItemsQueued:    writerPos - readerPos,
		ItemsProcessed: z.processed.Load(),
		ItemsDropped:   z.dropped.Load(),
	}
}
