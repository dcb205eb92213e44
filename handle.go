package rivegg

import (
	"fmt"
	"sync"
)

// Handle identifies a resource owned by a Registry. The zero Handle is
// never valid.
//
// Layout: bits 0-31 slot index, bits 32-55 generation, bits 56-63 kind.
type Handle uint64

// NullHandle is the zero handle.
const NullHandle Handle = 0

type handleKind uint8

const (
	kindGradient handleKind = iota + 1
	kindImage
	kindPaint
	kindPath
	kindRenderer
)

func (k handleKind) String() string {
	switch k {
	case kindGradient:
		return "gradient"
	case kindImage:
		return "image"
	case kindPaint:
		return "paint"
	case kindPath:
		return "path"
	case kindRenderer:
		return "renderer"
	default:
		return "unknown"
	}
}

const generationMask = 1<<24 - 1

func makeHandle(kind handleKind, index, gen uint32) Handle {
	return Handle(uint64(kind)<<56 | uint64(gen&generationMask)<<32 | uint64(index))
}

func (h Handle) kind() handleKind {
	return handleKind(h >> 56)
}

func (h Handle) index() uint32 {
	return uint32(h) //nolint:gosec // low 32 bits
}

func (h Handle) generation() uint32 {
	return uint32(h>>32) & generationMask //nolint:gosec // masked
}

// String formats the handle for logs.
func (h Handle) String() string {
	if h == NullHandle {
		return "null"
	}
	return fmt.Sprintf("%s#%d.%d", h.kind(), h.index(), h.generation())
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// table is a generational arena. Released slots are reused with a new
// generation so stale handles never resolve.
type table[T any] struct {
	mu    sync.Mutex
	kind  handleKind
	slots []slot[T]
	free  []uint32
}

func newTable[T any](kind handleKind) *table[T] {
	return &table[T]{kind: kind}
}

func (t *table[T]) insert(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot[T]{})
		idx = uint32(len(t.slots) - 1) //nolint:gosec // bounded by memory
	}
	s := &t.slots[idx]
	s.gen = (s.gen + 1) & generationMask
	if s.gen == 0 {
		s.gen = 1
	}
	s.live = true
	s.val = v
	return makeHandle(t.kind, idx, s.gen)
}

func (t *table[T]) lookup(h Handle) (*slot[T], error) {
	if h == NullHandle {
		return nil, fmt.Errorf("%w: null %s", ErrInvalidHandle, t.kind)
	}
	if h.kind() != t.kind {
		return nil, fmt.Errorf("%w: %s used as %s", ErrInvalidHandle, h, t.kind)
	}
	idx := h.index()
	if int(idx) >= len(t.slots) {
		return nil, fmt.Errorf("%w: %s out of range", ErrInvalidHandle, h)
	}
	s := &t.slots[idx]
	if !s.live || s.gen != h.generation() {
		return nil, fmt.Errorf("%w: %s is stale", ErrInvalidHandle, h)
	}
	return s, nil
}

func (t *table[T]) get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.val, nil
}

func (t *table[T]) remove(h Handle) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, err := t.lookup(h)
	if err != nil {
		return err
	}
	var zero T
	s.val = zero
	s.live = false
	t.free = append(t.free, h.index())
	return nil
}

func (t *table[T]) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.slots) - len(t.free)
}
