package scene

import "sync"

// ScenePool manages a pool of reusable Scene objects so that per-frame
// scenes keep their grown buffers across frames.
// It is safe for concurrent use.
//
// Usage:
//
//	s := pool.Get()
//	defer pool.Put(s)
//	// record the frame...
type ScenePool struct {
	pool sync.Pool
}

// NewScenePool creates a new scene pool.
func NewScenePool() *ScenePool {
	return &ScenePool{
		pool: sync.Pool{
			New: func() any {
				return NewScene()
			},
		},
	}
}

// Get retrieves a scene from the pool.
// The scene is reset and ready for use.
func (p *ScenePool) Get() *Scene {
	s := p.pool.Get().(*Scene)
	s.Reset()
	return s
}

// Put returns a scene to the pool for reuse.
// The scene will be reset on the next Get.
func (p *ScenePool) Put(s *Scene) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// DefaultPool is a process-wide scene pool.
var DefaultPool = NewScenePool()
