// Package sync serializes access to shared bit buffers.
package sync

import (
	"context"
	"sync/atomic"

	"github.com/pi/bitbuf"
	"github.com/pi/bitbuf/debug"
	"github.com/pi/bitbuf/gut"
)

// Mux is a mutex whose Lock can be abandoned through a context.
type Mux struct {
	lck  int32
	lq   int32
	lsig chan struct{}
}

func Mutex() *Mux {
	return &Mux{lsig: make(chan struct{}, 1)}
}

func (m *Mux) Unlock() {
	if debug.Enabled {
		if atomic.LoadInt32(&m.lck) == 0 {
			panic("unlocking not locked mux")
		}
	}
	atomic.StoreInt32(&m.lck, 0)
	if atomic.LoadInt32(&m.lq) > 0 {
		select {
		case m.lsig <- struct{}{}:
		default:
		}
	}
}

func (m *Mux) TryLock() bool {
	return atomic.LoadInt32(&m.lck) == 0 && atomic.CompareAndSwapInt32(&m.lck, 0, 1)
}

// Lock acquires m or returns ctx.Err() once ctx is done. A nil ctx never
// expires.
func (m *Mux) Lock(ctx context.Context) error {
	// fast path
	if m.TryLock() {
		return nil
	}
	var done <-chan struct{}
	if ctx != nil {
		done = ctx.Done()
	}
	// slow path
	atomic.AddInt32(&m.lq, 1)
	defer atomic.AddInt32(&m.lq, -1)
	for {
		// first spin some
		for i := 0; i < 100; i++ {
			if m.TryLock() {
				return nil
			}
		}
		// then wait notification
		select {
		case <-m.lsig:
		case <-done:
			debug.Log("mux: lock abandoned: %v", ctx.Err())
			return ctx.Err()
		}
	}
}

// Guard owns a BitBuffer and hands it out to one caller at a time. Shallow
// slices taken inside Do must not escape it.
type Guard struct {
	mu *Mux
	b  *bitbuf.BitBuffer
}

func NewGuard(b *bitbuf.BitBuffer) (*Guard, error) {
	if err := gut.RequireNonNil(b, "buffer"); err != nil {
		return nil, err
	}
	return &Guard{mu: Mutex(), b: b}, nil
}

// Do runs fn with exclusive access to the buffer.
func (g *Guard) Do(ctx context.Context, fn func(b *bitbuf.BitBuffer) error) error {
	if err := g.mu.Lock(ctx); err != nil {
		return err
	}
	defer g.mu.Unlock()
	return fn(g.b)
}

// Snapshot returns a deep copy of the buffer taken under the lock.
func (g *Guard) Snapshot(ctx context.Context) (*bitbuf.BitBuffer, error) {
	var c *bitbuf.BitBuffer
	err := g.Do(ctx, func(b *bitbuf.BitBuffer) error {
		c = b.Clone()
		return nil
	})
	return c, err
}
