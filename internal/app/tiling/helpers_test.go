package tiling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
)

func counterIDs(prefix string) entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

type recordingWaker struct {
	mu    sync.Mutex
	woken []entity.TileID
}

func (w *recordingWaker) RequestWake(_ context.Context, id entity.TileID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.woken = append(w.woken, id)
	return true
}

func (w *recordingWaker) calls() []entity.TileID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]entity.TileID(nil), w.woken...)
}

var errFakeCreate = errors.New("fake create failure")

// fakeProvider is an in-memory content view provider.
type fakeProvider struct {
	mu       sync.Mutex
	next     port.ViewHandle
	views    map[port.ViewHandle]string
	bounds   map[port.ViewHandle]entity.Rect
	failURLs map[string]bool
	created  int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		views:    make(map[port.ViewHandle]string),
		bounds:   make(map[port.ViewHandle]entity.Rect),
		failURLs: make(map[string]bool),
	}
}

func (p *fakeProvider) Create(_ context.Context, url string) (port.ViewHandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failURLs[url] {
		return 0, errFakeCreate
	}
	p.next++
	p.created++
	p.views[p.next] = url
	return p.next, nil
}

func (p *fakeProvider) Destroy(_ context.Context, h port.ViewHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.views[h]; !ok {
		return fmt.Errorf("unknown view %s", h)
	}
	delete(p.views, h)
	delete(p.bounds, h)
	return nil
}

func (p *fakeProvider) SetBounds(_ context.Context, h port.ViewHandle, rect entity.Rect) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.views[h]; !ok {
		return fmt.Errorf("unknown view %s", h)
	}
	p.bounds[h] = rect
	return nil
}

func (p *fakeProvider) SetMuted(context.Context, port.ViewHandle, bool) error { return nil }

func (p *fakeProvider) Capture(_ context.Context, h port.ViewHandle) ([]byte, error) {
	return []byte(h.String()), nil
}

func (p *fakeProvider) liveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.views)
}

func (p *fakeProvider) boundsOf(url string) (entity.Rect, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for h, u := range p.views {
		if u == url {
			rect, ok := p.bounds[h]
			return rect, ok
		}
	}
	return entity.Rect{}, false
}

// gatedProvider holds every Create until gate is closed.
type gatedProvider struct {
	*fakeProvider
	gate chan struct{}
}

func (p *gatedProvider) Create(ctx context.Context, url string) (port.ViewHandle, error) {
	<-p.gate
	return p.fakeProvider.Create(ctx, url)
}
