// Package contentview provides a headless ContentViewProvider. Views are
// bookkeeping records with no rendering surface; captures are generated PNG
// placeholders. It backs the terminal playground and integration tests.
package contentview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

var (
	// ErrUnknownView is returned for a handle that was never created or was destroyed.
	ErrUnknownView = errors.New("unknown content view")
	// ErrCreateRejected is returned for URLs registered with FailURL.
	ErrCreateRejected = errors.New("content view creation rejected")
)

const (
	maxCaptureWidth  = 160
	maxCaptureHeight = 120

	defaultCacheItems = 64
	defaultCacheBytes = 4 << 20
)

// View is a read-only copy of one live view.
type View struct {
	Handle port.ViewHandle
	URL    string
	Bounds entity.Rect
	Muted  bool
}

type view struct {
	url    string
	bounds entity.Rect
	muted  bool
}

// Provider is an in-memory port.ContentViewProvider.
type Provider struct {
	mu       sync.Mutex
	next     port.ViewHandle
	views    map[port.ViewHandle]*view
	failing  map[string]bool
	latency  time.Duration
	captures *captureCache
}

// Option configures a Provider.
type Option func(*Provider)

// WithLatency delays Create and Capture, simulating a real engine.
func WithLatency(d time.Duration) Option {
	return func(p *Provider) { p.latency = d }
}

// WithCaptureCache bounds the placeholder cache.
func WithCaptureCache(maxItems, maxBytes int) Option {
	return func(p *Provider) { p.captures = newCaptureCache(maxItems, maxBytes) }
}

// NewProvider creates a headless provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		views:    make(map[port.ViewHandle]*view),
		failing:  make(map[string]bool),
		captures: newCaptureCache(defaultCacheItems, defaultCacheBytes),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ port.ContentViewProvider = (*Provider)(nil)

// FailURL makes every later Create for url fail, or succeed again when fail
// is false.
func (p *Provider) FailURL(url string, fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if fail {
		p.failing[url] = true
	} else {
		delete(p.failing, url)
	}
}

// Create implements port.ContentViewProvider.
func (p *Provider) Create(ctx context.Context, url string) (port.ViewHandle, error) {
	if err := p.wait(ctx); err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failing[url] {
		return 0, fmt.Errorf("%w: %s", ErrCreateRejected, url)
	}
	p.next++
	h := p.next
	p.views[h] = &view{url: url}

	logging.FromContext(ctx).Trace().Str("view", h.String()).Str("url", url).Msg("content view created")
	return h, nil
}

// Destroy implements port.ContentViewProvider.
func (p *Provider) Destroy(ctx context.Context, h port.ViewHandle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.views[h]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, h)
	}
	delete(p.views, h)

	logging.FromContext(ctx).Trace().Str("view", h.String()).Msg("content view destroyed")
	return nil
}

// SetBounds implements port.ContentViewProvider.
func (p *Provider) SetBounds(_ context.Context, h port.ViewHandle, rect entity.Rect) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.views[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, h)
	}
	v.bounds = rect
	return nil
}

// SetMuted implements port.ContentViewProvider.
func (p *Provider) SetMuted(_ context.Context, h port.ViewHandle, muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.views[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, h)
	}
	v.muted = muted
	return nil
}

// Capture renders a flat placeholder tinted by the view URL, at the view's
// aspect ratio and at most 160x120.
func (p *Provider) Capture(ctx context.Context, h port.ViewHandle) ([]byte, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}

	p.mu.Lock()
	v, ok := p.views[h]
	var url string
	var bounds entity.Rect
	if ok {
		url, bounds = v.url, v.bounds
	}
	p.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, h)
	}
	if bounds.Area() <= 0 {
		return nil, nil
	}

	size := thumbnailSize(bounds)
	key := keyFor(url, size)
	if img, hit := p.captures.get(key); hit {
		return img, nil
	}

	img, err := renderPlaceholder(url, size)
	if err != nil {
		return nil, err
	}
	p.captures.put(key, img)
	return img, nil
}

// Views returns the live views ordered by handle.
func (p *Provider) Views() []View {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]View, 0, len(p.views))
	for h, v := range p.views {
		out = append(out, View{Handle: h, URL: v.url, Bounds: v.bounds, Muted: v.muted})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// LiveCount returns the number of materialized views.
func (p *Provider) LiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.views)
}

func (p *Provider) wait(ctx context.Context) error {
	if p.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func thumbnailSize(bounds entity.Rect) entity.Rect {
	w, h := bounds.Width, bounds.Height
	if w > maxCaptureWidth {
		h = h * maxCaptureWidth / w
		w = maxCaptureWidth
	}
	if h > maxCaptureHeight {
		w = w * maxCaptureHeight / h
		h = maxCaptureHeight
	}
	return entity.Rect{Width: max(w, 1), Height: max(h, 1)}
}

func renderPlaceholder(url string, size entity.Rect) ([]byte, error) {
	fill := tint(url)
	border := color.NRGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 0xff}

	img := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			c := fill
			if x == 0 || y == 0 || x == size.Width-1 || y == size.Height-1 {
				c = border
			}
			img.SetNRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// tint derives a stable pastel color from the URL.
func tint(url string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(url)))
	sum := h.Sum32()
	return color.NRGBA{
		R: 0x80 | byte(sum),
		G: 0x80 | byte(sum>>8),
		B: 0x80 | byte(sum>>16),
		A: 0xff,
	}
}
