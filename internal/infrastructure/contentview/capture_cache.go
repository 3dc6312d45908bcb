package contentview

import (
	"container/list"
	"sync"

	"github.com/bnema/tessera/internal/domain/entity"
)

// captureKey identifies one rendered placeholder.
type captureKey struct {
	url    string
	width  int
	height int
}

type captureEntry struct {
	key   captureKey
	image []byte
}

// captureCache keeps recently rendered placeholders, evicting the least
// recently used once either the entry count or the byte budget is exceeded.
type captureCache struct {
	mu       sync.Mutex
	maxItems int
	maxBytes int
	bytes    int
	items    map[captureKey]*list.Element
	order    *list.List // front = most recent
}

func newCaptureCache(maxItems, maxBytes int) *captureCache {
	if maxItems <= 0 {
		maxItems = 1
	}
	return &captureCache{
		maxItems: maxItems,
		maxBytes: maxBytes,
		items:    make(map[captureKey]*list.Element),
		order:    list.New(),
	}
}

func keyFor(url string, size entity.Rect) captureKey {
	return captureKey{url: url, width: size.Width, height: size.Height}
}

func (c *captureCache) get(key captureKey) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*captureEntry).image, true
}

func (c *captureCache) put(key captureKey, image []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*captureEntry)
		c.bytes += len(image) - len(e.image)
		e.image = image
		c.order.MoveToFront(elem)
	} else {
		c.items[key] = c.order.PushFront(&captureEntry{key: key, image: image})
		c.bytes += len(image)
	}

	for c.order.Len() > c.maxItems || (c.maxBytes > 0 && c.bytes > c.maxBytes && c.order.Len() > 1) {
		oldest := c.order.Back()
		e := oldest.Value.(*captureEntry)
		c.order.Remove(oldest)
		delete(c.items, e.key)
		c.bytes -= len(e.image)
	}
}

func (c *captureCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
