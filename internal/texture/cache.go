package texture

import (
	"log"
	"os"
	"sync"

	"github.com/kitonae/constellation/internal/gpu"
)

var logger = log.New(os.Stderr, "[texture] ", log.LstdFlags)

// Cache uploads each clip's image exactly once, keyed on clip id (not
// uri — a clip is free to change uri on reload without invalidating
// other clips' entries). Misses decode and upload; everything after
// the first successful load for a clip id is an O(1) map lookup. A
// failed decode or upload is not cached, so the next call for that
// clip id tries again.
type Cache struct {
	device  gpu.Device
	decoder Decoder

	mu    sync.Mutex
	byID  map[string]gpu.Texture
	white gpu.Texture
}

// NewCache creates the cache and its white 1x1 sRGB fallback texture
// once, up front, rather than regenerating it on every cache miss.
func NewCache(device gpu.Device, decoder Decoder) (*Cache, error) {
	white, err := device.CreateTexture(1, 1, []byte{255, 255, 255, 255})
	if err != nil {
		return nil, err
	}
	return &Cache{
		device:  device,
		decoder: decoder,
		byID:    make(map[string]gpu.Texture),
		white:   white,
	}, nil
}

// White returns the shared fallback texture, used whenever a node has
// no active clip or a clip fails to decode/upload.
func (c *Cache) White() gpu.Texture { return c.white }

// GetOrLoad returns the texture for clipID, decoding and uploading uri
// on first use. A decode or upload failure is logged and the white
// fallback is returned instead of propagating the error — a single
// bad media file must not stop the rest of the scene from rendering.
func (c *Cache) GetOrLoad(clipID, uri string) gpu.Texture {
	c.mu.Lock()
	if t, ok := c.byID[clipID]; ok {
		c.mu.Unlock()
		return t
	}
	c.mu.Unlock()

	pixels, w, h, err := c.decoder.Decode(uri)
	if err != nil {
		logger.Printf("clip %s: %v, using fallback", clipID, err)
		return c.white
	}
	tex, err := c.device.CreateTexture(w, h, pixels)
	if err != nil {
		logger.Printf("clip %s: upload failed: %v, using fallback", clipID, err)
		return c.white
	}

	c.mu.Lock()
	c.byID[clipID] = tex
	c.mu.Unlock()
	return tex
}
