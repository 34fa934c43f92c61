// Package texture decodes media-clip images and caches the resulting
// GPU textures keyed by clip id.
package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decoder turns a clip URI into RGBA8 pixel data plus dimensions. It
// is an interface, not a concrete decode function, so the frame loop
// never depends on a specific image backend — the image-decoding
// internals themselves are not a tested invariant of this server.
type Decoder interface {
	Decode(uri string) (pixels []byte, width, height uint32, err error)
}

// StdlibDecoder decodes file:// and bare-path URIs using the standard
// image package plus golang.org/x/image's bmp/tiff readers registered
// above, matching the format set original_source/display/src/render.rs
// gets for free from the `image` crate.
type StdlibDecoder struct {
	// MediaRoot is joined against relative bare-path URIs before
	// opening them. Left empty, relative paths resolve against the
	// process's working directory.
	MediaRoot string
}

// Decode implements Decoder.
func (d StdlibDecoder) Decode(uri string) ([]byte, uint32, uint32, error) {
	path, err := resolvePath(uri)
	if err != nil {
		return nil, 0, 0, err
	}
	if d.MediaRoot != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.MediaRoot, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return rgba.Pix, uint32(w), uint32(h), nil
}

// resolvePath accepts either a file:// URI or a bare filesystem path,
// matching load_image_rgba's handling of both forms.
func resolvePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" {
		return uri, nil
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("texture: unsupported uri scheme %q", u.Scheme)
	}
	if u.Path != "" {
		return u.Path, nil
	}
	return u.Opaque, nil
}
