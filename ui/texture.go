package ui

import "math"

// TextureID identifies one texture for the lifetime of that texture. Managed
// ids are allocated by the UI framework (id 0 is its font atlas), user ids by
// the renderer on behalf of the caller.
type TextureID struct {
	User bool
	ID   uint64
}

// FontAtlas is the framework's built-in font texture.
var FontAtlas = TextureID{}

func UserTexture(id uint64) TextureID {
	return TextureID{User: true, ID: id}
}

type TextureFilter int32

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

// ImageData is pixel data carried by a texture delta. RGBA returns the pixels
// as straight rows of premultiplied sRGBA bytes, ready for upload.
type ImageData interface {
	Size() (w, h int)
	RGBA() []byte
}

// ColorImage is a full-color image, one Color32 per texel, row-major.
type ColorImage struct {
	Width  int
	Height int
	Pixels []Color32
}

func (im ColorImage) Size() (int, int) { return im.Width, im.Height }

func (im ColorImage) RGBA() []byte {
	out := make([]byte, 0, len(im.Pixels)*4)
	for _, p := range im.Pixels {
		out = append(out, p[0], p[1], p[2], p[3])
	}
	return out
}

// FontGamma is the coverage-to-color exponent applied when expanding
// font-alpha images. The framework contract fixes it at 1.0.
const FontGamma = 1.0

// FontImage is a font atlas image: one alpha coverage value in [0,1] per
// texel. RGBA expands it to premultiplied white.
type FontImage struct {
	Width  int
	Height int
	Pixels []float32
}

func (im FontImage) Size() (int, int) { return im.Width, im.Height }

func (im FontImage) RGBA() []byte {
	out := make([]byte, 0, len(im.Pixels)*4)
	for _, cov := range im.Pixels {
		if cov < 0 {
			cov = 0
		} else if cov > 1 {
			cov = 1
		}
		a := uint8(math.Round(math.Pow(float64(cov), FontGamma) * 255.0))
		out = append(out, a, a, a, a)
	}
	return out
}

// ImageDelta creates or updates a texture. A nil Pos replaces the whole
// texture; a non-nil Pos updates the sub-rectangle at that origin with the
// image's size.
type ImageDelta struct {
	Image ImageData
	Pos   *[2]int
	// Filter applies only when the delta installs a new texture.
	Filter TextureFilter
}

type SetEntry struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the per-frame texture instruction list. Set entries apply
// in order before painting, Free after.
type TexturesDelta struct {
	Set  []SetEntry
	Free []TextureID
}

func (td TexturesDelta) Empty() bool {
	return len(td.Set) == 0 && len(td.Free) == 0
}
