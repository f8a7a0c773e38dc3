package paint

import (
	"unsafe"

	"github.com/elliotmr/glhud/ui"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrMissingTexture reports a primitive referencing a texture id with no
// store entry. It indicates a protocol desync between the framework and the
// pipeline and is unrecoverable.
var ErrMissingTexture = errors.New("texture id has no store entry")

type entryKind int

const (
	// entryOwned textures are created and destroyed by the store.
	entryOwned entryKind = iota
	// entryBorrowed textures wrap a raw GL handle owned by the host; the
	// store never deletes them.
	entryBorrowed
)

type texEntry struct {
	kind   entryKind
	width  int
	height int

	// pending upload, emptied once uploaded
	pixels []byte

	tex    uint32
	hasTex bool

	filter ui.TextureFilter
	dirty  bool
}

func (e *texEntry) release(b Backend) {
	if e.kind == entryOwned && e.hasTex {
		b.DeleteTextures(1, &e.tex)
	}
}

// Store owns the GPU-resident textures the pipeline draws with, keyed by the
// framework's opaque texture ids. All methods must run with the overlay's GL
// context current.
type Store struct {
	b        Backend
	log      zerolog.Logger
	entries  map[ui.TextureID]*texEntry
	nextUser uint64
}

func NewStore(b Backend, log zerolog.Logger) *Store {
	return &Store{
		b:       b,
		log:     log,
		entries: make(map[ui.TextureID]*texEntry),
	}
}

// ApplyDelta applies one framework texture instruction. A full-image delta
// installs a new entry (releasing any previous GPU resource under the same id
// only after the replacement is in place). A sub-rectangle delta updates an
// existing entry in place; sub-rectangle deltas addressing an unknown id are
// dropped and logged, since id lifetime is framework-driven and out-of-order
// delivery must not take the renderer down.
func (s *Store) ApplyDelta(id ui.TextureID, delta ui.ImageDelta) error {
	w, h := delta.Image.Size()

	if delta.Pos == nil {
		e := &texEntry{
			kind:   entryOwned,
			width:  w,
			height: h,
			pixels: delta.Image.RGBA(),
			filter: delta.Filter,
			dirty:  true,
		}
		if len(e.pixels) != w*h*4 {
			return errors.Errorf("texture %v: %dx%d image carries %d bytes", id, w, h, len(e.pixels))
		}
		prev := s.entries[id]
		s.entries[id] = e
		if prev != nil {
			prev.release(s.b)
		}
		return nil
	}

	e, ok := s.entries[id]
	if !ok {
		s.log.Warn().
			Bool("user", id.User).
			Uint64("id", id.ID).
			Msg("dropping partial update for unknown texture")
		return nil
	}

	x, y := delta.Pos[0], delta.Pos[1]
	if x < 0 || y < 0 || x+w > e.width || y+h > e.height {
		return errors.Errorf("texture %v: update %dx%d at (%d,%d) outside %dx%d",
			id, w, h, x, y, e.width, e.height)
	}

	pixels := delta.Image.RGBA()
	if len(pixels) != w*h*4 {
		return errors.Errorf("texture %v: %dx%d update carries %d bytes", id, w, h, len(pixels))
	}
	if len(pixels) == 0 {
		return nil
	}
	if e.hasTex {
		s.b.BindTexture(glTexture2D, e.tex)
		s.b.PixelStorei(glUnpackAlignment, 1)
		s.b.TexSubImage2D(glTexture2D, 0, int32(x), int32(y), int32(w), int32(h),
			glRGBA, glUnsignedByte, unsafe.Pointer(&pixels[0]))
	} else {
		// No GL object yet: splice the region into the pending buffer so the
		// first materialization uploads the merged image.
		for row := 0; row < h; row++ {
			dst := ((y+row)*e.width + x) * 4
			src := row * w * 4
			copy(e.pixels[dst:dst+w*4], pixels[src:src+w*4])
		}
	}
	e.dirty = true
	return nil
}

// MaterializePending creates GL texture objects for entries that lack one and
// uploads any pending pixel data. Calling it again with no intervening delta
// does nothing.
func (s *Store) MaterializePending() {
	for _, e := range s.entries {
		if e.kind != entryOwned || (e.hasTex && !e.dirty) {
			continue
		}

		if e.hasTex {
			s.b.BindTexture(glTexture2D, e.tex)
		} else {
			s.b.GenTextures(1, &e.tex)
			s.b.BindTexture(glTexture2D, e.tex)
			s.b.TexParameteri(glTexture2D, glTextureWrapS, glClampToEdge)
			s.b.TexParameteri(glTexture2D, glTextureWrapT, glClampToEdge)
			filter := int32(glLinear)
			if e.filter == ui.FilterNearest {
				filter = glNearest
			}
			s.b.TexParameteri(glTexture2D, glTextureMinFilter, filter)
			s.b.TexParameteri(glTexture2D, glTextureMagFilter, filter)
			e.hasTex = true
		}

		if len(e.pixels) > 0 {
			s.b.PixelStorei(glUnpackAlignment, 1)
			s.b.TexImage2D(glTexture2D, 0, glRGBA, int32(e.width), int32(e.height), 0,
				glRGBA, glUnsignedByte, unsafe.Pointer(&e.pixels[0]))
			e.pixels = nil
		}
		e.dirty = false
	}
}

// Bind makes the entry's texture current for the next draw call.
func (s *Store) Bind(id ui.TextureID) error {
	e, ok := s.entries[id]
	if !ok || !e.hasTex {
		return errors.Wrapf(ErrMissingTexture, "user=%v id=%d", id.User, id.ID)
	}
	s.b.BindTexture(glTexture2D, e.tex)
	return nil
}

// Free releases the GPU resource (owned entries only) and removes the entry.
// Freeing an id with no entry is a no-op.
func (s *Store) Free(id ui.TextureID) {
	if e, ok := s.entries[id]; ok {
		e.release(s.b)
		delete(s.entries, id)
	}
}

// RegisterExternal introduces a texture by raw GL handle. The handle stays
// owned by the host; the returned id is only a bookkeeping key.
func (s *Store) RegisterExternal(glID uint32) ui.TextureID {
	id := ui.UserTexture(s.nextUser)
	s.nextUser++
	s.entries[id] = &texEntry{kind: entryBorrowed, tex: glID, hasTex: true}
	return id
}

// RegisterUploaded introduces a texture from raw pixel data. The store owns
// the resulting GL object. The upload happens on the next materialization.
func (s *Store) RegisterUploaded(w, h int, pixels []ui.Color32, filter ui.TextureFilter) (ui.TextureID, error) {
	if w*h != len(pixels) {
		return ui.TextureID{}, errors.Errorf("%dx%d texture needs %d texels, got %d", w, h, w*h, len(pixels))
	}
	buf := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		buf = append(buf, p[0], p[1], p[2], p[3])
	}
	id := ui.UserTexture(s.nextUser)
	s.nextUser++
	s.entries[id] = &texEntry{
		kind:   entryOwned,
		width:  w,
		height: h,
		pixels: buf,
		filter: filter,
		dirty:  true,
	}
	return id, nil
}
