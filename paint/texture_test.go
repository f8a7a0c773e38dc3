package paint

import (
	"testing"

	"github.com/elliotmr/glhud/paint/painttest"
	"github.com/elliotmr/glhud/ui"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *painttest.Recorder) {
	r := painttest.New()
	return NewStore(r, zerolog.Nop()), r
}

func colorImage(w, h int) ui.ColorImage {
	px := make([]ui.Color32, w*h)
	for i := range px {
		px[i] = ui.Color32{255, 255, 255, 255}
	}
	return ui.ColorImage{Width: w, Height: h, Pixels: px}
}

func TestMaterializeClearsPendingAndDirty(t *testing.T) {
	s, r := newTestStore()
	id := ui.TextureID{ID: 1}

	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(4, 4)}))
	e := s.entries[id]
	assert.True(t, e.dirty)
	assert.Len(t, e.pixels, 4*4*4)

	s.MaterializePending()
	assert.False(t, e.dirty)
	assert.Empty(t, e.pixels)
	assert.True(t, e.hasTex)

	// Second run with no intervening delta issues no further GL calls.
	calls := len(r.Calls)
	s.MaterializePending()
	assert.Equal(t, calls, len(r.Calls))
}

func TestFullImageReplaceReleasesOldResource(t *testing.T) {
	s, r := newTestStore()
	id := ui.TextureID{ID: 7}

	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(2, 2)}))
	s.MaterializePending()
	old := s.entries[id].tex

	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(8, 8)}))
	require.Equal(t, []uint32{old}, r.DeletedTextures)
	assert.Equal(t, 8, s.entries[id].width)
	assert.Equal(t, 8, s.entries[id].height)
	assert.True(t, s.entries[id].dirty)
}

func TestSubRectKeepsDeclaredSize(t *testing.T) {
	s, _ := newTestStore()
	id := ui.TextureID{ID: 2}

	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(8, 8)}))
	s.MaterializePending()

	pos := [2]int{2, 3}
	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(4, 4), Pos: &pos}))
	assert.Equal(t, 8, s.entries[id].width)
	assert.Equal(t, 8, s.entries[id].height)
	assert.True(t, s.entries[id].dirty)
}

func TestSubRectOutOfBounds(t *testing.T) {
	s, _ := newTestStore()
	id := ui.TextureID{ID: 2}
	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(8, 8)}))

	pos := [2]int{6, 6}
	err := s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(4, 4), Pos: &pos})
	assert.Error(t, err)
}

func TestSubRectUnknownIDDropped(t *testing.T) {
	s, r := newTestStore()
	pos := [2]int{0, 0}
	err := s.ApplyDelta(ui.TextureID{ID: 99}, ui.ImageDelta{Image: colorImage(1, 1), Pos: &pos})
	assert.NoError(t, err)
	assert.Empty(t, r.Calls)
	assert.Empty(t, s.entries)
}

func TestSubRectBeforeMaterializeSplicesPending(t *testing.T) {
	s, _ := newTestStore()
	id := ui.TextureID{ID: 3}

	base := ui.ColorImage{Width: 2, Height: 2, Pixels: make([]ui.Color32, 4)}
	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: base}))

	pos := [2]int{1, 1}
	patch := ui.ColorImage{Width: 1, Height: 1, Pixels: []ui.Color32{{9, 8, 7, 6}}}
	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: patch, Pos: &pos}))

	e := s.entries[id]
	assert.Equal(t, []byte{9, 8, 7, 6}, e.pixels[12:16])
}

func TestFreeUnknownIDIsNoOp(t *testing.T) {
	s, r := newTestStore()
	s.Free(ui.TextureID{ID: 42})
	assert.Empty(t, r.Calls)
}

func TestFreeIsNotDoubleFree(t *testing.T) {
	s, r := newTestStore()
	id := ui.TextureID{ID: 1}
	require.NoError(t, s.ApplyDelta(id, ui.ImageDelta{Image: colorImage(2, 2)}))
	s.MaterializePending()

	s.Free(id)
	s.Free(id)
	assert.Len(t, r.DeletedTextures, 1)
}

func TestBorrowedTextureNeverDeleted(t *testing.T) {
	s, r := newTestStore()
	id := s.RegisterExternal(77)

	require.NoError(t, s.Bind(id))
	assert.Contains(t, r.BoundTextures, uint32(77))

	s.Free(id)
	assert.Empty(t, r.DeletedTextures)
}

func TestFilterMapping(t *testing.T) {
	s, r := newTestStore()
	_, err := s.RegisterUploaded(1, 1, []ui.Color32{{0, 0, 0, 0}}, ui.FilterNearest)
	require.NoError(t, err)
	s.MaterializePending()

	assert.Contains(t, r.Calls, "TexParameteri(0x0DE1, 0x2801, 9728)") // MIN_FILTER, NEAREST
	assert.Contains(t, r.Calls, "TexParameteri(0x0DE1, 0x2800, 9728)") // MAG_FILTER, NEAREST
}

func TestRegisterUploadedSizeMismatch(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.RegisterUploaded(2, 2, []ui.Color32{{0, 0, 0, 0}}, ui.FilterLinear)
	assert.Error(t, err)
}
