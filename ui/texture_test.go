package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorImageRGBA(t *testing.T) {
	im := ColorImage{
		Width:  2,
		Height: 1,
		Pixels: []Color32{{1, 2, 3, 4}, {5, 6, 7, 8}},
	}
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, im.RGBA())
}

func TestFontImageRGBAGammaOne(t *testing.T) {
	im := FontImage{Width: 3, Height: 1, Pixels: []float32{0, 0.5, 1}}
	got := im.RGBA()

	// Coverage expands to premultiplied white: all four channels equal.
	assert.Equal(t, []byte{0, 0, 0, 0}, got[0:4])
	assert.Equal(t, []byte{128, 128, 128, 128}, got[4:8])
	assert.Equal(t, []byte{255, 255, 255, 255}, got[8:12])
}

func TestFontImageRGBAClampsCoverage(t *testing.T) {
	im := FontImage{Width: 2, Height: 1, Pixels: []float32{-0.5, 1.5}}
	got := im.RGBA()
	assert.Equal(t, []byte{0, 0, 0, 0}, got[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, got[4:8])
}

func TestTexturesDeltaEmpty(t *testing.T) {
	assert.True(t, TexturesDelta{}.Empty())
	assert.False(t, TexturesDelta{Free: []TextureID{FontAtlas}}.Empty())
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 50)
	assert.Equal(t, float32(100), r.Width())
	assert.Equal(t, float32(30), r.Height())
}
