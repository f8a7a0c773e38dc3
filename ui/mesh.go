package ui

// Pos2 is a position in points, origin at the top-left of the client area.
type Pos2 struct {
	X, Y float32
}

// Vec2 is a size or offset in points.
type Vec2 struct {
	X, Y float32
}

type Rect struct {
	Min Pos2
	Max Pos2
}

func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: Pos2{X: minX, Y: minY}, Max: Pos2{X: maxX, Y: maxY}}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Color32 is premultiplied sRGBA, one byte per channel.
type Color32 [4]uint8

// Vertex is the wire layout the framework's tessellator emits: position and
// texture coordinate in points, color premultiplied.
type Vertex struct {
	Pos   Pos2
	UV    Pos2
	Color Color32
}

// Mesh is one triangle mesh referencing a single texture. Index values must
// stay below 65536: the renderer truncates them to 16 bits on upload.
type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
	Texture  TextureID
}

// ClippedPrimitive is a mesh restricted to a clip rectangle in points.
type ClippedPrimitive struct {
	ClipRect Rect
	Mesh     Mesh
}
