package ui

// Shape is an abstract draw shape produced by the framework during a frame.
// The render engine never inspects shapes, it only hands them back to the
// framework's tessellator.
type Shape interface{}

// PlatformOutput carries frame side effects addressed to the host OS.
type PlatformOutput struct {
	CopiedText string
}

// FullOutput is everything one framework pass produces.
type FullOutput struct {
	Platform      PlatformOutput
	Shapes        []Shape
	TexturesDelta TexturesDelta
}

// Context is the UI framework object accumulating widget state across frames.
// Implementations are external; the engine drives one per application record.
type Context interface {
	// Run executes one frame: consumes the input snapshot, invokes fn to
	// declare the UI, returns the frame output.
	Run(input RawInput, fn func(Context)) FullOutput

	// Tessellate converts the frame's shapes into clipped triangle meshes at
	// pixels-per-point 1.0.
	Tessellate(shapes []Shape) []ClippedPrimitive

	WantsKeyboardInput() bool
	WantsPointerInput() bool
}
