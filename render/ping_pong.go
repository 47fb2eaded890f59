package render

// pingPong tracks which side of a two-texture pair is the current source.
// Each effect pass samples the source and renders into the other side, then
// Swap flips the roles. The scene is seeded into side 0 at frame start, so
// after N passes the final composite lives on side N%2; with no passes at
// all the seeded scene passes through untouched from side 0.
type pingPong struct {
	source int
}

// Reset points the source back at side 0 for a new frame (or a rebuilt pair).
func (p *pingPong) Reset() {
	p.source = 0
}

// Source returns the side a pass should sample from.
func (p *pingPong) Source() int {
	return p.source
}

// Dest returns the side a pass should render into.
func (p *pingPong) Dest() int {
	return 1 - p.source
}

// Swap makes the destination the next source.
func (p *pingPong) Swap() {
	p.source = 1 - p.source
}
