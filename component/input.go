package component

// Input is the player input sampled for one frame.
type Input struct {
	// JumpPressed is true only on the frame the jump key went down.
	JumpPressed bool
}
