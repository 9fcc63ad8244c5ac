package component

import "github.com/milk9111/dasher/common"

// Outcome is the result of a run so far.
type Outcome int

const (
	Playing Outcome = iota
	Lost
	Won
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether sprites should stop being drawn.
func (o Outcome) Terminal() bool {
	return o == Lost || o == Won
}

// Hitbox returns an obstacle's collision box: its sprite cell shrunk by pad on
// each side to skip the transparent border of the sheet. The player is never
// inset.
func Hitbox(a Animation, pad float64) common.Rect {
	return a.Bounds().Inset(pad)
}

// Resolve tests the player box against every obstacle hitbox and the finish
// line. A collision wins over reaching the finish in the same frame.
func Resolve(player common.Rect, hitboxes []common.Rect, finishX float64, grounded bool) Outcome {
	for _, hb := range hitboxes {
		if player.Intersects(hb) {
			return Lost
		}
	}
	if finishX <= player.Right() && grounded {
		return Won
	}
	return Playing
}
