package render

import "github.com/codeready-toolchain/chatstream/pkg/stream"

// Fanout renders every step to each of its targets in order. Nil targets
// are skipped.
type Fanout []stream.RenderTarget

// RenderStep implements stream.RenderTarget.
func (f Fanout) RenderStep(interactionID string, step stream.Step) {
	for _, t := range f {
		if t != nil {
			t.RenderStep(interactionID, step)
		}
	}
}
