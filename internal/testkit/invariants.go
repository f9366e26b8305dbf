package testkit

import (
	"fmt"

	"github.com/mewbak/sile/internal/tracestack"
)

// CheckStackInvariants runs a minimal set of structural invariants on a live
// trace stack:
// 1) Depth matches the frame slice and is never negative
// 2) Top is the last frame exactly when the stack is non-empty
// 3) the after-frame is never simultaneously on the stack
func CheckStackInvariants(s *tracestack.Stack) error {
	if s == nil {
		return fmt.Errorf("nil stack")
	}
	frames := s.Frames()

	// 1) depth sanity
	if s.Depth() < 0 {
		return fmt.Errorf("negative depth: %d", s.Depth())
	}
	if s.Depth() != len(frames) {
		return fmt.Errorf("depth mismatch: Depth()=%d frames=%d", s.Depth(), len(frames))
	}

	// 2) top agrees with the frame slice
	top := s.Top()
	if len(frames) == 0 {
		if top != nil {
			return fmt.Errorf("non-nil top on an empty stack")
		}
	} else {
		if top == nil {
			return fmt.Errorf("nil top on a stack of depth %d", len(frames))
		}
		if top != frames[len(frames)-1] {
			return fmt.Errorf("top is not the last frame")
		}
	}

	// 3) a popped frame is retained only off the stack
	if after := s.After(); after != nil {
		for i, frame := range frames {
			if frame == after {
				return fmt.Errorf("after-frame is still on the stack at index %d", i)
			}
		}
	}
	return nil
}

// CheckPushOrder verifies that a sequence of push IDs issued by one stack is
// strictly increasing and never zero.
func CheckPushOrder(ids []tracestack.PushID) error {
	for i, id := range ids {
		if id == 0 {
			return fmt.Errorf("push ID at index %d is zero", i)
		}
		if i > 0 && id <= ids[i-1] {
			return fmt.Errorf("push ID at index %d is %d, not above %d", i, id, ids[i-1])
		}
	}
	return nil
}
