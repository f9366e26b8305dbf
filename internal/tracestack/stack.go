package tracestack

import (
	"fmt"
	"strings"

	"github.com/mewbak/sile/internal/debug"
	"github.com/mewbak/sile/internal/diag"
)

// PushID is the opaque token returned by every push. Pop accepts only the
// token of the current top frame; tokens are never reused within a stack.
type PushID uint64

// Environment is what the stack needs from its embedding engine. Every
// field is optional: a zero Environment yields a stack that never warns,
// never traces, and falls back to "<nowhere>" for empty-stack queries.
type Environment struct {
	// CurrentFile reports the file the engine is currently reading, for
	// location queries on an empty stack.
	CurrentFile func() string
	// Reporter receives protocol misuse warnings (missing command names,
	// unbalanced pops). Warnings never abort processing.
	Reporter diag.Reporter
	// Debug receives one trace line per push and pop under
	// debug.CategoryStack.
	Debug debug.Logger
}

// Stack is the engine's document-position stack. One instance per
// processing session; not safe for concurrent use.
type Stack struct {
	frames []*Frame
	after  *Frame
	lastID PushID
	env    Environment
}

// New returns an empty stack bound to env.
func New(env Environment) *Stack {
	if env.Reporter == nil {
		env.Reporter = diag.Nop
	}
	if env.Debug == nil {
		env.Debug = debug.Nop
	}
	return &Stack{env: env}
}

// PushCommand records entering a command invocation. The frame takes its
// position from content when given; a missing file falls back to the
// environment's current file. An empty command is reported but still
// pushed, so the pop protocol stays balanced.
func (s *Stack) PushCommand(command string, content *Content, options map[string]string) PushID {
	if command == "" {
		s.env.Reporter.Warn("PushCommand called without a command name", true)
	}
	frame := &Frame{
		Kind:    KindCommand,
		Command: command,
		Options: options,
	}
	if content != nil {
		frame.File = content.File
		frame.Lno = content.Lno
		frame.Col = content.Col
	}
	if frame.File == "" {
		frame.File = s.currentFile()
	}
	return s.PushFrame(frame)
}

// PushContent records entering a structured content node. The command name
// may be overridden by the caller; otherwise it is inferred from the node.
func (s *Stack) PushContent(content *Content, command string) PushID {
	if content == nil {
		s.env.Reporter.Warn("PushContent called without structured content", true)
		content = &Content{}
	}
	if command == "" {
		command = content.Command
	}
	if command == "" {
		s.env.Reporter.Warn("PushContent could not infer a command name", true)
	}
	frame := &Frame{
		Kind:    KindContent,
		Command: command,
		Options: content.Options,
		File:    content.File,
		Lno:     content.Lno,
		Col:     content.Col,
	}
	if frame.File == "" {
		frame.File = s.currentFile()
	}
	return s.PushFrame(frame)
}

// PushText records entering a run of document text. Text frames carry no
// position; location queries search the surrounding frames instead.
func (s *Stack) PushText(text string) PushID {
	return s.PushFrame(&Frame{Kind: KindText, Text: text})
}

// PushFrame assigns the next push ID to frame, appends it, and clears the
// after-frame. It is the primitive under the other Push helpers and accepts
// caller-built Generic frames. A nil frame is reported and not pushed; the
// returned zero ID never matches a real frame, so the paired Pop warns too.
func (s *Stack) PushFrame(frame *Frame) PushID {
	if frame == nil {
		s.env.Reporter.Warn("PushFrame called with a nil frame", true)
		return 0
	}
	s.lastID++
	frame.pushID = s.lastID
	s.frames = append(s.frames, frame)
	s.after = nil
	if s.env.Debug.Enabled(debug.CategoryStack) {
		s.env.Debug.Emit(debug.CategoryStack, s.traceLine("→", frame, len(s.frames)-1))
	}
	return frame.pushID
}

// Pop removes the top frame if id matches it and retains the removed frame
// for "after" location reporting until the next push. Any mismatch leaves
// the stack untouched and emits exactly one warning; the expected and
// received IDs are spelled out only when stack tracing is on, since the
// numbers mean nothing without the trace.
func (s *Stack) Pop(id PushID) {
	top := s.Top()
	if top == nil || top.pushID != id {
		message := "unbalanced push/pop on the trace stack"
		if s.env.Debug.Enabled(debug.CategoryStack) {
			if top == nil {
				message += fmt.Sprintf(" (pop %d on an empty stack)", id)
			} else {
				message += fmt.Sprintf(" (expected %d, got %d)", top.pushID, id)
			}
		}
		s.env.Reporter.Warn(message, true)
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
	s.after = top
	if s.env.Debug.Enabled(debug.CategoryStack) {
		s.env.Debug.Emit(debug.CategoryStack, s.traceLine("←", top, len(s.frames)))
	}
}

// Depth returns the number of frames on the stack.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Top returns the most recent frame, or nil on an empty stack.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// After returns the most recently popped frame, or nil if none was popped
// since the last push.
func (s *Stack) After() *Frame {
	return s.after
}

// Frames returns the stack bottom-first. Callers must treat the result as
// read-only.
func (s *Stack) Frames() []*Frame {
	return s.frames
}

func (s *Stack) currentFile() string {
	if s.env.CurrentFile == nil {
		return ""
	}
	return s.env.CurrentFile()
}

// traceLine renders one push/pop event for the stack trace category,
// indented by the frame's level so nesting is visible in the log.
func (s *Stack) traceLine(arrow string, frame *Frame, level int) string {
	return fmt.Sprintf("%s%s %s (depth %d)", strings.Repeat("  ", level), arrow, frame, len(s.frames))
}
