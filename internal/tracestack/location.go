package tracestack

import "strings"

// Nowhere is the location placeholder for a stack with no frames, no
// after-frame, and no currently processing file.
const Nowhere = "<nowhere>"

// formatHead builds the one-line location summary from a frame slice
// (bottom-first) and the last popped frame. The second return is false when
// there is no information to report at all.
//
// Not every frame carries position data (text frames never do), so when the
// top lacks a line number the builder searches downward for the nearest
// ancestor that has one and reports it as "near". The popped frame is
// appended as "after" only when it plausibly refers to the same file as
// whichever frame supplied the location, or when no frame named a file.
func formatHead(frames []*Frame, after *Frame) (string, bool) {
	if len(frames) == 0 {
		if after == nil {
			return "", false
		}
		return "after " + after.Render(false), true
	}
	top := frames[len(frames)-1]
	var sb strings.Builder
	sb.WriteString(top.Render(false))
	locationFile := top.File
	if top.Lno == 0 {
		for i := len(frames) - 2; i >= 0; i-- {
			ancestor := frames[i]
			if ancestor.Lno == 0 {
				continue
			}
			sb.WriteString(" near ")
			sb.WriteString(ancestor.Render(ancestor.File == top.File))
			locationFile = ancestor.File
			break
		}
	}
	if after != nil && (locationFile == "" || after.File == locationFile) {
		sb.WriteString(" after ")
		sb.WriteString(after.Render(true))
	}
	return sb.String(), true
}

// LocationInfo returns a one-line summary of where the engine currently is,
// for embedding in warning and error messages. It never fails: with no
// frames and no after-frame it falls back to the currently processing file,
// then to Nowhere.
func (s *Stack) LocationInfo() string {
	if head, ok := formatHead(s.frames, s.after); ok {
		return head
	}
	return s.locationFallback()
}

// LocationTrace returns the full stack as a multi-line trace for verbose
// error output. The first line is the head built from the top frame alone,
// the remaining frames follow nearest-first; every line is tab-indented and
// newline-terminated so the block can be appended to a message as is.
func (s *Stack) LocationTrace() string {
	var top []*Frame
	if len(s.frames) > 0 {
		top = s.frames[len(s.frames)-1:]
	}
	head, ok := formatHead(top, s.after)
	if !ok {
		head = s.locationFallback()
	}
	var sb strings.Builder
	sb.WriteByte('\t')
	sb.WriteString(head)
	sb.WriteByte('\n')
	for i := len(s.frames) - 2; i >= 0; i-- {
		sb.WriteByte('\t')
		sb.WriteString(s.frames[i].Render(false))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *Stack) locationFallback() string {
	if file := s.currentFile(); file != "" {
		return file
	}
	return Nowhere
}
