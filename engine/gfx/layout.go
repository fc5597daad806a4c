package gfx

import (
	"errors"
	"fmt"
)

// ErrEmptyLayout is returned when an input layout has no attributes.
var ErrEmptyLayout = errors.New("gfx: input layout has no attributes")

// VertexAttrib is one per-vertex attribute. Semantic names the shader input
// it feeds; Offset is its byte offset inside a vertex.
type VertexAttrib struct {
	Semantic string
	Format   Format
	Offset   int
}

// Layout is an ordered list of vertex attributes packed back to back.
type Layout struct {
	Attribs []VertexAttrib
	stride  int
}

// Add appends an attribute right after the previous one. Only vertex formats
// are accepted; anything else is a programming error.
func (l *Layout) Add(semantic string, f Format) *Layout {
	if !f.IsVertex() {
		panic(fmt.Sprintf("gfx: %v is not a vertex format (attribute %q)", f, semantic))
	}
	l.Attribs = append(l.Attribs, VertexAttrib{Semantic: semantic, Format: f, Offset: l.stride})
	l.stride += f.Size()
	return l
}

// Stride is the byte size of one vertex described by the layout.
func (l *Layout) Stride() int { return l.stride }

// Validate checks the preconditions shared by every backend.
func (l *Layout) Validate() error {
	if l == nil || len(l.Attribs) == 0 {
		return ErrEmptyLayout
	}
	return nil
}
