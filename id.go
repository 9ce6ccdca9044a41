package gui

import (
	"hash/fnv"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

// GetID hashes label into the current ID scope.
// Only the part after "##" is hashed when present, so two widgets can show
// the same text with different identities.
func (ctx *Context) GetID(label string) ID {
	if i := strings.Index(label, "##"); i >= 0 {
		label = label[i+2:]
	}

	parentID := ID(0)
	if len(ctx.idStack) > 0 {
		parentID = ctx.idStack[len(ctx.idStack)-1]
	}

	h := fnv.New64a()
	var seed [8]byte
	for i := range seed {
		seed[i] = byte(parentID >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// getIDInt hashes an integer into the current ID scope.
func (ctx *Context) getIDInt(n int) ID {
	var b [8]byte
	for i := range b {
		b[i] = byte(uint64(n) >> (8 * i))
	}
	return ctx.GetID(string(b[:]))
}

// displayLabel strips the "##" suffix from a label.
func displayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// PushID opens an ID scope; widgets inside hash their labels into it.
// Use it in loops where labels repeat.
func (ui *UI) PushID(label string) {
	ctx := ui.c()
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt opens an ID scope keyed by an integer.
func (ui *UI) PushIDInt(n int) {
	ctx := ui.c()
	ctx.idStack = append(ctx.idStack, ctx.getIDInt(n))
}

// PopID closes the last ID scope.
func (ui *UI) PopID() {
	ctx := ui.c()
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}
