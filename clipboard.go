package main

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// selectionAtoms are the interned atoms the clipboard protocol speaks.
type selectionAtoms struct {
	Clipboard    xproto.Atom
	Targets      xproto.Atom
	UTF8String   xproto.Atom
	CompoundText xproto.Atom
}

// selectionOwner is the windowing capability the clipboard consumes: claim
// the selection and answer a peer's request.
type selectionOwner interface {
	// AssertOwnership claims the CLIPBOARD selection and reports whether
	// the claim stuck.
	AssertOwnership() error
	// ReplyProperty stores reply data on the requestor's window under the
	// requested property.
	ReplyProperty(req *xproto.SelectionRequestEvent, typ xproto.Atom, format byte, data []byte)
	// NotifyRequestor tells the requestor which property holds the reply;
	// AtomNone means the request was refused.
	NotifyRequestor(req *xproto.SelectionRequestEvent, property xproto.Atom)
}

// Clipboard holds the last committed text in a fixed 64-byte buffer and
// answers selection requests from it. Text longer than the buffer is
// silently truncated; that cap is part of the contract.
type Clipboard struct {
	buf   [clipboardBufferSize]byte
	n     int
	atoms selectionAtoms
	owner selectionOwner
}

func NewClipboard(atoms selectionAtoms, owner selectionOwner) *Clipboard {
	return &Clipboard{atoms: atoms, owner: owner}
}

// Set overwrites the buffer, truncating to capacity.
func (c *Clipboard) Set(text string) {
	c.n = copy(c.buf[:], text)
}

// Text returns the current buffer contents; empty before the first commit.
func (c *Clipboard) Text() string {
	return string(c.buf[:c.n])
}

// Commit stages text and claims selection ownership. The buffer is updated
// even when the claim fails, so the staged data stays correct for a retry.
func (c *Clipboard) Commit(text string) error {
	c.Set(text)
	return c.owner.AssertOwnership()
}

// Targets is the fixed ordered list of representations served to peers.
func (c *Clipboard) Targets() []xproto.Atom {
	return []xproto.Atom{c.atoms.Targets, xproto.AtomString, c.atoms.UTF8String, c.atoms.CompoundText}
}

func (c *Clipboard) supportsTarget(t xproto.Atom) bool {
	return t == xproto.AtomString || t == c.atoms.UTF8String || t == c.atoms.CompoundText
}

// HandleRequest answers one foreign selection request. Capability queries
// (TARGETS) get the fixed target list, data queries get the buffer, and
// anything else gets an explicit refusal so the peer is never left hanging.
func (c *Clipboard) HandleRequest(req *xproto.SelectionRequestEvent) {
	property := req.Property
	switch {
	case req.Target == c.atoms.Targets:
		c.owner.ReplyProperty(req, xproto.AtomAtom, 32, atomBytes(c.Targets()))
	case c.supportsTarget(req.Target):
		c.owner.ReplyProperty(req, req.Target, 8, c.buf[:c.n])
	default:
		property = xproto.AtomNone
	}
	c.owner.NotifyRequestor(req, property)
}

// atomBytes serializes atoms for a 32-bit-format property write.
func atomBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, 4*len(atoms))
	for i, a := range atoms {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}
