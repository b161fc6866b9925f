package helix

import "strings"

// Signature is the per-definition identity token used for hot-reload state
// matching. A definition creates one signature, populates it exactly once
// with the wrapped render value and the fingerprint of the hooks its body
// calls, and never mutates it afterwards.
//
// The fingerprint is order- and count-sensitive: reordering or adding a hook
// call changes it, which is the intended invalidation signal even when the
// rendered output is unchanged.
type Signature struct {
	populated   bool
	render      *Component
	fingerprint string
	forceReset  func() bool
	customHooks func() []any
	checks      int
}

// CreateSignature creates an empty signature handle. Generated code emits one
// package-level handle per component definition.
func CreateSignature() *Signature {
	return &Signature{}
}

// PopulateSignature fills a signature with the wrapped render value and its
// hook fingerprint. forceReset and customHooks are host-runtime extension
// points; generated code passes nil for both. Populating an already-populated
// signature is a no-op.
func PopulateSignature(sig *Signature, render *Component, fingerprint string, forceReset func() bool, customHooks func() []any) {
	if sig == nil || sig.populated {
		return
	}
	sig.populated = true
	sig.render = render
	sig.fingerprint = fingerprint
	sig.forceReset = forceReset
	sig.customHooks = customHooks
	if render != nil {
		render.signature = sig
	}
}

// Check is the self-check generated at the top of every debug-mode render
// body. It lets a hot-reload host observe that this signature's component
// began rendering. Before population it is a no-op.
func (s *Signature) Check() {
	if s == nil || !s.populated {
		return
	}
	s.checks++
}

// Fingerprint returns the joined hook fingerprint, or "" before population.
func (s *Signature) Fingerprint() string {
	if s == nil {
		return ""
	}
	return s.fingerprint
}

// Hooks returns the fingerprint split back into individual hook names.
func (s *Signature) Hooks() []string {
	if s == nil || s.fingerprint == "" {
		return nil
	}
	return strings.Split(s.fingerprint, "\n")
}

// Checks returns how many times Check has run since population.
func (s *Signature) Checks() int {
	if s == nil {
		return 0
	}
	return s.checks
}
