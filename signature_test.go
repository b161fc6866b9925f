package helix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureLifecycle(t *testing.T) {
	sig := CreateSignature()
	assert.Empty(t, sig.Fingerprint())
	assert.Nil(t, sig.Hooks())

	// Pre-population checks are no-ops.
	sig.Check()
	assert.Zero(t, sig.Checks())

	c := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	PopulateSignature(sig, c, "UseState\nUseEffect\nUseState", nil, nil)

	assert.Equal(t, "UseState\nUseEffect\nUseState", sig.Fingerprint())
	assert.Equal(t, []string{"UseState", "UseEffect", "UseState"}, sig.Hooks())
	assert.Same(t, sig, c.Signature())

	sig.Check()
	sig.Check()
	assert.Equal(t, 2, sig.Checks())
}

func TestPopulateSignatureOnce(t *testing.T) {
	sig := CreateSignature()
	c := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	PopulateSignature(sig, c, "UseState", nil, nil)

	other := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	PopulateSignature(sig, other, "UseEffect", nil, nil)

	assert.Equal(t, "UseState", sig.Fingerprint(), "second populate must be a no-op")
	assert.Nil(t, other.Signature())
}

func TestPopulateSignatureNilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		PopulateSignature(nil, nil, "UseState", nil, nil)
	})
	var sig *Signature
	assert.Empty(t, sig.Fingerprint())
	assert.Nil(t, sig.Hooks())
	assert.NotPanics(t, func() { sig.Check() })
}

func TestHotReloadRegistry(t *testing.T) {
	resetHotReload()
	t.Cleanup(resetHotReload)

	a := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	b := NewComponent(func(raw RawProps, ref any) *Element { return nil })

	RegisterForHotReload(a, "app.Button")
	got, ok := LookupComponent("app.Button")
	require.True(t, ok)
	assert.Same(t, a, got)

	// Re-registration replaces the entry.
	RegisterForHotReload(b, "app.Button")
	got, ok = LookupComponent("app.Button")
	require.True(t, ok)
	assert.Same(t, b, got)

	assert.Equal(t, []string{"app.Button"}, RegisteredComponents())

	_, ok = LookupComponent("app.Missing")
	assert.False(t, ok)
}

func TestRegisterForHotReloadIgnoresEmpty(t *testing.T) {
	resetHotReload()
	t.Cleanup(resetHotReload)

	RegisterForHotReload(nil, "app.Nil")
	c := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	RegisterForHotReload(c, "")
	assert.Empty(t, RegisteredComponents())
}

func TestRegistrySnapshotRoundTrip(t *testing.T) {
	resetHotReload()
	t.Cleanup(resetHotReload)

	button := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	PopulateSignature(CreateSignature(), button, "UseState\nUseCallback", nil, nil)
	RegisterForHotReload(button, "app.Button")

	list := NewComponent(func(raw RawProps, ref any) *Element { return nil })
	PopulateSignature(CreateSignature(), list, "UseMemo", nil, nil)
	RegisterForHotReload(list, "app.List")

	data, err := RegistrySnapshot()
	require.NoError(t, err)

	fingerprints, err := DecodeRegistrySnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"app.Button": "UseState\nUseCallback",
		"app.List":   "UseMemo",
	}, fingerprints)
}
