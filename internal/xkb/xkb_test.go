package xkb

import (
	"testing"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleNamesFromEnv(t *testing.T) {
	t.Setenv("XKB_DEFAULT_RULES", "base")
	t.Setenv("XKB_DEFAULT_MODEL", "pc104")
	t.Setenv("XKB_DEFAULT_LAYOUT", "fr")
	t.Setenv("XKB_DEFAULT_VARIANT", "oss")
	t.Setenv("XKB_DEFAULT_OPTIONS", "caps:escape")

	names := RuleNamesFromEnv()
	assert.Equal(t, RuleNames{
		Rules:   "base",
		Model:   "pc104",
		Layout:  "fr",
		Variant: "oss",
		Options: "caps:escape",
	}, names)
}

func TestRuleNamesFromEnv_Unset(t *testing.T) {
	for _, v := range []string{
		"XKB_DEFAULT_RULES", "XKB_DEFAULT_MODEL", "XKB_DEFAULT_LAYOUT",
		"XKB_DEFAULT_VARIANT", "XKB_DEFAULT_OPTIONS",
	} {
		t.Setenv(v, "")
	}
	assert.Equal(t, RuleNames{}, RuleNamesFromEnv())
}

func TestCompileKeymap_EmptyNamesUseDefaults(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	km, err := ctx.CompileKeymap(RuleNames{})
	require.NoError(t, err)
	defer km.Unref()

	names := km.RuleNames()
	assert.Equal(t, "evdev", names.Rules)
	assert.Equal(t, "pc105", names.Model)
	assert.Equal(t, "us", names.Layout)
	assert.Equal(t, []string{"us"}, km.Layouts())

	sym, ok := km.KeysymAt(uint32(evdev.KEY_A), 0, 0)
	require.True(t, ok)
	assert.Equal(t, 'a', sym)

	sym, ok = km.KeysymAt(uint32(evdev.KEY_A), 0, 1)
	require.True(t, ok)
	assert.Equal(t, 'A', sym)
}

func TestCompileKeymap_Layouts(t *testing.T) {
	tests := []struct {
		name    string
		layout  string
		code    uint32
		level   int
		wantSym rune
	}{
		{"us base", "us", uint32(evdev.KEY_Q), 0, 'q'},
		{"fr swaps q to a", "fr", uint32(evdev.KEY_Q), 0, 'a'},
		{"fr m at semicolon", "fr", uint32(evdev.KEY_SEMICOLON), 0, 'm'},
		{"fr digits shifted", "fr", uint32(evdev.KEY_2), 1, '2'},
		{"de qwertz", "de", uint32(evdev.KEY_Y), 0, 'z'},
		{"gb pound", "gb", uint32(evdev.KEY_3), 1, '£'},
		{"es ntilde", "es", uint32(evdev.KEY_SEMICOLON), 0, 'ñ'},
	}

	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := ctx.CompileKeymap(RuleNames{Layout: tt.layout})
			require.NoError(t, err)
			defer km.Unref()

			sym, ok := km.KeysymAt(tt.code, 0, tt.level)
			require.True(t, ok)
			assert.Equal(t, tt.wantSym, sym)
		})
	}
}

func TestCompileKeymap_MultipleLayouts(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	km, err := ctx.CompileKeymap(RuleNames{Layout: "us, fr"})
	require.NoError(t, err)
	defer km.Unref()

	assert.Equal(t, 2, km.NumLayouts())
	assert.Equal(t, []string{"us", "fr"}, km.Layouts())

	sym, ok := km.KeysymAt(uint32(evdev.KEY_Q), 1, 0)
	require.True(t, ok)
	assert.Equal(t, 'a', sym)
}

func TestCompileKeymap_UnknownLayout(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.CompileKeymap(RuleNames{Layout: "qz"})
	assert.ErrorIs(t, err, ErrUnknownLayout)

	// One bad layout in a list fails the whole compile.
	_, err = ctx.CompileKeymap(RuleNames{Layout: "us,qz"})
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestContext_Closed(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	ctx.Close()
	ctx.Close() // Idempotent

	_, err = ctx.CompileKeymap(RuleNames{})
	assert.ErrorIs(t, err, ErrContextClosed)
}

func TestKeymap_RefCounting(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	km, err := ctx.CompileKeymap(RuleNames{})
	require.NoError(t, err)

	km.Ref()
	km.Unref()

	// Still alive with one reference
	_, ok := km.KeysymAt(uint32(evdev.KEY_A), 0, 0)
	assert.True(t, ok)

	km.Unref()

	// Released: tables are gone and further release is a bug.
	_, ok = km.KeysymAt(uint32(evdev.KEY_A), 0, 0)
	assert.False(t, ok)
	assert.Panics(t, func() { km.Unref() })
	assert.Panics(t, func() { km.Ref() })
}

func TestKeymap_ModifierForKey(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	defer ctx.Close()

	km, err := ctx.CompileKeymap(RuleNames{})
	require.NoError(t, err)
	defer km.Unref()

	assert.Equal(t, ModShift, km.ModifierForKey(uint32(evdev.KEY_LEFTSHIFT)))
	assert.Equal(t, ModCtrl, km.ModifierForKey(uint32(evdev.KEY_RIGHTCTRL)))
	assert.Equal(t, ModAlt, km.ModifierForKey(uint32(evdev.KEY_LEFTALT)))
	assert.Equal(t, ModLogo, km.ModifierForKey(uint32(evdev.KEY_LEFTMETA)))
	assert.Equal(t, Modifier(0), km.ModifierForKey(uint32(evdev.KEY_A)))
}
