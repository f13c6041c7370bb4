// Package xkb is the keyboard symbol-map boundary: it turns the five
// XKB_DEFAULT_* settings into a compiled keymap that translates evdev
// key codes into symbols and modifier bits. Compilation happens through
// a scoped Context; the resulting Keymap is reference counted so a
// keyboard can hold onto it after the compiling context is gone.
package xkb

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrContextClosed is returned when compiling on a closed context.
	ErrContextClosed = errors.New("xkb context is closed")
	// ErrUnknownLayout is returned when a layout name has no table.
	ErrUnknownLayout = errors.New("unknown keyboard layout")
)

// RuleNames carries the five optional keymap settings. Empty fields are
// replaced by xkbcommon-compatible defaults at compile time.
type RuleNames struct {
	Rules   string
	Model   string
	Layout  string
	Variant string
	Options string
}

// RuleNamesFromEnv reads the XKB_DEFAULT_* environment variables. Unset
// variables yield empty fields, which compile to the default keymap.
func RuleNamesFromEnv() RuleNames {
	return RuleNames{
		Rules:   os.Getenv("XKB_DEFAULT_RULES"),
		Model:   os.Getenv("XKB_DEFAULT_MODEL"),
		Layout:  os.Getenv("XKB_DEFAULT_LAYOUT"),
		Variant: os.Getenv("XKB_DEFAULT_VARIANT"),
		Options: os.Getenv("XKB_DEFAULT_OPTIONS"),
	}
}

const (
	defaultRules  = "evdev"
	defaultModel  = "pc105"
	defaultLayout = "us"
)

func (n RuleNames) withDefaults() RuleNames {
	if n.Rules == "" {
		n.Rules = defaultRules
	}
	if n.Model == "" {
		n.Model = defaultModel
	}
	if n.Layout == "" {
		n.Layout = defaultLayout
	}
	return n
}

// Context is the compilation scope for keymaps. It must be closed when
// compilation is done; keymaps outlive it via their own reference count.
type Context struct {
	closed bool
}

// NewContext creates a keymap compilation context. Failure here is an
// environment fault: no layout data is available at all.
func NewContext() (*Context, error) {
	if len(layouts) == 0 {
		return nil, errors.New("no keyboard layout tables available")
	}
	return &Context{}, nil
}

// Close releases the context. Idempotent.
func (c *Context) Close() {
	c.closed = true
}

// CompileKeymap builds a keymap from rule names. Every comma-separated
// layout must resolve to a known table. The returned keymap starts with
// one reference owned by the caller.
func (c *Context) CompileKeymap(names RuleNames) (*Keymap, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	names = names.withDefaults()

	var resolved []string
	var tables []layoutTable
	for _, name := range strings.Split(names.Layout, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			name = defaultLayout
		}
		table, ok := layouts[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
		}
		resolved = append(resolved, name)
		tables = append(tables, table)
	}

	return &Keymap{
		refs:    1,
		names:   names,
		layouts: resolved,
		tables:  tables,
	}, nil
}

// Keymap is a compiled symbol map. It is reference counted: Ref/Unref
// must balance, and the symbol tables are dropped when the last
// reference is released.
type Keymap struct {
	refs    int
	names   RuleNames
	layouts []string
	tables  []layoutTable
}

// Ref takes an additional reference and returns the keymap.
func (k *Keymap) Ref() *Keymap {
	if k.refs <= 0 {
		panic("xkb: ref of released keymap")
	}
	k.refs++
	return k
}

// Unref drops one reference, releasing the symbol tables on the last.
// Unbalanced release is a bug, not a recoverable condition.
func (k *Keymap) Unref() {
	if k.refs <= 0 {
		panic("xkb: keymap unref past zero")
	}
	k.refs--
	if k.refs == 0 {
		k.tables = nil
	}
}

// RuleNames returns the settings the keymap was compiled from, with
// defaults filled in.
func (k *Keymap) RuleNames() RuleNames { return k.names }

// Layouts returns the resolved layout names, in order.
func (k *Keymap) Layouts() []string { return k.layouts }

// NumLayouts returns how many layouts the keymap carries.
func (k *Keymap) NumLayouts() int { return len(k.layouts) }

// KeysymAt resolves an evdev key code to a symbol in the given layout
// at the given shift level (0 = base, 1 = shifted). ok is false when
// the layout index is out of range or the key has no symbol.
func (k *Keymap) KeysymAt(code uint32, layout, level int) (rune, bool) {
	if layout < 0 || layout >= len(k.tables) {
		return 0, false
	}
	syms, ok := k.tables[layout][code]
	if !ok {
		return 0, false
	}
	if level < 0 || level > 1 {
		return 0, false
	}
	sym := syms[level]
	if sym == 0 {
		return 0, false
	}
	return sym, true
}

// ModifierForKey returns the modifier bit a key code contributes, or
// zero for non-modifier keys.
func (k *Keymap) ModifierForKey(code uint32) Modifier {
	return modifierKeys[code]
}

// Modifier is a bitmask of depressed/latched/locked modifiers.
type Modifier uint32

const (
	ModShift Modifier = 1 << iota
	ModCaps
	ModCtrl
	ModAlt
	ModLogo
)
