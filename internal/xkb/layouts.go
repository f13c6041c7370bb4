package xkb

import (
	evdev "github.com/holoplot/go-evdev"
)

// layoutTable maps an evdev key code to its [base, shifted] symbols.
type layoutTable map[uint32][2]rune

var layouts = map[string]layoutTable{
	"us": layoutUS,
	"gb": layoutGB,
	"de": layoutDE,
	"fr": layoutFR,
	"es": layoutES,
}

// modifierKeys maps evdev modifier key codes to their modifier bit.
var modifierKeys = map[uint32]Modifier{
	uint32(evdev.KEY_LEFTSHIFT):  ModShift,
	uint32(evdev.KEY_RIGHTSHIFT): ModShift,
	uint32(evdev.KEY_CAPSLOCK):   ModCaps,
	uint32(evdev.KEY_LEFTCTRL):   ModCtrl,
	uint32(evdev.KEY_RIGHTCTRL):  ModCtrl,
	uint32(evdev.KEY_LEFTALT):    ModAlt,
	uint32(evdev.KEY_RIGHTALT):   ModAlt,
	uint32(evdev.KEY_LEFTMETA):   ModLogo,
	uint32(evdev.KEY_RIGHTMETA):  ModLogo,
}

var layoutUS = layoutTable{
	uint32(evdev.KEY_1): {'1', '!'},
	uint32(evdev.KEY_2): {'2', '@'},
	uint32(evdev.KEY_3): {'3', '#'},
	uint32(evdev.KEY_4): {'4', '$'},
	uint32(evdev.KEY_5): {'5', '%'},
	uint32(evdev.KEY_6): {'6', '^'},
	uint32(evdev.KEY_7): {'7', '&'},
	uint32(evdev.KEY_8): {'8', '*'},
	uint32(evdev.KEY_9): {'9', '('},
	uint32(evdev.KEY_0): {'0', ')'},

	uint32(evdev.KEY_Q): {'q', 'Q'},
	uint32(evdev.KEY_W): {'w', 'W'},
	uint32(evdev.KEY_E): {'e', 'E'},
	uint32(evdev.KEY_R): {'r', 'R'},
	uint32(evdev.KEY_T): {'t', 'T'},
	uint32(evdev.KEY_Y): {'y', 'Y'},
	uint32(evdev.KEY_U): {'u', 'U'},
	uint32(evdev.KEY_I): {'i', 'I'},
	uint32(evdev.KEY_O): {'o', 'O'},
	uint32(evdev.KEY_P): {'p', 'P'},
	uint32(evdev.KEY_A): {'a', 'A'},
	uint32(evdev.KEY_S): {'s', 'S'},
	uint32(evdev.KEY_D): {'d', 'D'},
	uint32(evdev.KEY_F): {'f', 'F'},
	uint32(evdev.KEY_G): {'g', 'G'},
	uint32(evdev.KEY_H): {'h', 'H'},
	uint32(evdev.KEY_J): {'j', 'J'},
	uint32(evdev.KEY_K): {'k', 'K'},
	uint32(evdev.KEY_L): {'l', 'L'},
	uint32(evdev.KEY_Z): {'z', 'Z'},
	uint32(evdev.KEY_X): {'x', 'X'},
	uint32(evdev.KEY_C): {'c', 'C'},
	uint32(evdev.KEY_V): {'v', 'V'},
	uint32(evdev.KEY_B): {'b', 'B'},
	uint32(evdev.KEY_N): {'n', 'N'},
	uint32(evdev.KEY_M): {'m', 'M'},

	uint32(evdev.KEY_MINUS):      {'-', '_'},
	uint32(evdev.KEY_EQUAL):      {'=', '+'},
	uint32(evdev.KEY_LEFTBRACE):  {'[', '{'},
	uint32(evdev.KEY_RIGHTBRACE): {']', '}'},
	uint32(evdev.KEY_SEMICOLON):  {';', ':'},
	uint32(evdev.KEY_APOSTROPHE): {'\'', '"'},
	uint32(evdev.KEY_GRAVE):      {'`', '~'},
	uint32(evdev.KEY_BACKSLASH):  {'\\', '|'},
	uint32(evdev.KEY_COMMA):      {',', '<'},
	uint32(evdev.KEY_DOT):        {'.', '>'},
	uint32(evdev.KEY_SLASH):      {'/', '?'},
	uint32(evdev.KEY_SPACE):      {' ', ' '},
	uint32(evdev.KEY_TAB):        {'\t', '\t'},
	uint32(evdev.KEY_ENTER):      {'\n', '\n'},
}

var layoutGB = derive(layoutUS, layoutTable{
	uint32(evdev.KEY_2):          {'2', '"'},
	uint32(evdev.KEY_3):          {'3', '£'},
	uint32(evdev.KEY_APOSTROPHE): {'\'', '@'},
	uint32(evdev.KEY_GRAVE):      {'`', '¬'},
	uint32(evdev.KEY_BACKSLASH):  {'#', '~'},
})

var layoutDE = derive(layoutUS, layoutTable{
	// QWERTZ: y and z swap
	uint32(evdev.KEY_Y):          {'z', 'Z'},
	uint32(evdev.KEY_Z):          {'y', 'Y'},
	uint32(evdev.KEY_2):          {'2', '"'},
	uint32(evdev.KEY_3):          {'3', '§'},
	uint32(evdev.KEY_6):          {'6', '&'},
	uint32(evdev.KEY_7):          {'7', '/'},
	uint32(evdev.KEY_8):          {'8', '('},
	uint32(evdev.KEY_9):          {'9', ')'},
	uint32(evdev.KEY_0):          {'0', '='},
	uint32(evdev.KEY_MINUS):      {'ß', '?'},
	uint32(evdev.KEY_LEFTBRACE):  {'ü', 'Ü'},
	uint32(evdev.KEY_SEMICOLON):  {'ö', 'Ö'},
	uint32(evdev.KEY_APOSTROPHE): {'ä', 'Ä'},
	uint32(evdev.KEY_SLASH):      {'-', '_'},
})

// AZERTY. The letter swaps mirror the QWERTY<->AZERTY pairs: a<->q,
// z<->w, and m moving to the semicolon position.
var layoutFR = derive(layoutUS, layoutTable{
	uint32(evdev.KEY_Q):         {'a', 'A'},
	uint32(evdev.KEY_A):         {'q', 'Q'},
	uint32(evdev.KEY_W):         {'z', 'Z'},
	uint32(evdev.KEY_Z):         {'w', 'W'},
	uint32(evdev.KEY_SEMICOLON): {'m', 'M'},
	uint32(evdev.KEY_M):         {',', '?'},
	uint32(evdev.KEY_1):         {'&', '1'},
	uint32(evdev.KEY_2):         {'é', '2'},
	uint32(evdev.KEY_3):         {'"', '3'},
	uint32(evdev.KEY_4):         {'\'', '4'},
	uint32(evdev.KEY_5):         {'(', '5'},
	uint32(evdev.KEY_6):         {'-', '6'},
	uint32(evdev.KEY_7):         {'è', '7'},
	uint32(evdev.KEY_8):         {'_', '8'},
	uint32(evdev.KEY_9):         {'ç', '9'},
	uint32(evdev.KEY_0):         {'à', '0'},
	uint32(evdev.KEY_COMMA):     {';', '.'},
	uint32(evdev.KEY_DOT):       {':', '/'},
})

var layoutES = derive(layoutUS, layoutTable{
	uint32(evdev.KEY_SEMICOLON):  {'ñ', 'Ñ'},
	uint32(evdev.KEY_2):          {'2', '"'},
	uint32(evdev.KEY_3):          {'3', '·'},
	uint32(evdev.KEY_6):          {'6', '&'},
	uint32(evdev.KEY_7):          {'7', '/'},
	uint32(evdev.KEY_8):          {'8', '('},
	uint32(evdev.KEY_9):          {'9', ')'},
	uint32(evdev.KEY_0):          {'0', '='},
	uint32(evdev.KEY_MINUS):      {'\'', '?'},
	uint32(evdev.KEY_APOSTROPHE): {'´', '¨'},
	uint32(evdev.KEY_SLASH):      {'-', '_'},
})

func derive(base, overrides layoutTable) layoutTable {
	t := make(layoutTable, len(base))
	for code, syms := range base {
		t[code] = syms
	}
	for code, syms := range overrides {
		t[code] = syms
	}
	return t
}
