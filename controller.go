package main

import (
	"github.com/faiface/pixel/pixelgl"
)

// Controller turns keyboard input into the ASCII code programs poll at $00FF.
type Controller struct {
	lastKey byte // Last key delivered to the CPU.
}

func NewController() *Controller {
	return &Controller{}
}

// Keys that produce no typed text, and the codes they send. Arrows send the
// same codes as w/a/s/d.
// Keyboard binds:
/*
	Up        ---> 'w'
	Left      ---> 'a'
	Down      ---> 's'
	Right     ---> 'd'
	Enter     ---> $0D
	Backspace ---> $08
	Tab       ---> $09
	Escape    ---> $1B
*/
var controlKeys = []struct {
	button pixelgl.Button
	code   byte
}{
	{pixelgl.KeyUp, 'w'},
	{pixelgl.KeyLeft, 'a'},
	{pixelgl.KeyDown, 's'},
	{pixelgl.KeyRight, 'd'},
	{pixelgl.KeyEnter, 0x0D},
	{pixelgl.KeyBackspace, 0x08},
	{pixelgl.KeyTab, 0x09},
	{pixelgl.KeyEscape, 0x1B},
}

// Poll returns the key pressed since the last frame, if any.
func (c *Controller) Poll(win *pixelgl.Window) (byte, bool) {
	var pressed []pixelgl.Button
	for _, k := range controlKeys {
		if win.JustPressed(k.button) {
			pressed = append(pressed, k.button)
		}
	}

	key, ok := keyCode(win.Typed(), pressed)
	if ok {
		c.lastKey = key
	}

	return key, ok
}

// keyCode chooses the byte to deliver for one frame of input. A bound key
// wins over typed text; with several, the last in controlKeys order wins.
func keyCode(typed string, pressed []pixelgl.Button) (byte, bool) {
	key, ok := asciiKey(typed)

	for _, k := range controlKeys {
		for _, b := range pressed {
			if b == k.button {
				key, ok = k.code, true
			}
		}
	}

	return key, ok
}

// asciiKey picks the last printable ASCII character of typed text.
func asciiKey(typed string) (byte, bool) {
	for i := len(typed) - 1; i >= 0; i-- {
		if c := typed[i]; c >= 0x20 && c < 0x7F {
			return c, true
		}
	}
	return 0, false
}
