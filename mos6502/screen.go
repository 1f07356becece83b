package mos6502

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"
)

// The screen is memory $0200-$05FF read as 32 rows of 32 pixels. Each byte
// selects a palette colour with its low nibble.
const (
	ScreenWidth  = 32
	ScreenHeight = 32
)

// Palette maps colour indexes $0-$F to RGBA. The order is part of the
// contract with programs and must not change.
var Palette = [16]color.RGBA{
	colornames.Black,      // $0
	colornames.White,      // $1
	colornames.Red,        // $2
	colornames.Cyan,       // $3
	colornames.Purple,     // $4
	colornames.Green,      // $5
	colornames.Blue,       // $6
	colornames.Yellow,     // $7
	colornames.Orange,     // $8
	colornames.Brown,      // $9
	colornames.Lightpink,  // $a light red
	colornames.Darkgray,   // $b
	colornames.Gray,       // $c
	colornames.Lightgreen, // $d
	colornames.Lightblue,  // $e
	colornames.Lightgray,  // $f
}

// PixelColor returns the colour a screen byte is drawn with.
func PixelColor(b byte) color.RGBA {
	return Palette[b&0x0F]
}

// ScreenAddr returns the address of the pixel at x, y.
func ScreenAddr(x, y int) uint16 {
	return ScreenStart + uint16(y*ScreenWidth+x)
}

// Frame draws the screen memory into dst, one image pixel per screen pixel.
// A nil or wrongly sized dst is replaced by a new image, which is returned.
func (b *Bus) Frame(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds() != image.Rect(0, 0, ScreenWidth, ScreenHeight) {
		dst = image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	}

	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			dst.SetRGBA(x, y, PixelColor(b.Read(ScreenAddr(x, y))))
		}
	}

	return dst
}

// IsScreenWrite reports whether a retired instruction stored to screen
// memory, which is when a host needs to redraw.
func IsScreenWrite(ev Event) bool {
	if ev.Access != AccessWrite && ev.Access != AccessModify {
		return false
	}
	if !ev.Operand.HasAddr() {
		return false
	}
	return ev.Operand.Addr >= ScreenStart && ev.Operand.Addr <= ScreenEnd
}
