package main

import (
	"fmt"
	"image"
	"log"

	"github.com/n-ulricksen/easy6502/mos6502"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Display struct {
	rgba *image.RGBA // Frame image of screen memory, one pixel per byte.

	window       *pixelgl.Window
	screenMatrix pixel.Matrix // Scale and position to render the 6502 screen.

	debug *text.Text // Register and memory panel, nil when disabled.
}

const (
	// Main display settings
	screenResW float64 = mos6502.ScreenWidth
	screenResH float64 = mos6502.ScreenHeight
	scale      float64 = 15 // Scale at which to render the 6502 screen.
	screenW    float64 = screenResW * scale
	screenH    float64 = screenResH * scale
	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 400

	// Debug display settings
	debugResW float64 = 420
	debugPad  float64 = 8
)

func NewDisplay(debug bool) *Display {
	bounds := pixel.R(0, 0, screenW, screenH)
	if debug {
		bounds = pixel.R(0, 0, screenW+debugResW, screenH)
	}

	config := pixelgl.WindowConfig{
		Title:    "easy6502",
		Bounds:   bounds,
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("Unable to create new PixelGl window...\n", err)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, int(screenResW), int(screenResH)))

	// Calculate matrix required to render the screen to display based on the set scale.
	pic := pixel.PictureDataFromImage(rgba)

	matrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	matrix = matrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	d := &Display{
		rgba:         rgba,
		window:       window,
		screenMatrix: matrix,
	}

	if debug {
		atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
		d.debug = text.New(pixel.V(screenW+debugPad, screenH-debugPad-atlas.LineHeight()), atlas)
		d.debug.Color = colornames.Lightgreen
	}

	return d
}

func (d *Display) Closed() bool {
	return d.window.Closed()
}

// Redraw the frame image from screen memory.
func (d *Display) Refresh(bus *mos6502.Bus) {
	d.rgba = bus.Frame(d.rgba)
}

func (d *Display) UpdateScreen(e *emulator) {
	d.window.Clear(colornames.Black)

	pic := pixel.PictureDataFromImage(d.rgba)

	sprite := pixel.NewSprite(pic, pic.Bounds())
	sprite.Draw(d.window, d.screenMatrix)

	if d.debug != nil {
		d.debug.Clear()
		printDebugCpu(d.debug, e)
		printDebugMem(d.debug, e.cpu.Bus())
		d.debug.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

func printDebugCpu(t *text.Text, e *emulator) {
	cpu := e.cpu

	fmt.Fprintf(t, "Flags: %s\n", cpu.Flags())
	fmt.Fprintf(t, "PC: $%04X  SP: $%02X\n", cpu.Pc, cpu.Sp)
	fmt.Fprintf(t, "A: $%02X  X: $%02X  Y: $%02X\n\n", cpu.A, cpu.X, cpu.Y)

	// Cycles
	fmt.Fprintf(t, "Cycle Count: %d\n", cpu.CycleCount)
	fmt.Fprintf(t, "Steps: %d\n", cpu.StepCount)
	fmt.Fprintf(t, "State: %v\n", cpu.State())
	if cpu.Fault() != nil {
		fmt.Fprintf(t, "%v\n", cpu.Fault())
	}
	fmt.Fprintf(t, "Key: $%02X\n\n", e.controller.lastKey)

	// Instructions
	fmt.Fprintf(t, "%s\n\n", cpu.Bus().DisassembleAt(cpu.Pc))
}

func printDebugMem(t *text.Text, bus *mos6502.Bus) {
	// Print 16 bytes per line.
	const ramRowLimit = 0x0010

	// Zero page: 0x0000-0x00FF
	ram := bus.Slice(mos6502.ZeroPage, mos6502.ZeroPage+0xFF)
	for i := 0; i < len(ram); i += ramRowLimit {
		fmt.Fprintf(t, "$%04X: % x\n", i, ram[i:i+ramRowLimit])
	}
}
