package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/n-ulricksen/easy6502/mos6502"

	"github.com/faiface/pixel/pixelgl"
)

// Command line flags
var (
	flagDebug    bool
	flagLogging  bool
	flagHeadless bool
	flagSeed     int64
	flagSpeed    int
	flagBudget   int
	flagOrigin   uint
	flagSnapshot string
	flagRestore  string
	flagRandom   bool
)

// Frames per second
const fps float64 = 60.0

// Bytes disassembled from the program counter of a restored snapshot.
const restoreListing = 0x20

type emulator struct {
	cpu        *mos6502.Cpu6502
	display    *Display
	controller *Controller

	dirty bool // Screen memory changed since the last redraw.
}

func main() {
	parseFlags()

	program := demoProgram
	if flag.NArg() > 0 && flagRestore == "" {
		var err error
		if program, err = loadProgram(flag.Arg(0)); err != nil {
			log.Fatal(err)
		}
	}

	opts := []mos6502.Option{mos6502.WithSeed(flagSeed)}
	if flagLogging {
		opts = append(opts, mos6502.WithLogger(newCpuLogger()))
	}
	if flagRandom {
		opts = append(opts, mos6502.WithRandomRefresh(mos6502.RefreshPerStep))
	}

	emu := &emulator{
		cpu:        mos6502.NewCpu6502(opts...),
		controller: NewController(),
		dirty:      true,
	}
	emu.cpu.SetObserver(emu.observe)

	start, length := uint16(flagOrigin), len(program)
	if flagRestore != "" {
		fmt.Println("Restoring snapshot...")
		snap, err := restoreSnapshot(flagRestore)
		if err != nil {
			log.Fatal(err)
		}
		emu.cpu.Restore(snap)
		start, length = emu.cpu.Pc, restoreListing
	} else {
		fmt.Println("Loading program...")
		emu.cpu.Load(start, program)
	}

	if flagDebug {
		for _, line := range emu.cpu.Bus().DisassembleRange(start, listingEnd(start, length)) {
			fmt.Println(line)
		}
	}

	if flagHeadless {
		emu.runHeadless()
		return
	}

	pixelgl.Run(emu.Run)
}

func parseFlags() {
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable logging")
	flag.BoolVar(&flagHeadless, "headless", false, "run without a window and print the final state")
	flag.Int64Var(&flagSeed, "seed", 1, "seed for the random byte at $00FE")
	flag.BoolVar(&flagRandom, "r", false, "refresh the random byte before every instruction")
	flag.IntVar(&flagSpeed, "speed", 500, "instructions executed per frame")
	flag.IntVar(&flagBudget, "budget", 0, "stop after this many instructions, 0 for no limit")
	flag.UintVar(&flagOrigin, "origin", uint(mos6502.DefaultOrigin), "load address of the program")
	flag.StringVar(&flagSnapshot, "snapshot", "", "write a machine snapshot to this file on exit")
	flag.StringVar(&flagRestore, "restore", "", "resume from a snapshot file; the program argument is ignored")

	flag.Parse()

	if flagOrigin > 0xFFFF {
		log.Fatalf("origin %#x out of range", flagOrigin)
	}
	if flagSpeed < 1 {
		flagSpeed = 1
	}
}

// Last address of a length byte listing from start, clamped to the top of
// memory.
func listingEnd(start uint16, length int) uint16 {
	if length < 1 {
		return start
	}

	end := int(start) + length - 1
	if end > 0xFFFF {
		return 0xFFFF
	}
	return uint16(end)
}

// Create log file.
func newCpuLogger() *log.Logger {
	if err := os.MkdirAll("./logs", 0775); err != nil {
		log.Fatal("Unable to create log directory...\n", err)
	}

	now := time.Now()
	logFile := fmt.Sprintf("./logs/cpu%s.log", now.Format("20060102-150405"))
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		log.Fatal("Unable to create CPU log file...\n", err)
	}

	return log.New(f, "", 0)
}

func (e *emulator) observe(ev mos6502.Event) {
	if mos6502.IsScreenWrite(ev) {
		e.dirty = true
	}
}

// Number of instructions to run this frame, respecting the total budget.
func (e *emulator) frameSteps() int {
	if flagBudget <= 0 {
		return flagSpeed
	}

	left := flagBudget - int(e.cpu.StepCount)
	if left < flagSpeed {
		return left
	}
	return flagSpeed
}

// Advance the CPU by one frame's worth of instructions. Reports whether the
// program is finished.
func (e *emulator) frame() bool {
	if e.cpu.State() != mos6502.Running {
		return true
	}

	steps := e.frameSteps()
	if steps <= 0 {
		return true
	}

	stop, err := e.cpu.Run(steps)
	if err != nil {
		log.Println(err)
	}
	if stop != mos6502.StopBudget {
		fmt.Println("CPU stopped:", stop)
		return true
	}
	if flagBudget > 0 && int(e.cpu.StepCount) >= flagBudget {
		fmt.Println("CPU stopped:", stop)
		return true
	}

	return false
}

func (e *emulator) Run() {
	// Create a PixelGL display to render screen memory to.
	e.display = NewDisplay(flagDebug)

	intervalInMilli := (1 / fps) * 1000
	interval := time.Duration(intervalInMilli) * time.Millisecond
	fmt.Println("Frame refresh time:", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Use a time ticker to keep frames rendered steadily at a set FPS. The
	// window stays open after the program stops so the result can be seen.
	done := false
	for !e.display.Closed() {
		if key, ok := e.controller.Poll(e.display.window); ok {
			e.cpu.PressKey(key)
		}

		if !done {
			done = e.frame()
		}

		if e.dirty {
			e.display.Refresh(e.cpu.Bus())
			e.dirty = false
		}
		e.display.UpdateScreen(e)

		<-ticker.C
	}

	e.finish()
}

func (e *emulator) runHeadless() {
	start := time.Now()
	for !e.frame() {
	}
	timeTrack(start, e.cpu.StepCount)

	printScreen(e.cpu.Bus())
	fmt.Println(e.cpu.Registers, e.cpu.Flags())

	e.finish()
}

// Print screen memory as hex digits, one row per line.
func printScreen(bus *mos6502.Bus) {
	for y := 0; y < mos6502.ScreenHeight; y++ {
		row := bus.Slice(mos6502.ScreenAddr(0, y), mos6502.ScreenAddr(mos6502.ScreenWidth-1, y))
		for _, b := range row {
			fmt.Printf("%x", b&0x0F)
		}
		fmt.Println()
	}
}

func restoreSnapshot(filepath string) (mos6502.Snapshot, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return mos6502.Snapshot{}, fmt.Errorf("unable to open %v: %w", filepath, err)
	}
	defer f.Close()

	return mos6502.LoadSnapshot(f)
}

func (e *emulator) finish() {
	if flagSnapshot == "" {
		return
	}

	f, err := os.Create(flagSnapshot)
	if err != nil {
		log.Fatal("Unable to create snapshot file...\n", err)
	}

	if err := e.cpu.Snapshot().Save(f); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Snapshot written to", flagSnapshot)
}
