package mos6502

import (
	"bytes"
	"fmt"
	"log"
)

// Event describes one retired instruction. It is handed to the observer after
// the instruction has executed.
type Event struct {
	Pc      uint16 // Address of the instruction.
	Opcode  byte
	Name    string
	Access  Access
	Operand Operand
}

// Observer is called once per retired instruction. It must not call back
// into Step or Run.
type Observer func(Event)

// Cpu6502 owns the register file and the 64KB bus of one emulator instance.
// It is not safe for concurrent use.
type Cpu6502 struct {
	Registers

	bus *Bus // Communication Bus

	state State
	fault error

	// Internal variables
	CycleCount  uint64 // Total # of cycles executed by the CPU
	StepCount   uint64 // Total # of instructions retired
	extraCycles byte   // Cycles added by the current instruction (taken branches)
	jumped      bool   // Whether the current instruction set the program counter

	observer Observer
	random   RandomSource
	refresh  RandomRefresh

	Logger *log.Logger // CPU logging, one line per instruction when set
}

// Option configures a new CPU.
type Option func(*Cpu6502)

// WithLogger enables the per-instruction trace log.
func WithLogger(l *log.Logger) Option {
	return func(cpu *Cpu6502) { cpu.Logger = l }
}

// WithObserver sets the callback run after every retired instruction.
func WithObserver(o Observer) Option {
	return func(cpu *Cpu6502) { cpu.observer = o }
}

// WithSeed seeds the default source of the $00FE random byte.
func WithSeed(seed int64) Option {
	return func(cpu *Cpu6502) { cpu.random = NewSeededRandom(seed) }
}

// WithRandom replaces the source of the $00FE random byte.
func WithRandom(r RandomSource) Option {
	return func(cpu *Cpu6502) { cpu.random = r }
}

// WithRandomRefresh chooses when $00FE is refreshed.
func WithRandomRefresh(r RandomRefresh) Option {
	return func(cpu *Cpu6502) { cpu.refresh = r }
}

func NewCpu6502(opts ...Option) *Cpu6502 {
	cpu := &Cpu6502{
		bus:    NewBus(),
		random: NewSeededRandom(1),
		state:  Halted,
	}

	for _, opt := range opts {
		opt(cpu)
	}

	cpu.Registers.reset(DefaultOrigin)

	return cpu
}

// Bus gives the host direct access to memory, e.g. to read the screen.
func (cpu *Cpu6502) Bus() *Bus { return cpu.bus }

func (cpu *Cpu6502) SetObserver(o Observer) { cpu.observer = o }

func (cpu *Cpu6502) State() State { return cpu.state }

// Fault returns the error that stopped the CPU, if it faulted.
func (cpu *Cpu6502) Fault() error { return cpu.fault }

// Load resets the CPU and memory, copies the program to origin and seeds the
// random and key bytes. The CPU is left running at origin.
func (cpu *Cpu6502) Load(origin uint16, program []byte) {
	cpu.bus.Reset()
	cpu.bus.Load(origin, program)
	cpu.write(RandomAddr, cpu.random.Byte())
	cpu.write(KeyAddr, DefaultKey)

	cpu.Registers.reset(origin)

	cpu.state = Running
	cpu.fault = nil
	cpu.CycleCount = 0
	cpu.StepCount = 0
}

// LoadProgram loads a program at the default origin, $0600.
func (cpu *Cpu6502) LoadProgram(program []byte) {
	cpu.Load(DefaultOrigin, program)
}

// PressKey stores the ASCII code of a key press where programs poll for it.
func (cpu *Cpu6502) PressKey(ascii byte) {
	cpu.write(KeyAddr, ascii)
}

// Read from the attached bus.
func (cpu *Cpu6502) read(addr uint16) byte {
	return cpu.bus.Read(addr)
}

// Write to the attached bus.
func (cpu *Cpu6502) write(addr uint16, data byte) {
	cpu.bus.Write(addr, data)
}

func (cpu *Cpu6502) readWord(addr uint16) uint16 {
	return cpu.bus.ReadWord(addr)
}

// Push writes to the stack page and decrements the stack pointer.
func (cpu *Cpu6502) Push(data byte) {
	cpu.write(StackBase|uint16(cpu.Sp), data)
	cpu.Sp--
}

// Pull increments the stack pointer and reads from the stack page.
func (cpu *Cpu6502) Pull() byte {
	cpu.Sp++
	return cpu.read(StackBase | uint16(cpu.Sp))
}

// Push the high byte then the low byte.
func (cpu *Cpu6502) pushWord(data uint16) {
	cpu.Push(byte(data >> 8))
	cpu.Push(byte(data))
}

func (cpu *Cpu6502) pullWord() uint16 {
	lo := cpu.Pull()
	hi := cpu.Pull()

	return uint16(hi)<<8 | uint16(lo)
}

// Set the program counter from inside an instruction. Without this the
// program counter advances past the instruction.
func (cpu *Cpu6502) jump(addr uint16) {
	cpu.Pc = addr
	cpu.jumped = true
}

// Step executes the instruction at the program counter.
func (cpu *Cpu6502) Step() error {
	if cpu.state != Running {
		return fmt.Errorf("%w: %v", ErrNotRunning, cpu.state)
	}

	pc := cpu.Pc
	opcode := cpu.read(pc)

	// Lookup by opcode the instruction to be executed.
	inst := instructions[opcode]
	if inst == nil {
		cpu.state = Faulted
		cpu.fault = &UnimplementedOpcodeError{Opcode: opcode, Pc: pc}
		if cpu.Logger != nil {
			cpu.Logger.Printf("%04X\t%02X - %v", pc, opcode, cpu.fault)
		}
		return cpu.fault
	}

	if cpu.refresh == RefreshPerStep {
		cpu.write(RandomAddr, cpu.random.Byte())
	}

	// Store CPU state for logging.
	var before Registers
	var line Line
	if cpu.Logger != nil {
		before = cpu.Registers
		line = cpu.bus.DisassembleAt(pc)
	}

	op := cpu.resolve(inst.Mode, inst.Access)

	cpu.jumped = false
	cpu.extraCycles = 0

	inst.execute(cpu, op)

	if !cpu.jumped {
		cpu.Pc = pc + op.Length
	}

	cycles := uint64(inst.Cycles) + uint64(cpu.extraCycles)
	if inst.Access == AccessRead && op.PageCrossed {
		cycles++
	}

	if cpu.Logger != nil {
		cpu.logInstruction(line, before)
	}

	cpu.CycleCount += cycles
	cpu.StepCount++

	if cpu.observer != nil {
		cpu.observer(Event{
			Pc:      pc,
			Opcode:  opcode,
			Name:    inst.Name,
			Access:  inst.Access,
			Operand: op,
		})
	}

	return nil
}

// Run steps the CPU until it halts, faults, or has executed budget
// instructions. A budget of zero or less means no limit.
func (cpu *Cpu6502) Run(budget int) (Stop, error) {
	switch cpu.state {
	case Halted:
		return StopHalted, nil
	case Faulted:
		return StopFaulted, cpu.fault
	}

	for n := 0; budget <= 0 || n < budget; n++ {
		if err := cpu.Step(); err != nil {
			return StopFaulted, err
		}
		if cpu.state == Halted {
			return StopHalted, nil
		}
	}

	return StopBudget, nil
}

// Log CPU instructions.
func (cpu *Cpu6502) logInstruction(line Line, before Registers) {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("%04X\t%02X - %s ", line.Addr, line.Bytes[0], line.Text))
	buf.WriteString(fmt.Sprintf("\t\t%v\tCYC:%d", before, cpu.CycleCount))
	cpu.Logger.Print(buf.String())
}
