package mos6502

import (
	"errors"
	"fmt"
)

// State of the execution engine.
type State int

const (
	Running State = iota
	Halted        // BRK was executed.
	Faulted       // An opcode with no table entry was fetched.
)

// Valid reports whether s is one of the defined run states.
func (s State) Valid() bool {
	return s == Running || s == Halted || s == Faulted
}

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stop is the reason Run returned.
type Stop int

const (
	StopHalted  Stop = iota // BRK, normal end of program.
	StopFaulted             // Unimplemented opcode, see the returned error.
	StopBudget              // Step budget used up while still running.
)

func (s Stop) String() string {
	switch s {
	case StopHalted:
		return "halted"
	case StopFaulted:
		return "faulted"
	case StopBudget:
		return "step budget exhausted"
	}
	return fmt.Sprintf("stop(%d)", int(s))
}

// ErrNotRunning is returned by Step when the CPU has already halted or
// faulted. Reload a program to continue.
var ErrNotRunning = errors.New("cpu is not running")

// ErrInvalidState is returned when a snapshot carries an unknown run state.
var ErrInvalidState = errors.New("invalid run state")

// UnimplementedOpcodeError is the fault raised when the CPU decodes a byte
// that is not a documented opcode.
type UnimplementedOpcodeError struct {
	Opcode byte
	Pc     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.Pc)
}
