package mos6502

import "fmt"

// Registers holds the 6502 register file. Go's integer widths give the
// required wraparound for free.
type Registers struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status byte   // Processor Status Flags
}

////////////////////////////////////////////////////////////////
// Status Flags
type StatusFlag byte // 6502 Status Flag

const (
	StatusFlagC StatusFlag = 1 << iota // Carry
	StatusFlagZ                        // Zero
	StatusFlagI                        // Interrupt Disable
	StatusFlagD                        // Decimal Mode
	StatusFlagB                        // Break Command
	StatusFlagU                        // UNUSED, always reads as 1
	StatusFlagV                        // Overflow
	StatusFlagN                        // Negative
)

const resetSp byte = 0xFF

// Convenience functions used to get and set CPU status flags.
func (r *Registers) GetFlag(f StatusFlag) bool {
	return r.Status&byte(f) != 0
}

func (r *Registers) SetFlag(f StatusFlag, b bool) {
	if b {
		r.Status |= byte(f)
	} else {
		r.Status &^= byte(f)
	}
}

// carry returns the carry flag as a 0 or 1 for arithmetic.
func (r *Registers) carry() byte {
	return r.Status & byte(StatusFlagC)
}

// Set the zero and negative flags from v.
func (r *Registers) setZN(v byte) {
	r.SetFlag(StatusFlagZ, v == 0)
	r.SetFlag(StatusFlagN, v&(1<<7) != 0)
}

func (r *Registers) reset(pc uint16) {
	*r = Registers{
		Pc:     pc,
		Sp:     resetSp,
		Status: byte(StatusFlagU),
	}
}

// Flags renders the status register as a bit pattern, upper case for set.
func (r Registers) Flags() string {
	const names = "NV-BDIZC"

	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		c := names[i]
		if r.Status&(1<<(7-i)) == 0 && c != '-' {
			c += 'a' - 'A'
		}
		out[i] = c
	}

	return string(out)
}

func (r Registers) String() string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X", r.A, r.X, r.Y, r.Status, r.Sp)
}
