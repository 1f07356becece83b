package mos6502

type AddressingMode int

const (
	IMP AddressingMode = iota
	ACC
	IMM
	REL
	ZP0
	ZPX
	ZPY
	ABS
	ABX
	ABY
	IND
	IZX
	IZY
)

var modeNames = [...]string{
	IMP: "IMP",
	ACC: "ACC",
	IMM: "IMM",
	REL: "REL",
	ZP0: "ZP0",
	ZPX: "ZPX",
	ZPY: "ZPY",
	ABS: "ABS",
	ABX: "ABX",
	ABY: "ABY",
	IND: "IND",
	IZX: "IZX",
	IZY: "IZY",
}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "???"
	}
	return modeNames[m]
}

// Length is the size in bytes of an instruction using this mode, opcode
// included.
func (m AddressingMode) Length() uint16 {
	switch m {
	case IMP, ACC:
		return 1
	case ABS, ABX, ABY, IND:
		return 3
	default:
		return 2
	}
}

// Access describes what an instruction does with its operand. The resolver
// only dereferences the effective address when the value is needed.
type Access int

const (
	AccessNone   Access = iota // Implied, or the address itself is the operand (jumps, branches).
	AccessRead                 // Value is read from the effective address.
	AccessWrite                // Effective address is written, never read.
	AccessModify               // Read-modify-write.
)

// Operand is the result of resolving an addressing mode for the instruction
// at the program counter.
type Operand struct {
	Mode        AddressingMode
	Addr        uint16 // Effective address, or branch/jump target.
	Value       byte   // Fetched value (read/modify access, immediate, accumulator, branch offset).
	Length      uint16 // Instruction length in bytes.
	PageCrossed bool   // Indexing or branching crossed a page boundary.
}

// HasAddr reports whether Addr holds a meaningful address.
func (o Operand) HasAddr() bool {
	switch o.Mode {
	case IMP, ACC, IMM:
		return false
	}
	return true
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// Resolve the operand of the instruction at the program counter. The program
// counter itself is left untouched.
func (cpu *Cpu6502) resolve(mode AddressingMode, access Access) Operand {
	pc := cpu.Pc
	op := Operand{Mode: mode, Length: mode.Length()}

	switch mode {
	case IMP:
		return op

	case ACC:
		op.Value = cpu.A
		return op

	case IMM:
		// The second byte of the instruction contains the operand.
		op.Addr = pc + 1
		op.Value = cpu.read(op.Addr)
		return op

	case REL:
		// Signed displacement from the address of the next instruction.
		op.Value = cpu.read(pc + 1)
		next := pc + op.Length
		op.Addr = next + uint16(int8(op.Value))
		op.PageCrossed = pageCrossed(next, op.Addr)
		return op

	case ZP0:
		op.Addr = uint16(cpu.read(pc + 1))

	case ZPX:
		op.Addr = uint16(cpu.read(pc+1) + cpu.X)

	case ZPY:
		op.Addr = uint16(cpu.read(pc+1) + cpu.Y)

	case ABS:
		op.Addr = cpu.readWord(pc + 1)

	case ABX:
		base := cpu.readWord(pc + 1)
		op.Addr = base + uint16(cpu.X)
		op.PageCrossed = pageCrossed(base, op.Addr)

	case ABY:
		base := cpu.readWord(pc + 1)
		op.Addr = base + uint16(cpu.Y)
		op.PageCrossed = pageCrossed(base, op.Addr)

	case IND:
		// The NMOS 6502 never carries into the high byte of the pointer, so a
		// pointer at $xxFF reads its high byte from $xx00.
		ptr := cpu.readWord(pc + 1)
		lo := cpu.read(ptr)
		hi := cpu.read(ptr&0xFF00 | uint16(byte(ptr)+1))
		op.Addr = uint16(hi)<<8 | uint16(lo)

	case IZX:
		// Both bytes of the pointer live in page zero.
		zp := cpu.read(pc+1) + cpu.X
		op.Addr = cpu.readZeroPageWord(zp)

	case IZY:
		base := cpu.readZeroPageWord(cpu.read(pc + 1))
		op.Addr = base + uint16(cpu.Y)
		op.PageCrossed = pageCrossed(base, op.Addr)
	}

	if access == AccessRead || access == AccessModify {
		op.Value = cpu.read(op.Addr)
	}

	return op
}

// Read a little endian pointer from page zero, wrapping within the page.
func (cpu *Cpu6502) readZeroPageWord(zp byte) uint16 {
	lo := cpu.read(uint16(zp))
	hi := cpu.read(uint16(zp + 1))

	return uint16(hi)<<8 | uint16(lo)
}
