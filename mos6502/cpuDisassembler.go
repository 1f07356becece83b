package mos6502

import "fmt"

// Line is one disassembled instruction.
type Line struct {
	Addr   uint16
	Bytes  []byte
	Text   string // e.g. "LDA #$01"
	Length uint16
}

func (l Line) String() string {
	return fmt.Sprintf("$%04X    % -9x %s", l.Addr, l.Bytes, l.Text)
}

// Disassemble a single instruction at addr without executing it. Illegal
// opcodes disassemble as a one byte "???".
func (b *Bus) DisassembleAt(addr uint16) Line {
	opcode := b.Read(addr)

	inst := instructions[opcode]
	if inst == nil {
		return Line{Addr: addr, Bytes: []byte{opcode}, Text: "???", Length: 1}
	}

	length := inst.Length()
	line := Line{Addr: addr, Length: length}
	for i := uint16(0); i < length; i++ {
		line.Bytes = append(line.Bytes, b.Read(addr+i))
	}

	var lo, hi byte
	if length > 1 {
		lo = line.Bytes[1]
	}
	if length > 2 {
		hi = line.Bytes[2]
	}
	word := uint16(hi)<<8 | uint16(lo)

	switch inst.Mode {
	case IMP:
		line.Text = inst.Name
	case ACC:
		line.Text = inst.Name + " A"
	case IMM:
		line.Text = fmt.Sprintf("%s #$%02X", inst.Name, lo)
	case REL:
		target := addr + length + uint16(int8(lo))
		line.Text = fmt.Sprintf("%s $%04X", inst.Name, target)
	case ZP0:
		line.Text = fmt.Sprintf("%s $%02X", inst.Name, lo)
	case ZPX:
		line.Text = fmt.Sprintf("%s $%02X,X", inst.Name, lo)
	case ZPY:
		line.Text = fmt.Sprintf("%s $%02X,Y", inst.Name, lo)
	case ABS:
		line.Text = fmt.Sprintf("%s $%04X", inst.Name, word)
	case ABX:
		line.Text = fmt.Sprintf("%s $%04X,X", inst.Name, word)
	case ABY:
		line.Text = fmt.Sprintf("%s $%04X,Y", inst.Name, word)
	case IND:
		line.Text = fmt.Sprintf("%s ($%04X)", inst.Name, word)
	case IZX:
		line.Text = fmt.Sprintf("%s ($%02X,X)", inst.Name, lo)
	case IZY:
		line.Text = fmt.Sprintf("%s ($%02X),Y", inst.Name, lo)
	}

	return line
}

// Disassemble the loaded 6502 program into human-readable CPU instructions
// mapped to their respective memory address.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func (b *Bus) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	disassembly := make(map[uint16]string)

	for _, line := range b.DisassembleRange(startAddr, endAddr) {
		disassembly[line.Addr] = line.Text
	}

	return disassembly
}

// DisassembleRange returns the instructions starting between startAddr and
// endAddr, in address order.
func (b *Bus) DisassembleRange(startAddr, endAddr uint16) []Line {
	var lines []Line

	// this needs to be bigger than uint16, to determine when larger than endAddr
	for addr := uint32(startAddr); addr <= uint32(endAddr); {
		line := b.DisassembleAt(uint16(addr))
		lines = append(lines, line)
		addr += uint32(line.Length)
	}

	return lines
}
