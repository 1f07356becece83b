package mos6502

// Instruction describes one opcode: its mnemonic, how its operand is located,
// its base cycle count and the handler implementing the mnemonic. Every
// addressing-mode variant of a mnemonic shares the same handler.
type Instruction struct {
	Opcode byte
	Name   string
	Mode   AddressingMode
	Cycles byte
	Access Access

	execute func(*Cpu6502, Operand)
}

// Length is the size of the encoded instruction in bytes.
func (inst Instruction) Length() uint16 { return inst.Mode.Length() }

// Instruction operation lookup, indexed by opcode. Illegal opcodes are nil.
// Filled once by init and never written again.
var instructions [16 * 16]*Instruction

func init() {
	for i := range opcodeList {
		inst := &opcodeList[i]
		if instructions[inst.Opcode] != nil {
			panic("mos6502: duplicate opcode " + instructions[inst.Opcode].Name + "/" + inst.Name)
		}
		instructions[inst.Opcode] = inst
	}
}

// Lookup returns the instruction for an opcode, or false if the opcode is not
// part of the documented instruction set.
func Lookup(opcode byte) (Instruction, bool) {
	inst := instructions[opcode]
	if inst == nil {
		return Instruction{}, false
	}
	return *inst, true
}

// Instructions returns every documented instruction in opcode order.
func Instructions() []Instruction {
	list := make([]Instruction, 0, len(opcodeList))
	for _, inst := range instructions {
		if inst != nil {
			list = append(list, *inst)
		}
	}
	return list
}

// Documented NMOS 6502 instruction set.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var opcodeList = [...]Instruction{
	// ADC - Add with Carry
	{0x69, "ADC", IMM, 2, AccessRead, (*Cpu6502).opADC},
	{0x65, "ADC", ZP0, 3, AccessRead, (*Cpu6502).opADC},
	{0x75, "ADC", ZPX, 4, AccessRead, (*Cpu6502).opADC},
	{0x6D, "ADC", ABS, 4, AccessRead, (*Cpu6502).opADC},
	{0x7D, "ADC", ABX, 4, AccessRead, (*Cpu6502).opADC},
	{0x79, "ADC", ABY, 4, AccessRead, (*Cpu6502).opADC},
	{0x61, "ADC", IZX, 6, AccessRead, (*Cpu6502).opADC},
	{0x71, "ADC", IZY, 5, AccessRead, (*Cpu6502).opADC},

	// AND - Logical AND
	{0x29, "AND", IMM, 2, AccessRead, (*Cpu6502).opAND},
	{0x25, "AND", ZP0, 3, AccessRead, (*Cpu6502).opAND},
	{0x35, "AND", ZPX, 4, AccessRead, (*Cpu6502).opAND},
	{0x2D, "AND", ABS, 4, AccessRead, (*Cpu6502).opAND},
	{0x3D, "AND", ABX, 4, AccessRead, (*Cpu6502).opAND},
	{0x39, "AND", ABY, 4, AccessRead, (*Cpu6502).opAND},
	{0x21, "AND", IZX, 6, AccessRead, (*Cpu6502).opAND},
	{0x31, "AND", IZY, 5, AccessRead, (*Cpu6502).opAND},

	// ASL - Arithmetic Shift Left
	{0x0A, "ASL", ACC, 2, AccessModify, (*Cpu6502).opASL},
	{0x06, "ASL", ZP0, 5, AccessModify, (*Cpu6502).opASL},
	{0x16, "ASL", ZPX, 6, AccessModify, (*Cpu6502).opASL},
	{0x0E, "ASL", ABS, 6, AccessModify, (*Cpu6502).opASL},
	{0x1E, "ASL", ABX, 7, AccessModify, (*Cpu6502).opASL},

	// BCC - Branch if Carry Clear
	{0x90, "BCC", REL, 2, AccessNone, (*Cpu6502).opBCC},

	// BCS - Branch if Carry Set
	{0xB0, "BCS", REL, 2, AccessNone, (*Cpu6502).opBCS},

	// BEQ - Branch if Equal
	{0xF0, "BEQ", REL, 2, AccessNone, (*Cpu6502).opBEQ},

	// BIT - Bit Test
	{0x24, "BIT", ZP0, 3, AccessRead, (*Cpu6502).opBIT},
	{0x2C, "BIT", ABS, 4, AccessRead, (*Cpu6502).opBIT},

	// BMI - Branch if Minus
	{0x30, "BMI", REL, 2, AccessNone, (*Cpu6502).opBMI},

	// BNE - Branch if Not Equal
	{0xD0, "BNE", REL, 2, AccessNone, (*Cpu6502).opBNE},

	// BPL - Branch if Positive
	{0x10, "BPL", REL, 2, AccessNone, (*Cpu6502).opBPL},

	// BRK - Force Interrupt
	{0x00, "BRK", IMP, 7, AccessNone, (*Cpu6502).opBRK},

	// BVC - Branch if Overflow Clear
	{0x50, "BVC", REL, 2, AccessNone, (*Cpu6502).opBVC},

	// BVS - Branch if Overflow Set
	{0x70, "BVS", REL, 2, AccessNone, (*Cpu6502).opBVS},

	// CLC - Clear Carry Flag
	{0x18, "CLC", IMP, 2, AccessNone, (*Cpu6502).opCLC},

	// CLD - Clear Decimal Mode
	{0xD8, "CLD", IMP, 2, AccessNone, (*Cpu6502).opCLD},

	// CLI - Clear Interrupt Disable
	{0x58, "CLI", IMP, 2, AccessNone, (*Cpu6502).opCLI},

	// CLV - Clear Overflow Flag
	{0xB8, "CLV", IMP, 2, AccessNone, (*Cpu6502).opCLV},

	// CMP - Compare
	{0xC9, "CMP", IMM, 2, AccessRead, (*Cpu6502).opCMP},
	{0xC5, "CMP", ZP0, 3, AccessRead, (*Cpu6502).opCMP},
	{0xD5, "CMP", ZPX, 4, AccessRead, (*Cpu6502).opCMP},
	{0xCD, "CMP", ABS, 4, AccessRead, (*Cpu6502).opCMP},
	{0xDD, "CMP", ABX, 4, AccessRead, (*Cpu6502).opCMP},
	{0xD9, "CMP", ABY, 4, AccessRead, (*Cpu6502).opCMP},
	{0xC1, "CMP", IZX, 6, AccessRead, (*Cpu6502).opCMP},
	{0xD1, "CMP", IZY, 5, AccessRead, (*Cpu6502).opCMP},

	// CPX - Compare X Register
	{0xE0, "CPX", IMM, 2, AccessRead, (*Cpu6502).opCPX},
	{0xE4, "CPX", ZP0, 3, AccessRead, (*Cpu6502).opCPX},
	{0xEC, "CPX", ABS, 4, AccessRead, (*Cpu6502).opCPX},

	// CPY - Compare Y Register
	{0xC0, "CPY", IMM, 2, AccessRead, (*Cpu6502).opCPY},
	{0xC4, "CPY", ZP0, 3, AccessRead, (*Cpu6502).opCPY},
	{0xCC, "CPY", ABS, 4, AccessRead, (*Cpu6502).opCPY},

	// DEC - Decrement Memory
	{0xC6, "DEC", ZP0, 5, AccessModify, (*Cpu6502).opDEC},
	{0xD6, "DEC", ZPX, 6, AccessModify, (*Cpu6502).opDEC},
	{0xCE, "DEC", ABS, 6, AccessModify, (*Cpu6502).opDEC},
	{0xDE, "DEC", ABX, 7, AccessModify, (*Cpu6502).opDEC},

	// DEX - Decrement X Register
	{0xCA, "DEX", IMP, 2, AccessNone, (*Cpu6502).opDEX},

	// DEY - Decrement Y Register
	{0x88, "DEY", IMP, 2, AccessNone, (*Cpu6502).opDEY},

	// EOR - Exclusive OR
	{0x49, "EOR", IMM, 2, AccessRead, (*Cpu6502).opEOR},
	{0x45, "EOR", ZP0, 3, AccessRead, (*Cpu6502).opEOR},
	{0x55, "EOR", ZPX, 4, AccessRead, (*Cpu6502).opEOR},
	{0x4D, "EOR", ABS, 4, AccessRead, (*Cpu6502).opEOR},
	{0x5D, "EOR", ABX, 4, AccessRead, (*Cpu6502).opEOR},
	{0x59, "EOR", ABY, 4, AccessRead, (*Cpu6502).opEOR},
	{0x41, "EOR", IZX, 6, AccessRead, (*Cpu6502).opEOR},
	{0x51, "EOR", IZY, 5, AccessRead, (*Cpu6502).opEOR},

	// INC - Increment Memory
	{0xE6, "INC", ZP0, 5, AccessModify, (*Cpu6502).opINC},
	{0xF6, "INC", ZPX, 6, AccessModify, (*Cpu6502).opINC},
	{0xEE, "INC", ABS, 6, AccessModify, (*Cpu6502).opINC},
	{0xFE, "INC", ABX, 7, AccessModify, (*Cpu6502).opINC},

	// INX - Increment X Register
	{0xE8, "INX", IMP, 2, AccessNone, (*Cpu6502).opINX},

	// INY - Increment Y Register
	{0xC8, "INY", IMP, 2, AccessNone, (*Cpu6502).opINY},

	// JMP - Jump
	{0x4C, "JMP", ABS, 3, AccessNone, (*Cpu6502).opJMP},
	{0x6C, "JMP", IND, 5, AccessNone, (*Cpu6502).opJMP},

	// JSR - Jump to Subroutine
	{0x20, "JSR", ABS, 6, AccessNone, (*Cpu6502).opJSR},

	// LDA - Load Accumulator
	{0xA9, "LDA", IMM, 2, AccessRead, (*Cpu6502).opLDA},
	{0xA5, "LDA", ZP0, 3, AccessRead, (*Cpu6502).opLDA},
	{0xB5, "LDA", ZPX, 4, AccessRead, (*Cpu6502).opLDA},
	{0xAD, "LDA", ABS, 4, AccessRead, (*Cpu6502).opLDA},
	{0xBD, "LDA", ABX, 4, AccessRead, (*Cpu6502).opLDA},
	{0xB9, "LDA", ABY, 4, AccessRead, (*Cpu6502).opLDA},
	{0xA1, "LDA", IZX, 6, AccessRead, (*Cpu6502).opLDA},
	{0xB1, "LDA", IZY, 5, AccessRead, (*Cpu6502).opLDA},

	// LDX - Load X Register
	{0xA2, "LDX", IMM, 2, AccessRead, (*Cpu6502).opLDX},
	{0xA6, "LDX", ZP0, 3, AccessRead, (*Cpu6502).opLDX},
	{0xB6, "LDX", ZPY, 4, AccessRead, (*Cpu6502).opLDX},
	{0xAE, "LDX", ABS, 4, AccessRead, (*Cpu6502).opLDX},
	{0xBE, "LDX", ABY, 4, AccessRead, (*Cpu6502).opLDX},

	// LDY - Load Y Register
	{0xA0, "LDY", IMM, 2, AccessRead, (*Cpu6502).opLDY},
	{0xA4, "LDY", ZP0, 3, AccessRead, (*Cpu6502).opLDY},
	{0xB4, "LDY", ZPX, 4, AccessRead, (*Cpu6502).opLDY},
	{0xAC, "LDY", ABS, 4, AccessRead, (*Cpu6502).opLDY},
	{0xBC, "LDY", ABX, 4, AccessRead, (*Cpu6502).opLDY},

	// LSR - Logical Shift Right
	{0x4A, "LSR", ACC, 2, AccessModify, (*Cpu6502).opLSR},
	{0x46, "LSR", ZP0, 5, AccessModify, (*Cpu6502).opLSR},
	{0x56, "LSR", ZPX, 6, AccessModify, (*Cpu6502).opLSR},
	{0x4E, "LSR", ABS, 6, AccessModify, (*Cpu6502).opLSR},
	{0x5E, "LSR", ABX, 7, AccessModify, (*Cpu6502).opLSR},

	// NOP - No Operation
	{0xEA, "NOP", IMP, 2, AccessNone, (*Cpu6502).opNOP},

	// ORA - Logical Inclusive OR
	{0x09, "ORA", IMM, 2, AccessRead, (*Cpu6502).opORA},
	{0x05, "ORA", ZP0, 3, AccessRead, (*Cpu6502).opORA},
	{0x15, "ORA", ZPX, 4, AccessRead, (*Cpu6502).opORA},
	{0x0D, "ORA", ABS, 4, AccessRead, (*Cpu6502).opORA},
	{0x1D, "ORA", ABX, 4, AccessRead, (*Cpu6502).opORA},
	{0x19, "ORA", ABY, 4, AccessRead, (*Cpu6502).opORA},
	{0x01, "ORA", IZX, 6, AccessRead, (*Cpu6502).opORA},
	{0x11, "ORA", IZY, 5, AccessRead, (*Cpu6502).opORA},

	// PHA - Push Accumulator
	{0x48, "PHA", IMP, 3, AccessNone, (*Cpu6502).opPHA},

	// PHP - Push Processor Status
	{0x08, "PHP", IMP, 3, AccessNone, (*Cpu6502).opPHP},

	// PLA - Pull Accumulator
	{0x68, "PLA", IMP, 4, AccessNone, (*Cpu6502).opPLA},

	// PLP - Pull Processor Status
	{0x28, "PLP", IMP, 4, AccessNone, (*Cpu6502).opPLP},

	// ROL - Rotate Left
	{0x2A, "ROL", ACC, 2, AccessModify, (*Cpu6502).opROL},
	{0x26, "ROL", ZP0, 5, AccessModify, (*Cpu6502).opROL},
	{0x36, "ROL", ZPX, 6, AccessModify, (*Cpu6502).opROL},
	{0x2E, "ROL", ABS, 6, AccessModify, (*Cpu6502).opROL},
	{0x3E, "ROL", ABX, 7, AccessModify, (*Cpu6502).opROL},

	// ROR - Rotate Right
	{0x6A, "ROR", ACC, 2, AccessModify, (*Cpu6502).opROR},
	{0x66, "ROR", ZP0, 5, AccessModify, (*Cpu6502).opROR},
	{0x76, "ROR", ZPX, 6, AccessModify, (*Cpu6502).opROR},
	{0x6E, "ROR", ABS, 6, AccessModify, (*Cpu6502).opROR},
	{0x7E, "ROR", ABX, 7, AccessModify, (*Cpu6502).opROR},

	// RTI - Return from Interrupt
	{0x40, "RTI", IMP, 6, AccessNone, (*Cpu6502).opRTI},

	// RTS - Return from Subroutine
	{0x60, "RTS", IMP, 6, AccessNone, (*Cpu6502).opRTS},

	// SBC - Subtract with Carry
	{0xE9, "SBC", IMM, 2, AccessRead, (*Cpu6502).opSBC},
	{0xE5, "SBC", ZP0, 3, AccessRead, (*Cpu6502).opSBC},
	{0xF5, "SBC", ZPX, 4, AccessRead, (*Cpu6502).opSBC},
	{0xED, "SBC", ABS, 4, AccessRead, (*Cpu6502).opSBC},
	{0xFD, "SBC", ABX, 4, AccessRead, (*Cpu6502).opSBC},
	{0xF9, "SBC", ABY, 4, AccessRead, (*Cpu6502).opSBC},
	{0xE1, "SBC", IZX, 6, AccessRead, (*Cpu6502).opSBC},
	{0xF1, "SBC", IZY, 5, AccessRead, (*Cpu6502).opSBC},

	// SEC - Set Carry Flag
	{0x38, "SEC", IMP, 2, AccessNone, (*Cpu6502).opSEC},

	// SED - Set Decimal Flag
	{0xF8, "SED", IMP, 2, AccessNone, (*Cpu6502).opSED},

	// SEI - Set Interrupt Disable
	{0x78, "SEI", IMP, 2, AccessNone, (*Cpu6502).opSEI},

	// STA - Store Accumulator
	{0x85, "STA", ZP0, 3, AccessWrite, (*Cpu6502).opSTA},
	{0x95, "STA", ZPX, 4, AccessWrite, (*Cpu6502).opSTA},
	{0x8D, "STA", ABS, 4, AccessWrite, (*Cpu6502).opSTA},
	{0x9D, "STA", ABX, 5, AccessWrite, (*Cpu6502).opSTA},
	{0x99, "STA", ABY, 5, AccessWrite, (*Cpu6502).opSTA},
	{0x81, "STA", IZX, 6, AccessWrite, (*Cpu6502).opSTA},
	{0x91, "STA", IZY, 6, AccessWrite, (*Cpu6502).opSTA},

	// STX - Store X Register
	{0x86, "STX", ZP0, 3, AccessWrite, (*Cpu6502).opSTX},
	{0x96, "STX", ZPY, 4, AccessWrite, (*Cpu6502).opSTX},
	{0x8E, "STX", ABS, 4, AccessWrite, (*Cpu6502).opSTX},

	// STY - Store Y Register
	{0x84, "STY", ZP0, 3, AccessWrite, (*Cpu6502).opSTY},
	{0x94, "STY", ZPX, 4, AccessWrite, (*Cpu6502).opSTY},
	{0x8C, "STY", ABS, 4, AccessWrite, (*Cpu6502).opSTY},

	// TAX - Transfer Accumulator to X
	{0xAA, "TAX", IMP, 2, AccessNone, (*Cpu6502).opTAX},

	// TAY - Transfer Accumulator to Y
	{0xA8, "TAY", IMP, 2, AccessNone, (*Cpu6502).opTAY},

	// TSX - Transfer Stack Pointer to X
	{0xBA, "TSX", IMP, 2, AccessNone, (*Cpu6502).opTSX},

	// TXA - Transfer X to Accumulator
	{0x8A, "TXA", IMP, 2, AccessNone, (*Cpu6502).opTXA},

	// TXS - Transfer X to Stack Pointer
	{0x9A, "TXS", IMP, 2, AccessNone, (*Cpu6502).opTXS},

	// TYA - Transfer Y to Accumulator
	{0x98, "TYA", IMP, 2, AccessNone, (*Cpu6502).opTYA},
}
