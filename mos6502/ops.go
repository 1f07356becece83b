package mos6502

////////////////////////////////////////////////////////////////
// Instructions
//
// One handler per mnemonic. The resolver has already located the operand, so
// handlers never care which addressing mode was used.

// Store a read-modify-write result back where the operand came from.
func (cpu *Cpu6502) writeBack(op Operand, data byte) {
	if op.Mode == ACC {
		cpu.A = data
	} else {
		cpu.write(op.Addr, data)
	}
}

// Take a branch if cond holds: one extra cycle, two if a page is crossed.
func (cpu *Cpu6502) branch(op Operand, cond bool) {
	if !cond {
		return
	}

	cpu.extraCycles++
	if op.PageCrossed {
		cpu.extraCycles++
	}

	cpu.jump(op.Addr)
}

// Binary addition of m and the carry into the accumulator.
func (cpu *Cpu6502) addBinary(m byte) {
	// 16-bit to keep any carry.
	result := uint16(cpu.A) + uint16(m) + uint16(cpu.carry())
	r := byte(result)

	cpu.SetFlag(StatusFlagC, result > 0xFF)

	// Overflow when both inputs share a sign the result does not.
	cpu.SetFlag(StatusFlagV, ^(cpu.A^m)&(cpu.A^r)&0x80 != 0)

	cpu.A = r
	cpu.setZN(cpu.A)
}

// Compare a register with memory. The register is not written.
func (cpu *Cpu6502) compare(reg, m byte) {
	cpu.SetFlag(StatusFlagC, reg >= m)
	cpu.SetFlag(StatusFlagZ, reg == m)
	cpu.SetFlag(StatusFlagN, (reg-m)&(1<<7) != 0)
}

// ADC - Add with Carry
func (cpu *Cpu6502) opADC(op Operand) {
	if cpu.GetFlag(StatusFlagD) {
		cpu.addDecimal(op.Value)
		return
	}
	cpu.addBinary(op.Value)
}

// AND - Logical AND
func (cpu *Cpu6502) opAND(op Operand) {
	cpu.A &= op.Value
	cpu.setZN(cpu.A)
}

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL(op Operand) {
	// Set carry flag to old bit 7.
	cpu.SetFlag(StatusFlagC, op.Value&(1<<7) != 0)

	result := op.Value << 1
	cpu.writeBack(op, result)
	cpu.setZN(result)
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC(op Operand) { cpu.branch(op, !cpu.GetFlag(StatusFlagC)) }

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS(op Operand) { cpu.branch(op, cpu.GetFlag(StatusFlagC)) }

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ(op Operand) { cpu.branch(op, cpu.GetFlag(StatusFlagZ)) }

// BIT - Bit Test
func (cpu *Cpu6502) opBIT(op Operand) {
	cpu.SetFlag(StatusFlagZ, op.Value&cpu.A == 0)
	cpu.SetFlag(StatusFlagV, op.Value&(1<<6) != 0)
	cpu.SetFlag(StatusFlagN, op.Value&(1<<7) != 0)
}

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI(op Operand) { cpu.branch(op, cpu.GetFlag(StatusFlagN)) }

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE(op Operand) { cpu.branch(op, !cpu.GetFlag(StatusFlagZ)) }

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL(op Operand) { cpu.branch(op, !cpu.GetFlag(StatusFlagN)) }

// BRK - Force Interrupt
//
// There is no IRQ vector to jump through, so after saving the return address
// and status the CPU halts with the program counter on the BRK.
func (cpu *Cpu6502) opBRK(op Operand) {
	cpu.SetFlag(StatusFlagB, true)

	// BRK is followed by a padding byte; the return address skips it.
	cpu.pushWord(cpu.Pc + 2)

	// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
	cpu.Push(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))

	cpu.SetFlag(StatusFlagI, true)

	cpu.state = Halted
	cpu.jump(cpu.Pc)
}

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC(op Operand) { cpu.branch(op, !cpu.GetFlag(StatusFlagV)) }

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS(op Operand) { cpu.branch(op, cpu.GetFlag(StatusFlagV)) }

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC(op Operand) { cpu.SetFlag(StatusFlagC, false) }

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD(op Operand) { cpu.SetFlag(StatusFlagD, false) }

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI(op Operand) { cpu.SetFlag(StatusFlagI, false) }

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV(op Operand) { cpu.SetFlag(StatusFlagV, false) }

// CMP - Compare (Accumulator)
func (cpu *Cpu6502) opCMP(op Operand) { cpu.compare(cpu.A, op.Value) }

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX(op Operand) { cpu.compare(cpu.X, op.Value) }

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY(op Operand) { cpu.compare(cpu.Y, op.Value) }

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC(op Operand) {
	result := op.Value - 1
	cpu.write(op.Addr, result)
	cpu.setZN(result)
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX(op Operand) {
	cpu.X--
	cpu.setZN(cpu.X)
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY(op Operand) {
	cpu.Y--
	cpu.setZN(cpu.Y)
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR(op Operand) {
	cpu.A ^= op.Value
	cpu.setZN(cpu.A)
}

// INC - Increment Memory
func (cpu *Cpu6502) opINC(op Operand) {
	result := op.Value + 1
	cpu.write(op.Addr, result)
	cpu.setZN(result)
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX(op Operand) {
	cpu.X++
	cpu.setZN(cpu.X)
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY(op Operand) {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

// JMP - Jump
func (cpu *Cpu6502) opJMP(op Operand) { cpu.jump(op.Addr) }

// JSR - Jump to Subroutine
func (cpu *Cpu6502) opJSR(op Operand) {
	// The pushed address is the last byte of the JSR; RTS adds one.
	cpu.pushWord(cpu.Pc + op.Length - 1)
	cpu.jump(op.Addr)
}

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA(op Operand) {
	cpu.A = op.Value
	cpu.setZN(cpu.A)
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX(op Operand) {
	cpu.X = op.Value
	cpu.setZN(cpu.X)
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY(op Operand) {
	cpu.Y = op.Value
	cpu.setZN(cpu.Y)
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR(op Operand) {
	// Set carry flag to old bit 0.
	cpu.SetFlag(StatusFlagC, op.Value&1 != 0)

	result := op.Value >> 1
	cpu.writeBack(op, result)
	cpu.setZN(result)
}

// NOP - No Operation
func (cpu *Cpu6502) opNOP(op Operand) {}

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA(op Operand) {
	cpu.A |= op.Value
	cpu.setZN(cpu.A)
}

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA(op Operand) { cpu.Push(cpu.A) }

// PHP - Push Processor Status
func (cpu *Cpu6502) opPHP(op Operand) {
	cpu.Push(cpu.Status | byte(StatusFlagB) | byte(StatusFlagU))
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA(op Operand) {
	cpu.A = cpu.Pull()
	cpu.setZN(cpu.A)
}

// Restore the status register from the stack. B flag should remain unchanged
// and the unused flag always reads as set.
func (cpu *Cpu6502) pullStatus() {
	bFlag := cpu.GetFlag(StatusFlagB)
	cpu.Status = cpu.Pull()
	cpu.SetFlag(StatusFlagB, bFlag)
	cpu.SetFlag(StatusFlagU, true)
}

// PLP - Pull Processor Status
func (cpu *Cpu6502) opPLP(op Operand) { cpu.pullStatus() }

// ROL - Rotate Left
func (cpu *Cpu6502) opROL(op Operand) {
	carry := cpu.carry()

	// Set carry flag to bit 7 of old value.
	cpu.SetFlag(StatusFlagC, op.Value&(1<<7) != 0)

	// Shift left one, set bit 0 to old carry.
	result := op.Value<<1 | carry
	cpu.writeBack(op, result)
	cpu.setZN(result)
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR(op Operand) {
	carry := cpu.carry()

	// Set carry flag to bit 0 of old value.
	cpu.SetFlag(StatusFlagC, op.Value&1 != 0)

	// Shift right one, set bit 7 to old carry.
	result := op.Value>>1 | carry<<7
	cpu.writeBack(op, result)
	cpu.setZN(result)
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI(op Operand) {
	cpu.pullStatus()
	cpu.jump(cpu.pullWord())
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS(op Operand) {
	cpu.jump(cpu.pullWord() + 1)
}

// SBC - Subtract with Carry
func (cpu *Cpu6502) opSBC(op Operand) {
	a, carry := cpu.A, cpu.carry()

	// A - M - (1 - C) is A + ^M + C. The NMOS part sets every flag from the
	// binary result, even in decimal mode.
	cpu.addBinary(^op.Value)

	if cpu.GetFlag(StatusFlagD) {
		cpu.A = subtractDecimal(a, op.Value, carry)
	}
}

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC(op Operand) { cpu.SetFlag(StatusFlagC, true) }

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED(op Operand) { cpu.SetFlag(StatusFlagD, true) }

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI(op Operand) { cpu.SetFlag(StatusFlagI, true) }

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA(op Operand) { cpu.write(op.Addr, cpu.A) }

// STX - Store X Register
func (cpu *Cpu6502) opSTX(op Operand) { cpu.write(op.Addr, cpu.X) }

// STY - Store Y Register
func (cpu *Cpu6502) opSTY(op Operand) { cpu.write(op.Addr, cpu.Y) }

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX(op Operand) {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY(op Operand) {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX(op Operand) {
	cpu.X = cpu.Sp
	cpu.setZN(cpu.X)
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA(op Operand) {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

// TXS - Transfer X to Stack Pointer
func (cpu *Cpu6502) opTXS(op Operand) { cpu.Sp = cpu.X }

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA(op Operand) {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}
