package mos6502

// Decimal mode arithmetic for the NMOS 6502.
//
// Details taken from "Flags on Decimal mode in the NMOS 6502" by Jorge Cwik.
// Z is computed from the binary sum, N and V after the low nibble has been
// adjusted but before the high nibble is, and C from the adjusted high nibble.

func (cpu *Cpu6502) addDecimal(m byte) {
	a := cpu.A
	carry := uint16(cpu.carry())

	cpu.SetFlag(StatusFlagZ, byte(uint16(a)+uint16(m)+carry) == 0)

	// Units
	lo := uint16(a&0x0F) + uint16(m&0x0F) + carry
	if lo > 0x09 {
		lo += 0x06
	}

	// Tens
	hi := uint16(a>>4) + uint16(m>>4)
	if lo > 0x0F {
		hi++
	}

	partial := byte(hi << 4)
	cpu.SetFlag(StatusFlagN, partial&(1<<7) != 0)
	cpu.SetFlag(StatusFlagV, ^(a^m)&(a^partial)&0x80 != 0)

	if hi > 0x09 {
		hi += 0x06
	}
	cpu.SetFlag(StatusFlagC, hi > 0x0F)

	cpu.A = byte(hi<<4) | byte(lo&0x0F)
}

// subtractDecimal returns a - m - (1 - carry) in packed BCD. Flags are set by
// the binary subtraction.
func subtractDecimal(a, m, carry byte) byte {
	lo := int(a&0x0F) - int(m&0x0F) - int(1-carry)
	hi := int(a>>4) - int(m>>4)

	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}

	return byte(hi<<4) | byte(lo&0x0F)
}
