package mos6502

import "testing"

////////////////////////////////////////////////////////////////
// Loads

func TestLoadFlagsAllModes(t *testing.T) {
	type variant struct {
		name    string
		program []byte
		setup   func(cpu *Cpu6502, v byte)
		reg     func(cpu *Cpu6502) byte
	}

	variants := []variant{
		{"LDA #", []byte{0xA9, 0x00}, func(cpu *Cpu6502, v byte) { cpu.write(0x0601, v) }, func(cpu *Cpu6502) byte { return cpu.A }},
		{"LDA zp", []byte{0xA5, 0x10}, func(cpu *Cpu6502, v byte) { cpu.write(0x0010, v) }, func(cpu *Cpu6502) byte { return cpu.A }},
		{"LDA abs,x", []byte{0xBD, 0x00, 0x30}, func(cpu *Cpu6502, v byte) { cpu.X = 2; cpu.write(0x3002, v) }, func(cpu *Cpu6502) byte { return cpu.A }},
		{"LDA (zp),y", []byte{0xB1, 0x20}, func(cpu *Cpu6502, v byte) {
			cpu.Y = 1
			cpu.write(0x0020, 0x00)
			cpu.write(0x0021, 0x40)
			cpu.write(0x4001, v)
		}, func(cpu *Cpu6502) byte { return cpu.A }},
		{"LDX #", []byte{0xA2, 0x00}, func(cpu *Cpu6502, v byte) { cpu.write(0x0601, v) }, func(cpu *Cpu6502) byte { return cpu.X }},
		{"LDX zp,y", []byte{0xB6, 0x10}, func(cpu *Cpu6502, v byte) { cpu.Y = 1; cpu.write(0x0011, v) }, func(cpu *Cpu6502) byte { return cpu.X }},
		{"LDX abs,y", []byte{0xBE, 0x00, 0x30}, func(cpu *Cpu6502, v byte) { cpu.Y = 3; cpu.write(0x3003, v) }, func(cpu *Cpu6502) byte { return cpu.X }},
		{"LDY #", []byte{0xA0, 0x00}, func(cpu *Cpu6502, v byte) { cpu.write(0x0601, v) }, func(cpu *Cpu6502) byte { return cpu.Y }},
		{"LDY zp,x", []byte{0xB4, 0x10}, func(cpu *Cpu6502, v byte) { cpu.X = 1; cpu.write(0x0011, v) }, func(cpu *Cpu6502) byte { return cpu.Y }},
		{"LDY abs", []byte{0xAC, 0x00, 0x30}, func(cpu *Cpu6502, v byte) { cpu.write(0x3000, v) }, func(cpu *Cpu6502) byte { return cpu.Y }},
	}

	for _, vt := range variants {
		for v := 0; v < 0x100; v++ {
			cpu := newTestCpu(vt.program...)
			vt.setup(cpu, byte(v))

			cpu.SetFlag(StatusFlagC, true)
			cpu.SetFlag(StatusFlagV, true)

			mustStep(t, cpu)

			if got := vt.reg(cpu); got != byte(v) {
				t.Fatalf("%s %#02x: loaded %#02x", vt.name, v, got)
			}
			if cpu.GetFlag(StatusFlagZ) != (v == 0) {
				t.Fatalf("%s %#02x: zero flag %v", vt.name, v, cpu.GetFlag(StatusFlagZ))
			}
			if cpu.GetFlag(StatusFlagN) != (v&0x80 != 0) {
				t.Fatalf("%s %#02x: negative flag %v", vt.name, v, cpu.GetFlag(StatusFlagN))
			}
			if !cpu.GetFlag(StatusFlagC) || !cpu.GetFlag(StatusFlagV) {
				t.Fatalf("%s %#02x: carry/overflow disturbed", vt.name, v)
			}
		}
	}
}

////////////////////////////////////////////////////////////////
// Arithmetic

func TestOpADC(t *testing.T) {
	tests := []struct {
		a, m       byte
		carry      bool
		want       byte
		c, z, v, n bool
	}{
		{0x50, 0x10, false, 0x60, false, false, false, false},
		{0x50, 0x50, false, 0xA0, false, false, true, true},
		{0x50, 0x90, false, 0xE0, false, false, false, true},
		{0x50, 0xD0, false, 0x20, true, false, false, false},
		{0xD0, 0x10, false, 0xE0, false, false, false, true},
		{0xD0, 0x50, false, 0x20, true, false, false, false},
		{0xD0, 0x90, false, 0x60, true, false, true, false},
		{0xD0, 0xD0, false, 0xA0, true, false, false, true},
		{0xFF, 0x01, false, 0x00, true, true, false, false},
		{0x7F, 0x00, true, 0x80, false, false, true, true},
		{0xFF, 0xFF, true, 0xFF, true, false, false, true},
	}

	for _, test := range tests {
		cpu := newTestCpu(0x69, test.m)
		cpu.A = test.a
		cpu.SetFlag(StatusFlagC, test.carry)

		mustStep(t, cpu)

		for _, c := range []check{
			{"result", cpu.A, test.want},
			{"carry", cpu.GetFlag(StatusFlagC), test.c},
			{"zero", cpu.GetFlag(StatusFlagZ), test.z},
			{"overflow", cpu.GetFlag(StatusFlagV), test.v},
			{"negative", cpu.GetFlag(StatusFlagN), test.n},
		} {
			if c.got != c.want {
				t.Errorf("%#02x+%#02x+%v %s: got %v, want %v", test.a, test.m, test.carry, c.name, c.got, c.want)
			}
		}
	}
}

// ADC's overflow formula checked against signed arithmetic for every input.
func TestOpADCOverflowExhaustive(t *testing.T) {
	cpu := newTestCpu(0x69, 0x00)

	for a := 0; a < 0x100; a++ {
		for m := 0; m < 0x100; m++ {
			cpu.Pc = DefaultOrigin
			cpu.write(DefaultOrigin+1, byte(m))
			cpu.A = byte(a)
			cpu.SetFlag(StatusFlagC, false)

			mustStep(t, cpu)

			signed := int(int8(a)) + int(int8(m))
			overflow := signed < -128 || signed > 127
			if cpu.GetFlag(StatusFlagV) != overflow {
				t.Fatalf("%#02x+%#02x: overflow %v, want %v", a, m, cpu.GetFlag(StatusFlagV), overflow)
			}
			if cpu.GetFlag(StatusFlagC) != (a+m > 0xFF) {
				t.Fatalf("%#02x+%#02x: carry %v", a, m, cpu.GetFlag(StatusFlagC))
			}
		}
	}
}

func TestOpSBC(t *testing.T) {
	tests := []struct {
		a, m       byte
		carry      bool
		want       byte
		c, z, v, n bool
	}{
		{0x50, 0xF0, true, 0x60, false, false, false, false},
		{0x50, 0xB0, true, 0xA0, false, false, true, true},
		{0x50, 0x70, true, 0xE0, false, false, false, true},
		{0xD0, 0x70, true, 0x60, true, false, true, false},
		{0x05, 0x05, true, 0x00, true, true, false, false},
		{0x05, 0x05, false, 0xFF, false, false, false, true},
		{0x00, 0x01, true, 0xFF, false, false, false, true},
	}

	for _, test := range tests {
		cpu := newTestCpu(0xE9, test.m)
		cpu.A = test.a
		cpu.SetFlag(StatusFlagC, test.carry)

		mustStep(t, cpu)

		for _, c := range []check{
			{"result", cpu.A, test.want},
			{"carry", cpu.GetFlag(StatusFlagC), test.c},
			{"zero", cpu.GetFlag(StatusFlagZ), test.z},
			{"overflow", cpu.GetFlag(StatusFlagV), test.v},
			{"negative", cpu.GetFlag(StatusFlagN), test.n},
		} {
			if c.got != c.want {
				t.Errorf("%#02x-%#02x-%v %s: got %v, want %v", test.a, test.m, !test.carry, c.name, c.got, c.want)
			}
		}
	}
}

func TestDecimalMode(t *testing.T) {
	tests := []struct {
		name   string
		opcode byte
		a, m   byte
		carry  bool
		want   byte
		wantC  bool
	}{
		{"09+01", 0x69, 0x09, 0x01, false, 0x10, false},
		{"01+01+c", 0x69, 0x01, 0x01, true, 0x03, false},
		{"58+46", 0x69, 0x58, 0x46, false, 0x04, true},
		{"99+01", 0x69, 0x99, 0x01, false, 0x00, true},
		{"10-01", 0xE9, 0x10, 0x01, true, 0x09, true},
		{"09-01-b", 0xE9, 0x09, 0x01, false, 0x07, true},
		{"00-01", 0xE9, 0x00, 0x01, true, 0x99, false},
		{"46-12", 0xE9, 0x46, 0x12, true, 0x34, true},
	}

	for _, test := range tests {
		// SED; ADC/SBC #m
		cpu := newTestCpu(0xF8, test.opcode, test.m)
		cpu.A = test.a
		cpu.SetFlag(StatusFlagC, test.carry)

		mustStep(t, cpu)
		mustStep(t, cpu)

		if cpu.A != test.want || cpu.GetFlag(StatusFlagC) != test.wantC {
			t.Errorf("%s: got %#02x carry %v, want %#02x carry %v",
				test.name, cpu.A, cpu.GetFlag(StatusFlagC), test.want, test.wantC)
		}
	}
}

////////////////////////////////////////////////////////////////
// Compares

func TestOpCMPAllPairs(t *testing.T) {
	cpu := newTestCpu(0xC9, 0x00)

	for a := 0; a < 0x100; a++ {
		for b := 0; b < 0x100; b++ {
			for _, prior := range []byte{0x20, 0xFF} {
				cpu.Pc = DefaultOrigin
				cpu.write(DefaultOrigin+1, byte(b))
				cpu.A = byte(a)
				cpu.Status = prior

				mustStep(t, cpu)

				if cpu.GetFlag(StatusFlagC) != (a >= b) {
					t.Fatalf("cmp %#02x,%#02x: carry %v", a, b, cpu.GetFlag(StatusFlagC))
				}
				if cpu.GetFlag(StatusFlagZ) != (a == b) {
					t.Fatalf("cmp %#02x,%#02x: zero %v", a, b, cpu.GetFlag(StatusFlagZ))
				}
				if cpu.GetFlag(StatusFlagN) != (byte(a-b)&0x80 != 0) {
					t.Fatalf("cmp %#02x,%#02x: negative %v", a, b, cpu.GetFlag(StatusFlagN))
				}
				if cpu.A != byte(a) {
					t.Fatalf("cmp %#02x,%#02x: accumulator changed", a, b)
				}
				if cpu.GetFlag(StatusFlagV) != (prior&byte(StatusFlagV) != 0) {
					t.Fatalf("cmp %#02x,%#02x: overflow changed", a, b)
				}
			}
		}
	}
}

func TestOpCPXCPY(t *testing.T) {
	// CPX #$03 with X=$01: difference $FE is negative.
	cpu := newTestCpu(0xE0, 0x03, 0xC0, 0x80)
	cpu.X = 0x01
	cpu.Y = 0x00

	mustStep(t, cpu)
	runChecks(t, []check{
		{"cpx carry", cpu.GetFlag(StatusFlagC), false},
		{"cpx zero", cpu.GetFlag(StatusFlagZ), false},
		{"cpx negative", cpu.GetFlag(StatusFlagN), true},
	})

	// CPY #$80 with Y=$00: borrow, and bit 7 of the difference is set.
	mustStep(t, cpu)
	runChecks(t, []check{
		{"cpy carry", cpu.GetFlag(StatusFlagC), false},
		{"cpy negative", cpu.GetFlag(StatusFlagN), true},
	})
}

////////////////////////////////////////////////////////////////
// Increments, decrements, shifts

func TestIncDecLeaveCarryAndOverflow(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		setup   func(cpu *Cpu6502)
		result  func(cpu *Cpu6502) byte
		want    byte
		z, n    bool
	}{
		{"INC zp wraps", []byte{0xE6, 0x10}, func(cpu *Cpu6502) { cpu.write(0x10, 0xFF) }, func(cpu *Cpu6502) byte { return cpu.read(0x10) }, 0x00, true, false},
		{"DEC abs", []byte{0xCE, 0x00, 0x30}, func(cpu *Cpu6502) { cpu.write(0x3000, 0x00) }, func(cpu *Cpu6502) byte { return cpu.read(0x3000) }, 0xFF, false, true},
		{"INX", []byte{0xE8}, func(cpu *Cpu6502) { cpu.X = 0x7F }, func(cpu *Cpu6502) byte { return cpu.X }, 0x80, false, true},
		{"DEX", []byte{0xCA}, func(cpu *Cpu6502) { cpu.X = 0x01 }, func(cpu *Cpu6502) byte { return cpu.X }, 0x00, true, false},
		{"INY", []byte{0xC8}, func(cpu *Cpu6502) { cpu.Y = 0xFF }, func(cpu *Cpu6502) byte { return cpu.Y }, 0x00, true, false},
		{"DEY", []byte{0x88}, func(cpu *Cpu6502) { cpu.Y = 0x00 }, func(cpu *Cpu6502) byte { return cpu.Y }, 0xFF, false, true},
	}

	for _, test := range tests {
		cpu := newTestCpu(test.program...)
		test.setup(cpu)
		cpu.SetFlag(StatusFlagC, true)
		cpu.SetFlag(StatusFlagV, true)

		mustStep(t, cpu)

		for _, c := range []check{
			{"result", test.result(cpu), test.want},
			{"zero", cpu.GetFlag(StatusFlagZ), test.z},
			{"negative", cpu.GetFlag(StatusFlagN), test.n},
			{"carry kept", cpu.GetFlag(StatusFlagC), true},
			{"overflow kept", cpu.GetFlag(StatusFlagV), true},
		} {
			if c.got != c.want {
				t.Errorf("%s %s: got %v, want %v", test.name, c.name, c.got, c.want)
			}
		}
	}
}

func TestShiftsAndRotates(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		value   byte
		carry   bool
		want    byte
		c, z, n bool
	}{
		{"ASL A", []byte{0x0A}, 0x81, false, 0x02, true, false, false},
		{"ASL zp", []byte{0x06, 0x10}, 0x40, true, 0x80, false, false, true},
		{"LSR A", []byte{0x4A}, 0x01, false, 0x00, true, true, false},
		{"LSR abs", []byte{0x4E, 0x00, 0x30}, 0x80, true, 0x40, false, false, false},
		{"ROL A carry in", []byte{0x2A}, 0x80, true, 0x01, true, false, false},
		{"ROL zp", []byte{0x26, 0x10}, 0x40, false, 0x80, false, false, true},
		{"ROR A carry in", []byte{0x6A}, 0x01, true, 0x80, true, false, true},
		{"ROR abs,x", []byte{0x7E, 0x00, 0x30}, 0x01, false, 0x00, true, true, false},
	}

	for _, test := range tests {
		cpu := newTestCpu(test.program...)
		cpu.SetFlag(StatusFlagC, test.carry)
		cpu.SetFlag(StatusFlagV, true)

		read := func() byte { return cpu.A }
		switch len(test.program) {
		case 1:
			cpu.A = test.value
		case 2:
			cpu.write(0x0010, test.value)
			read = func() byte { return cpu.read(0x0010) }
		case 3:
			cpu.write(0x3000, test.value)
			read = func() byte { return cpu.read(0x3000) }
		}

		mustStep(t, cpu)

		for _, c := range []check{
			{"result", read(), test.want},
			{"carry", cpu.GetFlag(StatusFlagC), test.c},
			{"zero", cpu.GetFlag(StatusFlagZ), test.z},
			{"negative", cpu.GetFlag(StatusFlagN), test.n},
			{"overflow kept", cpu.GetFlag(StatusFlagV), true},
		} {
			if c.got != c.want {
				t.Errorf("%s %s: got %v, want %v", test.name, c.name, c.got, c.want)
			}
		}
	}
}

////////////////////////////////////////////////////////////////
// Logic, transfers, stack

func TestLogicOps(t *testing.T) {
	tests := []struct {
		name    string
		program []byte
		a       byte
		want    byte
		z, n    bool
	}{
		{"AND", []byte{0x29, 0x0F}, 0xF0, 0x00, true, false},
		{"ORA", []byte{0x09, 0x80}, 0x01, 0x81, false, true},
		{"EOR", []byte{0x49, 0xFF}, 0x0F, 0xF0, false, true},
	}

	for _, test := range tests {
		cpu := newTestCpu(test.program...)
		cpu.A = test.a
		cpu.SetFlag(StatusFlagC, true)

		mustStep(t, cpu)

		if cpu.A != test.want || cpu.GetFlag(StatusFlagZ) != test.z ||
			cpu.GetFlag(StatusFlagN) != test.n || !cpu.GetFlag(StatusFlagC) {
			t.Errorf("%s: got A=%#02x P=%s", test.name, cpu.A, cpu.Flags())
		}
	}
}

func TestOpBIT(t *testing.T) {
	// BIT $10
	cpu := newTestCpu(0x24, 0x10)
	cpu.A = 0x01
	cpu.write(0x0010, 0xC0)

	mustStep(t, cpu)

	runChecks(t, []check{
		{"zero", cpu.GetFlag(StatusFlagZ), true},
		{"overflow from bit 6", cpu.GetFlag(StatusFlagV), true},
		{"negative from bit 7", cpu.GetFlag(StatusFlagN), true},
		{"accumulator kept", cpu.A, byte(0x01)},
	})
}

func TestTransfers(t *testing.T) {
	// TAX; TAY; TSX; TXS; TXA; TYA
	cpu := newTestCpu(0xAA, 0xA8, 0xBA, 0x9A, 0x8A, 0x98)
	cpu.A = 0x80

	mustStep(t, cpu)
	runChecks(t, []check{{"tax", cpu.X, byte(0x80)}, {"tax n", cpu.GetFlag(StatusFlagN), true}})

	mustStep(t, cpu)
	runChecks(t, []check{{"tay", cpu.Y, byte(0x80)}})

	mustStep(t, cpu)
	runChecks(t, []check{{"tsx", cpu.X, byte(0xFF)}, {"tsx n", cpu.GetFlag(StatusFlagN), true}})

	cpu.X = 0x00
	cpu.SetFlag(StatusFlagZ, false)
	mustStep(t, cpu)
	runChecks(t, []check{{"txs", cpu.Sp, byte(0x00)}, {"txs leaves flags", cpu.GetFlag(StatusFlagZ), false}})

	mustStep(t, cpu)
	runChecks(t, []check{{"txa", cpu.A, byte(0x00)}, {"txa z", cpu.GetFlag(StatusFlagZ), true}})

	mustStep(t, cpu)
	runChecks(t, []check{{"tya", cpu.A, byte(0x80)}, {"tya z", cpu.GetFlag(StatusFlagZ), false}})
}

func TestStackOps(t *testing.T) {
	// PHA; LDA #$00; PLA; PHP; PLP
	cpu := newTestCpu(0x48, 0xA9, 0x00, 0x68, 0x08, 0x28)
	cpu.A = 0x99

	mustStep(t, cpu)
	runChecks(t, []check{{"pha", cpu.read(0x01FF), byte(0x99)}, {"sp", cpu.Sp, byte(0xFE)}})

	mustStep(t, cpu)
	mustStep(t, cpu)
	runChecks(t, []check{
		{"pla", cpu.A, byte(0x99)},
		{"pla n", cpu.GetFlag(StatusFlagN), true},
		{"pla z", cpu.GetFlag(StatusFlagZ), false},
	})

	cpu.SetFlag(StatusFlagC, true)
	status := cpu.Status
	mustStep(t, cpu)
	runChecks(t, []check{{"php pushes B and U", cpu.read(0x01FF), status | byte(StatusFlagB) | byte(StatusFlagU)}})

	cpu.Status = 0
	mustStep(t, cpu)
	runChecks(t, []check{
		{"plp restores carry", cpu.GetFlag(StatusFlagC), true},
		{"plp keeps B", cpu.GetFlag(StatusFlagB), false},
		{"plp sets U", cpu.GetFlag(StatusFlagU), true},
	})
}

////////////////////////////////////////////////////////////////
// Flow control

func TestBranchCycles(t *testing.T) {
	tests := []struct {
		name   string
		origin uint16
		status byte
		want   uint16
		cycles uint64
	}{
		{"not taken", 0x0600, byte(StatusFlagZ), 0x0602, 2},
		{"taken", 0x0600, 0, 0x0606, 3},
		{"taken across a page", 0x06FC, 0, 0x0702, 4},
	}

	for _, test := range tests {
		// BNE +4
		cpu := NewCpu6502()
		cpu.Load(test.origin, []byte{0xD0, 0x04})
		cpu.Status = test.status

		mustStep(t, cpu)

		if cpu.Pc != test.want || cpu.CycleCount != test.cycles {
			t.Errorf("%s: got pc $%04X after %d cycles, want $%04X after %d",
				test.name, cpu.Pc, cpu.CycleCount, test.want, test.cycles)
		}
	}
}

func TestBranchConditions(t *testing.T) {
	tests := []struct {
		opcode byte
		flag   StatusFlag
		when   bool
	}{
		{0x10, StatusFlagN, false}, // BPL
		{0x30, StatusFlagN, true},  // BMI
		{0x50, StatusFlagV, false}, // BVC
		{0x70, StatusFlagV, true},  // BVS
		{0x90, StatusFlagC, false}, // BCC
		{0xB0, StatusFlagC, true},  // BCS
		{0xD0, StatusFlagZ, false}, // BNE
		{0xF0, StatusFlagZ, true},  // BEQ
	}

	for _, test := range tests {
		for _, set := range []bool{false, true} {
			cpu := newTestCpu(test.opcode, 0x10)
			cpu.SetFlag(test.flag, set)

			mustStep(t, cpu)

			want := uint16(0x0602)
			if set == test.when {
				want = 0x0612
			}
			if cpu.Pc != want {
				t.Errorf("%#02x flag set=%v: pc $%04X, want $%04X", test.opcode, set, cpu.Pc, want)
			}
		}
	}
}

func TestPageCrossCycle(t *testing.T) {
	// LDA $01FF,X then STA $01FF,X
	cpu := newTestCpu(0xBD, 0xFF, 0x01, 0x9D, 0xFF, 0x01)
	cpu.X = 1

	mustStep(t, cpu)
	if cpu.CycleCount != 5 {
		t.Errorf("lda abs,x across page: %d cycles, want 5", cpu.CycleCount)
	}

	mustStep(t, cpu)
	if cpu.CycleCount != 10 {
		t.Errorf("sta abs,x: %d cycles total, want 10", cpu.CycleCount)
	}
}

func TestSubroutineAndBreak(t *testing.T) {
	// JSR $0606; LDX #$05; BRK; sub: LDA #$07; RTS
	cpu := newTestCpu(0x20, 0x06, 0x06, 0xA2, 0x05, 0x00, 0xA9, 0x07, 0x60)

	mustStep(t, cpu)
	runChecks(t, []check{
		{"jsr pc", cpu.Pc, uint16(0x0606)},
		{"jsr pushes last byte hi", cpu.read(0x01FF), byte(0x06)},
		{"jsr pushes last byte lo", cpu.read(0x01FE), byte(0x02)},
	})

	stop, err := cpu.Run(100)
	if err != nil {
		t.Fatal(err)
	}

	runChecks(t, []check{
		{"stop", stop, StopHalted},
		{"a", cpu.A, byte(0x07)},
		{"x", cpu.X, byte(0x05)},
		{"pc stays on brk", cpu.Pc, uint16(0x0605)},
		{"sp", cpu.Sp, byte(0xFC)},
		{"return hi", cpu.read(0x01FF), byte(0x06)},
		{"return lo", cpu.read(0x01FE), byte(0x07)},
		{"pushed status", cpu.read(0x01FD), byte(StatusFlagB) | byte(StatusFlagU)},
		{"break", cpu.GetFlag(StatusFlagB), true},
		{"interrupt disable", cpu.GetFlag(StatusFlagI), true},
	})
}

func TestOpRTI(t *testing.T) {
	// RTI with status $C3 and return address $1234 on the stack.
	cpu := newTestCpu(0x40)
	cpu.Push(0x12)
	cpu.Push(0x34)
	cpu.Push(0xC3 | byte(StatusFlagB))

	mustStep(t, cpu)

	runChecks(t, []check{
		{"pc", cpu.Pc, uint16(0x1234)},
		{"status", cpu.Status, byte(0xC3) | byte(StatusFlagU)},
		{"sp", cpu.Sp, byte(0xFF)},
	})
}

func TestOpJMP(t *testing.T) {
	// JMP ($02FF) reads its high byte from $0200.
	cpu := newTestCpu(0x6C, 0xFF, 0x02)
	cpu.write(0x02FF, 0x34)
	cpu.write(0x0200, 0x12)
	cpu.write(0x0300, 0x99)

	mustStep(t, cpu)

	if cpu.Pc != 0x1234 {
		t.Errorf("got pc $%04X, want $1234", cpu.Pc)
	}
}

func TestFlagOps(t *testing.T) {
	// SEC; SED; SEI; CLC; CLD; CLI; CLV
	cpu := newTestCpu(0x38, 0xF8, 0x78, 0x18, 0xD8, 0x58, 0xB8)
	cpu.SetFlag(StatusFlagV, true)

	for i := 0; i < 3; i++ {
		mustStep(t, cpu)
	}
	if cpu.Flags() != "nV-bDIzC" {
		t.Errorf("after set: %s", cpu.Flags())
	}

	for i := 0; i < 4; i++ {
		mustStep(t, cpu)
	}
	if cpu.Flags() != "nv-bdizc" {
		t.Errorf("after clear: %s", cpu.Flags())
	}
}
