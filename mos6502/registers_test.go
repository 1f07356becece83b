package mos6502

import "testing"

var allFlags = []StatusFlag{
	StatusFlagC, StatusFlagZ, StatusFlagI, StatusFlagD,
	StatusFlagB, StatusFlagU, StatusFlagV, StatusFlagN,
}

func TestFlagBitPositions(t *testing.T) {
	for bit, f := range allFlags {
		if byte(f) != 1<<bit {
			t.Errorf("flag %d: got %#02x, want %#02x", bit, byte(f), 1<<bit)
		}
	}
}

func TestSetFlagLeavesOtherBits(t *testing.T) {
	var r Registers

	for status := 0; status < 0x100; status++ {
		for _, f := range allFlags {
			for _, v := range []bool{false, true} {
				r.Status = byte(status)
				r.SetFlag(f, v)

				if r.GetFlag(f) != v {
					t.Fatalf("status %#02x flag %#02x: got %v, want %v", status, f, r.GetFlag(f), v)
				}
				if r.Status&^byte(f) != byte(status)&^byte(f) {
					t.Fatalf("status %#02x flag %#02x: other bits changed to %#02x", status, f, r.Status)
				}
			}
		}
	}
}

func TestPushPull(t *testing.T) {
	cpu := newTestCpu()

	for sp := 0; sp < 0x100; sp++ {
		for _, x := range []byte{0x00, 0x01, 0x7F, 0x80, 0xFF} {
			cpu.Sp = byte(sp)
			cpu.Push(x)
			got := cpu.Pull()

			if got != x {
				t.Fatalf("sp %#02x: pulled %#02x, want %#02x", sp, got, x)
			}
			if cpu.Sp != byte(sp) {
				t.Fatalf("sp %#02x: left sp at %#02x", sp, cpu.Sp)
			}
		}
	}
}

func TestStackWraps(t *testing.T) {
	cpu := newTestCpu()
	cpu.Sp = 0x10

	for i := 0; i < 256; i++ {
		cpu.Push(byte(i))
	}

	sp := cpu.Sp
	pulled := cpu.Pull()

	runChecks(t, []check{
		{"sp after 256 pushes", sp, byte(0x10)},
		{"first push", cpu.Bus().Read(0x0110), byte(0x00)},
		{"push across wrap", cpu.Bus().Read(0x01FF), byte(0x11)},
		{"last push", cpu.Bus().Read(0x0111), byte(0xFF)},
		{"last pushed is pulled first", pulled, byte(0xFF)},
	})
}

func TestRegistersString(t *testing.T) {
	r := Registers{A: 0x01, X: 0x02, Y: 0x03, Sp: 0xFD, Status: 0x81}

	runChecks(t, []check{
		{"string", r.String(), "A:01 X:02 Y:03 P:81 SP:FD"},
		{"flags", r.Flags(), "Nv-bdizC"},
	})
}
