package mos6502

import "testing"

// Create a running CPU with program loaded at $0600.
func newTestCpu(program ...byte) *Cpu6502 {
	cpu := NewCpu6502(WithSeed(1))
	cpu.LoadProgram(program)
	return cpu
}

func mustStep(t *testing.T, cpu *Cpu6502) {
	t.Helper()

	if err := cpu.Step(); err != nil {
		t.Fatalf("step at $%04X: %v", cpu.Pc, err)
	}
}

type check struct {
	name string
	got  interface{}
	want interface{}
}

func runChecks(t *testing.T, tests []check) {
	t.Helper()

	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

// counterSource returns 0, 1, 2, ... as its random bytes.
type counterSource struct {
	n byte
}

func (c *counterSource) Byte() byte {
	b := c.n
	c.n++
	return b
}
