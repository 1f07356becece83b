package mos6502

// Memory map used by easy6502 programs. Only the stack page is enforced by
// the CPU; the rest is convention between programs and the host.
const (
	ZeroPage      uint16 = 0x0000
	RandomAddr    uint16 = 0x00FE // Pseudo-random byte.
	KeyAddr       uint16 = 0x00FF // ASCII code of the last key pressed.
	StackBase     uint16 = 0x0100
	ScreenStart   uint16 = 0x0200
	ScreenEnd     uint16 = 0x05FF
	DefaultOrigin uint16 = 0x0600

	DefaultKey byte = 0x30

	memSize = 64 * 1024
)

// Bus is the 16-bit address bus used by the CPU. It is backed by 64KB of RAM,
// so every address is valid and reads/writes never fail.
type Bus struct {
	ram [memSize]byte
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *Bus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

// Read a word from memory (little endian order). The high byte wraps to
// 0x0000 when addr is 0xFFFF.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)

	return (uint16(hi) << 8) | uint16(lo)
}

// Load copies a slice of bytes to memory starting at origin. Bytes past
// 0xFFFF wrap around to the bottom of memory.
func (b *Bus) Load(origin uint16, data []byte) {
	addr := origin
	for _, bte := range data {
		b.ram[addr] = bte
		addr++
	}
}

// Slice returns a copy of memory from start to end, inclusive.
func (b *Bus) Slice(start, end uint16) []byte {
	if end < start {
		return nil
	}

	out := make([]byte, int(end)-int(start)+1)
	copy(out, b.ram[start:int(end)+1])

	return out
}

// Reset clears all of memory.
func (b *Bus) Reset() {
	b.ram = [memSize]byte{}
}
