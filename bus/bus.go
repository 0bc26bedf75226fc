// Package bus defines the byte-addressable memory contract consumed by the
// 6502 core and provides a flat 64KB implementation for tests and the
// conformance harness.
package bus

// Bus is the collaborator the CPU core reads and writes through. A Bus
// implementation is free to do anything it likes with an address - mirror
// it, map it to a peripheral, fault on it - as long as read returns some
// byte and write commits one. The CPU never holds a bus reference longer
// than its own lifetime and never calls back into the CPU.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Flat is a 64KB RAM-backed Bus with no mapping or mirroring. It is the Go
// equivalent of a real machine's open address space and is used by the
// nestest harness and by package cpu's tests.
type Flat struct {
	ram [65536]uint8
}

// NewFlat returns a Flat bus with all memory zeroed.
func NewFlat() *Flat {
	return &Flat{}
}

func (f *Flat) Read(addr uint16) uint8 {
	return f.ram[addr]
}

func (f *Flat) Write(addr uint16, data uint8) {
	f.ram[addr] = data
}

// LoadAt copies data into the bus starting at addr, without wrapping past
// 0xFFFF. Used to seed a program image before driving the CPU.
func (f *Flat) LoadAt(addr uint16, data []uint8) {
	for i, b := range data {
		f.ram[int(addr)+i] = b
	}
}

// WriteVector writes a little-endian 16-bit pointer at addr, the layout
// used by the reset/NMI/IRQ vectors.
func (f *Flat) WriteVector(addr uint16, target uint16) {
	f.ram[addr] = uint8(target & 0x00FF)
	f.ram[addr+1] = uint8(target >> 8)
}
