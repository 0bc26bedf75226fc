// Package cpu implements the MOS 6502 instruction set architecture: its
// register file, status flags, addressing modes, instruction semantics,
// interrupt handling, and per-cycle accounting. It is driven by an outer
// scheduler one master clock tick at a time and knows nothing about any
// particular memory map beyond the bus.Bus contract it is given.
package cpu

import "github.com/n-ulricksen/go6502/bus"

const stackPage uint16 = 0x0100

// Vector addresses, persisted in the bus address space.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
)

// Processor holds all architectural state for one 6502 core.
type Processor struct {
	A  uint8  // Accumulator
	X  uint8  // X index register
	Y  uint8  // Y index register
	SP uint8  // Stack pointer (effective address is 0x0100 | SP)
	PC uint16 // Program counter
	P  uint8  // Status register

	bus bus.Bus

	// Transient per-instruction state, lifetime of one instruction.
	opcode          uint8          // Fetched opcode byte
	mode            AddressingMode // Addressing mode that produced the operand
	currentAddress  uint16         // Effective address (meaningless for IMP)
	currentByte     uint8          // Accumulator snapshot (IMP) or scratch
	relativeAddress uint16         // Sign-extended branch offset (REL only)
	cyclesRemaining uint8          // Unconsumed cycles of the in-flight instruction
	isAccumulator   bool           // Whether the current mode is accumulator-form IMP

	cycleCount uint64 // Total cycles consumed since construction
}

// New returns a Processor wired to b. The processor is not reset; callers
// either call Reset or seed PC, SP and P directly before the first Clock.
func New(b bus.Bus) *Processor {
	return &Processor{bus: b}
}

// read performs the CPU's intra-instruction read: for accumulator/implicit
// mode it returns the latched currentByte, otherwise it forwards to the
// bus. The CPU never caches bus data across instruction boundaries.
func (c *Processor) read(addr uint16) uint8 {
	if c.mode == IMP {
		return c.currentByte
	}
	return c.bus.Read(addr)
}

func (c *Processor) write(addr uint16, data uint8) {
	c.bus.Write(addr, data)
}

// readWord reads a little-endian 16-bit value directly from the bus.
func (c *Processor) readWord(addr uint16) uint16 {
	lo := c.bus.Read(addr)
	hi := c.bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// push writes data to the stack page at 0x0100|SP and decrements SP,
// wrapping mod 256.
func (c *Processor) push(data uint8) {
	c.write(stackPage|uint16(c.SP), data)
	c.SP--
}

// pop increments SP, wrapping mod 256, and reads from the stack page.
func (c *Processor) pop() uint8 {
	c.SP++
	return c.bus.Read(stackPage | uint16(c.SP))
}

// Reset primes PC from the reset vector, zeroes the registers, sets SP to
// 0xFD and P to U-only, clears transient state, and charges 8 cycles.
func (c *Processor) Reset() {
	c.PC = c.readWord(ResetVector)

	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = 0xFD
	c.P = uint8(FlagU)

	c.currentAddress = 0
	c.currentByte = 0
	c.relativeAddress = 0
	c.isAccumulator = false

	c.cyclesRemaining = 8
}

// interruptSequence pushes PC (high then low) and P (with B cleared, U
// set) onto the stack, sets I, and loads PC from vector.
func (c *Processor) interruptSequence(vector uint16) {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC & 0x00FF))

	c.SetFlag(FlagB, false)
	c.SetFlag(FlagU, true)
	c.push(c.P)

	c.SetFlag(FlagI, true)
	c.PC = c.readWord(vector)
}

// IRQ requests a maskable interrupt. Ignored if the I flag is set.
func (c *Processor) IRQ() {
	if c.GetFlag(FlagI) {
		return
	}
	c.interruptSequence(IRQVector)
	c.cyclesRemaining = 7
}

// NMI requests a non-maskable interrupt. Unlike IRQ it cannot be masked
// and it vectors through NMIVector (0xFFFA/0xFFFB), not the IRQ vector.
func (c *Processor) NMI() {
	c.interruptSequence(NMIVector)
	c.cyclesRemaining = 8
}

// Clock advances the CPU by one master clock tick: it either consumes a
// queued cycle of an in-flight instruction, or - when none remain -
// fetches and dispatches the next instruction, charging its baseline
// cycle count plus any page-cross penalty.
func (c *Processor) Clock() {
	if c.cyclesRemaining == 0 {
		c.opcode = c.bus.Read(c.PC)
		c.PC++

		c.SetFlag(FlagU, true)

		entry := opcodeTable[c.opcode]
		c.cyclesRemaining = entry.Cycles
		c.mode = entry.Mode
		c.isAccumulator = false

		pageCrossed := entry.AddrMode(c)
		entry.Execute(c)

		if pageCrossed && !isStore(entry.Name) {
			c.cyclesRemaining++
		}
	}

	c.cycleCount++
	c.cyclesRemaining--
}

// isStore reports whether mnemonic is one of the store instructions,
// which never accrue the addressing-mode page-cross penalty.
func isStore(mnemonic string) bool {
	return mnemonic == "STA" || mnemonic == "STX" || mnemonic == "STY"
}

// InstructionComplete reports whether the previous instruction has fully
// settled. The external driver may only sample register state between
// instructions for tracing.
func (c *Processor) InstructionComplete() bool {
	return c.cyclesRemaining == 0
}

// CycleCount returns the total number of master clock ticks this
// processor has consumed since construction. Reset does not clear it.
func (c *Processor) CycleCount() uint64 {
	return c.cycleCount
}

// Opcode returns the most recently fetched opcode byte.
func (c *Processor) Opcode() uint8 { return c.opcode }
