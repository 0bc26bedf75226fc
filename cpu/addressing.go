package cpu

// AddressingMode tags which of the twelve 6502 addressing modes produced
// the operand for the instruction currently executing. Instructions that
// need to distinguish accumulator-form from memory-form (ASL/LSR/ROL/ROR)
// branch on this tag rather than comparing evaluator function identity -
// it is also what a downstream disassembler consumes, per the opcode
// table's introspection contract.
type AddressingMode int

const (
	IMP AddressingMode = iota // Implicit/Accumulator
	IMM                       // Immediate
	ZP0                       // Zero Page
	ZPX                       // Zero Page,X
	ZPY                       // Zero Page,Y
	REL                       // Relative
	ABS                       // Absolute
	ABX                       // Absolute,X
	ABY                       // Absolute,Y
	IND                       // Indirect
	IZX                       // Indexed Indirect (X)
	IZY                       // Indirect Indexed (Y)
)

// String names an addressing mode for tracing/disassembly.
func (m AddressingMode) String() string {
	switch m {
	case IMP:
		return "IMP"
	case IMM:
		return "IMM"
	case ZP0:
		return "ZP0"
	case ZPX:
		return "ZPX"
	case ZPY:
		return "ZPY"
	case REL:
		return "REL"
	case ABS:
		return "ABS"
	case ABX:
		return "ABX"
	case ABY:
		return "ABY"
	case IND:
		return "IND"
	case IZX:
		return "IZX"
	case IZY:
		return "IZY"
	default:
		return "???"
	}
}

// addrFunc evaluates an addressing mode: it sets current_address (or
// current_byte for IMP), advances PC past any operand bytes, and reports
// whether a page boundary was crossed. Only ABX, ABY and IZY ever return
// true.
type addrFunc func(c *Processor) bool

// amIMP captures A into currentByte for accumulator-form instructions.
func amIMP(c *Processor) bool {
	c.isAccumulator = true
	c.currentByte = c.A
	return false
}

// amIMM treats the operand byte itself as the effective address.
func amIMM(c *Processor) bool {
	c.currentAddress = c.PC
	c.PC++
	return false
}

// amZP0 indexes into the zero page using the operand byte directly.
func amZP0(c *Processor) bool {
	c.currentAddress = uint16(c.bus.Read(c.PC))
	c.PC++
	return false
}

// amZPX adds X to the operand byte, wrapping within the zero page.
func amZPX(c *Processor) bool {
	c.currentAddress = uint16(c.bus.Read(c.PC)+c.X) & 0x00FF
	c.PC++
	return false
}

// amZPY adds Y to the operand byte, wrapping within the zero page.
func amZPY(c *Processor) bool {
	c.currentAddress = uint16(c.bus.Read(c.PC)+c.Y) & 0x00FF
	c.PC++
	return false
}

// amREL reads a signed 8-bit branch offset and sign-extends it to 16 bits.
func amREL(c *Processor) bool {
	off := uint16(c.bus.Read(c.PC))
	c.PC++
	if off&0x80 != 0 {
		off |= 0xFF00
	}
	c.relativeAddress = off
	return false
}

// amABS reads a little-endian 16-bit absolute address.
func amABS(c *Processor) bool {
	c.currentAddress = c.readWord(c.PC)
	c.PC += 2
	return false
}

// amABX is absolute addressing offset by X, reporting a page cross if the
// high byte changed after indexing.
func amABX(c *Processor) bool {
	base := c.readWord(c.PC)
	c.PC += 2
	c.currentAddress = base + uint16(c.X)
	return base&0xFF00 != c.currentAddress&0xFF00
}

// amABY is absolute addressing offset by Y, same page-cross rule as ABX.
func amABY(c *Processor) bool {
	base := c.readWord(c.PC)
	c.PC += 2
	c.currentAddress = base + uint16(c.Y)
	return base&0xFF00 != c.currentAddress&0xFF00
}

// amIND is indirect addressing, reproducing the classic 6502 page-wrap
// hardware bug: if the low byte of the pointer is 0xFF, the high byte of
// the effective address is read from the start of that page rather than
// the following byte.
func amIND(c *Processor) bool {
	ptr := c.readWord(c.PC)
	c.PC += 2

	if ptr&0x00FF == 0x00FF {
		lo := c.bus.Read(ptr)
		hi := c.bus.Read(ptr & 0xFF00)
		c.currentAddress = uint16(hi)<<8 | uint16(lo)
	} else {
		c.currentAddress = c.readWord(ptr)
	}
	return false
}

// amIZX is indexed-indirect addressing: the operand plus X selects a
// zero-page pointer (both bytes wrap within the zero page) to the
// effective address.
func amIZX(c *Processor) bool {
	t := (c.bus.Read(c.PC) + c.X) & 0x00FF
	c.PC++

	lo := c.bus.Read(uint16(t))
	hi := c.bus.Read(uint16(t+1) & 0x00FF)
	c.currentAddress = uint16(hi)<<8 | uint16(lo)
	return false
}

// amIZY is indirect-indexed addressing: the operand selects a zero-page
// pointer to a base address, which is then offset by Y. Page-cross is
// checked against the base, not the pointer.
func amIZY(c *Processor) bool {
	t := c.bus.Read(c.PC)
	c.PC++

	lo := c.bus.Read(uint16(t))
	hi := c.bus.Read(uint16(t+1) & 0x00FF)
	base := uint16(hi)<<8 | uint16(lo)

	c.currentAddress = base + uint16(c.Y)
	return base&0xFF00 != c.currentAddress&0xFF00
}
