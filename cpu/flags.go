package cpu

// Flag is a single bit of the processor status register P.
type Flag uint8

// Status flag bit positions, per the 6502 status byte layout.
const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt disable
	FlagD                  // Decimal mode (settable/clearable; does not alter ADC/SBC here)
	FlagB                  // Break (only meaningful in the pushed copy)
	FlagU                  // Unused, forced set whenever P is observed
	FlagV                  // Overflow
	FlagN                  // Negative
)

// GetFlag reports whether f is set in P.
func (c *Processor) GetFlag(f Flag) bool {
	return c.P&uint8(f) != 0
}

// SetFlag sets or clears f in P according to on.
func (c *Processor) SetFlag(f Flag, on bool) {
	if on {
		c.P |= uint8(f)
	} else {
		c.P &^= uint8(f)
	}
}

// setZN sets the Z and N flags from an 8-bit result, per invariant 2:
// N equals bit 7 of the result, Z equals (result == 0).
func (c *Processor) setZN(result uint8) {
	c.SetFlag(FlagZ, result == 0)
	c.SetFlag(FlagN, result&0x80 != 0)
}
