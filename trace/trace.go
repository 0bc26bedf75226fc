// Package trace renders a Processor's state as a nestest-style log line:
// address, raw opcode bytes, disassembled mnemonic, and registers. It reads
// the bus and the processor but never mutates either.
package trace

import (
	"fmt"
	"strings"

	"github.com/n-ulricksen/go6502/bus"
	"github.com/n-ulricksen/go6502/cpu"
)

// operandBytes reports how many bytes (including the opcode itself) an
// instruction in the given addressing mode occupies.
func operandBytes(mode cpu.AddressingMode) int {
	switch mode {
	case cpu.IMM, cpu.ZP0, cpu.ZPX, cpu.ZPY, cpu.REL, cpu.IZX, cpu.IZY:
		return 2
	case cpu.ABS, cpu.ABX, cpu.ABY, cpu.IND:
		return 3
	default:
		return 1
	}
}

// operandText formats the mnemonic's operand the way nestest golden logs
// expect, given the two bytes following the opcode (b1 low, b2 high) and
// the address of the instruction itself (for relative-branch targets).
func operandText(mode cpu.AddressingMode, pc uint16, b1, b2 uint8) string {
	word := uint16(b1) | uint16(b2)<<8
	switch mode {
	case cpu.IMM:
		return fmt.Sprintf("#$%02X", b1)
	case cpu.ZP0:
		return fmt.Sprintf("$%02X", b1)
	case cpu.ZPX:
		return fmt.Sprintf("$%02X,X", b1)
	case cpu.ZPY:
		return fmt.Sprintf("$%02X,Y", b1)
	case cpu.ABS:
		return fmt.Sprintf("$%04X", word)
	case cpu.ABX:
		return fmt.Sprintf("$%04X,X", word)
	case cpu.ABY:
		return fmt.Sprintf("$%04X,Y", word)
	case cpu.IND:
		return fmt.Sprintf("($%04X)", word)
	case cpu.IZX:
		return fmt.Sprintf("($%02X,X)", b1)
	case cpu.IZY:
		return fmt.Sprintf("($%02X),Y", b1)
	case cpu.REL:
		target := pc + 2 + uint16(int8(b1))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}

// Line renders one state line for the instruction about to execute at the
// processor's current PC, using cycAtFetch as the CYC column. The caller
// passes this in rather than reading c.CycleCount() directly because
// nestest's reference log counts cycles from the hardware reset sequence,
// which conformance harnesses that seed CPU state directly (without calling
// Reset) never replay; callers typically pass CycleCount() plus that fixed
// offset.
func Line(c *cpu.Processor, b bus.Bus, cycAtFetch uint64) string {
	pc := c.PC
	op := b.Read(pc)
	entry := cpu.Lookup(op)

	b1 := b.Read(pc + 1)
	b2 := b.Read(pc + 2)

	n := operandBytes(entry.Mode)

	var hexCols [3]string
	hexCols[0] = fmt.Sprintf("%02X", op)
	if n >= 2 {
		hexCols[1] = fmt.Sprintf("%02X", b1)
	}
	if n >= 3 {
		hexCols[2] = fmt.Sprintf("%02X", b2)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%04X  ", pc)
	for _, col := range hexCols {
		if col == "" {
			sb.WriteString("   ")
		} else {
			sb.WriteString(col)
			sb.WriteByte(' ')
		}
	}

	mnem := entry.Name
	if op := operandText(entry.Mode, pc, b1, b2); op != "" {
		mnem += " " + op
	}
	sb.WriteString(padTo(mnem, 28))

	fmt.Fprintf(&sb, "A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.A, c.X, c.Y, c.P, c.SP, cycAtFetch)

	return sb.String()
}

func padTo(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
