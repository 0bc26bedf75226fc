package cpu

import "testing"

func TestAmZPXWraps(t *testing.T) {
	c, b := newTestCPU()
	c.X = 0xFF
	b.Write(0x0000, 0x80) // operand byte at PC
	c.PC = 0x0000

	amZPX(c)

	if got, want := c.currentAddress, uint16(0x7F); got != want {
		t.Fatalf("ZPX effective address = %.4X, want %.4X (wrapped)", got, want)
	}
}

func TestAmABXPageCross(t *testing.T) {
	c, b := newTestCPU()
	c.X = 0x01
	b.LoadAt(0x0000, []uint8{0xFF, 0x02}) // base 0x02FF
	c.PC = 0x0000

	crossed := amABX(c)

	if got, want := c.currentAddress, uint16(0x0300); got != want {
		t.Fatalf("ABX effective address = %.4X, want %.4X", got, want)
	}
	if !crossed {
		t.Fatalf("ABX should report a page cross for 0x02FF+1")
	}
}

func TestAmABXNoPageCross(t *testing.T) {
	c, b := newTestCPU()
	c.X = 0x01
	b.LoadAt(0x0000, []uint8{0x00, 0x02}) // base 0x0200
	c.PC = 0x0000

	crossed := amABX(c)

	if got, want := c.currentAddress, uint16(0x0201); got != want {
		t.Fatalf("ABX effective address = %.4X, want %.4X", got, want)
	}
	if crossed {
		t.Fatalf("ABX should not report a page cross for 0x0200+1")
	}
}

func TestAmIZXWrapsPointer(t *testing.T) {
	c, b := newTestCPU()
	c.X = 0x01
	b.Write(0x0010, 0xFF) // operand, at an address distinct from the pointer it wraps to
	b.Write(0x00, 0x34)   // pointer low at (0xFF+1)&0xFF = 0x00
	b.Write(0x01, 0x12)   // pointer high at 0x01
	c.PC = 0x0010

	amIZX(c)

	if got, want := c.currentAddress, uint16(0x1234); got != want {
		t.Fatalf("IZX effective address = %.4X, want %.4X", got, want)
	}
}

func TestAmIZYPageCross(t *testing.T) {
	c, b := newTestCPU()
	c.Y = 0x01
	b.Write(0x0000, 0x10) // operand: zero-page pointer address
	b.Write(0x10, 0xFF)   // pointer low
	b.Write(0x11, 0x02)   // pointer high -> base 0x02FF
	c.PC = 0x0000

	crossed := amIZY(c)

	if got, want := c.currentAddress, uint16(0x0300); got != want {
		t.Fatalf("IZY effective address = %.4X, want %.4X", got, want)
	}
	if !crossed {
		t.Fatalf("IZY should report a page cross when base 0x02FF + Y crosses")
	}
}

func TestAmINDPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	b.LoadAt(0x0000, []uint8{0xFF, 0x30}) // pointer operand 0x30FF
	b.Write(0x30FF, 0x80)
	b.Write(0x3000, 0x50) // should be used instead of 0x3100 due to the bug
	b.Write(0x3100, 0x40)
	c.PC = 0x0000

	amIND(c)

	if got, want := c.currentAddress, uint16(0x5080); got != want {
		t.Fatalf("IND effective address = %.4X, want %.4X (page-wrap bug)", got, want)
	}
}

func TestAmINDNoWrap(t *testing.T) {
	c, b := newTestCPU()
	b.LoadAt(0x0000, []uint8{0x00, 0x30}) // pointer operand 0x3000, no wrap
	b.Write(0x3000, 0x80)
	b.Write(0x3001, 0x40)
	c.PC = 0x0000

	amIND(c)

	if got, want := c.currentAddress, uint16(0x4080); got != want {
		t.Fatalf("IND effective address = %.4X, want %.4X", got, want)
	}
}

func TestAmRELSignExtends(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0x0000, 0x80) // -128
	c.PC = 0x0000

	amREL(c)

	if got, want := c.relativeAddress, uint16(0xFF80); got != want {
		t.Fatalf("REL sign-extended offset = %.4X, want %.4X", got, want)
	}
}

func TestAmIMPCapturesAccumulator(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x42

	amIMP(c)

	if !c.isAccumulator {
		t.Fatalf("amIMP did not mark isAccumulator")
	}
	if got, want := c.currentByte, uint8(0x42); got != want {
		t.Fatalf("amIMP currentByte = %.2X, want %.2X", got, want)
	}
}
