package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n-ulricksen/go6502/bus"
	"github.com/n-ulricksen/go6502/cpu"
	"github.com/n-ulricksen/go6502/trace"
)

func writeTempFile(t *testing.T, data []uint8) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.bin")
	if err := ioutil.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadPRGStripsINESHeader(t *testing.T) {
	header := []uint8{'N', 'E', 'S', 0x1A, 0x01, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, 16384)
	for i := range prg {
		prg[i] = uint8(i)
	}
	path := writeTempFile(t, append(header, prg...))

	got, err := loadPRG(path, true)
	if err != nil {
		t.Fatalf("loadPRG: %v", err)
	}
	if len(got) != len(prg) {
		t.Fatalf("stripped PRG length = %d, want %d", len(got), len(prg))
	}
	if got[0] != prg[0] || got[len(got)-1] != prg[len(prg)-1] {
		t.Fatalf("stripped PRG contents mismatch")
	}
}

func TestLoadPRGPassesThroughRawDump(t *testing.T) {
	raw := []uint8{0xEA, 0xEA, 0x00}
	path := writeTempFile(t, raw)

	got, err := loadPRG(path, true)
	if err != nil {
		t.Fatalf("loadPRG: %v", err)
	}
	if len(got) != len(raw) || got[0] != raw[0] {
		t.Fatalf("raw PRG dump should pass through unmodified, got %v", got)
	}
}

func TestLoadPRGTruncatedHeaderErrors(t *testing.T) {
	header := []uint8{'N', 'E', 'S', 0x1A, 0x02, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	path := writeTempFile(t, append(header, make([]uint8, 100)...))

	if _, err := loadPRG(path, true); err == nil {
		t.Fatalf("expected error for truncated two-bank PRG image")
	}
}

func TestLoadPRGMissingFile(t *testing.T) {
	if _, err := loadPRG(filepath.Join(os.TempDir(), "does-not-exist.nes"), true); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// withFlags sets the given package-level flag variables for the duration of
// a test and restores their previous values on cleanup. These flags are
// ordinary globals (as in the teacher's main.go), not re-parsed per test.
func withFlags(t *testing.T, rom string, n int, ines, quietFlag bool, golden, dest string, start uint) {
	t.Helper()
	prevRom, prevN, prevINES := *romPath, *maxInstrs, *iNESHeader
	prevQuiet, prevGolden, prevDest, prevStart := *quiet, *goldenPath, *logDest, *startAddr
	t.Cleanup(func() {
		*romPath, *maxInstrs, *iNESHeader = prevRom, prevN, prevINES
		*quiet, *goldenPath, *logDest, *startAddr = prevQuiet, prevGolden, prevDest, prevStart
	})
	*romPath, *maxInstrs, *iNESHeader = rom, n, ines
	*quiet, *goldenPath, *logDest, *startAddr = quietFlag, golden, dest, start
}

// genTrace runs the same fetch/execute/log loop as run(), without any I/O,
// and returns the exact lines run() would write or compare against.
func genTrace(t *testing.T, prg []uint8, start uint16, n int) []string {
	t.Helper()
	b := bus.NewFlat()
	b.LoadAt(start, prg)

	c := cpu.New(b)
	c.PC = start
	c.SP = 0xFD
	c.P = 0x24

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, trace.Line(c, b, c.CycleCount()+startupCycles))
		c.Clock()
		for !c.InstructionComplete() {
			c.Clock()
		}
	}
	return lines
}

func writeGolden(t *testing.T, lines []string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "golden.log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	return path
}

func TestRunComparesAgainstGoldenLog(t *testing.T) {
	prg := []uint8{0xEA, 0xEA, 0xEA} // NOP NOP NOP
	romFile := writeTempFile(t, prg)

	golden := genTrace(t, prg, 0xC000, 3)
	goldenFile := writeGolden(t, golden)

	withFlags(t, romFile, 3, false, true, goldenFile, "", 0xC000)

	res, err := run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass {
		t.Fatalf("run() = %+v, want Pass (golden log built from the same trace)", res)
	}
	if res.LineCount != 3 {
		t.Errorf("LineCount = %d, want 3", res.LineCount)
	}
}

func TestRunReportsFirstGoldenMismatch(t *testing.T) {
	prg := []uint8{0xEA, 0xEA, 0xEA}
	romFile := writeTempFile(t, prg)

	golden := genTrace(t, prg, 0xC000, 3)
	golden[1] = strings.Replace(golden[1], "A:00", "A:FF", 1)
	goldenFile := writeGolden(t, golden)

	withFlags(t, romFile, 3, false, true, goldenFile, "", 0xC000)

	res, err := run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Pass {
		t.Fatalf("run() = %+v, want failure (golden log was corrupted)", res)
	}
	if res.MismatchLine != 2 {
		t.Errorf("MismatchLine = %d, want 2", res.MismatchLine)
	}
	if res.Want != golden[1] {
		t.Errorf("Want = %q, want %q", res.Want, golden[1])
	}
	if res.Got == res.Want {
		t.Errorf("Got should differ from the corrupted Want line")
	}
}

func TestRunGoldenEndsEarly(t *testing.T) {
	prg := []uint8{0xEA, 0xEA, 0xEA}
	romFile := writeTempFile(t, prg)

	golden := genTrace(t, prg, 0xC000, 3)
	goldenFile := writeGolden(t, golden[:1])

	withFlags(t, romFile, 3, false, true, goldenFile, "", 0xC000)

	res, err := run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Pass {
		t.Fatalf("run() = %+v, want failure (golden log is shorter than the trace)", res)
	}
	if res.MismatchLine != 2 {
		t.Errorf("MismatchLine = %d, want 2", res.MismatchLine)
	}
	if res.Want != "(golden log ended early)" {
		t.Errorf("Want = %q, want the end-of-log sentinel", res.Want)
	}
}

func TestRunWithoutGoldenPassesTrivially(t *testing.T) {
	prg := []uint8{0xEA, 0xEA, 0xEA}
	romFile := writeTempFile(t, prg)

	withFlags(t, romFile, 3, false, true, "", "", 0xC000)

	res, err := run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !res.Pass || res.LineCount != 3 {
		t.Errorf("run() = %+v, want Pass with LineCount 3 when no golden log is given", res)
	}
}
