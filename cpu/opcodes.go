package cpu

// Instruction is one entry of the 256-entry opcode dispatch table: the
// mnemonic (for tracing), the baseline cycle count, the operation body,
// the addressing-mode evaluator, and the addressing-mode tag a
// disassembler can read without comparing function identity.
type Instruction struct {
	Name     string
	Cycles   uint8
	Execute  opFunc
	AddrMode addrFunc
	Mode     AddressingMode
}

// Lookup returns the opcode table entry for opcode, for use by
// disassemblers and trace formatters. The returned value is a copy; the
// table itself is immutable.
func Lookup(opcode uint8) Instruction {
	return opcodeTable[opcode]
}

// opcodeTable is the fixed 256-entry immutable lookup keyed by opcode
// byte. Unofficial opcodes map to ("XXX", 2 cycles, the illegal-opcode
// handler opXXX, IMP); their cycle counts are not those of the standard
// table.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
var opcodeTable = [256]Instruction{
	{Name: "BRK", Cycles: 7, Execute: opBRK, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 6, Execute: opORA, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 3, Execute: opORA, AddrMode: amZP0, Mode: ZP0}, {Name: "ASL", Cycles: 5, Execute: opASL, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "PHP", Cycles: 3, Execute: opPHP, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 2, Execute: opORA, AddrMode: amIMM, Mode: IMM}, {Name: "ASL", Cycles: 2, Execute: opASL, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 4, Execute: opORA, AddrMode: amABS, Mode: ABS}, {Name: "ASL", Cycles: 6, Execute: opASL, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BPL", Cycles: 2, Execute: opBPL, AddrMode: amREL, Mode: REL}, {Name: "ORA", Cycles: 5, Execute: opORA, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 4, Execute: opORA, AddrMode: amZPX, Mode: ZPX}, {Name: "ASL", Cycles: 6, Execute: opASL, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CLC", Cycles: 2, Execute: opCLC, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 4, Execute: opORA, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ORA", Cycles: 4, Execute: opORA, AddrMode: amABX, Mode: ABX}, {Name: "ASL", Cycles: 7, Execute: opASL, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "JSR", Cycles: 6, Execute: opJSR, AddrMode: amABS, Mode: ABS}, {Name: "AND", Cycles: 6, Execute: opAND, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BIT", Cycles: 3, Execute: opBIT, AddrMode: amZP0, Mode: ZP0}, {Name: "AND", Cycles: 3, Execute: opAND, AddrMode: amZP0, Mode: ZP0}, {Name: "ROL", Cycles: 5, Execute: opROL, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "PLP", Cycles: 4, Execute: opPLP, AddrMode: amIMP, Mode: IMP}, {Name: "AND", Cycles: 2, Execute: opAND, AddrMode: amIMM, Mode: IMM}, {Name: "ROL", Cycles: 2, Execute: opROL, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BIT", Cycles: 4, Execute: opBIT, AddrMode: amABS, Mode: ABS}, {Name: "AND", Cycles: 4, Execute: opAND, AddrMode: amABS, Mode: ABS}, {Name: "ROL", Cycles: 6, Execute: opROL, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BMI", Cycles: 2, Execute: opBMI, AddrMode: amREL, Mode: REL}, {Name: "AND", Cycles: 5, Execute: opAND, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "AND", Cycles: 4, Execute: opAND, AddrMode: amZPX, Mode: ZPX}, {Name: "ROL", Cycles: 6, Execute: opROL, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "SEC", Cycles: 2, Execute: opSEC, AddrMode: amIMP, Mode: IMP}, {Name: "AND", Cycles: 4, Execute: opAND, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "AND", Cycles: 4, Execute: opAND, AddrMode: amABX, Mode: ABX}, {Name: "ROL", Cycles: 7, Execute: opROL, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "RTI", Cycles: 6, Execute: opRTI, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 6, Execute: opEOR, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 3, Execute: opEOR, AddrMode: amZP0, Mode: ZP0}, {Name: "LSR", Cycles: 5, Execute: opLSR, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "PHA", Cycles: 3, Execute: opPHA, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 2, Execute: opEOR, AddrMode: amIMM, Mode: IMM}, {Name: "LSR", Cycles: 2, Execute: opLSR, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "JMP", Cycles: 3, Execute: opJMP, AddrMode: amABS, Mode: ABS}, {Name: "EOR", Cycles: 4, Execute: opEOR, AddrMode: amABS, Mode: ABS}, {Name: "LSR", Cycles: 6, Execute: opLSR, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BVC", Cycles: 2, Execute: opBVC, AddrMode: amREL, Mode: REL}, {Name: "EOR", Cycles: 5, Execute: opEOR, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 4, Execute: opEOR, AddrMode: amZPX, Mode: ZPX}, {Name: "LSR", Cycles: 6, Execute: opLSR, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CLI", Cycles: 2, Execute: opCLI, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 4, Execute: opEOR, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "EOR", Cycles: 4, Execute: opEOR, AddrMode: amABX, Mode: ABX}, {Name: "LSR", Cycles: 7, Execute: opLSR, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "RTS", Cycles: 6, Execute: opRTS, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 6, Execute: opADC, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 3, Execute: opADC, AddrMode: amZP0, Mode: ZP0}, {Name: "ROR", Cycles: 5, Execute: opROR, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "PLA", Cycles: 4, Execute: opPLA, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 2, Execute: opADC, AddrMode: amIMM, Mode: IMM}, {Name: "ROR", Cycles: 2, Execute: opROR, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "JMP", Cycles: 5, Execute: opJMP, AddrMode: amIND, Mode: IND}, {Name: "ADC", Cycles: 4, Execute: opADC, AddrMode: amABS, Mode: ABS}, {Name: "ROR", Cycles: 6, Execute: opROR, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BVS", Cycles: 2, Execute: opBVS, AddrMode: amREL, Mode: REL}, {Name: "ADC", Cycles: 5, Execute: opADC, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 4, Execute: opADC, AddrMode: amZPX, Mode: ZPX}, {Name: "ROR", Cycles: 6, Execute: opROR, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "SEI", Cycles: 2, Execute: opSEI, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 4, Execute: opADC, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "ADC", Cycles: 4, Execute: opADC, AddrMode: amABX, Mode: ABX}, {Name: "ROR", Cycles: 7, Execute: opROR, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "STA", Cycles: 6, Execute: opSTA, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "STY", Cycles: 3, Execute: opSTY, AddrMode: amZP0, Mode: ZP0}, {Name: "STA", Cycles: 3, Execute: opSTA, AddrMode: amZP0, Mode: ZP0}, {Name: "STX", Cycles: 3, Execute: opSTX, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "DEY", Cycles: 2, Execute: opDEY, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "TXA", Cycles: 2, Execute: opTXA, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "STY", Cycles: 4, Execute: opSTY, AddrMode: amABS, Mode: ABS}, {Name: "STA", Cycles: 4, Execute: opSTA, AddrMode: amABS, Mode: ABS}, {Name: "STX", Cycles: 4, Execute: opSTX, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BCC", Cycles: 2, Execute: opBCC, AddrMode: amREL, Mode: REL}, {Name: "STA", Cycles: 6, Execute: opSTA, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "STY", Cycles: 4, Execute: opSTY, AddrMode: amZPX, Mode: ZPX}, {Name: "STA", Cycles: 4, Execute: opSTA, AddrMode: amZPX, Mode: ZPX}, {Name: "STX", Cycles: 4, Execute: opSTX, AddrMode: amZPY, Mode: ZPY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "TYA", Cycles: 2, Execute: opTYA, AddrMode: amIMP, Mode: IMP}, {Name: "STA", Cycles: 5, Execute: opSTA, AddrMode: amABY, Mode: ABY}, {Name: "TXS", Cycles: 2, Execute: opTXS, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "STA", Cycles: 5, Execute: opSTA, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "LDY", Cycles: 2, Execute: opLDY, AddrMode: amIMM, Mode: IMM}, {Name: "LDA", Cycles: 6, Execute: opLDA, AddrMode: amIZX, Mode: IZX}, {Name: "LDX", Cycles: 2, Execute: opLDX, AddrMode: amIMM, Mode: IMM}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "LDY", Cycles: 3, Execute: opLDY, AddrMode: amZP0, Mode: ZP0}, {Name: "LDA", Cycles: 3, Execute: opLDA, AddrMode: amZP0, Mode: ZP0}, {Name: "LDX", Cycles: 3, Execute: opLDX, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "TAY", Cycles: 2, Execute: opTAY, AddrMode: amIMP, Mode: IMP}, {Name: "LDA", Cycles: 2, Execute: opLDA, AddrMode: amIMM, Mode: IMM}, {Name: "TAX", Cycles: 2, Execute: opTAX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "LDY", Cycles: 4, Execute: opLDY, AddrMode: amABS, Mode: ABS}, {Name: "LDA", Cycles: 4, Execute: opLDA, AddrMode: amABS, Mode: ABS}, {Name: "LDX", Cycles: 4, Execute: opLDX, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BCS", Cycles: 2, Execute: opBCS, AddrMode: amREL, Mode: REL}, {Name: "LDA", Cycles: 5, Execute: opLDA, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "LDY", Cycles: 4, Execute: opLDY, AddrMode: amZPX, Mode: ZPX}, {Name: "LDA", Cycles: 4, Execute: opLDA, AddrMode: amZPX, Mode: ZPX}, {Name: "LDX", Cycles: 4, Execute: opLDX, AddrMode: amZPY, Mode: ZPY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CLV", Cycles: 2, Execute: opCLV, AddrMode: amIMP, Mode: IMP}, {Name: "LDA", Cycles: 4, Execute: opLDA, AddrMode: amABY, Mode: ABY}, {Name: "TSX", Cycles: 2, Execute: opTSX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "LDY", Cycles: 4, Execute: opLDY, AddrMode: amABX, Mode: ABX}, {Name: "LDA", Cycles: 4, Execute: opLDA, AddrMode: amABX, Mode: ABX}, {Name: "LDX", Cycles: 4, Execute: opLDX, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPY", Cycles: 2, Execute: opCPY, AddrMode: amIMM, Mode: IMM}, {Name: "CMP", Cycles: 6, Execute: opCMP, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPY", Cycles: 3, Execute: opCPY, AddrMode: amZP0, Mode: ZP0}, {Name: "CMP", Cycles: 3, Execute: opCMP, AddrMode: amZP0, Mode: ZP0}, {Name: "DEC", Cycles: 5, Execute: opDEC, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "INY", Cycles: 2, Execute: opINY, AddrMode: amIMP, Mode: IMP}, {Name: "CMP", Cycles: 2, Execute: opCMP, AddrMode: amIMM, Mode: IMM}, {Name: "DEX", Cycles: 2, Execute: opDEX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPY", Cycles: 4, Execute: opCPY, AddrMode: amABS, Mode: ABS}, {Name: "CMP", Cycles: 4, Execute: opCMP, AddrMode: amABS, Mode: ABS}, {Name: "DEC", Cycles: 6, Execute: opDEC, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BNE", Cycles: 2, Execute: opBNE, AddrMode: amREL, Mode: REL}, {Name: "CMP", Cycles: 5, Execute: opCMP, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "CMP", Cycles: 4, Execute: opCMP, AddrMode: amZPX, Mode: ZPX}, {Name: "DEC", Cycles: 6, Execute: opDEC, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CLD", Cycles: 2, Execute: opCLD, AddrMode: amIMP, Mode: IMP}, {Name: "CMP", Cycles: 4, Execute: opCMP, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "CMP", Cycles: 4, Execute: opCMP, AddrMode: amABX, Mode: ABX}, {Name: "DEC", Cycles: 7, Execute: opDEC, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPX", Cycles: 2, Execute: opCPX, AddrMode: amIMM, Mode: IMM}, {Name: "SBC", Cycles: 6, Execute: opSBC, AddrMode: amIZX, Mode: IZX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPX", Cycles: 3, Execute: opCPX, AddrMode: amZP0, Mode: ZP0}, {Name: "SBC", Cycles: 3, Execute: opSBC, AddrMode: amZP0, Mode: ZP0}, {Name: "INC", Cycles: 5, Execute: opINC, AddrMode: amZP0, Mode: ZP0}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "INX", Cycles: 2, Execute: opINX, AddrMode: amIMP, Mode: IMP}, {Name: "SBC", Cycles: 2, Execute: opSBC, AddrMode: amIMM, Mode: IMM}, {Name: "NOP", Cycles: 2, Execute: opNOP, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "CPX", Cycles: 4, Execute: opCPX, AddrMode: amABS, Mode: ABS}, {Name: "SBC", Cycles: 4, Execute: opSBC, AddrMode: amABS, Mode: ABS}, {Name: "INC", Cycles: 6, Execute: opINC, AddrMode: amABS, Mode: ABS}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "BEQ", Cycles: 2, Execute: opBEQ, AddrMode: amREL, Mode: REL}, {Name: "SBC", Cycles: 5, Execute: opSBC, AddrMode: amIZY, Mode: IZY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "SBC", Cycles: 4, Execute: opSBC, AddrMode: amZPX, Mode: ZPX}, {Name: "INC", Cycles: 6, Execute: opINC, AddrMode: amZPX, Mode: ZPX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "SED", Cycles: 2, Execute: opSED, AddrMode: amIMP, Mode: IMP}, {Name: "SBC", Cycles: 4, Execute: opSBC, AddrMode: amABY, Mode: ABY}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
	{Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP}, {Name: "SBC", Cycles: 4, Execute: opSBC, AddrMode: amABX, Mode: ABX}, {Name: "INC", Cycles: 7, Execute: opINC, AddrMode: amABX, Mode: ABX}, {Name: "XXX", Cycles: 2, Execute: opXXX, AddrMode: amIMP, Mode: IMP},
}
