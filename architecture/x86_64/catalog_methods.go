package x86_64

// catalog_methods.go is the hand-written expansion (C10) of the instruction
// catalog: one thin method per mnemonic x operand shape, each delegating to
// a family encoder in families.go with the opcode bytes transcribed from
// original_source/src/fns/generated.rs. There is no build-time generator —
// see SPEC_FULL.md §4.6/§9 for why this is committed by hand instead of
// produced by `go generate`, matching the source's own macro-expanded
// function list one level up in abstraction (a data table + shared encoder)
// rather than one level down (32 near-identical setCC bodies).
//
// Two families collapse what the source expresses as many near-duplicate
// functions into one parameterized method: cmovCC and setCC each take a
// Condition instead of being split into 16 separately named methods, since
// the only thing that varies between e.g. cmove/cmovne is a nibble in the
// second opcode byte. This is documented in DESIGN.md as a deliberate
// simplification, not an omission — bextrReg etc. below keep the source's
// one-method-per-mnemonic shape because those mnemonics vary in more than a
// opcode nibble (different escape/pp/op entirely).

// --- arithmetic group: add, or, adc, sbb, and, sub, xor, cmp ---

func aluOpcodes(g arithGroup) (op8mr, opmr, op8rm, oprm, op8zax, opzax byte) {
	base := byte(g) << 3
	return base, base + 1, base + 2, base + 3, base + 4, base + 5
}

func aluRegReg[W WWidth](a *Assembler, w W, g arithGroup, dst, src Reg[W]) error {
	op8mr, opmr, _, _, _, _ := aluOpcodes(g)
	return regReg(a, w, src, dst, op8mr, opmr, nil)
}

func aluRegMem[W WWidth](a *Assembler, w W, g arithGroup, dst Reg[W], mem MemAny[W]) error {
	_, _, op8rm, oprm, _, _ := aluOpcodes(g)
	return regMem(a, w, dst, mem, op8rm, oprm, nil)
}

func aluMemReg[W WWidth](a *Assembler, w W, g arithGroup, mem MemAny[W], src Reg[W]) error {
	op8mr, opmr, _, _, _, _ := aluOpcodes(g)
	return regMem(a, w, src, mem, op8mr, opmr, nil)
}

func aluZaxImm[W WWidth](a *Assembler, w W, g arithGroup, imm Imm[W]) error {
	_, _, _, _, op8zax, opzax := aluOpcodes(g)
	return zaxImm(a, w, imm, op8zax, opzax)
}

func aluRmImmReg[W WWidth](a *Assembler, w W, g arithGroup, reg Reg[W], imm Imm[W]) error {
	return rmImmReg(a, w, reg, imm, 0x80, 0x81, byte(g))
}

func aluRmImmMem[W WWidth](a *Assembler, w W, g arithGroup, mem MemAny[W], imm Imm[W]) error {
	return rmImmMem(a, w, mem, imm, 0x80, 0x81, byte(g))
}

func aluRmSximm8Reg[W WidthAtLeast16](a *Assembler, w W, g arithGroup, reg Reg[W], imm int8) error {
	return rmSximm8Reg(a, w, reg, imm, byte(g))
}

func aluRmSximm8Mem[W WidthAtLeast16](a *Assembler, w W, g arithGroup, mem MemAny[W], imm int8) error {
	return rmSximm8Mem(a, w, mem, imm, byte(g))
}

// AddRegReg32, AddRegReg64, ... one family per arithmetic mnemonic, each a
// one-line binding of the generic alu* helper above to its group digit.

func (a *Assembler) AddRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupAdd, dst, src) }
func (a *Assembler) AddRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupAdd, dst, src) }
func (a *Assembler) AddRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupAdd, dst, mem) }
func (a *Assembler) AddRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupAdd, dst, mem) }
func (a *Assembler) AddMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupAdd, mem, src) }
func (a *Assembler) AddMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupAdd, mem, src) }
func (a *Assembler) AddZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupAdd, imm) }
func (a *Assembler) AddZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupAdd, imm) }
func (a *Assembler) AddZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupAdd, imm) }
func (a *Assembler) AddRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupAdd, reg, imm) }
func (a *Assembler) AddRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupAdd, reg, imm) }
func (a *Assembler) AddRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupAdd, reg, imm) }
func (a *Assembler) AddMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupAdd, mem, imm) }
func (a *Assembler) AddMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupAdd, mem, imm) }
func (a *Assembler) AddMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupAdd, mem, imm) }
func (a *Assembler) AddRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupAdd, reg, imm) }
func (a *Assembler) AddRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupAdd, reg, imm) }

func (a *Assembler) OrRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupOr, dst, src) }
func (a *Assembler) OrRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupOr, dst, src) }
func (a *Assembler) OrRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupOr, dst, mem) }
func (a *Assembler) OrRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupOr, dst, mem) }
func (a *Assembler) OrMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupOr, mem, src) }
func (a *Assembler) OrMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupOr, mem, src) }
func (a *Assembler) OrZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupOr, imm) }
func (a *Assembler) OrZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupOr, imm) }
func (a *Assembler) OrZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupOr, imm) }
func (a *Assembler) OrRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupOr, reg, imm) }
func (a *Assembler) OrRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupOr, reg, imm) }
func (a *Assembler) OrRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupOr, reg, imm) }
func (a *Assembler) OrMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupOr, mem, imm) }
func (a *Assembler) OrMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupOr, mem, imm) }
func (a *Assembler) OrMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupOr, mem, imm) }
func (a *Assembler) OrRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupOr, reg, imm) }
func (a *Assembler) OrRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupOr, reg, imm) }

func (a *Assembler) AdcRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupAdc, dst, src) }
func (a *Assembler) AdcRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupAdc, dst, src) }
func (a *Assembler) AdcRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupAdc, dst, mem) }
func (a *Assembler) AdcRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupAdc, dst, mem) }
func (a *Assembler) AdcMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupAdc, mem, src) }
func (a *Assembler) AdcMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupAdc, mem, src) }
func (a *Assembler) AdcZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupAdc, imm) }
func (a *Assembler) AdcZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupAdc, imm) }
func (a *Assembler) AdcZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupAdc, imm) }
func (a *Assembler) AdcRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupAdc, reg, imm) }
func (a *Assembler) AdcRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupAdc, reg, imm) }
func (a *Assembler) AdcRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupAdc, reg, imm) }
func (a *Assembler) AdcMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupAdc, mem, imm) }
func (a *Assembler) AdcMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupAdc, mem, imm) }
func (a *Assembler) AdcMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupAdc, mem, imm) }
func (a *Assembler) AdcRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupAdc, reg, imm) }
func (a *Assembler) AdcRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupAdc, reg, imm) }

func (a *Assembler) SbbRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupSbb, dst, src) }
func (a *Assembler) SbbRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupSbb, dst, src) }
func (a *Assembler) SbbRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupSbb, dst, mem) }
func (a *Assembler) SbbRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupSbb, dst, mem) }
func (a *Assembler) SbbMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupSbb, mem, src) }
func (a *Assembler) SbbMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupSbb, mem, src) }
func (a *Assembler) SbbZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupSbb, imm) }
func (a *Assembler) SbbZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupSbb, imm) }
func (a *Assembler) SbbZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupSbb, imm) }
func (a *Assembler) SbbRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupSbb, reg, imm) }
func (a *Assembler) SbbRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupSbb, reg, imm) }
func (a *Assembler) SbbRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupSbb, reg, imm) }
func (a *Assembler) SbbMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupSbb, mem, imm) }
func (a *Assembler) SbbMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupSbb, mem, imm) }
func (a *Assembler) SbbMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupSbb, mem, imm) }
func (a *Assembler) SbbRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupSbb, reg, imm) }
func (a *Assembler) SbbRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupSbb, reg, imm) }

func (a *Assembler) AndRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupAnd, dst, src) }
func (a *Assembler) AndRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupAnd, dst, src) }
func (a *Assembler) AndRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupAnd, dst, mem) }
func (a *Assembler) AndRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupAnd, dst, mem) }
func (a *Assembler) AndMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupAnd, mem, src) }
func (a *Assembler) AndMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupAnd, mem, src) }
func (a *Assembler) AndZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupAnd, imm) }
func (a *Assembler) AndZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupAnd, imm) }
func (a *Assembler) AndZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupAnd, imm) }
func (a *Assembler) AndRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupAnd, reg, imm) }
func (a *Assembler) AndRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupAnd, reg, imm) }
func (a *Assembler) AndRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupAnd, reg, imm) }
func (a *Assembler) AndMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupAnd, mem, imm) }
func (a *Assembler) AndMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupAnd, mem, imm) }
func (a *Assembler) AndMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupAnd, mem, imm) }
func (a *Assembler) AndRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupAnd, reg, imm) }
func (a *Assembler) AndRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupAnd, reg, imm) }

func (a *Assembler) SubRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupSub, dst, src) }
func (a *Assembler) SubRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupSub, dst, src) }
func (a *Assembler) SubRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupSub, dst, mem) }
func (a *Assembler) SubRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupSub, dst, mem) }
func (a *Assembler) SubMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupSub, mem, src) }
func (a *Assembler) SubMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupSub, mem, src) }
func (a *Assembler) SubZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupSub, imm) }
func (a *Assembler) SubZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupSub, imm) }
func (a *Assembler) SubZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupSub, imm) }
func (a *Assembler) SubRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupSub, reg, imm) }
func (a *Assembler) SubRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupSub, reg, imm) }
func (a *Assembler) SubRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupSub, reg, imm) }
func (a *Assembler) SubMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupSub, mem, imm) }
func (a *Assembler) SubMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupSub, mem, imm) }
func (a *Assembler) SubMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupSub, mem, imm) }
func (a *Assembler) SubRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupSub, reg, imm) }
func (a *Assembler) SubRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupSub, reg, imm) }

func (a *Assembler) XorRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupXor, dst, src) }
func (a *Assembler) XorRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupXor, dst, src) }
func (a *Assembler) XorRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupXor, dst, mem) }
func (a *Assembler) XorRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupXor, dst, mem) }
func (a *Assembler) XorMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupXor, mem, src) }
func (a *Assembler) XorMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupXor, mem, src) }
func (a *Assembler) XorZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupXor, imm) }
func (a *Assembler) XorZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupXor, imm) }
func (a *Assembler) XorZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupXor, imm) }
func (a *Assembler) XorRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupXor, reg, imm) }
func (a *Assembler) XorRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupXor, reg, imm) }
func (a *Assembler) XorRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupXor, reg, imm) }
func (a *Assembler) XorMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupXor, mem, imm) }
func (a *Assembler) XorMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupXor, mem, imm) }
func (a *Assembler) XorMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupXor, mem, imm) }
func (a *Assembler) XorRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupXor, reg, imm) }
func (a *Assembler) XorRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupXor, reg, imm) }

func (a *Assembler) CmpRegReg32(dst, src Reg[W32]) error { return aluRegReg(a, W32{}, groupCmp, dst, src) }
func (a *Assembler) CmpRegReg64(dst, src Reg[W64]) error { return aluRegReg(a, W64{}, groupCmp, dst, src) }
func (a *Assembler) CmpRegMem32(dst Reg[W32], mem MemAny[W32]) error { return aluRegMem(a, W32{}, groupCmp, dst, mem) }
func (a *Assembler) CmpRegMem64(dst Reg[W64], mem MemAny[W64]) error { return aluRegMem(a, W64{}, groupCmp, dst, mem) }
func (a *Assembler) CmpMemReg32(mem MemAny[W32], src Reg[W32]) error { return aluMemReg(a, W32{}, groupCmp, mem, src) }
func (a *Assembler) CmpMemReg64(mem MemAny[W64], src Reg[W64]) error { return aluMemReg(a, W64{}, groupCmp, mem, src) }
func (a *Assembler) CmpZaxImm8(imm Imm[W8]) error   { return aluZaxImm(a, W8{}, groupCmp, imm) }
func (a *Assembler) CmpZaxImm32(imm Imm[W32]) error { return aluZaxImm(a, W32{}, groupCmp, imm) }
func (a *Assembler) CmpZaxImm64(imm Imm[W64]) error { return aluZaxImm(a, W64{}, groupCmp, imm) }
func (a *Assembler) CmpRegImm8(reg Reg[W8], imm Imm[W8]) error    { return aluRmImmReg(a, W8{}, groupCmp, reg, imm) }
func (a *Assembler) CmpRegImm32(reg Reg[W32], imm Imm[W32]) error { return aluRmImmReg(a, W32{}, groupCmp, reg, imm) }
func (a *Assembler) CmpRegImm64(reg Reg[W64], imm Imm[W64]) error { return aluRmImmReg(a, W64{}, groupCmp, reg, imm) }
func (a *Assembler) CmpMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return aluRmImmMem(a, W8{}, groupCmp, mem, imm) }
func (a *Assembler) CmpMemImm32(mem MemAny[W32], imm Imm[W32]) error { return aluRmImmMem(a, W32{}, groupCmp, mem, imm) }
func (a *Assembler) CmpMemImm64(mem MemAny[W64], imm Imm[W64]) error { return aluRmImmMem(a, W64{}, groupCmp, mem, imm) }
func (a *Assembler) CmpRegSximm8_32(reg Reg[W32], imm int8) error { return aluRmSximm8Reg(a, W32{}, groupCmp, reg, imm) }
func (a *Assembler) CmpRegSximm8_64(reg Reg[W64], imm int8) error { return aluRmSximm8Reg(a, W64{}, groupCmp, reg, imm) }

// --- test: symmetric AND-for-flags, no reg_rm reverse direction ---

func (a *Assembler) TestRegReg8(r1, r2 Reg[W8]) error   { return regReg(a, W8{}, r2, r1, 0x84, 0x84, nil) }
func (a *Assembler) TestRegReg32(r1, r2 Reg[W32]) error { return regReg(a, W32{}, r2, r1, 0x84, 0x85, nil) }
func (a *Assembler) TestRegReg64(r1, r2 Reg[W64]) error { return regReg(a, W64{}, r2, r1, 0x84, 0x85, nil) }
func (a *Assembler) TestMemReg8(mem MemAny[W8], reg Reg[W8]) error    { return regMem(a, W8{}, reg, mem, 0x84, 0x84, nil) }
func (a *Assembler) TestMemReg32(mem MemAny[W32], reg Reg[W32]) error { return regMem(a, W32{}, reg, mem, 0x84, 0x85, nil) }
func (a *Assembler) TestMemReg64(mem MemAny[W64], reg Reg[W64]) error { return regMem(a, W64{}, reg, mem, 0x84, 0x85, nil) }
func (a *Assembler) TestZaxImm8(imm Imm[W8]) error    { return zaxImm(a, W8{}, imm, 0xA8, 0xA8) }
func (a *Assembler) TestZaxImm32(imm Imm[W32]) error  { return zaxImm(a, W32{}, imm, 0xA8, 0xA9) }
func (a *Assembler) TestZaxImm64(imm Imm[W64]) error  { return zaxImm(a, W64{}, imm, 0xA8, 0xA9) }
func (a *Assembler) TestRegImm8(reg Reg[W8], imm Imm[W8]) error    { return rmImmReg(a, W8{}, reg, imm, 0xF6, 0xF6, 0) }
func (a *Assembler) TestRegImm32(reg Reg[W32], imm Imm[W32]) error { return rmImmReg(a, W32{}, reg, imm, 0xF6, 0xF7, 0) }
func (a *Assembler) TestRegImm64(reg Reg[W64], imm Imm[W64]) error { return rmImmReg(a, W64{}, reg, imm, 0xF6, 0xF7, 0) }
func (a *Assembler) TestMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return rmImmMem(a, W8{}, mem, imm, 0xF6, 0xF6, 0) }
func (a *Assembler) TestMemImm32(mem MemAny[W32], imm Imm[W32]) error { return rmImmMem(a, W32{}, mem, imm, 0xF6, 0xF7, 0) }
func (a *Assembler) TestMemImm64(mem MemAny[W64], imm Imm[W64]) error { return rmImmMem(a, W64{}, mem, imm, 0xF6, 0xF7, 0) }

// --- mov ---

func (a *Assembler) MovRegReg8(dst, src Reg[W8]) error   { return regReg(a, W8{}, src, dst, 0x88, 0x88, nil) }
func (a *Assembler) MovRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, src, dst, 0x88, 0x89, nil) }
func (a *Assembler) MovRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, src, dst, 0x88, 0x89, nil) }
func (a *Assembler) MovRegReg64(dst, src Reg[W64]) error { return regReg(a, W64{}, src, dst, 0x88, 0x89, nil) }
func (a *Assembler) MovRegMem8(dst Reg[W8], mem MemAny[W8]) error     { return regMem(a, W8{}, dst, mem, 0x8A, 0x8A, nil) }
func (a *Assembler) MovRegMem16(dst Reg[W16], mem MemAny[W16]) error  { return regMem(a, W16{}, dst, mem, 0x8A, 0x8B, nil) }
func (a *Assembler) MovRegMem32(dst Reg[W32], mem MemAny[W32]) error  { return regMem(a, W32{}, dst, mem, 0x8A, 0x8B, nil) }
func (a *Assembler) MovRegMem64(dst Reg[W64], mem MemAny[W64]) error  { return regMem(a, W64{}, dst, mem, 0x8A, 0x8B, nil) }
func (a *Assembler) MovMemReg8(mem MemAny[W8], src Reg[W8]) error     { return regMem(a, W8{}, src, mem, 0x88, 0x88, nil) }
func (a *Assembler) MovMemReg16(mem MemAny[W16], src Reg[W16]) error  { return regMem(a, W16{}, src, mem, 0x88, 0x89, nil) }
func (a *Assembler) MovMemReg32(mem MemAny[W32], src Reg[W32]) error  { return regMem(a, W32{}, src, mem, 0x88, 0x89, nil) }
func (a *Assembler) MovMemReg64(mem MemAny[W64], src Reg[W64]) error  { return regMem(a, W64{}, src, mem, 0x88, 0x89, nil) }
func (a *Assembler) MovRegImm8(reg Reg[W8], imm Imm[W8]) error    { return rmImmReg(a, W8{}, reg, imm, 0xC6, 0xC6, 0) }
func (a *Assembler) MovRegImm32(reg Reg[W32], imm Imm[W32]) error { return rmImmReg(a, W32{}, reg, imm, 0xC6, 0xC7, 0) }

// MovRegImmSext64 is `mov r/m64, imm32` (opcode 0xC7 /0): the CPU
// sign-extends the 32-bit immediate into the 64-bit destination. This is
// distinct from MovRegImm64 in families.go, which is the true `mov r64,
// imm64` form (opcode 0xB8+r) carrying a full 8-byte immediate.
func (a *Assembler) MovRegImmSext64(reg Reg[W64], imm Imm[W64]) error { return rmImmReg(a, W64{}, reg, imm, 0xC6, 0xC7, 0) }
func (a *Assembler) MovMemImm8(mem MemAny[W8], imm Imm[W8]) error    { return rmImmMem(a, W8{}, mem, imm, 0xC6, 0xC6, 0) }
func (a *Assembler) MovMemImm32(mem MemAny[W32], imm Imm[W32]) error { return rmImmMem(a, W32{}, mem, imm, 0xC6, 0xC7, 0) }
func (a *Assembler) MovMemImm64(mem MemAny[W64], imm Imm[W64]) error { return rmImmMem(a, W64{}, mem, imm, 0xC6, 0xC7, 0) }

// --- xchg: symmetric register/memory swap ---

func (a *Assembler) XchgRegReg8(r1, r2 Reg[W8]) error   { return regReg(a, W8{}, r2, r1, 0x86, 0x86, nil) }
func (a *Assembler) XchgRegReg32(r1, r2 Reg[W32]) error { return regReg(a, W32{}, r2, r1, 0x86, 0x87, nil) }
func (a *Assembler) XchgRegReg64(r1, r2 Reg[W64]) error { return regReg(a, W64{}, r2, r1, 0x86, 0x87, nil) }
func (a *Assembler) XchgMemReg8(mem MemAny[W8], reg Reg[W8]) error    { return regMem(a, W8{}, reg, mem, 0x86, 0x86, nil) }
func (a *Assembler) XchgMemReg32(mem MemAny[W32], reg Reg[W32]) error { return regMem(a, W32{}, reg, mem, 0x86, 0x87, nil) }
func (a *Assembler) XchgMemReg64(mem MemAny[W64], reg Reg[W64]) error { return regMem(a, W64{}, reg, mem, 0x86, 0x87, nil) }

// --- bsf / bsr / imul: reg <- r/m, 0F-escaped, no 8-bit form ---

func (a *Assembler) BsfRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, dst, src, 0xBC, 0xBC, &escape0F) }
func (a *Assembler) BsfRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, dst, src, 0xBC, 0xBC, &escape0F) }
func (a *Assembler) BsfRegReg64(dst, src Reg[W64]) error { return regReg(a, W64{}, dst, src, 0xBC, 0xBC, &escape0F) }
func (a *Assembler) BsfRegMem16(dst Reg[W16], mem MemAny[W16]) error { return regMem(a, W16{}, dst, mem, 0xBC, 0xBC, &escape0F) }
func (a *Assembler) BsfRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0xBC, 0xBC, &escape0F) }
func (a *Assembler) BsfRegMem64(dst Reg[W64], mem MemAny[W64]) error { return regMem(a, W64{}, dst, mem, 0xBC, 0xBC, &escape0F) }

func (a *Assembler) BsrRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, dst, src, 0xBD, 0xBD, &escape0F) }
func (a *Assembler) BsrRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, dst, src, 0xBD, 0xBD, &escape0F) }
func (a *Assembler) BsrRegReg64(dst, src Reg[W64]) error { return regReg(a, W64{}, dst, src, 0xBD, 0xBD, &escape0F) }
func (a *Assembler) BsrRegMem16(dst Reg[W16], mem MemAny[W16]) error { return regMem(a, W16{}, dst, mem, 0xBD, 0xBD, &escape0F) }
func (a *Assembler) BsrRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0xBD, 0xBD, &escape0F) }
func (a *Assembler) BsrRegMem64(dst Reg[W64], mem MemAny[W64]) error { return regMem(a, W64{}, dst, mem, 0xBD, 0xBD, &escape0F) }

func (a *Assembler) ImulRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, dst, src, 0xAF, 0xAF, &escape0F) }
func (a *Assembler) ImulRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, dst, src, 0xAF, 0xAF, &escape0F) }
func (a *Assembler) ImulRegReg64(dst, src Reg[W64]) error { return regReg(a, W64{}, dst, src, 0xAF, 0xAF, &escape0F) }
func (a *Assembler) ImulRegMem16(dst Reg[W16], mem MemAny[W16]) error { return regMem(a, W16{}, dst, mem, 0xAF, 0xAF, &escape0F) }
func (a *Assembler) ImulRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0xAF, 0xAF, &escape0F) }
func (a *Assembler) ImulRegMem64(dst Reg[W64], mem MemAny[W64]) error { return regMem(a, W64{}, dst, mem, 0xAF, 0xAF, &escape0F) }

// --- lea: reg <- effective address, memory operand mandatory ---

func (a *Assembler) LeaRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0x8D, 0x8D, nil) }
func (a *Assembler) LeaRegMem64(dst Reg[W64], mem MemAny[W64]) error { return regMem(a, W64{}, dst, mem, 0x8D, 0x8D, nil) }

// --- lar / lsl: reg <- r/m, no 64-bit destination form ---

func (a *Assembler) LarRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, dst, src, 0x02, 0x02, &escape0F) }
func (a *Assembler) LarRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, dst, src, 0x02, 0x02, &escape0F) }
func (a *Assembler) LarRegMem16(dst Reg[W16], mem MemAny[W16]) error { return regMem(a, W16{}, dst, mem, 0x02, 0x02, &escape0F) }
func (a *Assembler) LarRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0x02, 0x02, &escape0F) }

func (a *Assembler) LslRegReg16(dst, src Reg[W16]) error { return regReg(a, W16{}, dst, src, 0x03, 0x03, &escape0F) }
func (a *Assembler) LslRegReg32(dst, src Reg[W32]) error { return regReg(a, W32{}, dst, src, 0x03, 0x03, &escape0F) }
func (a *Assembler) LslRegMem16(dst Reg[W16], mem MemAny[W16]) error { return regMem(a, W16{}, dst, mem, 0x03, 0x03, &escape0F) }
func (a *Assembler) LslRegMem32(dst Reg[W32], mem MemAny[W32]) error { return regMem(a, W32{}, dst, mem, 0x03, 0x03, &escape0F) }

// --- movnti: store-only, mem <- reg, no caching hint kept by the CPU ---

func (a *Assembler) MovntiMemReg32(mem MemAny[W32], src Reg[W32]) error { return regMem(a, W32{}, src, mem, 0xC3, 0xC3, &escape0F) }
func (a *Assembler) MovntiMemReg64(mem MemAny[W64], src Reg[W64]) error { return regMem(a, W64{}, src, mem, 0xC3, 0xC3, &escape0F) }

// --- xadd: mem/reg += reg, old value swapped back into reg ---

func (a *Assembler) XaddMemReg8(mem MemAny[W8], reg Reg[W8]) error    { return regMem(a, W8{}, reg, mem, 0xC0, 0xC0, &escape0F) }
func (a *Assembler) XaddMemReg32(mem MemAny[W32], reg Reg[W32]) error { return regMem(a, W32{}, reg, mem, 0xC0, 0xC1, &escape0F) }
func (a *Assembler) XaddMemReg64(mem MemAny[W64], reg Reg[W64]) error { return regMem(a, W64{}, reg, mem, 0xC0, 0xC1, &escape0F) }

// --- bt / bts / btr / btc: both the imm8 bit-index shape and the reg
// bit-index shape ---

func (a *Assembler) BtRegImm8_32(reg Reg[W32], bit uint8) error { return rmImm8Reg(a, W32{}, reg, bit, 0xBA, 0xBA, byte(groupBt), &escape0F) }
func (a *Assembler) BtRegImm8_64(reg Reg[W64], bit uint8) error { return rmImm8Reg(a, W64{}, reg, bit, 0xBA, 0xBA, byte(groupBt), &escape0F) }
func (a *Assembler) BtMemImm8_32(mem MemAny[W32], bit uint8) error { return rmImm8Mem(a, W32{}, mem, bit, 0xBA, 0xBA, byte(groupBt), &escape0F) }
func (a *Assembler) BtMemImm8_64(mem MemAny[W64], bit uint8) error { return rmImm8Mem(a, W64{}, mem, bit, 0xBA, 0xBA, byte(groupBt), &escape0F) }
func (a *Assembler) BtRegReg32(reg, bit Reg[W32]) error { return regReg(a, W32{}, bit, reg, 0xA3, 0xA3, &escape0F) }
func (a *Assembler) BtRegReg64(reg, bit Reg[W64]) error { return regReg(a, W64{}, bit, reg, 0xA3, 0xA3, &escape0F) }
func (a *Assembler) BtMemReg32(mem MemAny[W32], bit Reg[W32]) error { return regMem(a, W32{}, bit, mem, 0xA3, 0xA3, &escape0F) }
func (a *Assembler) BtMemReg64(mem MemAny[W64], bit Reg[W64]) error { return regMem(a, W64{}, bit, mem, 0xA3, 0xA3, &escape0F) }

func (a *Assembler) BtsRegImm8_32(reg Reg[W32], bit uint8) error { return rmImm8Reg(a, W32{}, reg, bit, 0xBA, 0xBA, byte(groupBts), &escape0F) }
func (a *Assembler) BtsRegImm8_64(reg Reg[W64], bit uint8) error { return rmImm8Reg(a, W64{}, reg, bit, 0xBA, 0xBA, byte(groupBts), &escape0F) }
func (a *Assembler) BtsMemImm8_32(mem MemAny[W32], bit uint8) error { return rmImm8Mem(a, W32{}, mem, bit, 0xBA, 0xBA, byte(groupBts), &escape0F) }
func (a *Assembler) BtsMemImm8_64(mem MemAny[W64], bit uint8) error { return rmImm8Mem(a, W64{}, mem, bit, 0xBA, 0xBA, byte(groupBts), &escape0F) }
func (a *Assembler) BtsRegReg32(reg, bit Reg[W32]) error { return regReg(a, W32{}, bit, reg, 0xAB, 0xAB, &escape0F) }
func (a *Assembler) BtsRegReg64(reg, bit Reg[W64]) error { return regReg(a, W64{}, bit, reg, 0xAB, 0xAB, &escape0F) }
func (a *Assembler) BtsMemReg32(mem MemAny[W32], bit Reg[W32]) error { return regMem(a, W32{}, bit, mem, 0xAB, 0xAB, &escape0F) }
func (a *Assembler) BtsMemReg64(mem MemAny[W64], bit Reg[W64]) error { return regMem(a, W64{}, bit, mem, 0xAB, 0xAB, &escape0F) }

func (a *Assembler) BtrRegImm8_32(reg Reg[W32], bit uint8) error { return rmImm8Reg(a, W32{}, reg, bit, 0xBA, 0xBA, byte(groupBtr), &escape0F) }
func (a *Assembler) BtrRegImm8_64(reg Reg[W64], bit uint8) error { return rmImm8Reg(a, W64{}, reg, bit, 0xBA, 0xBA, byte(groupBtr), &escape0F) }
func (a *Assembler) BtrMemImm8_32(mem MemAny[W32], bit uint8) error { return rmImm8Mem(a, W32{}, mem, bit, 0xBA, 0xBA, byte(groupBtr), &escape0F) }
func (a *Assembler) BtrMemImm8_64(mem MemAny[W64], bit uint8) error { return rmImm8Mem(a, W64{}, mem, bit, 0xBA, 0xBA, byte(groupBtr), &escape0F) }
func (a *Assembler) BtrRegReg32(reg, bit Reg[W32]) error { return regReg(a, W32{}, bit, reg, 0xB3, 0xB3, &escape0F) }
func (a *Assembler) BtrRegReg64(reg, bit Reg[W64]) error { return regReg(a, W64{}, bit, reg, 0xB3, 0xB3, &escape0F) }
func (a *Assembler) BtrMemReg32(mem MemAny[W32], bit Reg[W32]) error { return regMem(a, W32{}, bit, mem, 0xB3, 0xB3, &escape0F) }
func (a *Assembler) BtrMemReg64(mem MemAny[W64], bit Reg[W64]) error { return regMem(a, W64{}, bit, mem, 0xB3, 0xB3, &escape0F) }

func (a *Assembler) BtcRegImm8_32(reg Reg[W32], bit uint8) error { return rmImm8Reg(a, W32{}, reg, bit, 0xBA, 0xBA, byte(groupBtc), &escape0F) }
func (a *Assembler) BtcRegImm8_64(reg Reg[W64], bit uint8) error { return rmImm8Reg(a, W64{}, reg, bit, 0xBA, 0xBA, byte(groupBtc), &escape0F) }
func (a *Assembler) BtcMemImm8_32(mem MemAny[W32], bit uint8) error { return rmImm8Mem(a, W32{}, mem, bit, 0xBA, 0xBA, byte(groupBtc), &escape0F) }
func (a *Assembler) BtcMemImm8_64(mem MemAny[W64], bit uint8) error { return rmImm8Mem(a, W64{}, mem, bit, 0xBA, 0xBA, byte(groupBtc), &escape0F) }
func (a *Assembler) BtcRegReg32(reg, bit Reg[W32]) error { return regReg(a, W32{}, bit, reg, 0xBB, 0xBB, &escape0F) }
func (a *Assembler) BtcRegReg64(reg, bit Reg[W64]) error { return regReg(a, W64{}, bit, reg, 0xBB, 0xBB, &escape0F) }
func (a *Assembler) BtcMemReg32(mem MemAny[W32], bit Reg[W32]) error { return regMem(a, W32{}, bit, mem, 0xBB, 0xBB, &escape0F) }
func (a *Assembler) BtcMemReg64(mem MemAny[W64], bit Reg[W64]) error { return regMem(a, W64{}, bit, mem, 0xBB, 0xBB, &escape0F) }

// --- shift family: rol, ror, rcl, rcr, shl, shr, sal, sar ---

func shiftOpcodes(g shiftGroup, w WWidth) (op8, op byte) { return 0xC0, 0xC1 }

func shiftImm8Reg[W WWidth](a *Assembler, w W, g shiftGroup, reg Reg[W], count uint8) error {
	op8, op := shiftOpcodes(g, w)
	return rmImm8Reg(a, w, reg, count, op8, op, byte(g), nil)
}

func shiftImm8Mem[W WWidth](a *Assembler, w W, g shiftGroup, mem MemAny[W], count uint8) error {
	op8, op := shiftOpcodes(g, w)
	return rmImm8Mem(a, w, mem, count, op8, op, byte(g), nil)
}

func (a *Assembler) RolRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupRol, reg, c) }
func (a *Assembler) RolRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupRol, reg, c) }
func (a *Assembler) RolRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupRol, reg, c) }
func (a *Assembler) RolMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupRol, mem, c) }
func (a *Assembler) RolMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupRol, mem, c) }

func (a *Assembler) RorRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupRor, reg, c) }
func (a *Assembler) RorRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupRor, reg, c) }
func (a *Assembler) RorRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupRor, reg, c) }
func (a *Assembler) RorMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupRor, mem, c) }
func (a *Assembler) RorMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupRor, mem, c) }

func (a *Assembler) RclRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupRcl, reg, c) }
func (a *Assembler) RclRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupRcl, reg, c) }
func (a *Assembler) RclRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupRcl, reg, c) }
func (a *Assembler) RclMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupRcl, mem, c) }
func (a *Assembler) RclMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupRcl, mem, c) }

func (a *Assembler) RcrRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupRcr, reg, c) }
func (a *Assembler) RcrRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupRcr, reg, c) }
func (a *Assembler) RcrRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupRcr, reg, c) }
func (a *Assembler) RcrMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupRcr, mem, c) }
func (a *Assembler) RcrMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupRcr, mem, c) }

func (a *Assembler) ShlRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupShl, reg, c) }
func (a *Assembler) ShlRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupShl, reg, c) }
func (a *Assembler) ShlRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupShl, reg, c) }
func (a *Assembler) ShlMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupShl, mem, c) }
func (a *Assembler) ShlMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupShl, mem, c) }

func (a *Assembler) ShrRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupShr, reg, c) }
func (a *Assembler) ShrRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupShr, reg, c) }
func (a *Assembler) ShrRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupShr, reg, c) }
func (a *Assembler) ShrMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupShr, mem, c) }
func (a *Assembler) ShrMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupShr, mem, c) }

func (a *Assembler) SalRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupSal, reg, c) }
func (a *Assembler) SalRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupSal, reg, c) }
func (a *Assembler) SalRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupSal, reg, c) }
func (a *Assembler) SalMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupSal, mem, c) }
func (a *Assembler) SalMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupSal, mem, c) }

func (a *Assembler) SarRegImm8_8(reg Reg[W8], c uint8) error   { return shiftImm8Reg(a, W8{}, groupSar, reg, c) }
func (a *Assembler) SarRegImm8_32(reg Reg[W32], c uint8) error { return shiftImm8Reg(a, W32{}, groupSar, reg, c) }
func (a *Assembler) SarRegImm8_64(reg Reg[W64], c uint8) error { return shiftImm8Reg(a, W64{}, groupSar, reg, c) }
func (a *Assembler) SarMemImm8_32(mem MemAny[W32], c uint8) error { return shiftImm8Mem(a, W32{}, groupSar, mem, c) }
func (a *Assembler) SarMemImm8_64(mem MemAny[W64], c uint8) error { return shiftImm8Mem(a, W64{}, groupSar, mem, c) }

// --- cmovCC / setCC: condition folded to a parameter instead of 32 names ---

func cmovOpcode(cc Condition) byte { return 0x40 | byte(cc) }

func (a *Assembler) CmovRegReg16(cc Condition, dst, src Reg[W16]) error {
	op := cmovOpcode(cc)
	return regReg(a, W16{}, dst, src, op, op, &escape0F)
}
func (a *Assembler) CmovRegReg32(cc Condition, dst, src Reg[W32]) error {
	op := cmovOpcode(cc)
	return regReg(a, W32{}, dst, src, op, op, &escape0F)
}
func (a *Assembler) CmovRegReg64(cc Condition, dst, src Reg[W64]) error {
	op := cmovOpcode(cc)
	return regReg(a, W64{}, dst, src, op, op, &escape0F)
}
func (a *Assembler) CmovRegMem16(cc Condition, dst Reg[W16], mem MemAny[W16]) error {
	op := cmovOpcode(cc)
	return regMem(a, W16{}, dst, mem, op, op, &escape0F)
}
func (a *Assembler) CmovRegMem32(cc Condition, dst Reg[W32], mem MemAny[W32]) error {
	op := cmovOpcode(cc)
	return regMem(a, W32{}, dst, mem, op, op, &escape0F)
}
func (a *Assembler) CmovRegMem64(cc Condition, dst Reg[W64], mem MemAny[W64]) error {
	op := cmovOpcode(cc)
	return regMem(a, W64{}, dst, mem, op, op, &escape0F)
}

func setccOpcode(cc Condition) byte { return 0x90 | byte(cc) }

func (a *Assembler) SetccReg(cc Condition, reg Reg[W8]) error {
	op := setccOpcode(cc)
	return rmReg(a, W8{}, reg, op, op, nil, &escape0F)
}

func (a *Assembler) SetccMem(cc Condition, mem MemAny[W8]) error {
	op := setccOpcode(cc)
	return rmMem(a, W8{}, mem, op, op, nil, &escape0F)
}

// --- single register-or-memory operand, group digit ---

func digitOf(v byte) *byte { return &v }

func (a *Assembler) CallReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0xFF, 0xFF, digitOf(2), nil) }
func (a *Assembler) CallMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0xFF, 0xFF, digitOf(2), nil) }

func (a *Assembler) DecReg8(reg Reg[W8]) error   { return rmReg(a, W8{}, reg, 0xFE, 0xFE, digitOf(1), nil) }
func (a *Assembler) DecReg32(reg Reg[W32]) error { return rmReg(a, W32{}, reg, 0xFE, 0xFF, digitOf(1), nil) }
func (a *Assembler) DecReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0xFE, 0xFF, digitOf(1), nil) }
func (a *Assembler) DecMem32(mem MemAny[W32]) error { return rmMem(a, W32{}, mem, 0xFE, 0xFF, digitOf(1), nil) }
func (a *Assembler) DecMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0xFE, 0xFF, digitOf(1), nil) }

func (a *Assembler) IncReg8(reg Reg[W8]) error   { return rmReg(a, W8{}, reg, 0xFE, 0xFE, digitOf(0), nil) }
func (a *Assembler) IncReg32(reg Reg[W32]) error { return rmReg(a, W32{}, reg, 0xFE, 0xFF, digitOf(0), nil) }
func (a *Assembler) IncReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0xFE, 0xFF, digitOf(0), nil) }
func (a *Assembler) IncMem32(mem MemAny[W32]) error { return rmMem(a, W32{}, mem, 0xFE, 0xFF, digitOf(0), nil) }
func (a *Assembler) IncMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0xFE, 0xFF, digitOf(0), nil) }

func (a *Assembler) NegReg8(reg Reg[W8]) error   { return rmReg(a, W8{}, reg, 0xF6, 0xF6, digitOf(3), nil) }
func (a *Assembler) NegReg32(reg Reg[W32]) error { return rmReg(a, W32{}, reg, 0xF6, 0xF7, digitOf(3), nil) }
func (a *Assembler) NegReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0xF6, 0xF7, digitOf(3), nil) }
func (a *Assembler) NegMem32(mem MemAny[W32]) error { return rmMem(a, W32{}, mem, 0xF6, 0xF7, digitOf(3), nil) }
func (a *Assembler) NegMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0xF6, 0xF7, digitOf(3), nil) }

func (a *Assembler) NotReg8(reg Reg[W8]) error   { return rmReg(a, W8{}, reg, 0xF6, 0xF6, digitOf(2), nil) }
func (a *Assembler) NotReg32(reg Reg[W32]) error { return rmReg(a, W32{}, reg, 0xF6, 0xF7, digitOf(2), nil) }
func (a *Assembler) NotReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0xF6, 0xF7, digitOf(2), nil) }
func (a *Assembler) NotMem32(mem MemAny[W32]) error { return rmMem(a, W32{}, mem, 0xF6, 0xF7, digitOf(2), nil) }
func (a *Assembler) NotMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0xF6, 0xF7, digitOf(2), nil) }

func (a *Assembler) LldtReg16(reg Reg[W16]) error    { return rmReg(a, W16{}, reg, 0x00, 0x00, digitOf(2), &escape0F) }
func (a *Assembler) LldtMem16(mem MemAny[W16]) error { return rmMem(a, W16{}, mem, 0x00, 0x00, digitOf(2), &escape0F) }
func (a *Assembler) LtrReg16(reg Reg[W16]) error    { return rmReg(a, W16{}, reg, 0x00, 0x00, digitOf(3), &escape0F) }
func (a *Assembler) LtrMem16(mem MemAny[W16]) error { return rmMem(a, W16{}, mem, 0x00, 0x00, digitOf(3), &escape0F) }
func (a *Assembler) VerrReg16(reg Reg[W16]) error    { return rmReg(a, W16{}, reg, 0x00, 0x00, digitOf(4), &escape0F) }
func (a *Assembler) VerrMem16(mem MemAny[W16]) error { return rmMem(a, W16{}, mem, 0x00, 0x00, digitOf(4), &escape0F) }
func (a *Assembler) VerwReg16(reg Reg[W16]) error    { return rmReg(a, W16{}, reg, 0x00, 0x00, digitOf(5), &escape0F) }
func (a *Assembler) VerwMem16(mem MemAny[W16]) error { return rmMem(a, W16{}, mem, 0x00, 0x00, digitOf(5), &escape0F) }
func (a *Assembler) LmswReg16(reg Reg[W16]) error    { return rmReg(a, W16{}, reg, 0x01, 0x01, digitOf(6), &escape0F) }
func (a *Assembler) LmswMem16(mem MemAny[W16]) error { return rmMem(a, W16{}, mem, 0x01, 0x01, digitOf(6), &escape0F) }

func (a *Assembler) NopReg16(reg Reg[W16]) error { return rmReg(a, W16{}, reg, 0x1F, 0x1F, digitOf(0), &escape0F) }
func (a *Assembler) NopReg32(reg Reg[W32]) error { return rmReg(a, W32{}, reg, 0x1F, 0x1F, digitOf(0), &escape0F) }
func (a *Assembler) NopReg64(reg Reg[W64]) error { return rmReg(a, W64{}, reg, 0x1F, 0x1F, digitOf(0), &escape0F) }
func (a *Assembler) NopMem32(mem MemAny[W32]) error { return rmMem(a, W32{}, mem, 0x1F, 0x1F, digitOf(0), &escape0F) }
func (a *Assembler) NopMem64(mem MemAny[W64]) error { return rmMem(a, W64{}, mem, 0x1F, 0x1F, digitOf(0), &escape0F) }

// --- no_operands: fixed byte sequences, nothing to parameterize ---

func (a *Assembler) Clc() error       { return noOperands(a, 0xF8, nil) }
func (a *Assembler) Cld() error       { return noOperands(a, 0xFC, nil) }
func (a *Assembler) Cli() error       { return noOperands(a, 0xFA, nil) }
func (a *Assembler) Clts() error      { return noOperands(a, 0x06, &escape0F) }
func (a *Assembler) Cmc() error       { return noOperands(a, 0xF5, nil) }
func (a *Assembler) Emms() error      { return noOperands(a, 0x77, &escape0F) }
func (a *Assembler) Femms() error     { return noOperands(a, 0x0E, &escape0F) }
func (a *Assembler) Fwait() error     { return noOperands(a, 0x9B, nil) }
func (a *Assembler) Getsec() error    { return noOperands(a, 0x37, &escape0F) }
func (a *Assembler) Hlt() error       { return noOperands(a, 0xF4, nil) }
func (a *Assembler) Int3() error      { return noOperands(a, 0xCC, nil) }
func (a *Assembler) Invd() error      { return noOperands(a, 0x08, &escape0F) }
func (a *Assembler) Iret() error      { return noOperands(a, 0xCF, nil) }

// Iretd, Iretq, and Iretw are iret's explicit operand-size forms: iretd
// names long mode's default 32-bit-compatibility encoding (same bytes as
// the bare Iret above), iretq forces REX.W for a 64-bit interrupt frame,
// and iretw forces the 0x66 operand-size prefix for a 16-bit one.
func (a *Assembler) Iretd() error { return noOperands(a, 0xCF, nil) }
func (a *Assembler) Iretq() error {
	if err := a.WriteByte(0x48); err != nil {
		return err
	}
	return noOperands(a, 0xCF, nil)
}
func (a *Assembler) Iretw() error {
	if err := a.WriteByte(0x66); err != nil {
		return err
	}
	return noOperands(a, 0xCF, nil)
}

func (a *Assembler) Leave() error { return noOperands(a, 0xC9, nil) }
func (a *Assembler) Nop() error   { return noOperands(a, 0x90, nil) }
func (a *Assembler) Popf() error  { return noOperands(a, 0x9D, nil) }

// Popfq is long mode's default popf encoding — identical bytes to Popf
// above, since 64-bit mode has no distinct 32-bit popf form. Kept as its
// own method because callers spell out the operand size explicitly.
func (a *Assembler) Popfq() error { return noOperands(a, 0x9D, nil) }
func (a *Assembler) Pushf() error { return noOperands(a, 0x9C, nil) }

// Pushfq mirrors Popfq: long mode's default pushf encoding, same bytes as
// Pushf above.
func (a *Assembler) Pushfq() error   { return noOperands(a, 0x9C, nil) }
func (a *Assembler) Ret() error      { return noOperands(a, 0xC3, nil) }
func (a *Assembler) Stc() error      { return noOperands(a, 0xF9, nil) }
func (a *Assembler) Std() error      { return noOperands(a, 0xFD, nil) }
func (a *Assembler) Sti() error      { return noOperands(a, 0xFB, nil) }
func (a *Assembler) Syscall() error  { return noOperands(a, 0x05, &escape0F) }
func (a *Assembler) Sysenter() error { return noOperands(a, 0x34, &escape0F) }
func (a *Assembler) Sysexit() error  { return noOperands(a, 0x35, &escape0F) }
func (a *Assembler) Sysret() error   { return noOperands(a, 0x07, &escape0F) }
func (a *Assembler) Ud2() error      { return noOperands(a, 0x0B, &escape0F) }
func (a *Assembler) Wait() error     { return noOperands(a, 0x9B, nil) }
func (a *Assembler) Wbinvd() error   { return noOperands(a, 0x09, &escape0F) }
func (a *Assembler) Xlatb() error    { return noOperands(a, 0xD7, nil) }

// Sysexit64 and Sysret64 are the REX.W-prefixed long-mode forms: the escape,
// opcode, and digit are the same as their 32-bit counterparts, but a REX.W
// byte must precede the escape. As with Iretq and Iretw, no family helper
// folds the prefix in: the method writes it before calling noOperands.
func (a *Assembler) Sysexit64() error {
	if err := a.WriteByte(0x48); err != nil {
		return err
	}
	return noOperands(a, 0x35, &escape0F)
}

func (a *Assembler) Sysret64() error {
	if err := a.WriteByte(0x48); err != nil {
		return err
	}
	return noOperands(a, 0x07, &escape0F)
}

// --- VEX BMI2 three-operand forms ---

func (a *Assembler) BextrRegRegReg32(dst, src, ctrl Reg[W32]) error { return regRegReg(a, W32{}, dst, src, ctrl, 2, 0xF7, 0) }
func (a *Assembler) BextrRegRegReg64(dst, src, ctrl Reg[W64]) error { return regRegReg(a, W64{}, dst, src, ctrl, 2, 0xF7, 0) }
func (a *Assembler) BextrRegMemReg32(dst Reg[W32], mem MemAny[W32], ctrl Reg[W32]) error { return regMemReg(a, W32{}, dst, mem, ctrl, 2, 0xF7, 0) }
func (a *Assembler) BextrRegMemReg64(dst Reg[W64], mem MemAny[W64], ctrl Reg[W64]) error { return regMemReg(a, W64{}, dst, mem, ctrl, 2, 0xF7, 0) }

func (a *Assembler) BzhiRegRegReg32(dst, src, index Reg[W32]) error { return regRegReg(a, W32{}, dst, src, index, 2, 0xF5, 0) }
func (a *Assembler) BzhiRegRegReg64(dst, src, index Reg[W64]) error { return regRegReg(a, W64{}, dst, src, index, 2, 0xF5, 0) }
func (a *Assembler) BzhiRegMemReg32(dst Reg[W32], mem MemAny[W32], index Reg[W32]) error { return regMemReg(a, W32{}, dst, mem, index, 2, 0xF5, 0) }
func (a *Assembler) BzhiRegMemReg64(dst Reg[W64], mem MemAny[W64], index Reg[W64]) error { return regMemReg(a, W64{}, dst, mem, index, 2, 0xF5, 0) }

func (a *Assembler) ShlxRegRegReg32(dst, src, count Reg[W32]) error { return regRegReg(a, W32{}, dst, src, count, 2, 0xF7, 1) }
func (a *Assembler) ShlxRegRegReg64(dst, src, count Reg[W64]) error { return regRegReg(a, W64{}, dst, src, count, 2, 0xF7, 1) }
func (a *Assembler) ShlxRegMemReg32(dst Reg[W32], mem MemAny[W32], count Reg[W32]) error { return regMemReg(a, W32{}, dst, mem, count, 2, 0xF7, 1) }
func (a *Assembler) ShlxRegMemReg64(dst Reg[W64], mem MemAny[W64], count Reg[W64]) error { return regMemReg(a, W64{}, dst, mem, count, 2, 0xF7, 1) }

func (a *Assembler) SarxRegRegReg32(dst, src, count Reg[W32]) error { return regRegReg(a, W32{}, dst, src, count, 2, 0xF7, 2) }
func (a *Assembler) SarxRegRegReg64(dst, src, count Reg[W64]) error { return regRegReg(a, W64{}, dst, src, count, 2, 0xF7, 2) }
func (a *Assembler) SarxRegMemReg32(dst Reg[W32], mem MemAny[W32], count Reg[W32]) error { return regMemReg(a, W32{}, dst, mem, count, 2, 0xF7, 2) }
func (a *Assembler) SarxRegMemReg64(dst Reg[W64], mem MemAny[W64], count Reg[W64]) error { return regMemReg(a, W64{}, dst, mem, count, 2, 0xF7, 2) }

func (a *Assembler) ShrxRegRegReg32(dst, src, count Reg[W32]) error { return regRegReg(a, W32{}, dst, src, count, 2, 0xF7, 3) }
func (a *Assembler) ShrxRegRegReg64(dst, src, count Reg[W64]) error { return regRegReg(a, W64{}, dst, src, count, 2, 0xF7, 3) }
func (a *Assembler) ShrxRegMemReg32(dst Reg[W32], mem MemAny[W32], count Reg[W32]) error { return regMemReg(a, W32{}, dst, mem, count, 2, 0xF7, 3) }
func (a *Assembler) ShrxRegMemReg64(dst Reg[W64], mem MemAny[W64], count Reg[W64]) error { return regMemReg(a, W64{}, dst, mem, count, 2, 0xF7, 3) }

// --- movzx / movsx: zero/sign-extending load, not present in the retrieved
// catalog source — opcodes transcribed directly from
// SPEC_FULL.md's own description of the mnemonic rather than a corpus file.

func (a *Assembler) MovzxReg16Reg8(dst Reg[W16], src Register) error  { return movExtend(a, W16{}, dst, src, true, movzxOpcode(true)) }
func (a *Assembler) MovzxReg32Reg8(dst Reg[W32], src Register) error  { return movExtend(a, W32{}, dst, src, true, movzxOpcode(true)) }
func (a *Assembler) MovzxReg64Reg8(dst Reg[W64], src Register) error  { return movExtend(a, W64{}, dst, src, true, movzxOpcode(true)) }
func (a *Assembler) MovzxReg32Reg16(dst Reg[W32], src Register) error { return movExtend(a, W32{}, dst, src, false, movzxOpcode(false)) }
func (a *Assembler) MovzxReg64Reg16(dst Reg[W64], src Register) error { return movExtend(a, W64{}, dst, src, false, movzxOpcode(false)) }
func (a *Assembler) MovzxReg16Mem8(dst Reg[W16], mem Mem) error  { return movExtendMem(a, W16{}, dst, mem, movzxOpcode(true)) }
func (a *Assembler) MovzxReg32Mem8(dst Reg[W32], mem Mem) error  { return movExtendMem(a, W32{}, dst, mem, movzxOpcode(true)) }
func (a *Assembler) MovzxReg64Mem8(dst Reg[W64], mem Mem) error  { return movExtendMem(a, W64{}, dst, mem, movzxOpcode(true)) }
func (a *Assembler) MovzxReg32Mem16(dst Reg[W32], mem Mem) error { return movExtendMem(a, W32{}, dst, mem, movzxOpcode(false)) }
func (a *Assembler) MovzxReg64Mem16(dst Reg[W64], mem Mem) error { return movExtendMem(a, W64{}, dst, mem, movzxOpcode(false)) }

func (a *Assembler) MovsxReg16Reg8(dst Reg[W16], src Register) error  { return movExtend(a, W16{}, dst, src, true, movsxOpcode(true)) }
func (a *Assembler) MovsxReg32Reg8(dst Reg[W32], src Register) error  { return movExtend(a, W32{}, dst, src, true, movsxOpcode(true)) }
func (a *Assembler) MovsxReg64Reg8(dst Reg[W64], src Register) error  { return movExtend(a, W64{}, dst, src, true, movsxOpcode(true)) }
func (a *Assembler) MovsxReg32Reg16(dst Reg[W32], src Register) error { return movExtend(a, W32{}, dst, src, false, movsxOpcode(false)) }
func (a *Assembler) MovsxReg64Reg16(dst Reg[W64], src Register) error { return movExtend(a, W64{}, dst, src, false, movsxOpcode(false)) }
func (a *Assembler) MovsxReg16Mem8(dst Reg[W16], mem Mem) error  { return movExtendMem(a, W16{}, dst, mem, movsxOpcode(true)) }
func (a *Assembler) MovsxReg32Mem8(dst Reg[W32], mem Mem) error  { return movExtendMem(a, W32{}, dst, mem, movsxOpcode(true)) }
func (a *Assembler) MovsxReg64Mem8(dst Reg[W64], mem Mem) error  { return movExtendMem(a, W64{}, dst, mem, movsxOpcode(true)) }
func (a *Assembler) MovsxReg32Mem16(dst Reg[W32], mem Mem) error { return movExtendMem(a, W32{}, dst, mem, movsxOpcode(false)) }
func (a *Assembler) MovsxReg64Mem16(dst Reg[W64], mem Mem) error { return movExtendMem(a, W64{}, dst, mem, movsxOpcode(false)) }
