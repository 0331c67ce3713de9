package x86_64

// This file holds the small, fixed set of shared byte-assembly routines
// (C8). Every (mnemonic, shape) method in catalog_methods.go delegates to
// exactly one of these. The canonical byte order (§4.7) is:
//
//  1. 0x66 operand-size prefix if Width==W16
//  2. 0x67 address-size prefix if the memory operand requests it
//  3. REX byte if nonzero
//  4. mandatory escape byte(s), if any
//  5. opcode byte (op8 or op)
//  6. ModR/M
//  7. SIB, if indicated
//  8. displacement, if indicated
//  9. immediate, if present
//
// Grounded directly on fns.rs's hand-written xor_reg_imm/xor_reg_sximm8 (the
// only family bodies retrievable in source form) for the register-direct
// REX/prefix/opcode/ModR/M sequencing, generalized per §4.7's prose to cover
// the memory-operand and VEX variants the retrieved example didn't need to
// show.

func rexNibble(w, r, x, b bool) byte {
	var v byte
	if w {
		v |= 0b1000
	}
	if r {
		v |= 0b0100
	}
	if x {
		v |= 0b0010
	}
	if b {
		v |= 0b0001
	}
	return v
}

func (a *Assembler) writeImmediate(wi WritableImmediate) error {
	switch wi.width {
	case writableW8:
		return a.WriteByte(wi.w8)
	case writableW16:
		return a.WriteWord(wi.w16)
	case writableW32:
		return a.WriteDword(wi.w32)
	default:
		return a.WriteQword(wi.w64)
	}
}

// --- zax_imm: accumulator-immediate, no ModR/M ---

func zaxImm[W WWidth](a *Assembler, w W, imm Imm[W], op8, op byte) error {
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if w.IsW64() {
		if err := a.WriteByte(0x40 | rexNibble(true, false, false, false)); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	return a.writeImmediate(imm.AsWritable())
}

// --- rm_imm: group opcode, rm_digit in ModR/M.reg, operand-width immediate ---

func rmImmReg[W WWidth](a *Assembler, w W, reg Reg[W], imm Imm[W], op8, op, digit byte) error {
	force := w.IsW8() && reg.R.forcesREXForByteWidth()
	rex := rexNibble(w.IsW64(), false, false, reg.R.NeedsREX())
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if rex != 0 || force {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	mrm := newModRM(0b11, digit, reg.R.encoding())
	if err := a.WriteByte(byte(mrm)); err != nil {
		return err
	}
	return a.writeImmediate(imm.AsWritable())
}

func rmImmMem[W WWidth](a *Assembler, w W, mem MemAny[W], imm Imm[W], op8, op, digit byte) error {
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if prefix, ok := mem.M.addressPrefix(); ok {
		if err := a.WriteByte(prefix); err != nil {
			return err
		}
	}
	rexBits, memNeedsRex := mem.M.rexBits()
	rex := rexNibble(w.IsW64(), false, false, false) | rexBits
	if rex != 0 || memNeedsRex {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	if err := writeMem(a, mem.M, digit); err != nil {
		return err
	}
	return a.writeImmediate(imm.AsWritable())
}

// writeMem emits a memory operand's ModR/M[, SIB][, displacement], folding
// regOrDigit into ModR/M.reg.
func writeMem(a *Assembler, mem Mem, regOrDigit byte) error {
	mrm, s, disp := mem.encoded(regOrDigit)
	if err := a.WriteByte(byte(mrm)); err != nil {
		return err
	}
	if s != nil {
		if err := a.WriteByte(byte(*s)); err != nil {
			return err
		}
	}
	if disp != nil {
		if disp.is8bit {
			if err := a.WriteByte(byte(int8(disp.value))); err != nil {
				return err
			}
		} else {
			if err := a.WriteDword(uint32(disp.value)); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- rm_imm8 / rm_sximm8: group opcode, single immediate byte ---

func rmImm8Reg[W WWidth](a *Assembler, w W, reg Reg[W], imm8 byte, op8, op, digit byte, escape *byte) error {
	return rmOpcodeReg(a, w, reg, op8, op, &digit, escape, func() error { return a.WriteByte(imm8) })
}

func rmImm8Mem[W WWidth](a *Assembler, w W, mem MemAny[W], imm8 byte, op8, op, digit byte, escape *byte) error {
	return rmOpcodeMem(a, w, mem, op8, op, &digit, escape, func() error { return a.WriteByte(imm8) })
}

func rmSximm8Reg[W WidthAtLeast16](a *Assembler, w W, reg Reg[W], imm int8, digit byte) error {
	return rmOpcodeReg[W](a, w, reg, 0x83, 0x83, &digit, nil, func() error { return a.WriteByte(byte(imm)) })
}

func rmSximm8Mem[W WidthAtLeast16](a *Assembler, w W, mem MemAny[W], imm int8, digit byte) error {
	return rmOpcodeMem[W](a, w, mem, 0x83, 0x83, &digit, nil, func() error { return a.WriteByte(byte(imm)) })
}

// rmOpcodeReg assembles prefix/REX/escape/opcode/ModR/M for a register-direct
// operand with an optional group digit, then calls tail to emit whatever
// follows (an immediate, or nothing).
func rmOpcodeReg[W WWidth](a *Assembler, w W, reg Reg[W], op8, op byte, digit, escape *byte, tail func() error) error {
	force := w.IsW8() && reg.R.forcesREXForByteWidth()
	rex := rexNibble(w.IsW64(), false, false, reg.R.NeedsREX())
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if rex != 0 || force {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if escape != nil {
		if err := a.WriteByte(*escape); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	var d byte
	if digit != nil {
		d = *digit
	}
	mrm := newModRM(0b11, d, reg.R.encoding())
	if err := a.WriteByte(byte(mrm)); err != nil {
		return err
	}
	if tail != nil {
		return tail()
	}
	return nil
}

// rmOpcodeMem is rmOpcodeReg's memory-operand counterpart.
func rmOpcodeMem[W WWidth](a *Assembler, w W, mem MemAny[W], op8, op byte, digit, escape *byte, tail func() error) error {
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if prefix, ok := mem.M.addressPrefix(); ok {
		if err := a.WriteByte(prefix); err != nil {
			return err
		}
	}
	rexBits, memNeedsRex := mem.M.rexBits()
	rex := rexNibble(w.IsW64(), false, false, false) | rexBits
	if rex != 0 || memNeedsRex {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if escape != nil {
		if err := a.WriteByte(*escape); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	var d byte
	if digit != nil {
		d = *digit
	}
	if err := writeMem(a, mem.M, d); err != nil {
		return err
	}
	if tail != nil {
		return tail()
	}
	return nil
}

// --- reg_rm / rm_reg / reg_reg: two register-role operands ---

// regMem assembles the reg_rm/rm_reg shape: reg occupies ModR/M.reg (REX.R),
// mem is encoded normally (REX.X/B). The caller picks op8/op per the
// direction the mnemonic wants (reg_rm's opcode reads into reg; rm_reg's
// writes from reg) — the byte layout is identical either way.
func regMem[W WWidth](a *Assembler, w W, reg Reg[W], mem MemAny[W], op8, op byte, escape *byte) error {
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if prefix, ok := mem.M.addressPrefix(); ok {
		if err := a.WriteByte(prefix); err != nil {
			return err
		}
	}
	force := w.IsW8() && reg.R.forcesREXForByteWidth()
	memRexBits, memNeedsRex := mem.M.rexBits()
	rex := rexNibble(w.IsW64(), reg.R.NeedsREX(), false, false) | memRexBits
	if rex != 0 || force || memNeedsRex {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if escape != nil {
		if err := a.WriteByte(*escape); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	return writeMem(a, mem.M, reg.R.encoding())
}

// regReg assembles the register-direct collapse of reg_rm/rm_reg: reg1 into
// ModR/M.reg, reg2 into ModR/M.rm, mod=11.
func regReg[W WWidth](a *Assembler, w W, reg1, reg2 Reg[W], op8, op byte, escape *byte) error {
	force := w.IsW8() && (reg1.R.forcesREXForByteWidth() || reg2.R.forcesREXForByteWidth())
	rex := rexNibble(w.IsW64(), reg1.R.NeedsREX(), false, reg2.R.NeedsREX())
	if w.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if rex != 0 || force {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if escape != nil {
		if err := a.WriteByte(*escape); err != nil {
			return err
		}
	}
	if err := a.WriteByte(widthByte(w, op8, op)); err != nil {
		return err
	}
	mrm := newModRM(0b11, reg1.R.encoding(), reg2.R.encoding())
	return a.WriteByte(byte(mrm))
}

// --- rm: single register-or-memory operand, optional group digit ---

func rmReg[W WWidth](a *Assembler, w W, reg Reg[W], op8, op byte, digit, escape *byte) error {
	return rmOpcodeReg(a, w, reg, op8, op, digit, escape, nil)
}

func rmMem[W WWidth](a *Assembler, w W, mem MemAny[W], op8, op byte, digit, escape *byte) error {
	return rmOpcodeMem(a, w, mem, op8, op, digit, escape, nil)
}

// --- no_operands: fixed byte sequence ---

func noOperands(a *Assembler, op byte, escape *byte) error {
	if escape != nil {
		if err := a.WriteByte(*escape); err != nil {
			return err
		}
	}
	return a.WriteByte(op)
}

// --- VEX reg_mem_reg / reg_reg_reg (BMI2 three-operand forms) ---

// vexBytes assembles the 3-byte VEX prefix per §4.7: 0xC4, then
// byte0 = (~R<<7)|(~X<<6)|(~B<<5)|mm, then
// byte1 = (W<<7)|((~vvvv)&0xF)<<3|(L<<2)|pp, with L=0 throughout.
func vexBytes(r, x, b bool, mm byte, w bool, vvvv byte, pp byte) [3]byte {
	bit := func(set bool) byte {
		if set {
			return 1
		}
		return 0
	}
	notR := 1 - bit(r)
	notX := 1 - bit(x)
	notB := 1 - bit(b)
	byte0 := (notR << 7) | (notX << 6) | (notB << 5) | (mm & 0b11111)
	var wBit byte
	if w {
		wBit = 1
	}
	byte1 := (wBit << 7) | ((^vvvv & 0xF) << 3) | pp
	return [3]byte{0xC4, byte0, byte1}
}

func regRegReg[W WidthAtLeast32](a *Assembler, w W, rd, rs1, rs2 Reg[W], mm, op, pp byte) error {
	v := vexBytes(rd.R.NeedsREX(), false, rs1.R.NeedsREX(), mm, w.IsW64(), rs2.R.encoding()|vexVvvvHighBit(rs2.R), pp)
	for _, b := range v {
		if err := a.WriteByte(b); err != nil {
			return err
		}
	}
	if err := a.WriteByte(op); err != nil {
		return err
	}
	mrm := newModRM(0b11, rd.R.encoding(), rs1.R.encoding())
	return a.WriteByte(byte(mrm))
}

func regMemReg[W WidthAtLeast32](a *Assembler, w W, rd Reg[W], mem MemAny[W], rs2 Reg[W], mm, op, pp byte) error {
	if prefix, ok := mem.M.addressPrefix(); ok {
		if err := a.WriteByte(prefix); err != nil {
			return err
		}
	}
	memRexBits, _ := mem.M.rexBits()
	memB := memRexBits&0b01 != 0
	memX := memRexBits&0b10 != 0
	v := vexBytes(rd.R.NeedsREX(), memX, memB, mm, w.IsW64(), rs2.R.encoding()|vexVvvvHighBit(rs2.R), pp)
	for _, b := range v {
		if err := a.WriteByte(b); err != nil {
			return err
		}
	}
	if err := a.WriteByte(op); err != nil {
		return err
	}
	return writeMem(a, mem.M, rd.R.encoding())
}

// vexVvvvHighBit folds in the register's extension bit (index>=8) into the
// 4-bit vvvv field the 3-bit Register.encoding() alone can't carry.
func vexVvvvHighBit(r Register) byte {
	if r.NeedsREX() {
		return 0b1000
	}
	return 0
}

// --- special-cased mnemonics ---

// MovRegImm64 emits `mov reg64, imm64`: opcode 0xB8+(reg%8) with REX.W,
// REX.B when the register needs extension, and the full 8-byte immediate —
// the sole mnemonic in the catalog that writes a true 64-bit immediate.
func (a *Assembler) MovRegImm64(reg Reg[W64], imm uint64) error {
	rex := 0x48 | rexNibble(false, false, false, reg.R.NeedsREX())
	start := a.CurrentOffset()
	if err := a.WriteByte(rex); err != nil {
		return err
	}
	if err := a.WriteByte(0xB8 + reg.R.encoding()); err != nil {
		return err
	}
	if err := a.WriteQword(imm); err != nil {
		return err
	}
	a.trace("mov", start, 10)
	return nil
}

// movzxOpcode/movsxOpcode pick the byte-load (0F B6/BE) or word-load
// (0F B7/BF) opcode per the source operand width, per §4.7's movzx/movsx
// note. These two mnemonics are not present in the retrieved generated
// catalog; their opcodes are the standard, unambiguous
// Intel/AMD encodings documented directly from the spec's own description.
func movzxOpcode(srcIsByte bool) byte {
	if srcIsByte {
		return 0xB6
	}
	return 0xB7
}

func movsxOpcode(srcIsByte bool) byte {
	if srcIsByte {
		return 0xBE
	}
	return 0xBF
}

// movExtend emits the shared movzx/movsx body: destination width governs
// REX.W and the 0x66 prefix, source width (byte vs word) picks the opcode.
// A byte source in Zsp..Zdi forces a REX byte so it selects SPL..DIL.
func movExtend[Wd WWidth](a *Assembler, wd Wd, dst Reg[Wd], src Register, srcIsByte bool, opcode byte) error {
	force := (wd.IsW8() && dst.R.forcesREXForByteWidth()) || (srcIsByte && src.forcesREXForByteWidth())
	rex := rexNibble(wd.IsW64(), dst.R.NeedsREX(), false, src.NeedsREX())
	if wd.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if rex != 0 || force {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if err := a.WriteByte(0x0F); err != nil {
		return err
	}
	if err := a.WriteByte(opcode); err != nil {
		return err
	}
	mrm := newModRM(0b11, dst.R.encoding(), src.encoding())
	return a.WriteByte(byte(mrm))
}

func movExtendMem[Wd WWidth](a *Assembler, wd Wd, dst Reg[Wd], mem Mem, opcode byte) error {
	if wd.IsW16() {
		if err := a.WriteByte(0x66); err != nil {
			return err
		}
	}
	if prefix, ok := mem.addressPrefix(); ok {
		if err := a.WriteByte(prefix); err != nil {
			return err
		}
	}
	memRexBits, memNeedsRex := mem.rexBits()
	rex := rexNibble(wd.IsW64(), dst.R.NeedsREX(), false, false) | memRexBits
	if rex != 0 || memNeedsRex {
		if err := a.WriteByte(0x40 | rex); err != nil {
			return err
		}
	}
	if err := a.WriteByte(0x0F); err != nil {
		return err
	}
	if err := a.WriteByte(opcode); err != nil {
		return err
	}
	return writeMem(a, mem, dst.R.encoding())
}
