package x86_64

// Catalog constants (C7): the small closed sets of "digit" (group-opcode
// ModR/M.reg field) and condition-code values the wrapper methods in
// catalog_methods.go pass to the family encoders in families.go. Transcribed
// from original_source/src/fns/generated.rs's literal opcode bytes.

// arithGroup is the /digit field shared by the eight ALU mnemonics whenever
// they appear in the rm_imm / rm_sximm8 group-opcode shape (opcode 0x80-0x83
// family): add=0, or=1, adc=2, sbb=3, and=4, sub=5, xor=6, cmp=7.
type arithGroup byte

const (
	groupAdd arithGroup = 0
	groupOr  arithGroup = 1
	groupAdc arithGroup = 2
	groupSbb arithGroup = 3
	groupAnd arithGroup = 4
	groupSub arithGroup = 5
	groupXor arithGroup = 6
	groupCmp arithGroup = 7
)

// shiftGroup is the /digit field for the rol/ror/rcl/rcr/shl/shr/sal/sar
// family (opcode 0xC0/0xC1 with an imm8 shift count).
type shiftGroup byte

const (
	groupRol shiftGroup = 0
	groupRor shiftGroup = 1
	groupRcl shiftGroup = 2
	groupRcr shiftGroup = 3
	groupShl shiftGroup = 4
	groupShr shiftGroup = 5
	groupSal shiftGroup = 6
	groupSar shiftGroup = 7
)

// btGroup is the /digit field for the bt/bts/btr/btc imm8 shape (escape
// 0x0F, opcode 0xBA).
type btGroup byte

const (
	groupBt  btGroup = 4
	groupBts btGroup = 5
	groupBtr btGroup = 6
	groupBtc btGroup = 7
)

// Condition is one of the 16 x86-64 condition codes, shared by both the
// cmovCC (reg_rm/reg_reg) and setCC (rm) families: the code occupies the low
// nibble of the second opcode byte (0x40+cc for cmov, 0x90+cc for setcc,
// both under the 0x0F escape). Grounded on generated.rs's per-condition
// cmovCC/setCC opcode bytes, folded here into one parameterized type instead
// of 32 separately named methods — each cc value below matches the opcode
// byte generated.rs hard-codes for that mnemonic pair.
type Condition byte

const (
	CondO   Condition = 0x0 // overflow
	CondNO  Condition = 0x1
	CondB   Condition = 0x2 // below / carry
	CondAE  Condition = 0x3 // above-or-equal / not-carry
	CondE   Condition = 0x4 // equal / zero
	CondNE  Condition = 0x5
	CondBE  Condition = 0x6
	CondA   Condition = 0x7
	CondS   Condition = 0x8 // sign
	CondNS  Condition = 0x9
	CondP   Condition = 0xA // parity
	CondNP  Condition = 0xB
	CondL   Condition = 0xC // less
	CondGE  Condition = 0xD
	CondLE  Condition = 0xE
	CondG   Condition = 0xF
)

// escape0F is the mandatory 0x0F prefix byte shared by every two-byte-opcode
// mnemonic in the catalog (bsf/bsr/cmovCC/setCC/movzx/movsx/bt-family/...);
// named so call sites read as "this family has an 0F escape" rather than a
// bare literal.
var escape0F = byte(0x0F)
