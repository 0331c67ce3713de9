package x86_64

import (
	"github.com/spf13/cobra"
)

// catalogFamily is one row of the static summary CatalogCmd prints: the
// encoding shape and a representative sample of the mnemonics that use it.
type catalogFamily struct {
	shape  string
	sample string
}

var catalogFamilies = []catalogFamily{
	{"zax_imm", "add, or, adc, sbb, and, sub, xor, cmp, test (accumulator + immediate, no ModR/M)"},
	{"rm_imm", "add, or, adc, sbb, and, sub, xor, cmp, test, mov (group opcode + operand-width immediate)"},
	{"rm_imm8", "bt, bts, btr, btc, rol, ror, rcl, rcr, shl, shr, sal, sar (group opcode + imm8)"},
	{"rm_sximm8", "add, or, adc, sbb, and, sub, xor, cmp (group opcode + sign-extended imm8)"},
	{"reg_rm / rm_reg / reg_reg", "arithmetic pairs, bsf, bsr, imul, lea, lar, lsl, mov, movnti, xadd, xchg, cmovCC, bt-family reg form"},
	{"rm", "call, dec, inc, neg, not, lldt, lmsw, ltr, verr, verw, nop, setCC"},
	{"no_operands", "clc, cld, cli, hlt, int3, leave, nop, ret, syscall, ud2, and the rest of the fixed-byte mnemonics"},
	{"VEX reg_reg_reg / reg_mem_reg", "bextr, bzhi, sarx, shlx, shrx"},
	{"special", "mov reg64,imm64; movzx; movsx"},
}

// CatalogCmd prints the families of encoding shapes the assembler supports
// and a sample of mnemonics each covers — a quick reference for someone
// exploring the package's method surface without reading catalog_methods.go.
var CatalogCmd = &cobra.Command{
	Use:     "catalog",
	GroupID: "file-operations",
	Short:   "List the encoding families the assembler supports.",
	Long:    `List the encoding families (shapes) the assembler supports, with a sample of mnemonics each covers.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range catalogFamilies {
			cmd.Printf("%-28s %s\n", f.shape, f.sample)
		}
	},
}
