// Package x86_64 holds the CLI subcommands under `keurnel-asm x86_64`.
// Adapted from the teacher's assemble_file.go orchestration style
// (resolve -> build -> report), re-pointed at the programmatic encoder
// instead of a text-file pipeline (out of scope per the non-goals).
package x86_64

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/keurnel/x64asm/architecture/x86_64"
	"github.com/keurnel/x64asm/internal/bytesink"
)

// DemoCmd assembles a small fixed instruction sequence and prints the
// resulting bytes as a hex dump, along with the diagnostics log if
// KEURNEL_ASM_VERBOSE is set. It exists to exercise the full Assembler
// facade end to end without requiring a caller to write Go code first.
var DemoCmd = &cobra.Command{
	Use:     "demo",
	GroupID: "file-operations",
	Short:   "Assemble a small fixed instruction sequence and print its bytes.",
	Long:    `Assemble a small fixed instruction sequence and print its bytes as a hex dump.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, verbose := bytesink.NewBuffer(), env.Bool("KEURNEL_ASM_VERBOSE")
		asm := x86_64.New(buf)

		if err := buildDemoProgram(asm); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		if err := asm.Finish(); err != nil {
			return fmt.Errorf("demo: finishing: %w", err)
		}

		cmd.Println(hex.Dump(buf.Bytes()))

		if verbose {
			for _, entry := range asm.Diagnostics().Entries() {
				cmd.Println(entry.String())
			}
		}
		return nil
	},
}

// buildDemoProgram emits: a forward label reference (queued placeholder),
// one `dec rcx`, a backward reference to the label attached at the start,
// the forward label's attachment point, and a `ret`. The label references
// are raw 8-byte values with no branch instruction, exercising both the
// resolved (backward) and pending (forward) label paths described in the
// Assembler's WriteLabel doc comment.
func buildDemoProgram(asm *x86_64.Assembler) error {
	top, err := asm.MakeLabelAttached()
	if err != nil {
		return err
	}

	skip := asm.NewLabel()
	if err := asm.WriteLabel(skip); err != nil {
		return err
	}

	if err := asm.DecReg64(x86_64.Reg64(x86_64.Zcx)); err != nil {
		return err
	}
	if err := asm.WriteLabel(top); err != nil {
		return err
	}

	if err := asm.AttachLabel(skip); err != nil {
		return err
	}

	return asm.Ret()
}
