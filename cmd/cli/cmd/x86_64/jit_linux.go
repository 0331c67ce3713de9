//go:build linux

package x86_64

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/keurnel/x64asm/architecture/x86_64"
	"github.com/keurnel/x64asm/internal/bytesink"
)

// JitCmd assembles a tiny function (load an immediate into the return
// register, then ret), maps it into an executable page with mmap/mprotect,
// calls into it, and prints the returned value. This is the one place in
// the CLI that needs real memory-protection syscalls rather than a byte
// buffer — grounded on golang.org/x/sys/unix's documented Mmap/Mprotect API
// directly, since the retrieved corpus carries the dependency in its go.mod
// but has no JIT-exec example to imitate (see DESIGN.md).
var JitCmd = &cobra.Command{
	Use:     "jit",
	GroupID: "file-operations",
	Short:   "Assemble, map executable, and run a tiny function (linux only).",
	Long:    `Assemble a tiny function, map it executable with mmap/mprotect, call into it, and print the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := bytesink.NewBuffer()
		asm := x86_64.New(buf)

		if err := asm.MovRegImm32(x86_64.Reg32(x86_64.Zax), x86_64.Imm32(42)); err != nil {
			return fmt.Errorf("jit: %w", err)
		}
		if err := asm.Ret(); err != nil {
			return fmt.Errorf("jit: %w", err)
		}
		if err := asm.Finish(); err != nil {
			return fmt.Errorf("jit: finishing: %w", err)
		}

		code := buf.Bytes()
		cmd.Println(hex.Dump(code))

		result, err := runJIT(code)
		if err != nil {
			return fmt.Errorf("jit: %w", err)
		}
		cmd.Printf("zax on return: %d\n", result)
		return nil
	},
}

// runJIT maps a fresh anonymous page RW, copies code in, flips it to RX,
// and calls into it as a func() uint64 — the function is expected to leave
// its result in RAX and end in ret, matching the System V AMD64 ABI's
// return-value convention for a no-argument call.
func runJIT(code []byte) (uint64, error) {
	page, err := unix.Mmap(-1, 0, len(code), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, fmt.Errorf("mmap: %w", err)
	}
	defer unix.Munmap(page)

	copy(page, code)

	if err := unix.Mprotect(page, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return 0, fmt.Errorf("mprotect: %w", err)
	}

	// A Go func value is a pointer to a word that holds the code address.
	// codePtr is such a word, holding the mapped page's address, so
	// reinterpreting &codePtrRef as *func() uint64 and dereferencing yields
	// a func value whose call jumps into the page — the standard, if
	// informal, way a small demo jumps into raw machine code without cgo.
	codePtr := uintptr(unsafe.Pointer(&page[0]))
	codePtrRef := &codePtr
	fn := *(*func() uint64)(unsafe.Pointer(&codePtrRef))
	return fn(), nil
}
