//go:build !linux

package x86_64

import (
	"fmt"

	"github.com/spf13/cobra"
)

// JitCmd is unavailable outside Linux: mmap/mprotect are wired through
// golang.org/x/sys/unix, which only the Linux build of jit_linux.go uses.
var JitCmd = &cobra.Command{
	Use:     "jit",
	GroupID: "file-operations",
	Short:   "Assemble, map executable, and run a tiny function (linux only).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("jit: only supported on linux")
	},
}
