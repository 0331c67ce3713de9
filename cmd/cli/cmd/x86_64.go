package cmd

import (
	"github.com/spf13/cobra"

	x8664sub "github.com/keurnel/x64asm/cmd/cli/cmd/x86_64"
)

var x8664Cmd = &cobra.Command{
	Use:     "x86_64",
	GroupID: "arch",
	Short:   "x86_64 architecture",
	Long:    `Functions related to the x86_64 architecture.`,
}

func init() {
	x8664Cmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "Assemble / run",
	})
	x8664Cmd.AddCommand(x8664sub.DemoCmd, x8664sub.CatalogCmd, x8664sub.JitCmd)
}
