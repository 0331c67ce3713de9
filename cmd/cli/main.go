package main

import "github.com/keurnel/x64asm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
