package main

import "github.com/lnusuite/lnu/cmd"

func main() {
	cmd.Execute()
}
