package main

import "github.com/aallbrig/verse/cmd"

func main() {
	cmd.Execute()
}
