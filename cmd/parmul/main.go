package main

import "github.com/katalvlaran/parmul/cmd/parmul/cmd"

func main() {
	cmd.Execute()
}
