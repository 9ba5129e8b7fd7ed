package main

import "github.com/theirongolddev/finsim/cmd"

func main() {
	cmd.Execute()
}
