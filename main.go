package main

import "github.com/itsmostafa/topdown/cmd"

func main() {
	cmd.Execute()
}
