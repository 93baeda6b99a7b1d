package main

import "github.com/hupe1980/bitreg/cmd/bitreg/cmd"

func main() {
	cmd.Execute()
}
