package main

import "github.com/VoxDroid/s4/cmd"

func main() {
	cmd.Execute()
}
