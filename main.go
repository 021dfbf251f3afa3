package main

import "github.com/currentcolor/currentcolor/cmd"

func main() {
	cmd.Execute()
}
