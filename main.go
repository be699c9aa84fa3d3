package main

import "github.com/mouse-blink/poematic/cmd"

func main() {
	cmd.Execute()
}
