package main

import "github.com/mouse-blink/keyctx/cmd"

func main() {
	cmd.Execute()
}
