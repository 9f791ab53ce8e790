package main

import "github.com/chazu/voidcut/cmd"

func main() {
	cmd.Execute()
}
