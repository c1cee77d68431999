package main

import "github.com/norvik/valbin/cmd/valbench/cmd"

func main() {
	cmd.Execute()
}
