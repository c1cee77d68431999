package main

import "github.com/norvik/valbin/cmd/read_out/cmd"

func main() {
	cmd.Execute()
}
