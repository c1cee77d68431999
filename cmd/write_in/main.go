package main

import "github.com/norvik/valbin/cmd/write_in/cmd"

func main() {
	cmd.Execute()
}
