package main

import "github.com/andrsd/exodusII-utils/cmd"

func main() {
	cmd.Execute()
}
