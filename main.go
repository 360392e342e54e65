package main

import "edease/cmd"

func main() {
	cmd.Execute()
}
