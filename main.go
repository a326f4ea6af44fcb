package main

import "seismon/cmd"

func main() {
	cmd.Execute()
}
