package main

import "bplan/cmd"

func main() {
	cmd.Execute()
}
