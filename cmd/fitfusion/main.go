package main

import "github.com/fitfusion/fitfusion/cmd/fitfusion/commands"

func main() {
	commands.Execute()
}
