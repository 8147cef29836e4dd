package main

import "github.com/blaisecz/wellness-outcomes/cmd/wellnessctl/command"

func main() {
	command.Execute()
}
