package main

import "github.com/itsmostafa/constbot/cmd"

func main() {
	cmd.Execute()
}
