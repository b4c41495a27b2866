package main

import "github.com/prajeet74/fire-calculator/cmd"

func main() {
	cmd.Execute()
}
