package main

import "go-fundamentals/cmd"

func main() {
	cmd.Execute()
}
