package main

import "github.com/they4kman/gosnakes/cmd"

func main() {
	cmd.Execute()
}
