package main

import "dsa_tracker/internal/cli"

func main() {
	cli.Execute()
}
