package main

import "auction-house/internal/cli"

func main() {
	cli.Execute()
}
