package main

import "github.com/fawaz-alesayi/advent-of-crab/internal/cli"

func main() {
	cli.Execute()
}
