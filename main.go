package main

import "github.com/cardswap/matchmaker/cmd"

func main() {
	cmd.Execute()
}
