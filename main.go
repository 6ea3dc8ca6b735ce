package main

import "github.com/zbiljic/emoji-commit-type/cmd"

func main() {
	cmd.Execute()
}
