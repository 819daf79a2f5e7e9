package main

import "github.com/dotcommander/sitescore/cmd"

func main() {
	cmd.Execute()
}
