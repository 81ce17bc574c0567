package main

import (
	"github.com/axellelanca/linkboard/cmd"
	_ "github.com/axellelanca/linkboard/cmd/cli"    // registers migrate, submit and list
	_ "github.com/axellelanca/linkboard/cmd/server" // registers run-server
)

func main() {
	cmd.Execute()
}
