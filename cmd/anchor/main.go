package main

import (
	"github.com/SimonDaKappa/go-anchor/cmd/anchor/cmd"
)

func main() {
	cmd.Execute()
}
