package main

import (
	"github.com/amplicon-labs/urna/urna/cmd"
)

func main() {
	cmd.Execute()
}
