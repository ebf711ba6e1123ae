package main

import (
	"github.com/consensys/go-maxbits/pkg/cmd"
)

func main() {
	cmd.Execute()
}
