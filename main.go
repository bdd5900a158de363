package main

import (
	"github.com/booktime/storefront/cmd"
)

func main() {
	cmd.Start()
}
