package main

import (
	"os"

	"github.com/macarona-salsa/wawa-news/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
