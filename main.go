package main

import (
	"os"

	"github.com/notedraft/notedraft/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
