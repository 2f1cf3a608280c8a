package main

import (
	"os"

	"github.com/life-promo/studio-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
