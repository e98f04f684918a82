package main

import (
	"flag"
	"log"

	"golife/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := app.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
