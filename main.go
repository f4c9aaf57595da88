// Command wordgrid is a grid word-guessing game, playable in the terminal,
// over SSH, or through an HTTP/JSON API.
package main

import (
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordgrid/internal/cli"
)

func main() {
	_ = godotenv.Load() // .env is optional
	cli.Execute(cli.NewRootCommand())
}
