package main

import "github.com/LeJamon/goTONAddr/internal/cli"

func main() {
	cli.Execute()
}
