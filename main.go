package main

import "folio/internal/cli"

func main() {
	cli.Execute()
}
