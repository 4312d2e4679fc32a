// Command folio is the installable entry point: go install folio/cmd/folio
package main

import "folio/internal/cli"

func main() {
	cli.Execute()
}
