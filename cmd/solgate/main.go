// solgate is the command line client for solgate-server.
package main

import "github.com/solgate/solgate/internal/cli"

func main() {
	cli.Execute()
}
