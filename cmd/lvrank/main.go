// SPDX-License-Identifier: MIT
// Command lvrank computes PageRank for directed graphs given on the command line.
package main

import "github.com/katalvlaran/lvrank/internal/cli"

func main() {
	cli.Execute()
}
