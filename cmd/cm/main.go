// SPDX-License-Identifier: Apache-2.0

package main

import "crate-manager/cmd/cli"

// With no arguments the root command scans the projects root and enters the
// numbered stdin menu; with arguments, cobra dispatches to the subcommands.
func main() {
	cli.RunCLI()
}
