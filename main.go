// SPDX-License-Identifier: MPL-2.0

package main

import cmd "vin-cli/cmd/vin"

func main() {
	cmd.Execute()
}
