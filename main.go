// SPDX-License-Identifier: MPL-2.0

package main

import cmd "irdload/cmd/irdload"

func main() {
	cmd.Execute()
}
