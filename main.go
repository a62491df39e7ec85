// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/enver/enver/cmd/enver"

func main() {
	cmd.Execute()
}
