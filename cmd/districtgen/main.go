// SPDX-License-Identifier: MIT

// Command districtgen places district nodes, collapses them to tiles and
// connects them, printing the resulting world and a run report.
//
//	districtgen generate --seed 7 --layout grid --rows 5 --cols 5
//	districtgen route --from 1 --to 5
//	districtgen config > districts.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
