// Package main provides the survtab CLI application.
// survtab converts fishery survey workbooks into normalized tables
// and manages their PostgreSQL home.
package main

import (
	"os"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
