package main

import (
	"os"

	"github.com/sjlee/krx-insight/cmd/insight/commands"
)

// main is the entry point for the insight CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/insight [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
