package main

import (
	"os"

	"seo-provisioner/internal/cli"
	"seo-provisioner/internal/core/logger"
)

func main() {
	err := cli.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
