// Command lvtree runs binary tree, GCD/LCM, Fibonacci and set-union
// demonstrations from the console.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvtree/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("lvtree failed")
		os.Exit(1)
	}
}
