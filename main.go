// main is the entry point for the gantt CLI.
package main

import (
	"github.com/huangsam/gantt/cmd"
	"github.com/huangsam/gantt/internal/contract"
	"github.com/huangsam/gantt/internal/iocache"
)

func main() {
	defer iocache.CloseHistory()

	if err := cmd.Execute(); err != nil {
		iocache.CloseHistory()
		contract.LogFatal("Cannot run gantt", err)
	}
}
