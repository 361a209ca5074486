package main

import (
	"github.com/scriptsync/scriptsync/cmd"
	"github.com/scriptsync/scriptsync/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
