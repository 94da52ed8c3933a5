// Command plz lexes, parses, formats, and checks plz programs.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	defer glog.Flush()

	if err := newRootCmd().Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
