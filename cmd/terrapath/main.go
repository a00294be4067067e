// Command terrapath plans routes over height-map terrain.
//
//	terrapath route --height h.png --types forest.png --start 3,4 --goal 120,80
//	terrapath bridges --height h.png --near 40,40 --radius 25 --seed 7
//	terrapath regions --height h.png --start 3,4 --goal 120,80
//
// Every flag can also be set in a YAML file passed with --config or through
// a TERRAPATH_ environment variable (TERRAPATH_W_SLOPE=2 sets --w-slope).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/klog/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		klog.ErrorS(err, "terrapath failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
