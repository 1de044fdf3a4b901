// Package system holds process-level helpers: file descriptor limits
// for batch runs and resource usage reporting.
package system

import (
	"syscall"

	log "github.com/sirupsen/logrus"
)

// InitResourceLimits raises the open file limit so a large batch run
// does not exhaust descriptors while many project files are open at
// once.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warnf("could not read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Warnf("could not raise file limit: %v", err)
	} else {
		log.Debugf("open file limit raised to %d", rLimit.Cur)
	}
}
