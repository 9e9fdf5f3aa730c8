//go:build unix

package debug

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// residentBytes returns the peak resident set size; getrusage has no
// current-RSS field.
func residentBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, fmt.Errorf("getrusage: %w", err)
	}
	rss := uint64(ru.Maxrss)
	if runtime.GOOS != "darwin" && runtime.GOOS != "ios" {
		rss *= 1024 // kilobytes elsewhere
	}
	return rss, nil
}
