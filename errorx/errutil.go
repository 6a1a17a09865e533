package errorx

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ExitWhen terminates the process with exit code 1, if err is not nil.
// The reported location is the caller of ExitWhen.
func ExitWhen(err error, context string) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	fmt.Fprintf(os.Stderr, "ERROR (EXIT): %s: %v - (%s:%d)\n", context, err, file, line)
	os.Exit(1)
}
