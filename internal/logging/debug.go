package logging

import (
	"os"
)

// DebugEnabled returns true if debug mode is enabled via STP_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("STP_DEBUG") != ""
}
