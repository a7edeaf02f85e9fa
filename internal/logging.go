package internal

import (
	"log"
	"os"
)

// InitLogging sends diagnostics to stderr so stdout carries only status lines
func InitLogging(microseconds bool) {
	log.SetOutput(os.Stderr)
	flags := log.LstdFlags
	if microseconds {
		flags |= log.Lmicroseconds
	}
	log.SetFlags(flags)
}
