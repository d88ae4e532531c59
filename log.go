// Package gatk annotates variant sites with statistics computed from the
// pileups of aligned reads.
package gatk

import (
	"io"
	"log"
)

// Loggers. Commands replace them to enable output.
var (
	Info = log.New(io.Discard, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(io.Discard, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)
