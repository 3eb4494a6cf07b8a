//go:build !debugkit_logging

package debugkit

// DefaultSink returns the Sink that adapters use when no WithSink option is given.
// Unless the module is built with the "debugkit_logging" tag, it is the standard error stream.
func DefaultSink() Sink {
	return WriterSink{}
}
