//go:build debugkit_logging

package debugkit

// DefaultSink returns the Sink that adapters use when no WithSink option is given.
// Built with the "debugkit_logging" tag, it is the DefaultLogger at debug level.
func DefaultSink() Sink {
	return LoggerSink{}
}
