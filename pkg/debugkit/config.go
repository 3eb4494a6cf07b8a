package debugkit

import (
	"context"

	"go.llib.dev/frameless/port/option"
)

type Option option.Option[Config]

// Config is the print configuration of an adapter.
// It is resolved once, when the adapter is made, and doesn't change during iteration.
type Config struct {
	Policy Policy
	// Sink receives the formatted text of every element.
	//
	// Default: DefaultSink()
	Sink Sink
	// Renderer makes the compact and pretty representation of the elements.
	//
	// Default: GoSyntax
	Renderer Renderer
	// Context is passed to the Sink with every emission.
	//
	// Default: context.Background()
	Context context.Context
}

// Init sets the defaults that the options are applied on top of.
func (c *Config) Init() {
	c.Sink = DefaultSink()
	c.Renderer = GoSyntax{}
	c.Context = context.Background()
}

// Configure makes a Config usable as an Option.
func (c Config) Configure(t *Config) { *t = c }

func option2Config(opts []Option) Config {
	c := option.ToConfig[Config](opts)
	if c.Sink == nil {
		c.Sink = DefaultSink()
	}
	if c.Renderer == nil {
		c.Renderer = GoSyntax{}
	}
	return c
}

// Pretty selects the multi-line, indented representation.
func Pretty() Option {
	return option.Func[Config](func(c *Config) {
		c.Policy.Pretty = true
	})
}

// Compact selects the single line representation.
func Compact() Option {
	return option.Func[Config](func(c *Config) {
		c.Policy.Pretty = false
	})
}

// Caption sets the text that is printed before each element, separated with ": ".
// An empty caption is still a caption.
func Caption(caption string) Option {
	return option.Func[Config](func(c *Config) {
		c.Policy.Caption = caption
		c.Policy.Captioned = true
	})
}

// WithSink sets where the debug output is written to.
func WithSink(s Sink) Option {
	return option.Func[Config](func(c *Config) {
		c.Sink = s
	})
}

// WithRenderer sets how a value is turned into its debug representation.
func WithRenderer(r Renderer) Option {
	return option.Func[Config](func(c *Config) {
		c.Renderer = r
	})
}

// WithContext sets the context that is passed to the Sink.
// With LoggerSink, details attached through logging.ContextWith will be part of each log entry.
func WithContext(ctx context.Context) Option {
	return option.Func[Config](func(c *Config) {
		c.Context = ctx
	})
}
