package leopard16

import "github.com/gofec/leopard16/internal/gf16"

type options struct {
	engine gf16.Engine
}

func defaultOptions() options {
	return options{engine: gf16.NewScalarEngine()}
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*options)

// WithEngine selects the field Engine an Encoder or Decoder uses. The
// default is the scalar reference engine; this exists for a future
// accelerated Engine to plug in without changing the Encoder/Decoder API.
func WithEngine(e gf16.Engine) Option {
	return func(o *options) { o.engine = e }
}
