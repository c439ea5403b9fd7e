package imagebuffer

// Option configures a Buffer during creation.
//
// Example:
//
//	// Force the byte-per-channel path regardless of host support
//	buf, err := imagebuffer.New(64, 64,
//	    imagebuffer.WithCapabilities(imagebuffer.FallbackCapabilities()))
type Option func(*bufferOptions)

// bufferOptions holds optional configuration for Buffer creation.
type bufferOptions struct {
	caps     Capabilities
	parallel bool
}

// defaultOptions returns the default buffer options.
func defaultOptions() bufferOptions {
	return bufferOptions{
		caps: defaultCaps,
	}
}

// WithCapabilities overrides the process-wide capabilities for one buffer.
//
// The packed path is only bound when c.Supports32Bit is set and
// c.Endianness matches the host; otherwise the buffer uses bytes.
func WithCapabilities(c Capabilities) Option {
	return func(o *bufferOptions) {
		o.caps = c
	}
}

// WithParallel lets bulk operations that write into the buffer split large
// pixel ranges across a shared worker pool. The call still returns only
// after every pixel is written. Off by default.
func WithParallel(enabled bool) Option {
	return func(o *bufferOptions) {
		o.parallel = enabled
	}
}
