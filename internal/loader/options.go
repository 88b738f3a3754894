package loader

// defaultMaxSize caps the size of a document read from disk.
const defaultMaxSize = 32 << 20

// NewService creates a new loader service with optional configuration
func NewService(options ...Option) *Service {
	s := &Service{
		extensions: map[string]Format{
			".json": FormatJSON,
			".yaml": FormatYAML,
			".yml":  FormatYAML,
		},
		maxSize: defaultMaxSize,
		debug:   &noOpDebugger{},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithExtension maps an additional file extension to a format
func WithExtension(ext string, format Format) Option {
	return func(s *Service) {
		s.extensions[ext] = format
	}
}

// WithMaxSize sets the largest document accepted, in bytes
func WithMaxSize(size int64) Option {
	return func(s *Service) {
		s.maxSize = size
	}
}

// WithDebugger sets the debugger for logging
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		s.debug = debugger
	}
}
