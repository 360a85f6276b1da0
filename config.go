package depot

import "go.uber.org/zap"

// Config holds global configuration applied to worlds when they are created
var Config config = config{
	logger:          zap.NewNop(),
	initialCapacity: 64,
}

type config struct {
	logger          *zap.Logger
	initialCapacity int
}

// SetLogger configures the logger handed to new worlds; nil restores the no-op logger
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetInitialCapacity sets the number of values a new storage reserves room for
func (c *config) SetInitialCapacity(n int) {
	c.initialCapacity = max(n, 0)
}
