// File: internal/services/chat/config.go
package chat

import "fmt"

type Config struct {
	// HistoryWindow is how many recent messages feed the generator context.
	HistoryWindow int
	// MaxMessageChars caps the accepted inbound message length.
	MaxMessageChars int
}

func (c *Config) Validate() error {
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history_window must be positive")
	}
	if c.HistoryWindow > 50 {
		return fmt.Errorf("history_window cannot exceed 50")
	}
	if c.MaxMessageChars <= 0 {
		return fmt.Errorf("max_message_chars must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		HistoryWindow:   6,
		MaxMessageChars: 4000,
	}
}
