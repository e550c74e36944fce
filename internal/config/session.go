package config

// DefaultMaxCount bounds the element count accepted from input.
const DefaultMaxCount = 1 << 20

// SessionConfig configures the front-insertion session.
type SessionConfig struct {
	ShowPrompts bool `yaml:"show_prompts"` // write prompts before each read
	MaxCount    int  `yaml:"max_count"`    // largest accepted n; 0 = only the buffer maximum applies
}
