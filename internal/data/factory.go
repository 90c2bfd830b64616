package data

import "fmt"

// BackendType selects where the dashboard reads its documents from.
type BackendType string

const (
	FilesBackend  BackendType = "files"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string {
	return string(bt)
}

func (bt BackendType) IsValid() bool {
	switch bt {
	case FilesBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what a backend needs to be constructed.
type Config struct {
	Type BackendType

	// Files backend specific.
	TransactionsPath string
	PreferencesPath  string
	FitnessPath      string
}

// Validate rejects unusable backend configurations early, before any
// source is constructed.
func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("invalid data backend %q: must be one of [files memory]", c.Type)
	}
	if c.Type == FilesBackend {
		if c.TransactionsPath == "" || c.PreferencesPath == "" || c.FitnessPath == "" {
			return fmt.Errorf("files backend requires transactions, preferences and fitness paths")
		}
	}
	return nil
}
