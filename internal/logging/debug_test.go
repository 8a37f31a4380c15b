package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TM_DEBUG", "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TM_DEBUG is empty")
	}

	t.Setenv("TM_DEBUG", "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TM_DEBUG is set")
	}

	t.Setenv("TM_DEBUG", "true")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TM_DEBUG is 'true'")
	}
}

func TestNewFromConfigDebugOverride(t *testing.T) {
	t.Setenv("TM_DEBUG", "")
	logger := NewFromConfig("error", "text")
	if got := logger.GetLevel(); got != log.ErrorLevel {
		t.Errorf("GetLevel() = %v, want %v", got, log.ErrorLevel)
	}

	t.Setenv("TM_DEBUG", "1")
	logger = NewFromConfig("error", "text")
	if got := logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("GetLevel() = %v, want %v", got, log.DebugLevel)
	}
}
