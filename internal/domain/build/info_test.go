package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	assert.Equal(t, "dev", Info{}.String())
	assert.Equal(t, "1.0.0", Info{Version: "1.0.0", Commit: "none"}.String())
	assert.Equal(t, "1.0.0 (abc123, 2026-01-01) go1.25", Info{
		Version: "1.0.0", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25",
	}.String())
	assert.Equal(t, runtime.Version(), Current("v", "", "").GoVersion)
}
