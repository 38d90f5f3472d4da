package build

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "dev"
	assert.True(t, IsDevBuild())

	Version = "v1.2.0"
	assert.False(t, IsDevBuild())
}

func TestPlatform(t *testing.T) {
	t.Parallel()
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, Platform())
}
