package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	assert.Equal(t, "same", renderDiff("same", "same"))
	assert.Equal(t, "Hello [-abc-]{+xyz+}", renderDiff("Hello abc", "Hello xyz"))
	assert.Equal(t, "{+new+}", renderDiff("", "new"))
}
