package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	assert.Equal(t, "green-tea-set", FromName("Green Tea Set"))
	assert.Equal(t, "ceramic-mug-350ml", FromName("  Ceramic Mug (350ml) "))
	assert.Equal(t, "product", FromName("!!!"))
	assert.Equal(t, "product", FromName(""))
}
