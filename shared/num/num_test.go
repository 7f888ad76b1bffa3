package num_test

import (
	"testing"

	"hallbook/shared/num"

	"github.com/stretchr/testify/assert"
)

func TestOrZero(t *testing.T) {
	v := 149.5

	assert.Equal(t, 149.5, num.OrZero(&v))
	assert.Equal(t, float64(0), num.OrZero(nil))
}

func TestIntOrZero(t *testing.T) {
	v := 3

	assert.Equal(t, 3, num.IntOrZero(&v))
	assert.Equal(t, 0, num.IntOrZero(nil))
}
