package src

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStlError(t *testing.T) {
	assert.Equal(t, "index out of range", ERR_OUT_OF_RANGE.Error())
	assert.Equal(t, "negative size", ERR_NEGATIVE_SIZE.Error())
	assert.Equal(t, "errno 99", stlError(99).Error())

	var err error = ERR_EMPTY
	assert.True(t, errors.Is(err, ERR_EMPTY))
}

func TestIsContractViolation(t *testing.T) {
	assert.True(t, IsContractViolation(ERR_EMPTY))
	assert.False(t, IsContractViolation(errors.New("index out of range")))
	assert.False(t, IsContractViolation(nil))

	func() {
		defer func() {
			assert.True(t, IsContractViolation(recover()))
		}()
		NewVector[int]().PopBack()
	}()
}
