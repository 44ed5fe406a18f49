//go:build cgo

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExports_HashDJB2(t *testing.T) {
	assert.Equal(t, uint64(0), callHashDJB2(nil))
	assert.Equal(t, uint64(5381), callHashDJB2([]byte{0}))
	assert.Equal(t, uint64(5381*33+97), callHashDJB2([]byte("a\x00")))
}

func TestExports_Fibonacci(t *testing.T) {
	assert.Equal(t, uint64(0), callFibonacci(0))
	assert.Equal(t, uint64(1), callFibonacci(1))
	assert.Equal(t, uint64(1), callFibonacci(2))
	assert.Equal(t, uint64(55), callFibonacci(10))
	assert.Equal(t, uint64(12586269025), callFibonacci(50))
}

func TestExports_SomaArray(t *testing.T) {
	values := []int64{1, 2, 3}

	assert.Equal(t, int64(0), callSomaArray(nil, 3))
	assert.Equal(t, int64(0), callSomaArray(values, 0))
	assert.Equal(t, int64(6), callSomaArray(values, 3))
}
