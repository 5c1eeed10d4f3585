package utils

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNilProgressIsANoOp(t *testing.T) {
	var p *Progress

	p.Add()
	p.Finish()
	assert.Zero(t, p.Count())
}

func TestProgressCountsDirectories(t *testing.T) {
	var out bytes.Buffer
	p := NewProgressWithWriter(&out)

	p.Add()
	p.Add()
	p.Add()

	assert.Equal(t, int64(3), p.Count())
	p.Finish()
}

func TestNewProgressDisabled(t *testing.T) {
	assert.Nil(t, NewProgress(false))
}
