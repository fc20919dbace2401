package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/esimov/parbench/reduce"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_ReadsIntegers(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("1000\n  42 \n7"))
	var out bytes.Buffer

	v, err := prompt(in, &out, "Enter array size: ")
	require.NoError(t, err)
	assert.Equal(t, 1000, v)
	assert.Equal(t, "Enter array size: ", out.String())

	v, err = prompt(in, &out, "Enter key to search: ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// The last line has no trailing newline.
	v, err = prompt(in, &out, "Enter key to search: ")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, "Enter array size: Enter key to search: Enter key to search: ", out.String())
}

func TestPrompt_RejectsGarbage(t *testing.T) {
	var out bytes.Buffer

	_, err := prompt(bufio.NewReader(strings.NewReader("ten\n")), &out, "Enter array size: ")
	assert.True(t, errors.Is(err, reduce.ErrInvalidInput))

	_, err = prompt(bufio.NewReader(strings.NewReader("")), &out, "Enter array size: ")
	assert.True(t, errors.Is(err, reduce.ErrInvalidInput))
	assert.Equal(t, "Enter array size: Enter array size: ", out.String())
}

func TestErrorMessage_PlainWhenRedirected(t *testing.T) {
	var buf bytes.Buffer
	msg := errorMessage(&buf, errors.New("sequential and threaded results differ"))
	assert.Equal(t, "Error: sequential and threaded results differ", msg)
	assert.NotContains(t, msg, "\x1b[")
}
