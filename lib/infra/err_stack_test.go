package infra

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{
			initPC,
			"%s",
			"err_stack_test.go",
		},
		{
			initPC,
			"%n",
			"init",
		},
		{
			Frame(0),
			"%s",
			"unknownFile",
		},
		{
			Frame(0),
			"%n",
			"unknownFunc",
		},
		{
			Frame(0),
			"%d",
			"0",
		},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}
}

func TestFrameMarshal(t *testing.T) {
	_bytes, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, []byte("unknownFrame"), _bytes)

	_bytes, err = json.Marshal(Frame(0))
	require.NoError(t, err)
	require.Equal(t, []byte("{\"frame\":\"unknownFrame\"}"), _bytes)

	_bytes, err = initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.Contains(string(_bytes), "err_stack_test.go"))
}

func TestNewErrorStack(t *testing.T) {
	err := NewErrorStack("boom")
	require.Error(t, err)
	require.Equal(t, "boom", err.Error())

	es, ok := err.(ErrorStack)
	require.True(t, ok)
	require.Greater(t, len(es.Frames()), 0)

	_bytes, jerr := json.Marshal(err.(*errorStack))
	require.NoError(t, jerr)
	require.True(t, strings.HasPrefix(string(_bytes), "{\"error\":\"boom\""))
}

func TestWrapErrorStack(t *testing.T) {
	require.Nil(t, WrapErrorStack(nil))

	cause := errors.New("io failure")
	err := WrapErrorStackWithMessage(cause, "snapshot load")
	require.Equal(t, "snapshot load: io failure", err.Error())
	require.True(t, errors.Is(err, cause))

	// Already wrapped errors keep their original frames.
	again := WrapErrorStack(err)
	require.Equal(t, err, again)
}
