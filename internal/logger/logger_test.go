package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, InfoLogger)
	assert.NotNil(t, ErrorLogger)
	assert.NotNil(t, DebugLogger)
}

func captureInfo() *bytes.Buffer {
	var buf bytes.Buffer
	InfoLogger = log.New(&buf, "INFO: ", 0)
	return &buf
}

func captureError() *bytes.Buffer {
	var buf bytes.Buffer
	ErrorLogger = log.New(&buf, "ERROR: ", 0)
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureInfo()

	Info("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestInfoWithKeyValues(t *testing.T) {
	buf := captureInfo()

	Info("enrollment created", "user_id", "abc", "attempts", 2)

	output := buf.String()
	assert.Contains(t, output, "enrollment created")
	assert.Contains(t, output, "user_id=abc")
	assert.Contains(t, output, "attempts=2")
}

func TestInfoWithDanglingKey(t *testing.T) {
	buf := captureInfo()

	// An odd trailing key still shows up instead of being dropped.
	Info("partial", "orphan")

	assert.Contains(t, buf.String(), "orphan")
}

func TestInfof(t *testing.T) {
	buf := captureInfo()

	Infof("test %s", "message")

	assert.Contains(t, buf.String(), "test message")
}

func TestError(t *testing.T) {
	buf := captureError()

	Error("test error")

	assert.Contains(t, buf.String(), "test error")
}

func TestErrorf(t *testing.T) {
	buf := captureError()

	Errorf("test %s", "error")

	assert.Contains(t, buf.String(), "test error")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	DebugLogger = log.New(&buf, "DEBUG: ", 0)

	Debug("test debug", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test debug")
	assert.Contains(t, output, "key=value")
}
