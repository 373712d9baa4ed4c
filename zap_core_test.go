package tracingweb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wasmtel/tracingweb"
	"github.com/wasmtel/tracingweb/perftest"
	"github.com/wasmtel/tracingweb/tracingwebfakes"
)

func newTestEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	// Keep encoder output deterministic for assertions.
	cfg.TimeKey = ""
	return cfg
}

func TestConsoleCore_RoutesByLevel(t *testing.T) {
	fake := &tracingwebfakes.FakeConsole{}
	w := tracingweb.MakeWebConsoleWriter(fake)
	core := tracingweb.NewConsoleCore(zapcore.NewConsoleEncoder(newTestEncoderConfig()), w, zapcore.DebugLevel, nil)
	log := zap.New(core)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	assert.Equal(t, 1, fake.DebugCallCount())
	assert.Equal(t, 1, fake.InfoCallCount())
	assert.Equal(t, 1, fake.WarnCallCount())
	assert.Equal(t, 1, fake.ErrorCallCount())
	assert.Zero(t, fake.LogCallCount())

	assert.Equal(t, "INFO\ti", fake.InfoArgsForCall(0))
	assert.Equal(t, "ERROR\te", fake.ErrorArgsForCall(0))
}

func TestConsoleCore_OneCallPerEntry(t *testing.T) {
	fake := &tracingwebfakes.FakeConsole{}
	w := tracingweb.MakeWebConsoleWriter(fake)
	core := tracingweb.NewConsoleCore(zapcore.NewConsoleEncoder(newTestEncoderConfig()), w, zapcore.DebugLevel, nil)
	log := zap.New(core)

	log.Info("first", zap.String("k", "v"), zap.Int("n", 3))
	log.Info("second")

	require.Equal(t, 2, fake.InfoCallCount())
	assert.Contains(t, fake.InfoArgsForCall(0), "first")
	assert.Contains(t, fake.InfoArgsForCall(0), `"k": "v"`)
	assert.Equal(t, "INFO\tsecond", fake.InfoArgsForCall(1))
}

func TestConsoleCore_LevelEnabler(t *testing.T) {
	fake := &tracingwebfakes.FakeConsole{}
	w := tracingweb.MakeWebConsoleWriter(fake)
	core := tracingweb.NewConsoleCore(zapcore.NewConsoleEncoder(newTestEncoderConfig()), w, zapcore.WarnLevel, nil)
	log := zap.New(core)

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")

	assert.Zero(t, fake.DebugCallCount())
	assert.Zero(t, fake.InfoCallCount())
	assert.Equal(t, 1, fake.WarnCallCount())
}

func TestConsoleCore_WithFields(t *testing.T) {
	fake := &tracingwebfakes.FakeConsole{}
	w := tracingweb.MakeWebConsoleWriter(fake)
	core := tracingweb.NewConsoleCore(zapcore.NewConsoleEncoder(newTestEncoderConfig()), w, zapcore.DebugLevel, nil)
	log := zap.New(core).With(zap.String("component", "loader"))

	log.Info("ready")

	require.Equal(t, 1, fake.InfoCallCount())
	assert.Contains(t, fake.InfoArgsForCall(0), `"component": "loader"`)
}

func TestConsoleCore_ForwardsEventsToLayer(t *testing.T) {
	fake := &tracingwebfakes.FakeConsole{}
	rec := perftest.NewRecorder()
	layer := tracingweb.NewPerformanceLayer(rec,
		tracingweb.WithDetailsFromFields(tracingweb.CompactFields()))

	w := tracingweb.MakeWebConsoleWriter(fake)
	core := tracingweb.NewConsoleCore(zapcore.NewConsoleEncoder(newTestEncoderConfig()), w, zapcore.DebugLevel, layer)
	log := zap.New(core).Named("assets")

	log.Warn("cache miss", zap.Int("size", 2048))

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "mark", entries[0].Kind)
	assert.Equal(t, "cache miss", entries[0].Name)
	assert.Equal(t, "size=2048", entries[0].Detail)

	// The console call still happens alongside the mark.
	assert.Equal(t, 1, fake.WarnCallCount())
}
