package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fission-codes/go-tour/config"
	"github.com/fission-codes/go-tour/counter"
	"github.com/fission-codes/go-tour/diagram"
	"github.com/fission-codes/go-tour/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTourOutput(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := stats.NewDefaultStatsAndReporting()
	var out bytes.Buffer
	tr := &tour{
		out: &out,
		cfg: config.Config{Seeds: []uint8{0, 5, 9, 200}},
		opts: []counter.Option{
			counter.WithLogger(zap.New(core).Sugar()),
			counter.WithStats(sink),
		},
	}
	require.NoError(t, tr.run())

	text := out.String()
	assert.Contains(t, text, "1\n2\n3\n4\n5\n")
	assert.Contains(t, text, "stopping at 2\n")
	assert.Contains(t, text, "sum of products divisible by 3: 18\n")
	assert.Contains(t, text, "seed 0: Bob (person)\n")
	assert.Contains(t, text, "seed 5: Jake (person, student, programmer, compsci-student)\n")
	assert.Contains(t, text, "seed 9: Don (person, programmer)\n")
	assert.Contains(t, text, "seed 200: Someone (person)\n")

	compare := strings.Index(text, "Bob likes Rust\n")
	require.NotEqual(t, -1, compare)
	assert.Contains(t, text[compare:], "My name is Bert and I attend Community college.")

	// One full count, one early stop, two zipped counters.
	assert.Equal(t, 4, logs.FilterMessage("dropping counter").Len())
	assert.Equal(t, uint64(4), sink.Count("counter.dispose"))
}

func TestTourDiagram(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	states := diagram.NewStateDiagrammer("BoundedCounter")
	tr := &tour{
		out: &bytes.Buffer{},
		cfg: config.Config{},
		opts: []counter.Option{
			counter.WithLogger(zap.New(core).Sugar()),
			counter.WithObserver(states),
		},
	}
	require.NoError(t, tr.run())
	states.End()

	var rendered bytes.Buffer
	require.NoError(t, states.Write(&rendered))
	assert.Contains(t, rendered.String(), "  READY --> COUNTING: NEXT\n")
	assert.Contains(t, rendered.String(), "  COUNTING --> EXHAUSTED: NEXT\n")
	assert.Contains(t, rendered.String(), "  EXHAUSTED --> DISPOSED: DISPOSE\n")
	assert.Contains(t, rendered.String(), "  COUNTING --> DISPOSED: DISPOSE\n")
}
