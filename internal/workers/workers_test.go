// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-image-feed/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Start and Stop were called.
type mockWorker struct {
	startCount int
	stopCount  int
	ctx        context.Context
}

func (m *mockWorker) Start(ctx context.Context) {
	m.startCount++
	m.ctx = ctx
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

// orderWorker records start and stop events into a shared slice.
type orderWorker struct {
	id     string
	events *[]string
}

func (o *orderWorker) Start(context.Context) {
	*o.events = append(*o.events, "start "+o.id)
}

func (o *orderWorker) Stop() {
	*o.events = append(*o.events, "stop "+o.id)
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2, w3)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	ws.Start(ctx)

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.startCount, "worker[%d]", i)
		assert.Equal(t, ctx, w.ctx, "worker[%d]", i)
		assert.Zero(t, w.stopCount, "worker[%d]", i)
	}
}

func TestWorkers_Stop_AllWorkersAreCalled(t *testing.T) {
	w1, w2 := &mockWorker{}, &mockWorker{}
	ws := NewWorkers(logger.Nop(), w1, w2)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, 1, w1.stopCount)
	assert.Equal(t, 1, w2.stopCount)
}

func TestWorkers_Order(t *testing.T) {
	var events []string
	ws := NewWorkers(logger.Nop(),
		&orderWorker{id: "1", events: &events},
		&orderWorker{id: "2", events: &events},
		&orderWorker{id: "3", events: &events},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"start 1", "start 2", "start 3",
		"stop 3", "stop 2", "stop 1",
	}, events)
}

func TestWorkers_SkipsNil(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(logger.Nop(), nil, w, nil)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, 1, w.startCount)
	assert.Equal(t, 1, w.stopCount)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// Should not panic on an empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_ZeroValue(t *testing.T) {
	ws := &Workers{}

	// Should not panic when constructed without NewWorkers
	ws.Start(context.Background())
	ws.Stop()
}
