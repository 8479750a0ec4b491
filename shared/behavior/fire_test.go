package behavior

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCooling = errors.New("cooling down")

type recordingEmitter struct {
	name string
	log  *[]string
	err  error
}

func (e *recordingEmitter) Fire() error {
	*e.log = append(*e.log, e.name)
	return e.err
}

func TestTriggerEmitters_ShootAllFiresEachOnceInOrder(t *testing.T) {
	var calls []string
	emitters := []Emitter{
		&recordingEmitter{name: "left", log: &calls, err: errCooling},
		&recordingEmitter{name: "nose", log: &calls},
		&recordingEmitter{name: "right", log: &calls},
	}

	fired := TriggerEmitters(ShootAll, emitters)

	assert.Equal(t, []string{"left", "nose", "right"}, calls)
	assert.Equal(t, 2, fired)
}

func TestTriggerEmitters_NoneFiresNothing(t *testing.T) {
	var calls []string
	emitters := []Emitter{&recordingEmitter{name: "a", log: &calls}}

	assert.Zero(t, TriggerEmitters(ShootNone, emitters))
	assert.Empty(t, calls)
}

func TestTriggerEmitters_SkipsMissingEmitters(t *testing.T) {
	var calls []string
	emitters := []Emitter{nil, &recordingEmitter{name: "b", log: &calls}, nil}

	assert.Equal(t, 1, TriggerEmitters(ShootAll, emitters))
	assert.Equal(t, []string{"b"}, calls)
}

func TestParseShootMode(t *testing.T) {
	m, err := ParseShootMode("None")
	assert.NoError(t, err)
	assert.Equal(t, ShootNone, m)
	assert.Equal(t, "ShootAll", ShootAll.String())
}
