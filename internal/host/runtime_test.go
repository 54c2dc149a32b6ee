package host_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/makeymakey/internal/control/action"
	"github.com/ja-he/makeymakey/internal/host"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time           { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestKeyboard(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	kb := host.NewKeyboard(500*time.Millisecond, now.Now)

	assert.False(t, kb.IsDown("space"))
	kb.Press("Left Arrow")
	assert.True(t, kb.IsDown("left arrow"))
	assert.Equal(t, []string{"left arrow"}, kb.Down())

	now.Advance(499 * time.Millisecond)
	assert.True(t, kb.IsDown("left arrow"))
	kb.Press("left arrow")
	now.Advance(499 * time.Millisecond)
	assert.True(t, kb.IsDown("left arrow"), "repeat press keeps the key held")
	now.Advance(time.Millisecond)
	assert.False(t, kb.IsDown("left arrow"))
	assert.Empty(t, kb.Down())

	kb.Press("w")
	kb.Release("W")
	assert.False(t, kb.IsDown("w"))

	kb.Press("a")
	kb.Press("d")
	kb.ReleaseAll()
	assert.Empty(t, kb.Down())

	assert.False(t, kb.IsDown("no such key"))
}

func TestKeyboardWithoutHold(t *testing.T) {
	now := &fakeNow{t: time.Unix(0, 0)}
	kb := host.NewKeyboard(0, now.Now)
	kb.Press("space")
	now.Advance(time.Hour)
	assert.True(t, kb.IsDown("space"))
}

func TestRuntimeEvents(t *testing.T) {
	r := host.New(host.Options{KeyHold: time.Second})

	var pressed []string
	stops := 0
	r.On(host.EventKeyPressed, func(arg string) { pressed = append(pressed, arg) })
	r.On(host.EventProjectStopAll, func(string) { stops++ })

	r.PressKey("up arrow")
	r.PressKey("w")
	assert.Equal(t, []string{"up arrow", "w"}, pressed)
	assert.True(t, r.KeyIsDown("up arrow"))
	assert.Equal(t, []string{"up arrow", "w"}, r.KeysDown())

	r.ReleaseKey("w")
	assert.False(t, r.KeyIsDown("w"))

	r.StopAll()
	assert.Equal(t, 1, stops)
	assert.False(t, r.KeyIsDown("up arrow"))

	assert.Equal(t, host.DefaultStepTime, r.CurrentStepTime())
}

func TestRuntimeStepFiresOnRisingEdge(t *testing.T) {
	r := host.New(host.Options{StepTime: 10 * time.Millisecond})
	assert.Equal(t, 10*time.Millisecond, r.CurrentStepTime())

	level := false
	fired := 0
	hat := &host.Hat{
		Opcode:    "test",
		Predicate: func() bool { return level },
		Action:    action.NewSimple(func() string { return "count" }, func() { fired++ }),
	}
	require.NoError(t, r.AddHat(hat))
	require.Error(t, r.AddHat(&host.Hat{Opcode: "broken"}))
	assert.Len(t, r.Hats(), 1)

	assert.Empty(t, r.Step())
	level = true
	assert.Equal(t, []*host.Hat{hat}, r.Step())
	assert.Empty(t, r.Step(), "a held level fires once")
	level = false
	r.Step()
	level = true
	r.Step()
	assert.Equal(t, 2, fired)
}

func TestRuntimeRun(t *testing.T) {
	r := host.New(host.Options{StepTime: time.Millisecond})
	steps := make(chan struct{}, 64)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx, func([]*host.Hat) {
			select {
			case steps <- struct{}{}:
			default:
			}
		})
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-steps:
		case <-time.After(time.Second):
			t.Fatal("runtime did not step")
		}
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runtime did not stop")
	}
}
