package studio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/solarlune/scrollstage/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	props map[string][]byte
	fail  bool
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{props: map[string][]byte{}}
}

func (m *memoryBackend) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := m.props[objectKey+"/"+propKey]
	return ok
}

func (m *memoryBackend) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	if m.fail {
		return nil, errors.New("disk on fire")
	}
	return m.props[objectKey+"/"+propKey], nil
}

func (m *memoryBackend) SaveObjectProp(objectKey, propKey string, data []byte) error {
	m.props[objectKey+"/"+propKey] = data
	return nil
}

func (m *memoryBackend) DeleteObjectProp(objectKey, propKey string) error {
	delete(m.props, objectKey+"/"+propKey)
	return nil
}

func stateWithX(t *testing.T, x float64) timeline.ProjectState {
	t.Helper()
	state, err := timeline.ParseState([]byte(fmt.Sprintf(`
sheets:
  Main:
    sequence: {length: 1}
    objects:
      Box:
        static: {x: %v}
`, x)))
	require.NoError(t, err)
	return state
}

func boxProps() timeline.CompoundProp {
	return timeline.Compound(map[string]timeline.Prop{"x": timeline.Number(0)})
}

func TestStore(t *testing.T) {

	backend := newMemoryBackend()
	store := NewStore(backend)

	_, ok, err := store.Load("Demo")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save("Demo", stateWithX(t, 3)))

	state, ok, err := store.Load("Demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, state.Sheets["Main"].Objects["Box"].Static["x"])

	require.NoError(t, store.Delete("Demo"))
	require.NoError(t, store.Delete("Demo"))
	_, ok, err = store.Load("Demo")
	require.NoError(t, err)
	assert.False(t, ok)

	// Without a backend, nothing is kept.
	empty := NewStore(nil)
	require.NoError(t, empty.Save("Demo", stateWithX(t, 3)))
	_, ok, err = empty.Load("Demo")
	require.NoError(t, err)
	assert.False(t, ok)

}

func TestResolve(t *testing.T) {

	embedded := stateWithX(t, 1)
	backend := newMemoryBackend()
	store := NewStore(backend)

	assert.Equal(t, embedded, Resolve(nil, "Demo", embedded))
	assert.Equal(t, embedded, Resolve(store, "Demo", embedded))

	require.NoError(t, store.Save("Demo", stateWithX(t, 2)))
	resolved := Resolve(store, "Demo", embedded)
	assert.Equal(t, 2, resolved.Sheets["Main"].Objects["Box"].Static["x"])

	backend.props[stateObject+"/Demo"] = []byte("sheets: [")
	assert.Equal(t, embedded, Resolve(store, "Demo", embedded), "broken saves fall back")

	backend.fail = true
	_, _, err := store.Load("Demo")
	assert.Error(t, err)
	assert.Equal(t, embedded, Resolve(store, "Demo", embedded))

}

func TestGdataStore(t *testing.T) {

	appName := fmt.Sprintf("scrollstage_test_%d", time.Now().UnixNano())

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skip("cannot open a gdata store here:", err)
	}

	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	store := NewStore(manager)
	require.NoError(t, store.Save("Demo", stateWithX(t, 5)))

	state, ok, err := store.Load("Demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, state.Sheets["Main"].Objects["Box"].Static["x"])

	require.NoError(t, store.Delete("Demo"))
	_, ok, err = store.Load("Demo")
	require.NoError(t, err)
	assert.False(t, ok)

}

func TestWatcher(t *testing.T) {

	path := filepath.Join(t.TempDir(), "state.yaml")

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok)

	data, err := stateWithX(t, 4).Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var state timeline.ProjectState
	require.Eventually(t, func() bool {
		state, ok = w.Poll()
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, 4, state.Sheets["Main"].Objects["Box"].Static["x"])

	_, ok = w.Poll()
	assert.False(t, ok, "each state is delivered once")

}

func TestSession(t *testing.T) {

	project, err := timeline.NewProject("Demo", stateWithX(t, 1))
	require.NoError(t, err)
	box, err := project.Sheet("Main").Object("Box", boxProps())
	require.NoError(t, err)

	backend := newMemoryBackend()
	store := NewStore(backend)
	path := filepath.Join(t.TempDir(), "Demo.yaml")

	session, err := NewSession(project, store, path)
	require.NoError(t, err)
	defer session.Close()

	// The current state was exported for editing.
	exported, err := os.ReadFile(path)
	require.NoError(t, err)
	parsed, err := timeline.ParseState(exported)
	require.NoError(t, err)
	assert.Equal(t, 1, parsed.Sheets["Main"].Objects["Box"].Static["x"])

	assert.False(t, session.Update())

	data, err := stateWithX(t, 9).Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.Eventually(t, session.Update, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 9.0, box.Value().Number("x"))

	saved, ok, err := store.Load("Demo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, saved.Sheets["Main"].Objects["Box"].Static["x"])

	// States that don't fit the project are dropped.
	require.NoError(t, os.WriteFile(path, []byte("sheets:\n  Main:\n    sequence: {length: 1}\n    objects:\n      Box:\n        static: {x: nope}\n"), 0o644))
	time.Sleep(200 * time.Millisecond)
	for i := 0; i < 10; i++ {
		assert.False(t, session.Update())
	}
	assert.Equal(t, 9.0, box.Value().Number("x"))

	require.NoError(t, session.Reset())
	_, ok, err = store.Load("Demo")
	require.NoError(t, err)
	assert.False(t, ok)

}
