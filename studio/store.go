// Package studio is the development mode of the demos: animation state can be edited in a YAML file while a demo runs,
// with every edit applied live and saved as an override that replaces the embedded state on the next run.
package studio

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/solarlune/scrollstage/timeline"
)

// stateObject is the gdata object every project's state override is saved under, one prop per project.
const stateObject = "project-state"

// Backend is where a Store keeps its data; *gdata.Manager implements it.
type Backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
	DeleteObjectProp(objectKey, propKey string) error
}

// Store persists project state overrides. A Store without a backend keeps nothing: saves are dropped and loads find
// nothing.
type Store struct {
	backend Backend
}

// Open opens the Store kept in the user data directory of the app name given.
func Open(appName string) (*Store, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("studio: opening store: %w", err)
	}
	return NewStore(manager), nil
}

// NewStore creates a Store over the backend given, which may be nil.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Save saves the state given as the override of the named project.
func (store *Store) Save(project string, state timeline.ProjectState) error {

	if store.backend == nil {
		return nil
	}

	data, err := state.Marshal()
	if err != nil {
		return fmt.Errorf("studio: encoding %s: %w", project, err)
	}

	if err := store.backend.SaveObjectProp(stateObject, project, data); err != nil {
		return fmt.Errorf("studio: saving %s: %w", project, err)
	}

	Logger().Info("state saved", "project", project)

	return nil

}

// Load returns the saved override of the named project, and whether there was one.
func (store *Store) Load(project string) (timeline.ProjectState, bool, error) {

	if store.backend == nil || !store.backend.ObjectPropExists(stateObject, project) {
		return timeline.ProjectState{}, false, nil
	}

	data, err := store.backend.LoadObjectProp(stateObject, project)
	if err != nil {
		return timeline.ProjectState{}, false, fmt.Errorf("studio: loading %s: %w", project, err)
	}

	state, err := timeline.ParseState(data)
	if err != nil {
		return timeline.ProjectState{}, false, fmt.Errorf("studio: loading %s: %w", project, err)
	}

	return state, true, nil

}

// Delete removes the saved override of the named project, if there is one.
func (store *Store) Delete(project string) error {

	if store.backend == nil || !store.backend.ObjectPropExists(stateObject, project) {
		return nil
	}

	if err := store.backend.DeleteObjectProp(stateObject, project); err != nil {
		return fmt.Errorf("studio: deleting %s: %w", project, err)
	}

	return nil

}

// Resolve returns the state a project should start with: its saved override if there's a usable one, otherwise the
// embedded state given. A saved state that fails to load is logged and skipped.
func Resolve(store *Store, project string, embedded timeline.ProjectState) timeline.ProjectState {

	if store == nil {
		return embedded
	}

	state, ok, err := store.Load(project)
	if err != nil {
		Logger().Warn("ignoring saved state", "project", project, "err", err)
		return embedded
	}

	if !ok {
		return embedded
	}

	Logger().Info("using saved state", "project", project)
	return state

}
