package studio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/solarlune/scrollstage/timeline"
)

// Session connects a running Project to a watched state file and a Store. Every time the file changes, Update applies the
// new state to the Project and saves it to the Store.
type Session struct {
	Project *timeline.Project
	Store   *Store
	Watcher *Watcher
}

// NewSession starts a Session for the Project, watching the state file at the path given. If the file doesn't exist, the
// Project's current state is written to it first, so there's something to edit.
func NewSession(project *timeline.Project, store *Store, path string) (*Session, error) {

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Export(project, path); err != nil {
			return nil, err
		}
	}

	watcher, err := Watch(path)
	if err != nil {
		return nil, err
	}

	return &Session{
		Project: project,
		Store:   store,
		Watcher: watcher,
	}, nil

}

// Export writes the Project's current state to the path given.
func Export(project *timeline.Project, path string) error {

	data, err := project.State().Marshal()
	if err != nil {
		return fmt.Errorf("studio: encoding %s: %w", project.Name(), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("studio: exporting %s: %w", project.Name(), err)
	}

	Logger().Info("state exported", "project", project.Name(), "path", path)
	return nil

}

// Update applies the newest edit of the state file, if there is one, returning whether the Project changed. A state that
// doesn't fit the Project is logged and dropped, and the Project keeps its state.
func (session *Session) Update() bool {

	state, ok := session.Watcher.Poll()
	if !ok {
		return false
	}

	if err := session.Project.ApplyState(state); err != nil {
		Logger().Warn("state file rejected", "project", session.Project.Name(), "err", err)
		return false
	}

	Logger().Info("state applied", "project", session.Project.Name(), "path", session.Watcher.Path())

	if session.Store != nil {
		if err := session.Store.Save(session.Project.Name(), state); err != nil {
			Logger().Warn("saving state", "project", session.Project.Name(), "err", err)
		}
	}

	return true

}

// Reset deletes the Project's saved override, so the next run starts from the embedded state again.
func (session *Session) Reset() error {
	if session.Store == nil {
		return nil
	}
	return session.Store.Delete(session.Project.Name())
}

// Close stops watching the state file.
func (session *Session) Close() error {
	return session.Watcher.Close()
}
