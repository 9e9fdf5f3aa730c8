package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It flushes queued status messages, renders a dirty scene and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Status   *StatusPresenter
	Scene    *ScenePresenter
	Schedule func()
}

func NewLoop(status *StatusPresenter, scene *ScenePresenter, schedule func()) *Loop {
	return &Loop{Status: status, Scene: scene, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Scene != nil {
		l.Scene.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
