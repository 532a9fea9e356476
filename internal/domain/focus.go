package domain

import "time"

// Focus is the single deep-work session the collaborator tracks. The client
// only ever replaces it wholesale.
type Focus struct {
	ID              string
	TaskName        string
	Duration        string
	SuccessCriteria string
	IsLocked        bool
	Timebox         string
	Fallback        string
	StartedAt       time.Time
	EndsAt          time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeclaredDuration returns the token the session was created with. Locked
// sessions carry their length in the timebox.
func (f Focus) DeclaredDuration() string {
	if f.Duration != "" {
		return f.Duration
	}
	return f.Timebox
}

type FocusSetInput struct {
	TaskName        string
	Duration        string
	SuccessCriteria string
}

func (in FocusSetInput) Validate() error {
	if err := requireField("task name", in.TaskName); err != nil {
		return err
	}
	if err := requireField("duration", in.Duration); err != nil {
		return err
	}
	return requireField("success criteria", in.SuccessCriteria)
}

type FocusLockInput struct {
	TaskName string
	Timebox  string
	Fallback string
}

func (in FocusLockInput) Validate() error {
	if err := requireField("task name", in.TaskName); err != nil {
		return err
	}
	if err := requireField("timebox", in.Timebox); err != nil {
		return err
	}
	return requireField("fallback", in.Fallback)
}
