package domain

import "time"

const (
	ThreadStatusActive     = "active"
	ThreadStatusTerminated = "terminated"
)

type Thread struct {
	ID        string
	Name      string
	Mode      ThreadMode
	TimeScope string
	Goal      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Thread) IsActive() bool {
	return t.Status == "" || t.Status == ThreadStatusActive
}

type ThreadSpawnInput struct {
	Name      string
	Mode      ThreadMode
	TimeScope string
}

func (in ThreadSpawnInput) Validate() error {
	if err := requireField("thread name", in.Name); err != nil {
		return err
	}
	if _, err := ParseThreadMode(string(in.Mode)); err != nil {
		return err
	}
	return requireField("time scope", in.TimeScope)
}

type ThreadBackgroundInput struct {
	Name string
	Goal string
}

func (in ThreadBackgroundInput) Validate() error {
	if err := requireField("thread name", in.Name); err != nil {
		return err
	}
	return requireField("goal", in.Goal)
}
