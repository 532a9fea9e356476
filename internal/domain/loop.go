package domain

import "time"

const (
	LoopStatusOpen   = "open"
	LoopStatusClosed = "closed"
)

type Loop struct {
	ID          string
	Description string
	Priority    Priority
	Queue       QueueType
	Owner       string
	Status      string
	ClosureType ClosureType
	NextStep    string
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (l Loop) IsOpen() bool {
	return l.Status == "" || l.Status == LoopStatusOpen
}

type LoopAuthorizeInput struct {
	Description string
	Priority    Priority
	Queue       QueueType
	Owner       string
}

func (in LoopAuthorizeInput) Validate() error {
	if err := requireField("description", in.Description); err != nil {
		return err
	}
	if _, err := ParsePriority(string(in.Priority)); err != nil {
		return err
	}
	if _, err := ParseQueueType(string(in.Queue)); err != nil {
		return err
	}
	return requireField("owner", in.Owner)
}

type LoopCloseInput struct {
	LoopID      string
	ClosureType ClosureType
	NextStep    string
}

func (in LoopCloseInput) Validate() error {
	if err := requireField("loop id", in.LoopID); err != nil {
		return err
	}
	_, err := ParseClosureType(string(in.ClosureType))
	return err
}

type LoopKillInput struct {
	Description string
	Reason      string
}

func (in LoopKillInput) Validate() error {
	if err := requireField("description", in.Description); err != nil {
		return err
	}
	return requireField("reason", in.Reason)
}
