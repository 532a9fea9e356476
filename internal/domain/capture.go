package domain

import "time"

type TaskInput struct {
	Description string
	Category    string
	Urgency     Priority
	Importance  Priority
}

func (in TaskInput) Validate() error {
	if err := requireField("description", in.Description); err != nil {
		return err
	}
	if err := requireField("category", in.Category); err != nil {
		return err
	}
	if _, err := ParsePriority(string(in.Urgency)); err != nil {
		return err
	}
	_, err := ParsePriority(string(in.Importance))
	return err
}

type IdeaInput struct {
	Summary   string
	Storage   string
	ActionNow bool
}

func (in IdeaInput) Validate() error {
	if err := requireField("idea summary", in.Summary); err != nil {
		return err
	}
	return requireField("storage", in.Storage)
}

type Archive struct {
	ID        string
	Object    string
	Summary   string
	Lesson    string
	CreatedAt time.Time
}

type ArchiveInput struct {
	Object  string
	Summary string
	Lesson  string
}

func (in ArchiveInput) Validate() error {
	if err := requireField("object", in.Object); err != nil {
		return err
	}
	return requireField("summary", in.Summary)
}

type Prediction struct {
	ID          string
	Scenario    string
	TimeHorizon string
	Depth       PredictionDepth
	Status      string
	Results     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PredictionInput struct {
	Scenario    string
	TimeHorizon string
	Depth       PredictionDepth
}

func (in PredictionInput) Validate() error {
	if err := requireField("scenario", in.Scenario); err != nil {
		return err
	}
	if err := requireField("time horizon", in.TimeHorizon); err != nil {
		return err
	}
	_, err := ParsePredictionDepth(string(in.Depth))
	return err
}

type EmotionalState struct {
	ID          string
	Label       string
	SourceGuess string
	CreatedAt   time.Time
}

type EmotionInput struct {
	Label       string
	SourceGuess string
}

func (in EmotionInput) Validate() error {
	if err := requireField("label", in.Label); err != nil {
		return err
	}
	return requireField("source guess", in.SourceGuess)
}

type DecompressInput struct {
	Method   string
	Duration string
}

func (in DecompressInput) Validate() error {
	if err := requireField("method", in.Method); err != nil {
		return err
	}
	return requireField("duration", in.Duration)
}

type OffloadInput struct {
	TaskType string
	Scope    string
}

func (in OffloadInput) Validate() error {
	if err := requireField("task type", in.TaskType); err != nil {
		return err
	}
	return requireField("scope", in.Scope)
}

type AssistInput struct {
	Task           string
	AssistanceType string
}

func (in AssistInput) Validate() error {
	if err := requireField("task", in.Task); err != nil {
		return err
	}
	return requireField("assistance type", in.AssistanceType)
}

type ResetKind string

const (
	ResetSoft ResetKind = "soft"
	ResetHard ResetKind = "hard"
)

// Receipt is the acknowledgement the collaborator returns for plain mutations.
type Receipt struct {
	ID        string
	Message   string
	Timestamp time.Time
}
