package fakeapi

import "time"

type focusRecord struct {
	ID              string    `json:"id"`
	TaskName        string    `json:"task_name"`
	Duration        string    `json:"duration"`
	SuccessCriteria string    `json:"success_criteria"`
	IsLocked        bool      `json:"is_locked"`
	Timebox         string    `json:"timebox,omitempty"`
	Fallback        string    `json:"fallback,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	EndsAt          time.Time `json:"ends_at,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type loopRecord struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Queue       string     `json:"queue"`
	Owner       string     `json:"owner"`
	Status      string     `json:"status"`
	ClosureType string     `json:"closure_type,omitempty"`
	NextStep    string     `json:"next_step,omitempty"`
	ClosedAt    *time.Time `json:"closed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type threadRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	TimeScope string    `json:"time_scope"`
	Goal      string    `json:"goal,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type taskRecord struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Urgency     string    `json:"urgency"`
	Importance  string    `json:"importance"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ideaRecord struct {
	ID        string    `json:"id"`
	Summary   string    `json:"idea_summary"`
	Storage   string    `json:"storage"`
	ActionNow bool      `json:"action_now"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type archiveRecord struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	Summary   string    `json:"summary"`
	Lesson    string    `json:"lesson,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type predictionRecord struct {
	ID          string    `json:"id"`
	Scenario    string    `json:"scenario"`
	TimeHorizon string    `json:"time_horizon"`
	Depth       string    `json:"depth"`
	Status      string    `json:"status"`
	Results     string    `json:"results,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type emotionRecord struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	SourceGuess string    `json:"source_guess"`
	CreatedAt   time.Time `json:"created_at"`
}

type statusBody struct {
	ForegroundThreads []string  `json:"foreground_threads"`
	BackgroundThreads []string  `json:"background_threads"`
	EmotionalLoad     string    `json:"emotional_load"`
	OpenLoopsEstimate int       `json:"open_loops_estimate"`
	EnergyLevel       string    `json:"energy_level"`
	CurrentFocus      string    `json:"current_focus,omitempty"`
	FocusLocked       bool      `json:"focus_locked"`
	ActivePredictions int       `json:"active_predictions"`
	PendingTasks      int       `json:"pending_tasks"`
	CapturedIdeas     int       `json:"captured_ideas"`
	Timestamp         time.Time `json:"timestamp"`
}

type errorBody struct {
	Error     string    `json:"error"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type focusSetRequest struct {
	TaskName        string `json:"task_name" binding:"required"`
	Duration        string `json:"duration" binding:"required"`
	SuccessCriteria string `json:"success_criteria" binding:"required"`
}

type focusLockRequest struct {
	TaskName string `json:"task_name" binding:"required"`
	Timebox  string `json:"timebox" binding:"required"`
	Fallback string `json:"fallback" binding:"required"`
}

type loopAuthorizeRequest struct {
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required,oneof=high medium low"`
	Queue       string `json:"queue" binding:"required,oneof=action reference backburner"`
	Owner       string `json:"owner" binding:"required"`
}

type loopCloseRequest struct {
	LoopID      string `json:"loop_id" binding:"required"`
	ClosureType string `json:"closure_type" binding:"required,oneof=done paused abandoned"`
	NextStep    string `json:"next_step"`
}

type loopKillRequest struct {
	Description string `json:"description" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

type threadSpawnRequest struct {
	ThreadName string `json:"thread_name" binding:"required"`
	Mode       string `json:"mode" binding:"required,oneof=foreground background"`
	TimeScope  string `json:"time_scope" binding:"required"`
}

type threadBackgroundRequest struct {
	ThreadName string `json:"thread_name" binding:"required"`
	Goal       string `json:"goal" binding:"required"`
}

type threadTerminateRequest struct {
	Rule string `json:"rule" binding:"required"`
}

type ingestTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Urgency     string `json:"urgency" binding:"required,oneof=high medium low"`
	Importance  string `json:"importance" binding:"required,oneof=high medium low"`
}

type ingestIdeaRequest struct {
	IdeaSummary string `json:"idea_summary" binding:"required"`
	Storage     string `json:"storage" binding:"required"`
	ActionNow   bool   `json:"action_now"`
}

type archiveCommitRequest struct {
	Object  string `json:"object" binding:"required"`
	Summary string `json:"summary" binding:"required"`
	Lesson  string `json:"lesson"`
}

type predictRunRequest struct {
	Scenario    string `json:"scenario" binding:"required"`
	TimeHorizon string `json:"time_horizon" binding:"required"`
	Depth       string `json:"depth" binding:"required,oneof=low medium deep"`
}

type predictStopRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type emotionTagRequest struct {
	Label       string `json:"label" binding:"required"`
	SourceGuess string `json:"source_guess" binding:"required"`
}

type decompressRequest struct {
	Method   string `json:"method" binding:"required"`
	Duration string `json:"duration" binding:"required"`
}

type offloadRequest struct {
	TaskType string `json:"task_type" binding:"required"`
	Scope    string `json:"scope" binding:"required"`
}

type assistRequest struct {
	Task           string `json:"task" binding:"required"`
	AssistanceType string `json:"assistance_type" binding:"required"`
}
