package api

import (
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
)

type focusDTO struct {
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

func (d focusDTO) toDomain() domain.Focus {
	return domain.Focus{
		ID:              d.ID,
		TaskName:        d.TaskName,
		Duration:        d.Duration,
		SuccessCriteria: d.SuccessCriteria,
		IsLocked:        d.IsLocked,
		Timebox:         d.Timebox,
		Fallback:        d.Fallback,
		StartedAt:       d.StartedAt,
		EndsAt:          d.EndsAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type focusResponse struct {
	Message   string    `json:"message"`
	Focus     *focusDTO `json:"focus,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type focusSetRequest struct {
	TaskName        string `json:"task_name"`
	Duration        string `json:"duration"`
	SuccessCriteria string `json:"success_criteria"`
}

type focusLockRequest struct {
	TaskName string `json:"task_name"`
	Timebox  string `json:"timebox"`
	Fallback string `json:"fallback"`
}

type loopDTO struct {
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

func (d loopDTO) toDomain() domain.Loop {
	return domain.Loop{
		ID:          d.ID,
		Description: d.Description,
		Priority:    domain.Priority(d.Priority),
		Queue:       domain.QueueType(d.Queue),
		Owner:       d.Owner,
		Status:      d.Status,
		ClosureType: domain.ClosureType(d.ClosureType),
		NextStep:    d.NextStep,
		ClosedAt:    d.ClosedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type loopResponse struct {
	Message   string    `json:"message"`
	LoopID    string    `json:"loop_id,omitempty"`
	Loop      *loopDTO  `json:"loop,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type loopsListResponse struct {
	Loops     []loopDTO `json:"loops"`
	Total     int       `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type loopAuthorizeRequest struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Queue       string `json:"queue"`
	Owner       string `json:"owner"`
}

type loopCloseRequest struct {
	LoopID      string `json:"loop_id"`
	ClosureType string `json:"closure_type"`
	NextStep    string `json:"next_step,omitempty"`
}

type loopKillRequest struct {
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type threadDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Mode      string    `json:"mode"`
	TimeScope string    `json:"time_scope"`
	Goal      string    `json:"goal,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d threadDTO) toDomain() domain.Thread {
	return domain.Thread{
		ID:        d.ID,
		Name:      d.Name,
		Mode:      domain.ThreadMode(d.Mode),
		TimeScope: d.TimeScope,
		Goal:      d.Goal,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type threadResponse struct {
	Message   string     `json:"message"`
	ThreadID  string     `json:"thread_id,omitempty"`
	Thread    *threadDTO `json:"thread,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

type threadsListResponse struct {
	Threads   []threadDTO `json:"threads"`
	Total     int         `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

type threadSpawnRequest struct {
	ThreadName string `json:"thread_name"`
	Mode       string `json:"mode"`
	TimeScope  string `json:"time_scope"`
}

type threadBackgroundRequest struct {
	ThreadName string `json:"thread_name"`
	Goal       string `json:"goal"`
}

type threadTerminateRequest struct {
	Rule string `json:"rule"`
}

type statusDTO struct {
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

func (d statusDTO) toDomain() domain.CognitiveStatus {
	return domain.CognitiveStatus{
		ForegroundThreads: d.ForegroundThreads,
		BackgroundThreads: d.BackgroundThreads,
		EmotionalLoad:     domain.LoadLevel(d.EmotionalLoad),
		EnergyLevel:       domain.LoadLevel(d.EnergyLevel),
		OpenLoopsEstimate: d.OpenLoopsEstimate,
		CurrentFocus:      d.CurrentFocus,
		FocusLocked:       d.FocusLocked,
		ActivePredictions: d.ActivePredictions,
		PendingTasks:      d.PendingTasks,
		CapturedIdeas:     d.CapturedIdeas,
		Timestamp:         d.Timestamp,
	}
}

// receiptResponse covers the acknowledgement shapes: ingest, emotion and AI
// answer with id, archive with archive_id, reset with reset_type.
type receiptResponse struct {
	Message   string    `json:"message"`
	ID        string    `json:"id,omitempty"`
	ArchiveID string    `json:"archive_id,omitempty"`
	ResetType string    `json:"reset_type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (r receiptResponse) toDomain() domain.Receipt {
	id := r.ID
	if id == "" {
		id = r.ArchiveID
	}
	return domain.Receipt{ID: id, Message: r.Message, Timestamp: r.Timestamp}
}

type ingestTaskRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Urgency     string `json:"urgency"`
	Importance  string `json:"importance"`
}

type ingestIdeaRequest struct {
	IdeaSummary string `json:"idea_summary"`
	Storage     string `json:"storage"`
	ActionNow   bool   `json:"action_now"`
}

type archiveDTO struct {
	ID        string    `json:"id"`
	Object    string    `json:"object"`
	Summary   string    `json:"summary"`
	Lesson    string    `json:"lesson,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type archivesListResponse struct {
	Archives  []archiveDTO `json:"archives"`
	Total     int          `json:"total"`
	Timestamp time.Time    `json:"timestamp"`
}

type archiveCommitRequest struct {
	Object  string `json:"object"`
	Summary string `json:"summary"`
	Lesson  string `json:"lesson,omitempty"`
}

type predictionDTO struct {
	ID          string    `json:"id"`
	Scenario    string    `json:"scenario"`
	TimeHorizon string    `json:"time_horizon"`
	Depth       string    `json:"depth"`
	Status      string    `json:"status"`
	Results     string    `json:"results,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d predictionDTO) toDomain() domain.Prediction {
	return domain.Prediction{
		ID:          d.ID,
		Scenario:    d.Scenario,
		TimeHorizon: d.TimeHorizon,
		Depth:       domain.PredictionDepth(d.Depth),
		Status:      d.Status,
		Results:     d.Results,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type predictResponse struct {
	Message      string         `json:"message"`
	PredictionID string         `json:"prediction_id,omitempty"`
	Prediction   *predictionDTO `json:"prediction,omitempty"`
	Timestamp    time.Time      `json:"timestamp"`
}

type predictRunRequest struct {
	Scenario    string `json:"scenario"`
	TimeHorizon string `json:"time_horizon"`
	Depth       string `json:"depth"`
}

type predictStopRequest struct {
	Topic string `json:"topic"`
}

type emotionDTO struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	SourceGuess string    `json:"source_guess"`
	CreatedAt   time.Time `json:"created_at"`
}

type emotionsListResponse struct {
	Emotions  []emotionDTO `json:"emotions"`
	Total     int          `json:"total"`
	Timestamp time.Time    `json:"timestamp"`
}

type emotionTagRequest struct {
	Label       string `json:"label"`
	SourceGuess string `json:"source_guess"`
}

type decompressRequest struct {
	Method   string `json:"method"`
	Duration string `json:"duration"`
}

type offloadRequest struct {
	TaskType string `json:"task_type"`
	Scope    string `json:"scope"`
}

type assistRequest struct {
	Task           string `json:"task"`
	AssistanceType string `json:"assistance_type"`
}
