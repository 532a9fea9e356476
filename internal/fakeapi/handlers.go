package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	highLoadEmotions   = map[string]bool{"angry": true, "anxious": true, "overwhelmed": true, "stressed": true, "frustrated": true}
	mediumLoadEmotions = map[string]bool{"tired": true, "resentful": true, "worried": true, "uncertain": true}
)

func (s *Server) getStatus(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := statusBody{
		ForegroundThreads: []string{},
		BackgroundThreads: []string{},
		Timestamp:         s.now(),
	}
	if s.focus != nil {
		status.CurrentFocus = s.focus.TaskName
		status.FocusLocked = s.focus.IsLocked
	}
	for _, t := range s.threads {
		if t.Status != "active" {
			continue
		}
		if t.Mode == "background" {
			status.BackgroundThreads = append(status.BackgroundThreads, t.Name)
		} else {
			status.ForegroundThreads = append(status.ForegroundThreads, t.Name)
		}
	}
	for _, l := range s.loops {
		if l.Status == "open" {
			status.OpenLoopsEstimate++
		}
	}
	for _, p := range s.predictions {
		if p.Status == "running" {
			status.ActivePredictions++
		}
	}
	for _, t := range s.tasks {
		if t.Status == "pending" {
			status.PendingTasks++
		}
	}
	for _, i := range s.ideas {
		if i.Status == "captured" {
			status.CapturedIdeas++
		}
	}
	status.EmotionalLoad = s.emotionalLoadLocked()
	status.EnergyLevel = energyLevel(status.OpenLoopsEstimate, len(status.ForegroundThreads), len(status.BackgroundThreads))

	c.JSON(http.StatusOK, status)
}

// emotionalLoadLocked looks at the five most recent emotion tags.
func (s *Server) emotionalLoadLocked() string {
	high, medium := 0, 0
	for i := 0; i < len(s.emotions) && i < 5; i++ {
		switch label := s.emotions[i].Label; {
		case highLoadEmotions[label]:
			high++
		case mediumLoadEmotions[label]:
			medium++
		}
	}

	switch {
	case high >= 2 || (high >= 1 && medium >= 2):
		return "high"
	case high >= 1 || medium >= 2:
		return "medium"
	default:
		return "low"
	}
}

func energyLevel(openLoops, foreground, background int) string {
	load := openLoops + foreground*2 + background
	switch {
	case load > 15:
		return "low"
	case load > 7:
		return "medium"
	default:
		return "high"
	}
}

func (s *Server) setFocus(c *gin.Context) {
	var req focusSetRequest
	if !s.bind(c, &req) {
		return
	}
	length, err := time.ParseDuration(req.Duration)
	if err != nil {
		s.abort(c, http.StatusBadRequest, "Invalid duration format", "Duration should be in format like '25m', '50m', '90m', '2h'")
		return
	}

	s.mu.Lock()
	now := s.now()
	focus := focusRecord{
		ID:              newID(),
		TaskName:        req.TaskName,
		Duration:        req.Duration,
		SuccessCriteria: req.SuccessCriteria,
		StartedAt:       now,
		EndsAt:          now.Add(length),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.focus = &focus
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Focus set. Deep work mode engaged.", "focus": focus, "timestamp": now})
}

func (s *Server) lockFocus(c *gin.Context) {
	var req focusLockRequest
	if !s.bind(c, &req) {
		return
	}
	length, err := time.ParseDuration(req.Timebox)
	if err != nil {
		s.abort(c, http.StatusBadRequest, "Invalid timebox format", "Timebox should be in format like '25m', '50m', '90m', '2h'")
		return
	}

	s.mu.Lock()
	now := s.now()
	if s.focus != nil && s.focus.TaskName == req.TaskName {
		s.focus.IsLocked = true
		s.focus.Timebox = req.Timebox
		s.focus.Fallback = req.Fallback
		s.focus.EndsAt = now.Add(length)
		s.focus.UpdatedAt = now
	} else {
		s.focus = &focusRecord{
			ID:        newID(),
			TaskName:  req.TaskName,
			Duration:  req.Timebox,
			IsLocked:  true,
			Timebox:   req.Timebox,
			Fallback:  req.Fallback,
			StartedAt: now,
			EndsAt:    now.Add(length),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	focus := *s.focus
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Focus LOCKED. Context switching disabled.", "focus": focus, "timestamp": now})
}

func (s *Server) clearFocus(c *gin.Context) {
	s.mu.Lock()
	s.focus = nil
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Focus cleared.", "timestamp": s.now()})
}

func (s *Server) currentFocus(c *gin.Context) {
	s.mu.Lock()
	var focus *focusRecord
	if s.focus != nil {
		copied := *s.focus
		focus = &copied
	}
	s.mu.Unlock()

	if focus == nil {
		s.abort(c, http.StatusNotFound, "No active focus", "Set a focus first")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Current focus", "focus": focus, "timestamp": s.now()})
}

func (s *Server) authorizeLoop(c *gin.Context) {
	var req loopAuthorizeRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	loop := loopRecord{
		ID:          newID(),
		Description: req.Description,
		Priority:    req.Priority,
		Queue:       req.Queue,
		Owner:       req.Owner,
		Status:      "open",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.loops = append([]loopRecord{loop}, s.loops...)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Loop authorized.", "loop_id": loop.ID, "loop": loop, "timestamp": now})
}

func (s *Server) closeLoop(c *gin.Context) {
	var req loopCloseRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	idx := s.loopIndexLocked(req.LoopID)
	if idx < 0 {
		s.mu.Unlock()
		s.abort(c, http.StatusNotFound, "Loop not found", "No loop exists with the provided ID")
		return
	}
	if s.loops[idx].Status == "closed" {
		s.mu.Unlock()
		s.abort(c, http.StatusBadRequest, "Loop already closed", "This loop has already been closed")
		return
	}
	now := s.now()
	s.loops[idx].Status = "closed"
	s.loops[idx].ClosureType = req.ClosureType
	s.loops[idx].NextStep = req.NextStep
	s.loops[idx].ClosedAt = &now
	s.loops[idx].UpdatedAt = now
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Loop closed successfully.", "loop_id": req.LoopID, "timestamp": now})
}

func (s *Server) killLoop(c *gin.Context) {
	var req loopKillRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	killed := 0
	for i := range s.loops {
		if s.loops[i].Status == "open" && containsFold(s.loops[i].Description, req.Description) {
			s.loops[i].Status = "closed"
			s.loops[i].ClosureType = "abandoned"
			s.loops[i].ClosedAt = &now
			s.loops[i].UpdatedAt = now
			killed++
		}
	}
	s.mu.Unlock()

	if killed == 0 {
		s.abort(c, http.StatusNotFound, "No matching loops found", "No open loops matched the provided description")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Loop(s) KILLED. Reason: " + req.Reason, "timestamp": now})
}

func (s *Server) listLoops(c *gin.Context) {
	queue := c.Query("queue")

	s.mu.Lock()
	loops := make([]loopRecord, 0, len(s.loops))
	for _, l := range s.loops {
		if l.Status != "open" || (queue != "" && l.Queue != queue) {
			continue
		}
		loops = append(loops, l)
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"loops": loops, "total": len(loops), "timestamp": s.now()})
}

func (s *Server) getLoop(c *gin.Context) {
	s.mu.Lock()
	idx := s.loopIndexLocked(c.Param("id"))
	var loop loopRecord
	if idx >= 0 {
		loop = s.loops[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		s.abort(c, http.StatusNotFound, "Loop not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Loop", "loop_id": loop.ID, "loop": loop, "timestamp": s.now()})
}

func (s *Server) loopIndexLocked(id string) int {
	for i, l := range s.loops {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) spawnThread(c *gin.Context) {
	var req threadSpawnRequest
	if !s.bind(c, &req) {
		return
	}
	s.addThread(c, threadRecord{Name: req.ThreadName, Mode: req.Mode, TimeScope: req.TimeScope}, "Thread spawned.")
}

func (s *Server) backgroundThread(c *gin.Context) {
	var req threadBackgroundRequest
	if !s.bind(c, &req) {
		return
	}
	s.addThread(c, threadRecord{Name: req.ThreadName, Mode: "background", TimeScope: "ongoing", Goal: req.Goal}, "Background thread started.")
}

func (s *Server) addThread(c *gin.Context, thread threadRecord, message string) {
	s.mu.Lock()
	now := s.now()
	thread.ID = newID()
	thread.Status = "active"
	thread.CreatedAt = now
	thread.UpdatedAt = now
	s.threads = append([]threadRecord{thread}, s.threads...)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": message, "thread_id": thread.ID, "thread": thread, "timestamp": now})
}

// terminateThreads succeeds even when the rule matched nothing.
func (s *Server) terminateThreads(c *gin.Context) {
	var req threadTerminateRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	today := now.Truncate(24 * time.Hour)
	for i := range s.threads {
		t := &s.threads[i]
		if t.Status != "active" {
			continue
		}
		var match bool
		if req.Rule == "keep only today's tasks" {
			match = t.CreatedAt.Before(today)
		} else {
			match = containsFold(t.Name, req.Rule) || containsFold(t.TimeScope, req.Rule)
		}
		if match {
			t.Status = "terminated"
			t.UpdatedAt = now
		}
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Thread cleanup complete. Terminated threads based on rule: " + req.Rule, "timestamp": now})
}

func (s *Server) listThreads(c *gin.Context) {
	s.mu.Lock()
	threads := make([]threadRecord, 0, len(s.threads))
	for _, t := range s.threads {
		if t.Status == "active" {
			threads = append(threads, t)
		}
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"threads": threads, "total": len(threads), "timestamp": s.now()})
}

func (s *Server) getThread(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	var found *threadRecord
	for _, t := range s.threads {
		if t.ID == id {
			copied := t
			found = &copied
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		s.abort(c, http.StatusNotFound, "Thread not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thread", "thread_id": found.ID, "thread": found, "timestamp": s.now()})
}

func (s *Server) ingestTask(c *gin.Context) {
	var req ingestTaskRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	task := taskRecord{
		ID:          newID(),
		Description: req.Description,
		Category:    req.Category,
		Urgency:     req.Urgency,
		Importance:  req.Importance,
		Status:      "pending",
		CreatedAt:   now,
	}
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Task ingested.", "id": task.ID, "timestamp": now})
}

func (s *Server) ingestIdea(c *gin.Context) {
	var req ingestIdeaRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	idea := ideaRecord{
		ID:        newID(),
		Summary:   req.IdeaSummary,
		Storage:   req.Storage,
		ActionNow: req.ActionNow,
		Status:    "captured",
		CreatedAt: now,
	}
	s.ideas = append(s.ideas, idea)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Idea captured.", "id": idea.ID, "timestamp": now})
}

func (s *Server) commitArchive(c *gin.Context) {
	var req archiveCommitRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	archive := archiveRecord{ID: newID(), Object: req.Object, Summary: req.Summary, Lesson: req.Lesson, CreatedAt: now}
	s.archives = append([]archiveRecord{archive}, s.archives...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Committed to archive.", "archive_id": archive.ID, "timestamp": now})
}

func (s *Server) listArchives(c *gin.Context) {
	s.mu.Lock()
	archives := append([]archiveRecord{}, s.archives...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"archives": archives, "total": len(archives), "timestamp": s.now()})
}

func (s *Server) runPrediction(c *gin.Context) {
	var req predictRunRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	prediction := predictionRecord{
		ID:          newID(),
		Scenario:    req.Scenario,
		TimeHorizon: req.TimeHorizon,
		Depth:       req.Depth,
		Status:      "running",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.predictions = append(s.predictions, prediction)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Prediction started.", "prediction_id": prediction.ID, "prediction": prediction, "timestamp": now})
}

func (s *Server) stopPrediction(c *gin.Context) {
	var req predictStopRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	stopped := 0
	for i := range s.predictions {
		p := &s.predictions[i]
		if p.Status == "running" && containsFold(p.Scenario, req.Topic) {
			p.Status = "stopped"
			p.UpdatedAt = now
			stopped++
		}
	}
	s.mu.Unlock()

	if stopped == 0 {
		s.abort(c, http.StatusNotFound, "No running predictions found", "No predictions matched the provided topic")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prediction(s) stopped.", "timestamp": now})
}

func (s *Server) tagEmotion(c *gin.Context) {
	var req emotionTagRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	now := s.now()
	emotion := emotionRecord{ID: newID(), Label: strings.ToLower(req.Label), SourceGuess: req.SourceGuess, CreatedAt: now}
	s.emotions = append([]emotionRecord{emotion}, s.emotions...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Emotion tagged.", "id": emotion.ID, "timestamp": now})
}

func (s *Server) decompressSession(c *gin.Context) {
	var req decompressRequest
	if !s.bind(c, &req) {
		return
	}
	if _, err := time.ParseDuration(req.Duration); err != nil {
		s.abort(c, http.StatusBadRequest, "Invalid duration format", err.Error())
		return
	}

	s.mu.Lock()
	s.decompress++
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Decompression started: " + req.Method, "id": newID(), "timestamp": s.now()})
}

func (s *Server) listEmotions(c *gin.Context) {
	s.mu.Lock()
	emotions := append([]emotionRecord{}, s.emotions...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"emotions": emotions, "total": len(emotions), "timestamp": s.now()})
}

func (s *Server) offload(c *gin.Context) {
	var req offloadRequest
	if !s.bind(c, &req) {
		return
	}

	s.mu.Lock()
	s.offloads++
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Task offloaded to AI: " + req.TaskType, "id": newID(), "timestamp": s.now()})
}

func (s *Server) assist(c *gin.Context) {
	var req assistRequest
	if !s.bind(c, &req) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "AI assistance queued: " + req.AssistanceType, "id": newID(), "timestamp": s.now()})
}

// softReset clears active state and keeps archives.
func (s *Server) softReset(c *gin.Context) {
	s.mu.Lock()
	now := s.now()
	s.focus = nil
	for i := range s.loops {
		if s.loops[i].Status == "open" {
			s.loops[i].Status = "closed"
			s.loops[i].ClosureType = "abandoned"
			s.loops[i].ClosedAt = &now
		}
	}
	for i := range s.threads {
		s.threads[i].Status = "terminated"
	}
	for i := range s.predictions {
		s.predictions[i].Status = "stopped"
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "SOFT RESET complete. Archives preserved.", "reset_type": "soft", "timestamp": now})
}

func (s *Server) hardReset(c *gin.Context) {
	s.mu.Lock()
	s.focus = nil
	s.loops = nil
	s.threads = nil
	s.tasks = nil
	s.ideas = nil
	s.archives = nil
	s.predictions = nil
	s.emotions = nil
	s.decompress = 0
	s.offloads = 0
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "HARD RESET complete. All cognitive state wiped.", "reset_type": "hard", "timestamp": s.now()})
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
