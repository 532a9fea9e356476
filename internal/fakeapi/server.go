// Package fakeapi is an in-memory Human OS API. It mirrors the routes and
// status codes of the real service closely enough to drive the client end to
// end without a database.
package fakeapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const BasePath = "/api/v1"

type fault struct {
	status  int
	message string
}

type Server struct {
	mu  sync.Mutex
	now func() time.Time

	focus       *focusRecord
	loops       []loopRecord
	threads     []threadRecord
	tasks       []taskRecord
	ideas       []ideaRecord
	archives    []archiveRecord
	predictions []predictionRecord
	emotions    []emotionRecord
	decompress  int
	offloads    int

	faults   map[string][]fault
	requests map[string]int

	router *gin.Engine
}

type Option func(*Server)

// WithClock fixes the server's notion of now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

func New(opts ...Option) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		now:      func() time.Time { return time.Now().UTC() },
		faults:   map[string][]fault{},
		requests: map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.track())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Human OS Cognitive API"})
	})

	v1 := router.Group(BasePath)
	{
		v1.GET("/dashboard/status", s.getStatus)

		focus := v1.Group("/focus")
		{
			focus.POST("/set", s.setFocus)
			focus.POST("/lock", s.lockFocus)
			focus.DELETE("/clear", s.clearFocus)
			focus.GET("/current", s.currentFocus)
		}

		loop := v1.Group("/loop")
		{
			loop.POST("/authorize", s.authorizeLoop)
			loop.POST("/close", s.closeLoop)
			loop.DELETE("/kill", s.killLoop)
			loop.GET("/list", s.listLoops)
			loop.GET("/:id", s.getLoop)
		}

		thread := v1.Group("/thread")
		{
			thread.POST("/spawn", s.spawnThread)
			thread.POST("/background", s.backgroundThread)
			thread.DELETE("/terminate", s.terminateThreads)
			thread.GET("/list", s.listThreads)
			thread.GET("/:id", s.getThread)
		}

		ingest := v1.Group("/ingest")
		{
			ingest.POST("/task", s.ingestTask)
			ingest.POST("/idea", s.ingestIdea)
		}

		archive := v1.Group("/archive")
		{
			archive.POST("/commit", s.commitArchive)
			archive.GET("/list", s.listArchives)
		}

		predict := v1.Group("/predict")
		{
			predict.POST("/run", s.runPrediction)
			predict.DELETE("/stop", s.stopPrediction)
		}

		emotion := v1.Group("/emotion")
		{
			emotion.POST("/tag", s.tagEmotion)
			emotion.POST("/decompress", s.decompressSession)
			emotion.GET("/list", s.listEmotions)
		}

		ai := v1.Group("/ai")
		{
			ai.POST("/offload", s.offload)
			ai.POST("/assist-for-execution", s.assist)
		}

		mode := v1.Group("/mode")
		{
			mode.POST("/reset-soft", s.softReset)
			mode.POST("/reset-hard", s.hardReset)
		}
	}

	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// FailNext makes the next request to method and path (relative to BasePath)
// answer with status. Faults queue up per route.
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := routeKey(method, BasePath+path)
	s.faults[key] = append(s.faults[key], fault{status: status, message: message})
}

// Requests counts the requests received for method and path relative to BasePath.
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[routeKey(method, BasePath+path)]
}

func (s *Server) track() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := routeKey(c.Request.Method, c.Request.URL.Path)

		s.mu.Lock()
		s.requests[key]++
		var injected *fault
		if queued := s.faults[key]; len(queued) > 0 {
			injected = &queued[0]
			s.faults[key] = queued[1:]
		}
		s.mu.Unlock()

		if injected != nil {
			s.abort(c, injected.status, injected.message, "injected fault")
			return
		}
		c.Next()
	}
}

func (s *Server) abort(c *gin.Context, status int, message, details string) {
	c.AbortWithStatusJSON(status, errorBody{Error: message, Details: details, Timestamp: s.now()})
}

func (s *Server) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		s.abort(c, http.StatusBadRequest, "Invalid request", err.Error())
		return false
	}
	return true
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

func newID() string {
	return uuid.NewString()
}
