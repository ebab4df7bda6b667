// Package taskdtest provides an in-memory daytask server for tests.
//
// The server implements the whole HTTP API surface: authentication,
// task CRUD, soft-delete lifecycle, bulk operations on old tasks, the
// history log, and the expiry sweep. State lives in memory and the
// clock is injectable, so tests can cross the recovery-window boundary
// without sleeping.
package taskdtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amonks/daytask/internal/ids"
	"github.com/amonks/daytask/task"
)

// Server is an in-memory stand-in for a daytask server.
type Server struct {
	mu       sync.Mutex
	now      func() time.Time
	seq      int
	tasks    []*task.Task
	history  []historyRecord
	accounts map[string]*account
	tokens   map[string]string // token -> username
}

type account struct {
	user     userPayload
	password string
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type historyRecord struct {
	HistoryID       string          `json:"history_id"`
	TaskID          string          `json:"task_id"`
	TaskTitle       string          `json:"task_title"`
	Action          string          `json:"action"`
	OldData         json.RawMessage `json:"old_data,omitempty"`
	NewData         json.RawMessage `json:"new_data,omitempty"`
	ChangedFields   []string        `json:"changed_fields,omitempty"`
	ActionTimestamp string          `json:"action_timestamp"`
}

// NewServer creates an empty server using the real clock.
func NewServer() *Server {
	return &Server{
		now:      time.Now,
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
	}
}

// SetNow replaces the server's clock. Classification, expiry, and
// timestamps all flow through it.
func (s *Server) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Seed inserts tasks directly, bypassing the API. Zero CreatedAt fields
// are filled with the current clock. Seeding does not write history.
func (s *Server) Seed(tasks ...task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		seeded := t
		if seeded.ID == "" {
			seeded.ID = s.nextID("task")
		}
		if seeded.CreatedAt.IsZero() {
			seeded.CreatedAt = s.now()
		}
		if seeded.UpdatedAt.IsZero() {
			seeded.UpdatedAt = seeded.CreatedAt
		}
		if seeded.Priority == "" {
			seeded.Priority = task.PriorityMedium
		}
		s.tasks = append(s.tasks, &seeded)
	}
}

// Tasks returns a snapshot of every stored task, deleted ones included.
func (s *Server) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		snapshot = append(snapshot, *t)
	}
	return snapshot
}

// CreateAccount registers an account and returns a valid token for it.
func (s *Server) CreateAccount(username, email, name, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := &account{
		user: userPayload{
			ID:       s.nextID("user"),
			Username: username,
			Email:    email,
			Name:     name,
		},
		password: password,
	}
	s.accounts[username] = acct
	token := s.nextID("token")
	s.tokens[token] = username
	return token
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", s.handleSignUp)
	mux.HandleFunc("POST /api/auth/signin", s.handleSignIn)
	mux.HandleFunc("POST /api/auth/verify", s.handleVerify)

	mux.HandleFunc("GET /api/tasks", s.authed(s.handleList))
	mux.HandleFunc("GET /api/tasks/today", s.authed(s.handleListToday))
	mux.HandleFunc("GET /api/tasks/old", s.authed(s.handleListOld))
	mux.HandleFunc("GET /api/tasks/deleted", s.authed(s.handleListDeleted))
	mux.HandleFunc("GET /api/tasks/history/all", s.authed(s.handleAllHistory))
	mux.HandleFunc("GET /api/tasks/{id}", s.authed(s.handleGet))
	mux.HandleFunc("GET /api/tasks/{id}/history", s.authed(s.handleTaskHistory))
	mux.HandleFunc("POST /api/tasks", s.authed(s.handleCreate))
	mux.HandleFunc("POST /api/tasks/cleanup", s.authed(s.handleCleanup))
	mux.HandleFunc("PUT /api/tasks/{id}", s.authed(s.handleUpdate))
	mux.HandleFunc("PATCH /api/tasks/{id}/toggle", s.authed(s.handleToggle))
	mux.HandleFunc("PATCH /api/tasks/{id}/restore", s.authed(s.handleRestore))
	mux.HandleFunc("PATCH /api/tasks/old/complete-all", s.authed(s.handleCompleteAllOld))
	mux.HandleFunc("DELETE /api/tasks/{id}", s.authed(s.handleDelete))
	mux.HandleFunc("DELETE /api/tasks/{id}/permanent", s.authed(s.handlePermanentDelete))
	mux.HandleFunc("DELETE /api/tasks/old/all", s.authed(s.handleDeleteAllOld))
	mux.HandleFunc("DELETE /api/tasks/old/completed", s.authed(s.handleDeleteCompletedOld))

	// Test-only hooks, outside the /api namespace. Script tests run the
	// CLI as a subprocess and can only reach the server over HTTP.
	mux.HandleFunc("POST /testdata/seed", s.handleSeed)
	mux.HandleFunc("POST /testdata/now", s.handleSetNow)
	return mux
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	var payload []struct {
		ID          string   `json:"id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Completed   bool     `json:"completed"`
		Priority    string   `json:"priority"`
		DueDate     string   `json:"due_date"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
		CreatedAt   string   `json:"created_at"`
		DeletedAt   string   `json:"deleted_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seeds := make([]task.Task, 0, len(payload))
	for _, p := range payload {
		t := task.Task{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Completed:   p.Completed,
			Priority:    task.Priority(p.Priority),
			Category:    p.Category,
			Tags:        p.Tags,
		}
		now := s.currentTime()
		if p.DueDate != "" {
			parsed, err := parseTestTimestamp(p.DueDate, now)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			t.DueDate = &parsed
		}
		if p.DeletedAt != "" {
			parsed, err := parseTestTimestamp(p.DeletedAt, now)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			t.DeletedAt = &parsed
		}
		if p.CreatedAt != "" {
			parsed, err := parseTestTimestamp(p.CreatedAt, now)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			t.CreatedAt = parsed
		}
		seeds = append(seeds, t)
	}
	s.Seed(seeds...)
	writeMessage(w, http.StatusOK, "seeded")
}

func (s *Server) handleSetNow(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Offset string `json:"offset"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	offset, err := time.ParseDuration(payload.Offset)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	base := s.now
	s.now = func() time.Time { return base().Add(offset) }
	s.mu.Unlock()
	writeMessage(w, http.StatusOK, "clock shifted")
}

func (s *Server) currentTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

// parseTestTimestamp accepts absolute RFC 3339 timestamps, bare dates,
// and relative durations like "-48h" anchored at the server clock.
func parseTestTimestamp(value string, now time.Time) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	if offset, err := time.ParseDuration(value); err == nil {
		return now.Add(offset), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func (s *Server) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.bearerAccount(r) == nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

func (s *Server) bearerAccount(r *http.Request) *account {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[token]
	if !ok {
		return nil
	}
	return s.accounts[username]
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeAuthFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		writeAuthFailure(w, http.StatusBadRequest, "username and password are required")
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[payload.Username]; exists {
		s.mu.Unlock()
		writeAuthFailure(w, http.StatusConflict, "username already taken")
		return
	}
	s.mu.Unlock()

	token := s.CreateAccount(payload.Username, payload.Email, payload.Name, payload.Password)
	s.mu.Lock()
	user := s.accounts[payload.Username].user
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeAuthFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[payload.Username]
	if !ok || acct.password != payload.Password {
		s.mu.Unlock()
		writeAuthFailure(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token := s.nextID("token")
	s.tokens[token] = payload.Username
	user := acct.user
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	acct := s.bearerAccount(r)
	if acct == nil {
		writeAuthFailure(w, http.StatusUnauthorized, "invalid token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    acct.user,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.listWhere(w, func(t *task.Task, now time.Time) bool {
		return !t.Deleted()
	})
}

func (s *Server) handleListToday(w http.ResponseWriter, r *http.Request) {
	s.listWhere(w, func(t *task.Task, now time.Time) bool {
		return !t.Deleted() && task.IsToday(*t, now)
	})
}

func (s *Server) handleListOld(w http.ResponseWriter, r *http.Request) {
	s.listWhere(w, func(t *task.Task, now time.Time) bool {
		return !t.Deleted() && task.IsOld(*t, now)
	})
}

func (s *Server) handleListDeleted(w http.ResponseWriter, r *http.Request) {
	s.listWhere(w, func(t *task.Task, now time.Time) bool {
		return t.Deleted() && !task.Expired(*t, now)
	})
}

func (s *Server) listWhere(w http.ResponseWriter, keep func(*task.Task, time.Time) bool) {
	s.mu.Lock()
	now := s.now()
	matched := make([]wireTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t, now) {
			matched = append(matched, encodeTask(*t))
		}
	}
	s.mu.Unlock()
	writeData(w, http.StatusOK, matched)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil || t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	wire := encodeTask(*t)
	s.mu.Unlock()
	writeData(w, http.StatusOK, wire)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Priority    string   `json:"priority"`
		DueDate     string   `json:"due_date"`
		Category    string   `json:"category"`
		Tags        []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := task.ValidateTitle(payload.Title); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	priority := task.Priority(payload.Priority)
	if priority == "" {
		priority = task.PriorityMedium
	}
	if err := task.ValidatePriority(priority); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dueDate, err := parseDueDate(payload.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	now := s.now()
	created := &task.Task{
		ID:          s.nextID("task"),
		Title:       strings.TrimSpace(payload.Title),
		Description: payload.Description,
		Category:    payload.Category,
		Tags:        payload.Tags,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks = append(s.tasks, created)
	s.recordHistory(*created, "created", nil, created, nil)
	wire := encodeTask(*created)
	s.mu.Unlock()

	writeData(w, http.StatusCreated, wire)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Completed   *bool    `json:"completed"`
		Priority    *string  `json:"priority"`
		DueDate     *string  `json:"due_date"`
		Category    *string  `json:"category"`
		Tags        []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Title != nil {
		if err := task.ValidateTitle(*payload.Title); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if payload.Priority != nil {
		if err := task.ValidatePriority(task.Priority(*payload.Priority)); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil || t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	before := *t
	var changed []string
	if payload.Title != nil && *payload.Title != t.Title {
		t.Title = strings.TrimSpace(*payload.Title)
		changed = append(changed, "title")
	}
	if payload.Description != nil && *payload.Description != t.Description {
		t.Description = *payload.Description
		changed = append(changed, "description")
	}
	if payload.Completed != nil && *payload.Completed != t.Completed {
		t.Completed = *payload.Completed
		changed = append(changed, "completed")
	}
	if payload.Priority != nil && task.Priority(*payload.Priority) != t.Priority {
		t.Priority = task.Priority(*payload.Priority)
		changed = append(changed, "priority")
	}
	if payload.DueDate != nil {
		dueDate, err := parseDueDate(*payload.DueDate)
		if err != nil {
			s.mu.Unlock()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		t.DueDate = dueDate
		changed = append(changed, "due_date")
	}
	if payload.Category != nil && *payload.Category != t.Category {
		t.Category = *payload.Category
		changed = append(changed, "category")
	}
	if payload.Tags != nil {
		t.Tags = payload.Tags
		changed = append(changed, "tags")
	}

	if len(changed) > 0 {
		t.UpdatedAt = s.now()
		s.recordHistory(*t, "updated", &before, t, changed)
	}
	wire := encodeTask(*t)
	s.mu.Unlock()

	writeData(w, http.StatusOK, wire)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil || t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	before := *t
	t.Completed = !t.Completed
	t.UpdatedAt = s.now()
	action := "completed"
	if !t.Completed {
		action = "uncompleted"
	}
	s.recordHistory(*t, action, &before, t, []string{"completed"})
	wire := encodeTask(*t)
	s.mu.Unlock()

	writeData(w, http.StatusOK, wire)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil || t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	before := *t
	now := s.now()
	t.DeletedAt = &now
	t.UpdatedAt = now
	s.recordHistory(*t, "deleted", &before, t, []string{"deleted_at"})
	s.mu.Unlock()

	writeMessage(w, http.StatusOK, "task deleted")
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	if !t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, "task is not deleted")
		return
	}
	now := s.now()
	if task.Expired(*t, now) {
		s.mu.Unlock()
		writeError(w, http.StatusGone, "recovery window has elapsed")
		return
	}
	before := *t
	t.DeletedAt = nil
	t.UpdatedAt = now
	s.recordHistory(*t, "restored", &before, t, []string{"deleted_at"})
	wire := encodeTask(*t)
	s.mu.Unlock()

	writeData(w, http.StatusOK, wire)
}

func (s *Server) handlePermanentDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	t := s.find(r.PathValue("id"))
	if t == nil || !t.Deleted() {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	s.remove(t.ID)
	s.mu.Unlock()

	writeMessage(w, http.StatusOK, "task permanently deleted")
}

func (s *Server) handleCompleteAllOld(w http.ResponseWriter, r *http.Request) {
	count := s.bulk(func(t *task.Task, now time.Time) bool {
		if t.Deleted() || t.Completed || !task.IsOld(*t, now) {
			return false
		}
		before := *t
		t.Completed = true
		t.UpdatedAt = now
		s.recordHistory(*t, "completed", &before, t, []string{"completed"})
		return true
	})
	writeData(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) handleDeleteAllOld(w http.ResponseWriter, r *http.Request) {
	count := s.bulk(func(t *task.Task, now time.Time) bool {
		if t.Deleted() || !task.IsOld(*t, now) {
			return false
		}
		before := *t
		t.DeletedAt = &now
		t.UpdatedAt = now
		s.recordHistory(*t, "deleted", &before, t, []string{"deleted_at"})
		return true
	})
	writeData(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) handleDeleteCompletedOld(w http.ResponseWriter, r *http.Request) {
	count := s.bulk(func(t *task.Task, now time.Time) bool {
		if t.Deleted() || !t.Completed || !task.IsOld(*t, now) {
			return false
		}
		before := *t
		t.DeletedAt = &now
		t.UpdatedAt = now
		s.recordHistory(*t, "deleted", &before, t, []string{"deleted_at"})
		return true
	})
	writeData(w, http.StatusOK, map[string]int{"count": count})
}

func (s *Server) bulk(apply func(*task.Task, time.Time) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	count := 0
	for _, t := range s.tasks {
		if apply(t, now) {
			count++
		}
	}
	return count
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	now := s.now()
	count := 0
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Deleted() && task.Expired(*t, now) {
			count++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.mu.Unlock()

	writeData(w, http.StatusOK, map[string]int{"deletedCount": count})
}

func (s *Server) handleTaskHistory(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")
	s.writeHistory(w, r, func(record historyRecord) bool {
		return record.TaskID == taskID
	})
}

func (s *Server) handleAllHistory(w http.ResponseWriter, r *http.Request) {
	s.writeHistory(w, r, func(historyRecord) bool { return true })
}

func (s *Server) writeHistory(w http.ResponseWriter, r *http.Request, keep func(historyRecord) bool) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	s.mu.Lock()
	matched := make([]historyRecord, 0, limit)
	// Most recent first.
	for i := len(s.history) - 1; i >= 0 && len(matched) < limit; i-- {
		if keep(s.history[i]) {
			matched = append(matched, s.history[i])
		}
	}
	s.mu.Unlock()

	writeData(w, http.StatusOK, matched)
}

// recordHistory appends a history entry. Callers hold s.mu.
func (s *Server) recordHistory(t task.Task, action string, before, after *task.Task, changed []string) {
	record := historyRecord{
		HistoryID:       s.nextID("history"),
		TaskID:          t.ID,
		TaskTitle:       t.Title,
		Action:          action,
		ChangedFields:   changed,
		ActionTimestamp: s.now().UTC().Format(time.RFC3339),
	}
	if before != nil {
		record.OldData, _ = json.Marshal(encodeTask(*before))
	}
	if after != nil {
		record.NewData, _ = json.Marshal(encodeTask(*after))
	}
	s.history = append(s.history, record)
}

// find returns the stored task with the given ID. Callers hold s.mu.
func (s *Server) find(id string) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// remove drops the task with the given ID. Callers hold s.mu.
func (s *Server) remove(id string) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// nextID returns a fresh deterministic ID. Callers hold s.mu, except
// during construction.
func (s *Server) nextID(kind string) string {
	s.seq++
	if kind == "token" {
		return ids.GenerateWithTimestamp(fmt.Sprintf("%s-%d", kind, s.seq), s.now(), 24)
	}
	return ids.Generate(fmt.Sprintf("%s-%d", kind, s.seq), ids.DefaultLength)
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q", value)
}
