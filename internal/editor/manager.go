package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"standplanner/internal/layout"
	"standplanner/internal/plans"
	"standplanner/pkg/logger"
)

var (
	ErrNoSession             = errors.New("no open editing session")
	ErrExhibitorsUnavailable = errors.New("exhibitors unavailable")
)

// PlanService loads and stores whole plans.
type PlanService interface {
	LoadPlan(ctx context.Context, eventID string) (*layout.EventPlan, error)
	SavePlan(ctx context.Context, plan *layout.EventPlan) (*plans.SaveResult, error)
}

// ExhibitorSource lists the applications of an event.
type ExhibitorSource interface {
	ListExhibitors(ctx context.Context, eventID string) ([]layout.Exhibitor, error)
}

// Session is one event's in-memory plan and editor state. Its mutex
// serializes every operation on the event. A closed session has been
// dropped from the manager and must not be used again.
type Session struct {
	mu        sync.Mutex
	eventID   string
	editor    *layout.Editor
	dirty     bool
	closed    bool
	openedAt  time.Time
	touchedAt time.Time
}

// Manager keeps one Session per event id, opened lazily from the plan
// service.
type Manager struct {
	plans      PlanService
	exhibitors ExhibitorSource
	editorOpts []layout.Option
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(planService PlanService, exhibitors ExhibitorSource, opts ...layout.Option) *Manager {
	return &Manager{
		plans:      planService,
		exhibitors: exhibitors,
		editorOpts: opts,
		now:        time.Now,
		sessions:   make(map[string]*Session),
	}
}

func (m *Manager) session(ctx context.Context, eventID string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[eventID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	plan, err := m.plans.LoadPlan(ctx, eventID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[eventID]; ok {
		return existing, nil
	}
	now := m.now()
	s = &Session{
		eventID:   eventID,
		editor:    layout.NewEditor(plan, m.editorOpts...),
		openedAt:  now,
		touchedAt: now,
	}
	m.sessions[eventID] = s
	return s, nil
}

// Mutate runs fn against the event's editor. A true return marks the plan
// as changed since the last save.
func (m *Manager) Mutate(ctx context.Context, eventID, op string, fn func(*layout.Editor) bool) (layout.EditorState, bool, error) {
	return m.apply(ctx, eventID, op, true, fn)
}

// Interact is Mutate for operations that only touch the editor state
// (tool, selection, picker).
func (m *Manager) Interact(ctx context.Context, eventID, op string, fn func(*layout.Editor) bool) (layout.EditorState, bool, error) {
	return m.apply(ctx, eventID, op, false, fn)
}

// lockSession returns the event's session with its mutex held. A session
// closed while the caller waited for the lock is replaced by a fresh one.
func (m *Manager) lockSession(ctx context.Context, eventID string) (*Session, error) {
	for {
		s, err := m.session(ctx, eventID)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if !s.closed {
			return s, nil
		}
		s.mu.Unlock()
	}
}

// closeSession drops s from the session map. The caller holds s.mu.
func (m *Manager) closeSession(s *Session) {
	s.closed = true
	m.mu.Lock()
	if m.sessions[s.eventID] == s {
		delete(m.sessions, s.eventID)
	}
	m.mu.Unlock()
}

func (m *Manager) apply(ctx context.Context, eventID, op string, mutatesPlan bool, fn func(*layout.Editor) bool) (layout.EditorState, bool, error) {
	s, err := m.lockSession(ctx, eventID)
	if err != nil {
		return layout.EditorState{}, false, err
	}
	defer s.mu.Unlock()

	applied := fn(s.editor)
	if applied && mutatesPlan {
		s.dirty = true
	}
	s.touchedAt = m.now()

	logger.GetDefault().LogLayoutMutation(ctx, eventID, op, applied)
	return s.editor.State(), applied, nil
}

// Read runs fn under the session lock without changing anything.
func (m *Manager) Read(ctx context.Context, eventID string, fn func(ed *layout.Editor, dirty bool)) error {
	s, err := m.lockSession(ctx, eventID)
	if err != nil {
		return err
	}
	defer s.mu.Unlock()
	fn(s.editor, s.dirty)
	return nil
}

// View assembles everything the planner screen shows.
func (m *Manager) View(ctx context.Context, eventID string) (*View, error) {
	warnings := []string{}
	exhibitors, err := m.fetchExhibitors(ctx, eventID)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	checkOccupants := m.exhibitors != nil && err == nil

	var view *View
	err = m.Read(ctx, eventID, func(ed *layout.Editor, dirty bool) {
		plan := ed.Snapshot()
		for _, issue := range layout.Check(plan) {
			warnings = append(warnings, issue.String())
		}
		if checkOccupants {
			for _, issue := range layout.CheckOccupants(plan, exhibitors) {
				warnings = append(warnings, issue.String())
			}
		}
		view = &View{
			Plan:     plan,
			State:    ed.State(),
			Capacity: layout.CapacityReport(plan),
			Roster:   layout.BuildRoster(plan, exhibitors),
			Warnings: warnings,
			Dirty:    dirty,
		}
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Exhibitors lists the roster for the occupant picker. Unplaced exhibitors
// are filtered by search and, when a stand is selected, tagged with a size
// hint against it.
func (m *Manager) Exhibitors(ctx context.Context, eventID, search string) (*ExhibitorsView, error) {
	exhibitors, _ := m.fetchExhibitors(ctx, eventID)

	var view *ExhibitorsView
	err := m.Read(ctx, eventID, func(ed *layout.Editor, _ bool) {
		roster := layout.BuildRoster(ed.Plan(), exhibitors)
		view = &ExhibitorsView{
			Placed:   roster.Placed,
			Unplaced: make([]ExhibitorOption, 0, len(roster.Unplaced)),
		}

		stand, selected := ed.SelectedStand()
		if selected {
			view.SelectedStand = &stand
			if occupant, ok := layout.Occupant(stand, exhibitors); ok {
				view.Occupant = &occupant
			}
		}
		for _, ex := range layout.SearchExhibitors(roster.Unplaced, search) {
			option := ExhibitorOption{Exhibitor: ex}
			if selected {
				option.Match = layout.MatchSize(ex, stand)
				option.Hint = option.Match.Hint()
			}
			view.Unplaced = append(view.Unplaced, option)
		}
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AssignOccupant binds exhibitorID to the stand when the exhibitor is an
// approved or paid application without a stand. Anyone else is refused
// with applied false.
func (m *Manager) AssignOccupant(ctx context.Context, eventID, standID, exhibitorID string) (layout.EditorState, bool, error) {
	exhibitors, err := m.fetchExhibitors(ctx, eventID)
	if err != nil {
		return layout.EditorState{}, false, err
	}
	return m.Mutate(ctx, eventID, "assign-occupant", func(ed *layout.Editor) bool {
		if !layout.Assignable(ed.Plan(), exhibitors, exhibitorID) {
			return false
		}
		return ed.AssignOccupant(standID, exhibitorID)
	})
}

func (m *Manager) fetchExhibitors(ctx context.Context, eventID string) ([]layout.Exhibitor, error) {
	if m.exhibitors == nil {
		return nil, nil
	}
	exhibitors, err := m.exhibitors.ListExhibitors(ctx, eventID)
	if err != nil {
		logger.GetDefault().WithEventID(eventID).WithError(err).Warn("Failed to load exhibitors")
		return nil, fmt.Errorf("%w: %v", ErrExhibitorsUnavailable, err)
	}
	return exhibitors, nil
}

// Save writes a snapshot of the session's plan. The session stays open.
func (m *Manager) Save(ctx context.Context, eventID string) (*plans.SaveResult, error) {
	s, err := m.lockSession(ctx, eventID)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	result, err := m.plans.SavePlan(ctx, s.editor.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", eventID, err)
	}
	s.dirty = false
	return result, nil
}

// Discard drops the session and its unsaved changes. The next request
// reloads the stored plan.
func (m *Manager) Discard(eventID string) error {
	m.mu.Lock()
	s, ok := m.sessions[eventID]
	m.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrNoSession
	}
	m.closeSession(s)
	return nil
}

// Len reports how many sessions are open.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// PruneIdle closes saved sessions untouched for longer than maxIdle and
// returns how many were closed. Sessions with unsaved changes stay open,
// and so do sessions busy with a request.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	pruned := 0
	for _, s := range sessions {
		if !s.mu.TryLock() {
			continue
		}
		if !s.closed && !s.dirty && s.touchedAt.Before(cutoff) {
			m.closeSession(s)
			pruned++
		}
		s.mu.Unlock()
	}
	return pruned
}

// RunPruner calls PruneIdle every interval until ctx is done.
func (m *Manager) RunPruner(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.PruneIdle(maxIdle); n > 0 {
				logger.GetDefault().Info("Closed idle editing sessions", slog.Int("count", n))
			}
		}
	}
}
