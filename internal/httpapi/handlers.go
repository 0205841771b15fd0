package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/aurumsolace/solace/internal/coach"
	"github.com/aurumsolace/solace/internal/journal"
	"go.uber.org/zap"
)

// noCheckinMessage mirrors the coach message of the original deployment.
const noCheckinMessage = "No mood check-ins found yet. Do a quick check-in first so I can suggest something."

// ─── Request bodies ──────────────────────────────────────────────────────────

type moodCheckinBody struct {
	Mood   string `json:"mood"`
	Energy string `json:"energy"`
	Focus  string `json:"focus"`
}

type textCheckinBody struct {
	Text string `json:"text"`
}

type actionLogBody struct {
	Action  string `json:"action"`
	Success *bool  `json:"success"`
}

type feedbackBody struct {
	Helped *bool  `json:"helped"`
	Note   string `json:"note"`
}

type actuateBody struct {
	Device string `json:"device"`
}

// ─── Handlers ────────────────────────────────────────────────────────────────

func (a *API) ping(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Brain online and listening."})
}

func (a *API) checkinMood(w http.ResponseWriter, r *http.Request) {
	var body moodCheckinBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Mood == "" || body.Energy == "" || body.Focus == "" {
		writeError(w, http.StatusBadRequest, "mood, energy, and focus are required")
		return
	}

	entry, err := a.store.InsertMood(body.Mood, body.Energy, body.Focus)
	if err != nil {
		a.fail(w, "store mood check-in", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "stored",
		"entry":      entry,
		"suggestion": coach.Suggest(entry.Mood, entry.Energy, entry.Focus),
	})
}

func (a *API) checkinText(w http.ResponseWriter, r *http.Request) {
	var body textCheckinBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	state := coach.InferState(body.Text)

	entry, err := a.store.InsertMood(state.Mood, state.Energy, state.Focus)
	if err != nil {
		a.fail(w, "store inferred check-in", err)
		return
	}

	streak, err := a.store.ActionStreak()
	if err != nil {
		a.fail(w, "compute streak", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "stored",
		"inferred":   state,
		"entry":      entry,
		"streak":     streak,
		"suggestion": coach.SuggestWithStreak(entry.Mood, entry.Energy, entry.Focus, streak.StreakDays),
	})
}

func (a *API) logAction(w http.ResponseWriter, r *http.Request) {
	var body actionLogBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Action == "" {
		writeError(w, http.StatusBadRequest, "action is required")
		return
	}

	success := true
	if body.Success != nil {
		success = *body.Success
	}

	entry, err := a.store.InsertAction(body.Action, success)
	if err != nil {
		a.fail(w, "store action", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "stored",
		"entry":  entry,
	})
}

func (a *API) feedback(w http.ResponseWriter, r *http.Request) {
	var body feedbackBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Helped == nil {
		writeError(w, http.StatusBadRequest, "helped is required")
		return
	}

	entry, err := a.store.InsertFeedback(*body.Helped, body.Note)
	if err != nil {
		a.fail(w, "store feedback", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "stored",
		"entry":  entry,
	})
}

func (a *API) actuate(w http.ResponseWriter, r *http.Request) {
	var body actuateBody
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := a.planner.PlanLatest(body.Device)
	if err != nil {
		var unknownErr *actuation.UnknownDeviceError
		if errors.As(err, &unknownErr) {
			// The plan was still computed and recorded; only the filter failed.
			writeError(w, http.StatusBadRequest, unknownErr.Error())
			return
		}
		a.fail(w, "compute actuation plan", err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (a *API) summary(w http.ResponseWriter, _ *http.Request) {
	sum, err := a.store.Summary()
	if err != nil {
		a.fail(w, "read summary", err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (a *API) actionStreak(w http.ResponseWriter, _ *http.Request) {
	streak, err := a.store.ActionStreak()
	if err != nil {
		a.fail(w, "compute streak", err)
		return
	}
	writeJSON(w, http.StatusOK, streak)
}

func (a *API) moodHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.store.MoodHistory(limitParam(r))
	if err != nil {
		a.fail(w, "read mood history", err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(history))
}

func (a *API) actionHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.store.ActionHistory(limitParam(r))
	if err != nil {
		a.fail(w, "read action history", err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(history))
}

func (a *API) feedbackHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.store.FeedbackHistory(limitParam(r))
	if err != nil {
		a.fail(w, "read feedback history", err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(history))
}

func (a *API) coach(w http.ResponseWriter, _ *http.Request) {
	latest, err := a.store.LatestMood()
	if err != nil {
		a.fail(w, "read latest mood", err)
		return
	}
	if latest == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":    noCheckinMessage,
			"suggestion": nil,
		})
		return
	}

	streak, err := a.store.ActionStreak()
	if err != nil {
		a.fail(w, "compute streak", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"based_on":   latest,
		"streak":     streak,
		"suggestion": coach.SuggestWithStreak(latest.Mood, latest.Energy, latest.Focus, streak.StreakDays),
	})
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// limitParam reads the ?limit= query parameter, falling back to the
// store default for missing or unparseable values.
func limitParam(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return journal.DefaultHistoryLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return journal.DefaultHistoryLimit
	}
	return n
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail logs a storage-level failure and reports it as a 500. Persistence
// failures propagate; they are never swallowed.
func (a *API) fail(w http.ResponseWriter, op string, err error) {
	a.log.Error(op, zap.Error(err))
	writeError(w, http.StatusInternalServerError, op+" failed")
}

// emptyAsList keeps empty histories encoding as [] rather than null.
func emptyAsList[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
