package actuation_test

import (
	"errors"
	"testing"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/aurumsolace/solace/internal/journal"
)

func newTestPlanner(t *testing.T) (*actuation.Planner, *journal.Store) {
	t.Helper()
	store, err := journal.New(journal.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return actuation.NewPlanner(store), store
}

// ─── PlanLatest ─────────────────────────────────────────────────────────────

func TestPlanLatest_NoCheckinsUsesDefaults(t *testing.T) {
	planner, _ := newTestPlanner(t)

	res, err := planner.PlanLatest("")
	if err != nil {
		t.Fatalf("PlanLatest error: %v", err)
	}
	if res.Plan == nil {
		t.Fatal("result carries no full plan")
	}
	if res.Plan.Mood != "neutral" || res.Plan.Energy != "medium" || res.Plan.Focus != "ok" {
		t.Errorf("plan state = %s/%s/%s, want neutral/medium/ok defaults",
			res.Plan.Mood, res.Plan.Energy, res.Plan.Focus)
	}
	if res.Plan.Lights.Scene != "neutral" {
		t.Errorf("scene = %q, want baseline neutral", res.Plan.Lights.Scene)
	}
	if res.Streak.StreakDays != 0 {
		t.Errorf("streak = %d, want 0", res.Streak.StreakDays)
	}
}

func TestPlanLatest_UsesLatestMood(t *testing.T) {
	planner, store := newTestPlanner(t)

	if _, err := store.InsertMood("good", "high", "locked-in"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.InsertMood("low", "low", "drifting"); err != nil {
		t.Fatal(err)
	}

	res, err := planner.PlanLatest("")
	if err != nil {
		t.Fatalf("PlanLatest error: %v", err)
	}
	if res.Plan.Lights.Scene != "ember" {
		t.Errorf("scene = %q, want ember from the most recent check-in", res.Plan.Lights.Scene)
	}
	if res.BasedOn.Mood != "low" {
		t.Errorf("based_on mood = %q, want low", res.BasedOn.Mood)
	}
}

func TestPlanLatest_NormalizesCase(t *testing.T) {
	planner, store := newTestPlanner(t)

	if _, err := store.InsertMood("LOW", "Low", "OK"); err != nil {
		t.Fatal(err)
	}

	res, err := planner.PlanLatest("")
	if err != nil {
		t.Fatalf("PlanLatest error: %v", err)
	}
	if res.Plan.Robot.Script != "micro_step_support" {
		t.Errorf("script = %q, want the support preset despite mixed-case state", res.Plan.Robot.Script)
	}
}

// ─── Device filter ──────────────────────────────────────────────────────────

func TestPlanLatest_DeviceFilter(t *testing.T) {
	planner, _ := newTestPlanner(t)

	res, err := planner.PlanLatest("speaker")
	if err != nil {
		t.Fatalf("PlanLatest error: %v", err)
	}
	if res.Plan != nil {
		t.Error("filtered result must not carry the full plan")
	}
	if res.Lights != nil || res.Robot != nil {
		t.Error("filtered result must carry only the requested device")
	}
	if res.Speaker == nil || res.Speaker.Soundscape != "silence" {
		t.Errorf("speaker = %+v, want the baseline command", res.Speaker)
	}
}

func TestPlanLatest_DeviceFilterTrimsAndLowercases(t *testing.T) {
	planner, _ := newTestPlanner(t)

	res, err := planner.PlanLatest("  Lights ")
	if err != nil {
		t.Fatalf("PlanLatest error: %v", err)
	}
	if res.Lights == nil {
		t.Fatalf("result = %+v, want the lights command", res)
	}
}

func TestPlanLatest_UnknownDevicePersistsThenFails(t *testing.T) {
	planner, store := newTestPlanner(t)

	res, err := planner.PlanLatest("lamp")
	if res != nil {
		t.Errorf("result = %+v, want nil on unknown device", res)
	}

	var devErr *actuation.UnknownDeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("error = %v, want *UnknownDeviceError", err)
	}
	if devErr.Device != "lamp" {
		t.Errorf("device = %q, want lamp", devErr.Device)
	}

	// The decision is recorded even though the filter was rejected.
	history, err := store.ActuationHistory(10)
	if err != nil {
		t.Fatalf("ActuationHistory error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("actuation log length = %d, want 1", len(history))
	}
	if history[0].RequestedDevice == nil || *history[0].RequestedDevice != "lamp" {
		t.Errorf("requested_device = %v, want lamp", history[0].RequestedDevice)
	}
}

// ─── PlanFor ────────────────────────────────────────────────────────────────

func TestPlanFor_ExplicitState(t *testing.T) {
	planner, store := newTestPlanner(t)

	res, err := planner.PlanFor("low", "low", "ok", journal.Streak{StreakDays: 4}, "robot")
	if err != nil {
		t.Fatalf("PlanFor error: %v", err)
	}
	if res.Robot == nil || res.Robot.Script != "micro_step_support_protect_streak" {
		t.Errorf("robot = %+v, want the streak-protected support script", res.Robot)
	}

	history, err := store.ActuationHistory(1)
	if err != nil {
		t.Fatalf("ActuationHistory error: %v", err)
	}
	if len(history) != 1 || history[0].StreakDays != 4 {
		t.Errorf("actuation log = %+v, want one record with streak 4", history)
	}
}
