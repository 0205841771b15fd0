package actuation

import (
	"fmt"
	"strings"

	"github.com/aurumsolace/solace/internal/coach"
	"github.com/aurumsolace/solace/internal/journal"
)

// Result is the outcome of a planning call. Exactly one of the command
// fields is set when a device filter was applied; otherwise Plan carries
// the full command set.
type Result struct {
	Plan    *Plan             `json:"plan,omitempty"`
	Lights  *LightsCommand    `json:"lights,omitempty"`
	Speaker *SpeakerCommand   `json:"speaker,omitempty"`
	Robot   *RobotCommand     `json:"robot,omitempty"`
	BasedOn journal.MoodEntry `json:"based_on"`
	Streak  journal.Streak    `json:"streak"`
}

// Planner computes actuation plans from the journal's latest state and
// records every decision back into it. Planning always has that side
// effect: the actuation log is the audit trail of what the system chose,
// including plans later rejected for an invalid device filter.
type Planner struct {
	store *journal.Store
}

// NewPlanner creates a Planner backed by the given journal store.
func NewPlanner(store *journal.Store) *Planner {
	return &Planner{store: store}
}

// PlanLatest computes, persists, and returns the actuation plan for the
// latest known state. When no mood has ever been recorded the neutral
// defaults apply. requestedDevice optionally narrows the result to one
// command; an unmatched device yields *UnknownDeviceError after the
// full plan has been persisted.
func (p *Planner) PlanLatest(requestedDevice string) (*Result, error) {
	latest, err := p.store.LatestMood()
	if err != nil {
		return nil, err
	}
	if latest == nil {
		latest = &journal.MoodEntry{
			Mood:   coach.DefaultMood,
			Energy: coach.DefaultEnergy,
			Focus:  coach.DefaultFocus,
		}
	}

	streak, err := p.store.ActionStreak()
	if err != nil {
		return nil, err
	}

	return p.plan(*latest, streak, requestedDevice)
}

// PlanFor computes, persists, and returns the plan for an explicit state
// and streak, bypassing the journal reads.
func (p *Planner) PlanFor(mood, energy, focus string, streak journal.Streak, requestedDevice string) (*Result, error) {
	state := journal.MoodEntry{Mood: mood, Energy: energy, Focus: focus}
	return p.plan(state, streak, requestedDevice)
}

func (p *Planner) plan(state journal.MoodEntry, streak journal.Streak, requestedDevice string) (*Result, error) {
	device := strings.ToLower(strings.TrimSpace(requestedDevice))

	mood := strings.ToLower(state.Mood)
	energy := strings.ToLower(state.Energy)
	focus := strings.ToLower(state.Focus)

	plan := BuildPlan(mood, energy, focus, streak.StreakDays)

	// Persist before filtering: the decision is recorded even when the
	// requested device turns out to be invalid.
	err := p.store.InsertActuation(journal.ActuationParams{
		Mood:            plan.Mood,
		Energy:          plan.Energy,
		Focus:           plan.Focus,
		StreakDays:      plan.StreakDays,
		Lights:          plan.Lights,
		Speaker:         plan.Speaker,
		Robot:           plan.Robot,
		RequestedDevice: device,
	})
	if err != nil {
		return nil, fmt.Errorf("recording actuation decision: %w", err)
	}

	res := &Result{BasedOn: state, Streak: streak}

	switch device {
	case "":
		res.Plan = &plan
	case DeviceLights:
		res.Lights = &plan.Lights
	case DeviceSpeaker:
		res.Speaker = &plan.Speaker
	case DeviceRobot:
		res.Robot = &plan.Robot
	default:
		return nil, &UnknownDeviceError{Device: device}
	}

	return res, nil
}
