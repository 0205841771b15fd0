package actuation_test

import (
	"testing"

	"github.com/aurumsolace/solace/internal/actuation"
)

// ─── BuildPlan ──────────────────────────────────────────────────────────────

func TestBuildPlan_Baseline(t *testing.T) {
	plan := actuation.BuildPlan("neutral", "medium", "ok", 0)

	if plan.Lights.Scene != "neutral" || plan.Lights.ColorTempK != 2700 ||
		plan.Lights.Brightness != 45 || plan.Lights.Effect != "steady" ||
		plan.Lights.DurationS != 1800 {
		t.Errorf("lights = %+v, want neutral baseline", plan.Lights)
	}
	if plan.Speaker.Soundscape != "silence" || plan.Speaker.Volume != 20 ||
		plan.Speaker.FadeInS != 5 || plan.Speaker.DurationS != 0 {
		t.Errorf("speaker = %+v, want silent baseline", plan.Speaker)
	}
	if plan.Robot.Script != "idle_presence" || plan.Robot.Tone != "calm" {
		t.Errorf("robot = %+v, want idle baseline", plan.Robot)
	}
	if plan.Robot.Line != nil || plan.Robot.Task != nil || plan.Robot.TimerS != nil {
		t.Errorf("baseline robot must carry no line/task/timer, got %+v", plan.Robot)
	}
}

func TestBuildPlan_SupportPreset(t *testing.T) {
	plan := actuation.BuildPlan("low", "low", "drifting", 0)

	if plan.Lights.Scene != "ember" || plan.Lights.ColorTempK != 2000 ||
		plan.Lights.Brightness != 30 || plan.Lights.Effect != "breathe" {
		t.Errorf("lights = %+v, want ember support scene", plan.Lights)
	}
	if plan.Speaker.Soundscape != "soft_rain" || plan.Speaker.Volume != 35 ||
		plan.Speaker.FadeInS != 10 || plan.Speaker.DurationS != 1800 {
		t.Errorf("speaker = %+v, want soft rain", plan.Speaker)
	}
	if plan.Robot.Script != "micro_step_support" || plan.Robot.Tone != "gentle" {
		t.Errorf("robot = %+v, want micro-step support", plan.Robot)
	}
	if plan.Robot.Line == nil || *plan.Robot.Line != "One small step is enough. Let's take sixty seconds together." {
		t.Errorf("robot line = %v, want the support line", plan.Robot.Line)
	}
	if plan.Robot.Task == nil || *plan.Robot.Task != "drink_water" {
		t.Errorf("robot task = %v, want drink_water", plan.Robot.Task)
	}
	if plan.Robot.TimerS == nil || *plan.Robot.TimerS != 60 {
		t.Errorf("robot timer = %v, want 60", plan.Robot.TimerS)
	}
}

func TestBuildPlan_PresetRequiresBothAxesLow(t *testing.T) {
	// Low mood alone, or low energy alone, stays on the baseline.
	for _, tt := range []struct{ mood, energy string }{
		{"low", "medium"},
		{"neutral", "low"},
		{"good", "low"},
	} {
		plan := actuation.BuildPlan(tt.mood, tt.energy, "ok", 0)
		if plan.Lights.Scene != "neutral" {
			t.Errorf("BuildPlan(%q, %q) scene = %q, want baseline neutral",
				tt.mood, tt.energy, plan.Lights.Scene)
		}
	}
}

func TestBuildPlan_StreakModifier(t *testing.T) {
	tests := []struct {
		days       int
		wantScript string
	}{
		{0, "idle_presence"},
		{2, "idle_presence"},
		{3, "idle_presence_protect_streak"},
		{10, "idle_presence_protect_streak"},
	}

	for _, tt := range tests {
		plan := actuation.BuildPlan("neutral", "medium", "ok", tt.days)
		if plan.Robot.Script != tt.wantScript {
			t.Errorf("streak %d: script = %q, want %q", tt.days, plan.Robot.Script, tt.wantScript)
		}
	}
}

func TestBuildPlan_StreakModifierOnPreset(t *testing.T) {
	// The modifier stacks on whichever script the preset chose.
	plan := actuation.BuildPlan("low", "low", "ok", 5)
	if plan.Robot.Script != "micro_step_support_protect_streak" {
		t.Errorf("script = %q, want micro_step_support_protect_streak", plan.Robot.Script)
	}
}

func TestBuildPlan_EchoesInputs(t *testing.T) {
	plan := actuation.BuildPlan("good", "high", "locked-in", 2)
	if plan.Mood != "good" || plan.Energy != "high" || plan.Focus != "locked-in" || plan.StreakDays != 2 {
		t.Errorf("plan header = %+v, want inputs echoed back", plan)
	}
}

// ─── UnknownDeviceError ─────────────────────────────────────────────────────

func TestUnknownDeviceError_Message(t *testing.T) {
	err := &actuation.UnknownDeviceError{Device: "lamp"}
	want := `unknown device "lamp" (valid: lights, speaker, robot)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
