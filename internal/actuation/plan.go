// Package actuation converts the latest observed state and streak into
// structured device commands for the lights, speaker, and robot.
//
// Plans are built from a fixed neutral baseline; preset rules replace
// all three command structs as a unit, never field by field. Like the
// coach rules, the preset table is ordered data with first-match-wins
// evaluation.
package actuation

import "fmt"

// Device names accepted by the plan filter.
const (
	DeviceLights  = "lights"
	DeviceSpeaker = "speaker"
	DeviceRobot   = "robot"
)

// LightsCommand drives the ambient lighting.
type LightsCommand struct {
	Scene      string `json:"scene"`
	ColorTempK int    `json:"color_temp_k"`
	Brightness int    `json:"brightness"`
	Effect     string `json:"effect"`
	DurationS  int    `json:"duration_s"`
}

// SpeakerCommand drives the soundscape playback.
type SpeakerCommand struct {
	Soundscape string `json:"soundscape"`
	Volume     int    `json:"volume"`
	FadeInS    int    `json:"fade_in_s"`
	DurationS  int    `json:"duration_s"`
}

// RobotCommand drives the companion robot. Line, Task and TimerS are
// only set by presets that put the robot into an active script.
type RobotCommand struct {
	Script string  `json:"script"`
	Tone   string  `json:"tone"`
	Line   *string `json:"line"`
	Task   *string `json:"task"`
	TimerS *int    `json:"timer_s"`
}

// Plan is one computed actuation decision across all three devices.
type Plan struct {
	Mood       string         `json:"mood"`
	Energy     string         `json:"energy"`
	Focus      string         `json:"focus"`
	StreakDays int            `json:"streak_days"`
	Lights     LightsCommand  `json:"lights"`
	Speaker    SpeakerCommand `json:"speaker"`
	Robot      RobotCommand   `json:"robot"`
}

// protectStreakSuffix is appended to the robot script once a streak is
// worth defending.
const protectStreakSuffix = "_protect_streak"

// baseline returns the neutral command set every plan starts from.
func baseline() (LightsCommand, SpeakerCommand, RobotCommand) {
	lights := LightsCommand{
		Scene:      "neutral",
		ColorTempK: 2700,
		Brightness: 45,
		Effect:     "steady",
		DurationS:  1800,
	}
	speaker := SpeakerCommand{
		Soundscape: "silence",
		Volume:     20,
		FadeInS:    5,
		DurationS:  0,
	}
	robot := RobotCommand{
		Script: "idle_presence",
		Tone:   "calm",
	}
	return lights, speaker, robot
}

// supportPreset is the low-mood/low-energy override: warm ember light,
// soft rain, and the robot walking the user through one micro-step.
func supportPreset() (LightsCommand, SpeakerCommand, RobotCommand) {
	line := "One small step is enough. Let's take sixty seconds together."
	task := "drink_water"
	timer := 60

	lights := LightsCommand{
		Scene:      "ember",
		ColorTempK: 2000,
		Brightness: 30,
		Effect:     "breathe",
		DurationS:  1800,
	}
	speaker := SpeakerCommand{
		Soundscape: "soft_rain",
		Volume:     35,
		FadeInS:    10,
		DurationS:  1800,
	}
	robot := RobotCommand{
		Script: "micro_step_support",
		Tone:   "gentle",
		Line:   &line,
		Task:   &task,
		TimerS: &timer,
	}
	return lights, speaker, robot
}

// presetRule pairs a predicate over (mood, energy, focus) with the
// command set that replaces the baseline wholesale when it fires.
type presetRule struct {
	when   func(mood, energy, focus string) bool
	preset func() (LightsCommand, SpeakerCommand, RobotCommand)
}

var presetRules = []presetRule{
	{
		when:   func(m, e, _ string) bool { return m == "low" && e == "low" },
		preset: supportPreset,
	},
}

// BuildPlan computes the device commands for a state and streak. The
// streak modifier is applied after preset selection, regardless of which
// preset fired.
func BuildPlan(mood, energy, focus string, streakDays int) Plan {
	lights, speaker, robot := baseline()

	for _, rule := range presetRules {
		if rule.when(mood, energy, focus) {
			lights, speaker, robot = rule.preset()
			break
		}
	}

	if streakDays >= 3 {
		robot.Script += protectStreakSuffix
	}

	return Plan{
		Mood:       mood,
		Energy:     energy,
		Focus:      focus,
		StreakDays: streakDays,
		Lights:     lights,
		Speaker:    speaker,
		Robot:      robot,
	}
}

// UnknownDeviceError reports a device filter that matches none of the
// three command keys. The plan has already been computed and persisted
// by the time this error is returned.
type UnknownDeviceError struct {
	Device string
}

func (e *UnknownDeviceError) Error() string {
	return fmt.Sprintf("unknown device %q (valid: %s, %s, %s)",
		e.Device, DeviceLights, DeviceSpeaker, DeviceRobot)
}
