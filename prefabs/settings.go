package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every Validate failure.
var ErrInvalidSettings = errors.New("invalid settings")

const settingsFile = "settings.yaml"

type Settings struct {
	Seed         int64            `yaml:"seed"`
	Screen       ScreenSettings   `yaml:"screen"`
	World        WorldSettings    `yaml:"world"`
	Scroll       ScrollSettings   `yaml:"scroll"`
	Player       PlayerSettings   `yaml:"player"`
	Character    CharacterSpec    `yaml:"character"`
	Animations   AnimationsSpec   `yaml:"animations"`
	Collectibles CollectibleSpec  `yaml:"collectibles"`
	Enemies      EnemySettings    `yaml:"enemies"`
	Steal        StealSettings    `yaml:"steal"`
	ProgressBar  ProgressBarSpec  `yaml:"progress_bar"`
	Projectiles  ProjectileSpec   `yaml:"projectiles"`
	Audio        AudioSettings    `yaml:"audio"`
	GameOver     GameOverSettings `yaml:"game_over"`
}

type ScreenSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type WorldSettings struct {
	Gravity  float64 `yaml:"gravity"`
	FloorTop float64 `yaml:"floor_top"`
}

type ScrollSettings struct {
	ThresholdRatio float64 `yaml:"threshold_ratio"`
	Speed          float64 `yaml:"speed"`
}

// Threshold is the distance from either screen edge at which the scroll lock
// pins the player.
func (s ScrollSettings) Threshold(screenWidth int) float64 {
	return float64(screenWidth) * s.ThresholdRatio
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type PlayerSettings struct {
	StartX       float64      `yaml:"start_x"`
	Speed        float64      `yaml:"speed"`
	JumpVelocity float64      `yaml:"jump_velocity"`
	Bounce       float64      `yaml:"bounce"`
	Collider     ColliderSpec `yaml:"collider"`
	StompBounce  float64      `yaml:"stomp_bounce"`
	StompMaxY    float64      `yaml:"stomp_max_y"`
	// DownBoost keeps the airborne down-input velocity kick.
	DownBoost      bool    `yaml:"down_boost"`
	BreathingScale float64 `yaml:"breathing_scale"`
	BreathingMS    int     `yaml:"breathing_ms"`
}

type CharacterSpec struct {
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
}

type AnimationSpec struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type AnimationsSpec struct {
	Idle AnimationSpec `yaml:"idle"`
	Run  AnimationSpec `yaml:"run"`
	Jump AnimationSpec `yaml:"jump"`
}

// Rows lists the player animations in sprite sheet row order.
func (a AnimationsSpec) Rows() []NamedAnimation {
	return []NamedAnimation{
		{Name: "idle", AnimationSpec: a.Idle},
		{Name: "run", AnimationSpec: a.Run},
		{Name: "jump", AnimationSpec: a.Jump},
	}
}

type NamedAnimation struct {
	Name string
	AnimationSpec
}

type CollectibleSpec struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	PoolSize        int     `yaml:"pool_size"`
	TotalNeeded     int     `yaml:"total_needed"`
	Margin          float64 `yaml:"margin"`
	StartY          float64 `yaml:"start_y"`
	DropMinY        float64 `yaml:"drop_min_y"`
	DropMaxY        float64 `yaml:"drop_max_y"`
	DropMS          int     `yaml:"drop_ms"`
	BobHeight       float64 `yaml:"bob_height"`
	BobMS           int     `yaml:"bob_ms"`
	Size            float64 `yaml:"size"`
}

type EnemySettings struct {
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
	Speed           float64 `yaml:"speed"`
	SpawnY          float64 `yaml:"spawn_y"`
	SpawnLeftX      float64 `yaml:"spawn_left_x"`
	SpriteWidth     float64 `yaml:"sprite_width"`
	SpriteHeight    float64 `yaml:"sprite_height"`
	Bounce          float64 `yaml:"bounce"`
}

// ColliderSize is 40% of the sprite, plus 20px of height.
func (e EnemySettings) ColliderSize() (w, h float64) {
	return e.SpriteWidth * 0.4, e.SpriteHeight*0.4 + 20
}

type StealSettings struct {
	FlightX       float64 `yaml:"flight_x"`
	FlightY       float64 `yaml:"flight_y"`
	FlightMS      int     `yaml:"flight_ms"`
	OffsetY       float64 `yaml:"offset_y"`
	Scale         float64 `yaml:"scale"`
	FlickerAlpha  float64 `yaml:"flicker_alpha"`
	FlickerMS     int     `yaml:"flicker_ms"`
	FlickerRepeat int     `yaml:"flicker_repeat"`
}

type ProgressBarSpec struct {
	Width   float64  `yaml:"width"`
	Height  float64  `yaml:"height"`
	OffsetX float64  `yaml:"offset_x"`
	Y       float64  `yaml:"y"`
	Color   HexColor `yaml:"color"`
	TweenMS int      `yaml:"tween_ms"`
}

// X is the left edge of the bar fill.
func (p ProgressBarSpec) X(screenWidth int) float64 {
	return float64(screenWidth)/2 - p.Width/2 + p.OffsetX
}

type ProjectileSpec struct {
	PoolSize int `yaml:"pool_size"`
}

type AudioSettings struct {
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

type GameOverSettings struct {
	BannerMS       int `yaml:"banner_ms"`
	RestartDelayMS int `yaml:"restart_delay_ms"`
}

// Millis converts a millisecond setting into a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// HexColor decodes "#RRGGBB" or "#RRGGBBAA".
type HexColor struct {
	color.RGBA
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}

func ParseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		out[i] = n
	}
	return color.RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

// DefaultSettings decodes the embedded settings.yaml.
func DefaultSettings() (Settings, error) {
	data, err := PrefabsFS.ReadFile(settingsFile)
	if err != nil {
		return Settings{}, fmt.Errorf("prefabs: load %s: %w", settingsFile, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("prefabs: unmarshal %s: %w", settingsFile, err)
	}
	return s, nil
}

// LoadSettings decodes the embedded defaults and, when path is set, overlays
// the file at path on top of them. Keys missing from the override keep their
// default values. On an override error the defaults are returned together
// with the error so callers can warn and continue.
func LoadSettings(path string) (Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return Settings{}, err
	}
	if path == "" {
		return s, s.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	merged := s
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return s, fmt.Errorf("prefabs: unmarshal %s: %w", path, err)
	}
	if err := merged.Validate(); err != nil {
		return s, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return merged, nil
}

func (s Settings) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{s.Screen.Width > 0 && s.Screen.Height > 0, "screen size must be positive"},
		{s.World.Gravity >= 0, "gravity must not be negative"},
		{s.World.FloorTop > 0 && s.World.FloorTop <= float64(s.Screen.Height), "floor_top must lie on screen"},
		{s.Scroll.ThresholdRatio > 0 && s.Scroll.ThresholdRatio < 0.5, "scroll threshold_ratio must be in (0, 0.5)"},
		{s.Scroll.Speed >= 0, "scroll speed must not be negative"},
		{s.Player.Speed > 0, "player speed must be positive"},
		{s.Player.JumpVelocity < 0, "player jump_velocity must be negative (up)"},
		{s.Player.Collider.Width > 0 && s.Player.Collider.Height > 0, "player collider must be positive"},
		{s.Character.FrameWidth > 0 && s.Character.FrameHeight > 0, "character frame size must be positive"},
		{s.Collectibles.PoolSize > 0, "collectibles pool_size must be positive"},
		{s.Collectibles.TotalNeeded > 0, "collectibles total_needed must be positive"},
		{s.Collectibles.SpawnIntervalMS > 0, "collectibles spawn_interval_ms must be positive"},
		{s.Collectibles.DropMinY <= s.Collectibles.DropMaxY, "collectibles drop_min_y must not exceed drop_max_y"},
		{2*s.Collectibles.Margin < float64(s.Screen.Width), "collectibles margin too wide for screen"},
		{s.Enemies.SpawnIntervalMS > 0, "enemies spawn_interval_ms must be positive"},
		{s.Enemies.SpriteWidth > 0 && s.Enemies.SpriteHeight > 0, "enemy sprite size must be positive"},
		{s.ProgressBar.Width > 0 && s.ProgressBar.Height > 0, "progress bar size must be positive"},
		{s.Projectiles.PoolSize >= 0, "projectiles pool_size must not be negative"},
		{s.Audio.MusicVolume >= 0 && s.Audio.MusicVolume <= 1, "music_volume must be in [0, 1]"},
		{s.Audio.SFXVolume >= 0 && s.Audio.SFXVolume <= 1, "sfx_volume must be in [0, 1]"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidSettings, c.msg)
		}
	}
	for _, a := range s.Animations.Rows() {
		if a.Frames <= 0 || a.FPS <= 0 {
			return fmt.Errorf("%w: animation %s needs frames and fps", ErrInvalidSettings, a.Name)
		}
	}
	return nil
}
