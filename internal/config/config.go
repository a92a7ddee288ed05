package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kernelquest/internal/collision"
)

// Config holds all game configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Timing      TimingConfig      `yaml:"timing"`
	Logging     LoggingConfig     `yaml:"logging"`
	Movement    MovementConfig    `yaml:"movement"`
	Fade        FadeConfig        `yaml:"fade"`
	Keys        KeyConfig         `yaml:"keys"`
	Overworld   OverworldConfig   `yaml:"overworld"`
	Combat      CombatConfig      `yaml:"combat"`
	Interaction InteractionConfig `yaml:"interaction"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	FontSize     int    `yaml:"font_size"`
}

// TimingConfig fixes the simulation step. Every frame count below assumes
// this rate.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// LoggingConfig drives the zap setup. Format is console or json; Color only
// affects console output on the terminal.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	Console    bool   `yaml:"console"`
	Color      bool   `yaml:"color"`
	TimeLayout string `yaml:"time_layout"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type MovementConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type FadeConfig struct {
	DecayPerTick float64 `yaml:"decay_per_tick"`
}

// KeyConfig lists key names per logical action. Several names on one action
// are aliases.
type KeyConfig struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Confirm  []string `yaml:"confirm"`
	Interact []string `yaml:"interact"`
	Quit     []string `yaml:"quit"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type OverworldConfig struct {
	Stage            int        `yaml:"stage"`
	SpawnX           float64    `yaml:"spawn_x"`
	SpawnY           float64    `yaml:"spawn_y"`
	PlayerSprite     string     `yaml:"player_sprite"`
	CombatTrigger    RectConfig `yaml:"combat_trigger"`
	TransitionFrames int        `yaml:"transition_frames"`
}

type CombatConfig struct {
	EnemyName       string  `yaml:"enemy_name"`
	EnemySprite     string  `yaml:"enemy_sprite"`
	HeartSprite     string  `yaml:"heart_sprite"`
	PlayerHP        int     `yaml:"player_hp"`
	EnemyHP         int     `yaml:"enemy_hp"`
	IntroText       string  `yaml:"intro_text"`
	EnemyTurnText   string  `yaml:"enemy_turn_text"`
	TauntText       string  `yaml:"taunt_text"`
	CheckText       string  `yaml:"check_text"`
	ShakeStart      float64 `yaml:"shake_start"`
	ShakeDecay      float64 `yaml:"shake_decay"`
	ShakeJitter     float64 `yaml:"shake_jitter"`
	EnemyTurnFrames int     `yaml:"enemy_turn_frames"`
	MercyExitX      float64 `yaml:"mercy_exit_x"`
}

type InteractionConfig struct {
	ProximityRadius float64 `yaml:"proximity_radius"`
	DialogueFrames  int     `yaml:"dialogue_frames"`
	Prompt          string  `yaml:"prompt"`
	PromptOffsetY   float64 `yaml:"prompt_offset_y"`
}

// Default returns the stock game configuration. LoadConfig unmarshals on top
// of it, so a partial config.yaml keeps the remaining values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "kernelquest",
			FontSize:     18,
		},
		Timing: TimingConfig{TicksPerSecond: 60},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			Console:    true,
			Color:      true,
			TimeLayout: "15:04:05",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Movement: MovementConfig{MoveSpeed: 3.0},
		Fade:     FadeConfig{DecayPerTick: 0.02},
		Keys: KeyConfig{
			Left:     []string{"Left"},
			Right:    []string{"Right"},
			Up:       []string{"Up"},
			Down:     []string{"Down"},
			Confirm:  []string{"Z", "Enter", "F"},
			Interact: []string{"F"},
			Quit:     []string{"Escape"},
		},
		Overworld: OverworldConfig{
			Stage:            4,
			SpawnX:           400,
			SpawnY:           300,
			PlayerSprite:     "player",
			CombatTrigger:    RectConfig{X: 80, Y: 80, Width: 80, Height: 80},
			TransitionFrames: 60,
		},
		Combat: CombatConfig{
			EnemyName:       "Sans",
			EnemySprite:     "sans_combat",
			HeartSprite:     "heart",
			PlayerHP:        20,
			EnemyHP:         1,
			IntroText:       "You feel like you're gonna have a bad time.",
			EnemyTurnText:   "heh heh heh...",
			TauntText:       "You feel your sins crawling on your back.",
			CheckText:       "Check: Sans 1 ATK 1 DEF.\nThe easiest enemy. Can only deal 1 damage.",
			ShakeStart:      10.0,
			ShakeDecay:      0.5,
			ShakeJitter:     5.0,
			EnemyTurnFrames: 120,
			MercyExitX:      700,
		},
		Interaction: InteractionConfig{
			ProximityRadius: 120,
			DialogueFrames:  300,
			Prompt:          "Press F to Talk",
			PromptOffsetY:   60,
		},
	}
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the controllers cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, errors.New("display: screen size must be positive"))
	}
	if c.Timing.TicksPerSecond <= 0 {
		errs = append(errs, errors.New("timing: ticks_per_second must be positive"))
	}
	if c.Combat.PlayerHP <= 0 {
		errs = append(errs, errors.New("combat: player_hp must be positive"))
	}
	if c.Combat.EnemyHP <= 0 {
		errs = append(errs, errors.New("combat: enemy_hp must be positive"))
	}
	if c.Combat.ShakeDecay <= 0 {
		errs = append(errs, errors.New("combat: shake_decay must be positive"))
	}
	if c.Combat.EnemyTurnFrames < 0 {
		errs = append(errs, errors.New("combat: enemy_turn_frames must not be negative"))
	}
	if c.Interaction.ProximityRadius <= 0 {
		errs = append(errs, errors.New("interaction: proximity_radius must be positive"))
	}
	if c.Interaction.DialogueFrames <= 0 {
		errs = append(errs, errors.New("interaction: dialogue_frames must be positive"))
	}
	if c.Fade.DecayPerTick <= 0 {
		errs = append(errs, errors.New("fade: decay_per_tick must be positive"))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging: unknown format %q", c.Logging.Format))
	}
	if c.exitInsideTrigger() {
		errs = append(errs, errors.New("combat: mercy_exit_x lands inside overworld.combat_trigger"))
	}
	if len(c.Keys.Confirm) == 0 {
		errs = append(errs, errors.New("keys: confirm needs at least one key"))
	}
	return errors.Join(errs...)
}

// exitInsideTrigger reports whether sparing the enemy would drop the
// protagonist back into the trigger zone. The exit keeps the protagonist's Y,
// which is inside the zone's vertical span, so only X decides.
func (c *Config) exitInsideTrigger() bool {
	t := c.Overworld.CombatTrigger
	zone := collision.FromRect(t.X, t.Y, t.Width, t.Height)
	return zone.Contains(collision.Point{X: c.Combat.MercyExitX, Y: zone.Y})
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	return c.Timing.TicksPerSecond
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}
