// Package config provides YAML-based game tuning and difficulty
// management for the arcade games. Speeds are in cells per second and
// accelerations in cells per second squared.
package config

// RunnerConfig contains all configuration for Lane Runner.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Lanes      RunnerLanes      `yaml:"lanes"`
	Spawns     RunnerSpawns     `yaml:"spawns"`
	Player     RunnerPlayer     `yaml:"player"`
	Gameplay   RunnerGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines jump and scroll parameters.
type RunnerPhysics struct {
	JumpImpulse float64 `yaml:"jump_impulse"`
	JumpGravity float64 `yaml:"jump_gravity"`
	JumpCeiling float64 `yaml:"jump_ceiling"`
	BaseSpeed   float64 `yaml:"base_speed"`
}

// RunnerLanes defines the lane layout and held-key lane switching.
type RunnerLanes struct {
	Count       int `yaml:"count"`
	RepeatTicks int `yaml:"repeat_ticks"` // Ticks between lane changes while a key is held
}

// RunnerSpawns defines the per-tick spawn roll.
type RunnerSpawns struct {
	Chance           float64 `yaml:"chance"`             // Per-tick spawn probability
	CoinChance       float64 `yaml:"coin_chance"`        // Share of spawns that are coins
	LowBarrierChance float64 `yaml:"low_barrier_chance"` // Share of barriers that can be jumped
	BarrierHeight    float64 `yaml:"barrier_height"`
	MinGapTicks      int     `yaml:"min_gap_ticks"`
	CoinPoints       int     `yaml:"coin_points"`
}

// RunnerPlayer defines the runner's size and position.
type RunnerPlayer struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"`
}

// RunnerGameplay defines lives and distance scoring.
type RunnerGameplay struct {
	Lives          int `yaml:"lives"`
	DistancePoints int `yaml:"distance_points"`
	DistanceEvery  int `yaml:"distance_every"` // Ticks per distance award
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Gameplay   FlappyGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines obstacle parameters for Flappy Bird.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type FlappyGameplay struct {
	Lives        int `yaml:"lives"`
	PipePoints   int `yaml:"pipe_points"`
	GroundHeight int `yaml:"ground_height"`
}

// SpaceConfig contains all configuration for Space Shooter.
type SpaceConfig struct {
	Physics    SpacePhysics     `yaml:"physics"`
	Spawns     SpaceSpawns      `yaml:"spawns"`
	Player     SpacePlayer      `yaml:"player"`
	Gameplay   SpaceGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

type SpacePhysics struct {
	ShipSpeed   float64 `yaml:"ship_speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
}

type SpaceSpawns struct {
	EnemyChance       float64 `yaml:"enemy_chance"`
	MinGapTicks       int     `yaml:"min_gap_ticks"`
	ShotCooldownTicks int     `yaml:"shot_cooldown_ticks"`
	EnemyPoints       int     `yaml:"enemy_points"`
}

type SpacePlayer struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"`
}

type SpaceGameplay struct {
	Lives int `yaml:"lives"`
}

// BrickConfig contains all configuration for Brick Breaker.
type BrickConfig struct {
	Physics    BrickPhysics     `yaml:"physics"`
	Paddle     BrickPaddle      `yaml:"paddle"`
	Bricks     BrickLayout      `yaml:"bricks"`
	Gameplay   BrickGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BrickPhysics defines ball and paddle speeds.
type BrickPhysics struct {
	BallSpeed    float64 `yaml:"ball_speed"`
	PaddleSpeed  float64 `yaml:"paddle_speed"`
	MaxBallSpeed float64 `yaml:"max_ball_speed"`
}

// BrickPaddle defines paddle dimensions.
type BrickPaddle struct {
	Width        int `yaml:"width"`
	BottomOffset int `yaml:"bottom_offset"`
}

// BrickLayout selects the level and brick scoring.
type BrickLayout struct {
	Level      string `yaml:"level"` // Built-in level id
	TopOffset  int    `yaml:"top_offset"`
	Points     int    `yaml:"points"`
	HardPoints int    `yaml:"hard_points"`
}

// BrickGameplay defines lives and in-run speed-ups.
type BrickGameplay struct {
	Lives         int     `yaml:"lives"`
	SpeedUpEveryN int     `yaml:"speed_up_every_n"` // Bricks broken per speed-up
	SpeedUpAmount float64 `yaml:"speed_up_amount"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Added to speed at max difficulty
	SpawnMultiplier  float64 `yaml:"spawn_multiplier"`  // Added to spawn chance at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
