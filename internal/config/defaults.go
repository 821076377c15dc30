package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultRunnerConfig returns the default Lane Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			JumpImpulse: 14,
			JumpGravity: 40,
			JumpCeiling: 3,
			BaseSpeed:   12,
		},
		Lanes: RunnerLanes{
			Count:       3,
			RepeatTicks: 8,
		},
		Spawns: RunnerSpawns{
			Chance:           0.05,
			CoinChance:       0.3,
			LowBarrierChance: 0.5,
			BarrierHeight:    1,
			MinGapTicks:      20,
			CoinPoints:       5,
		},
		Player: RunnerPlayer{
			Width:        3,
			Height:       2,
			BottomOffset: 2,
		},
		Gameplay: RunnerGameplay{
			Lives:          3,
			DistancePoints: 1,
			DistanceEvery:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      120,
			JumpImpulse:  -30,
			MaxFallSpeed: 40,
			BaseSpeed:    20,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  40,
			MinGapSize:   8,
			MaxGapSize:   12,
			TopMargin:    3,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Gameplay: FlappyGameplay{
			Lives:        1,
			PipePoints:   1,
			GroundHeight: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     4,
				SpacingReduction: 15,
			},
		},
	}
}

// DefaultSpaceConfig returns the default Space Shooter configuration.
func DefaultSpaceConfig() SpaceConfig {
	return SpaceConfig{
		Physics: SpacePhysics{
			ShipSpeed:   40,
			BulletSpeed: 40,
			EnemySpeed:  8,
		},
		Spawns: SpaceSpawns{
			EnemyChance:       0.03,
			MinGapTicks:       15,
			ShotCooldownTicks: 8,
			EnemyPoints:       10,
		},
		Player: SpacePlayer{
			Width:        3,
			Height:       1,
			BottomOffset: 1,
		},
		Gameplay: SpaceGameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultBrickConfig returns the default Brick Breaker configuration.
func DefaultBrickConfig() BrickConfig {
	return BrickConfig{
		Physics: BrickPhysics{
			BallSpeed:    18,
			PaddleSpeed:  45,
			MaxBallSpeed: 40,
		},
		Paddle: BrickPaddle{
			Width:        8,
			BottomOffset: 2,
		},
		Bricks: BrickLayout{
			Level:      "classic",
			TopOffset:  2,
			Points:     10,
			HardPoints: 25,
		},
		Gameplay: BrickGameplay{
			Lives:         3,
			SpeedUpEveryN: 10,
			SpeedUpAmount: 1.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
