package config

// LevelConfig is the root config of a level YAML file
type LevelConfig struct {
	Number    int             `yaml:"number"`
	Name      string          `yaml:"name"`
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Coins     CoinsConfig     `yaml:"coins"`
	Goal      GoalConfig      `yaml:"goal"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Boss      BossConfig      `yaml:"boss"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsSettings holds per-step constants (pixels per step, pixels per step²)
type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// ThresholdConfig sets how deep an overlap may be and still count as
// landing on top or bumping into a side
type ThresholdConfig struct {
	Top  float64 `yaml:"top"`
	Side float64 `yaml:"side"`
}
