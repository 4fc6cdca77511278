package config

type PlayerConfig struct {
	Width        float64         `yaml:"width"`
	Height       float64         `yaml:"height"`
	SpawnTile    int             `yaml:"spawnTile"`
	MoveSpeed    float64         `yaml:"moveSpeed"`
	JumpVelocity float64         `yaml:"jumpVelocity"`
	Threshold    ThresholdConfig `yaml:"threshold"`

	// RewindDistance is how far behind the checkpoint a respawn lands
	RewindDistance float64 `yaml:"rewindDistance"`
	// Invulnerability is the number of steps enemy contact is ignored after a respawn
	Invulnerability int `yaml:"invulnerability"`
}

type EnemiesConfig struct {
	Roster         []string        `yaml:"roster"`
	SpawnTiles     []int           `yaml:"spawnTiles"`
	LeadTiles      int             `yaml:"leadTiles"`
	Width          float64         `yaml:"width"`
	Height         float64         `yaml:"height"`
	BaseSpeed      float64         `yaml:"baseSpeed"`
	SpeedStep      float64         `yaml:"speedStep"`
	PatrolTiles    int             `yaml:"patrolTiles"`
	StompThreshold float64         `yaml:"stompThreshold"`
	StompBounce    float64         `yaml:"stompBounce"`
	Threshold      ThresholdConfig `yaml:"threshold"`
}

type BossConfig struct {
	Width            float64         `yaml:"width"`
	Height           float64         `yaml:"height"`
	HP               int             `yaml:"hp"`
	Speed            float64         `yaml:"speed"`
	JumpVelocity     float64         `yaml:"jumpVelocity"`
	HopCooldown      int             `yaml:"hopCooldown"`
	Invulnerability  int             `yaml:"invulnerability"`
	LeadTiles        int             `yaml:"leadTiles"`
	SpawnOffsetTiles int             `yaml:"spawnOffsetTiles"`
	SpawnRows        int             `yaml:"spawnRows"`
	SpawnHeight      float64         `yaml:"spawnHeight"`
	DropSpeed        float64         `yaml:"dropSpeed"`
	StompThreshold   float64         `yaml:"stompThreshold"`
	StompBounce      float64         `yaml:"stompBounce"`
	Threshold        ThresholdConfig `yaml:"threshold"`
}
