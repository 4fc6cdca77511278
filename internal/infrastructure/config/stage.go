package config

// WorldConfig describes the tile grid of a level
type WorldConfig struct {
	TileSize int          `yaml:"tileSize"`
	Width    int          `yaml:"width"` // in tiles
	FloorRow int          `yaml:"floorRow"`
	Holes    []HoleConfig `yaml:"holes"`

	// FallRows is how many rows below the floor the player may drop
	// before counting as fallen out of the level
	FallRows int `yaml:"fallRows"`
}

type HoleConfig struct {
	Start  int `yaml:"start"`
	Length int `yaml:"length"`
}

// PlatformsConfig generates floating platforms from repeating rules
// and appends any explicitly placed rectangles
type PlatformsConfig struct {
	Rules []PlatformRule `yaml:"rules"`
	Extra []RectConfig   `yaml:"extra"`
}

// PlatformRule places one tile at every column where column % Every == Offset
type PlatformRule struct {
	Every          int  `yaml:"every"`
	Offset         int  `yaml:"offset"`
	RowsAboveFloor int  `yaml:"rowsAboveFloor"`
	SkipHoles      bool `yaml:"skipHoles"`
}

type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Ground bool    `yaml:"ground"`
}

type CoinsConfig struct {
	StartTile      int     `yaml:"startTile"`
	Every          int     `yaml:"every"`
	RowsAboveFloor int     `yaml:"rowsAboveFloor"`
	OffsetY        float64 `yaml:"offsetY"`
	Radius         float64 `yaml:"radius"`
}

type GoalConfig struct {
	Tile           int     `yaml:"tile"`
	RowsAboveFloor int     `yaml:"rowsAboveFloor"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Padding        float64 `yaml:"padding"`
	VictoryFrames  int     `yaml:"victoryFrames"`
}
