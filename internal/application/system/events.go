package system

// EventKind identifies something notable that happened during a step
type EventKind int

const (
	EventJump EventKind = iota
	EventCoin
	EventFell
	EventHurt
	EventEnemySpawn
	EventStomp
	EventBossSpawn
	EventBossLand
	EventBossHit
	EventBossDefeated
	EventBossFell
	EventGoal
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "Jump"
	case EventCoin:
		return "Coin"
	case EventFell:
		return "Fell"
	case EventHurt:
		return "Hurt"
	case EventEnemySpawn:
		return "EnemySpawn"
	case EventStomp:
		return "Stomp"
	case EventBossSpawn:
		return "BossSpawn"
	case EventBossLand:
		return "BossLand"
	case EventBossHit:
		return "BossHit"
	case EventBossDefeated:
		return "BossDefeated"
	case EventBossFell:
		return "BossFell"
	case EventGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Event is emitted by the systems and handed to the front-end in the snapshot.
// Slot and Name identify the enemy involved, when there is one.
// Value carries the coin count for Coin and Goal and the remaining
// hit points for BossHit.
type Event struct {
	Kind  EventKind
	Slot  int
	Name  string
	Value int
}
