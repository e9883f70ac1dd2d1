// component/enemy.go
package component

// Enemy is a live wave enemy. Reward, Points, and MaxHealth carry the
// wave-scaled values computed at spawn time.
type Enemy struct {
	DefID     string
	Number    int // 1-9 for numeric kinds, 0 for the boss
	IsBoss    bool
	MaxHealth int
	Reward    int
	Points    int
}
