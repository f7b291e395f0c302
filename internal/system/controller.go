package system

import "time"

// Controller owns the session transitions that systems only detect. The
// game facade implements it.
type Controller interface {
	CloseShop() bool
	JumpToLevel(level int) bool
	AddCredit()
	PlayerDied()
	WaveCleared()
}

func seconds(dt time.Duration) float64 { return dt.Seconds() }
