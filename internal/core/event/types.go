package event

// CueKind names a discrete audio cue.
type CueKind int

const (
	CueFire CueKind = iota
	CueHit
	CueExplosion
	CuePickup
	CueBeat
	CueLaser
	CuePurchase
)

func (k CueKind) String() string {
	switch k {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	case CuePickup:
		return "pickup"
	case CueBeat:
		return "beat"
	case CueLaser:
		return "laser"
	case CuePurchase:
		return "purchase"
	}
	return "unknown"
}

// Waveform is the oscillator shape a sink should use for a cue.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveSawtooth
	WaveSine
)

// Cue is a fire-and-forget sound request. Pitch and EndPitch are in Hz; a
// sink sweeps exponentially between them over Duration seconds while the
// gain decays from Gain to silence.
type Cue struct {
	Kind     CueKind
	Wave     Waveform
	Pitch    float64
	EndPitch float64
	Duration float64
	Gain     float64
}

type WaveStarted struct {
	Level    int
	Invaders int
	Elite    bool
}

type WaveCleared struct {
	Level   int
	Credits int
}

type ShopOpened struct {
	Level  int
	Offers []string
}

type UpgradePurchased struct {
	ID     string
	Stacks int
	Price  int
}

type PlayerDied struct {
	Level   int
	Score   int
	Credits int
}

type SessionWon struct {
	Score int
}
