package world

import "github.com/l1jgo/invaders/internal/core/event"

// Sound presets for everything the simulation can emit.
var (
	CueShot       = Cue{Kind: event.CueFire, Wave: event.WaveSquare, Pitch: 900, EndPitch: 420, Duration: 0.07, Gain: 0.05}
	CueDroneShot  = Cue{Kind: event.CueFire, Wave: event.WaveSquare, Pitch: 1200, EndPitch: 700, Duration: 0.05, Gain: 0.03}
	CueEnemyShot  = Cue{Kind: event.CueFire, Wave: event.WaveTriangle, Pitch: 520, EndPitch: 240, Duration: 0.06, Gain: 0.04}
	CueBomb       = Cue{Kind: event.CueFire, Wave: event.WaveTriangle, Pitch: 180, EndPitch: 90, Duration: 0.15, Gain: 0.05}
	CueHit        = Cue{Kind: event.CueHit, Wave: event.WaveSawtooth, Pitch: 160, EndPitch: 160, Duration: 0.12, Gain: 0.06}
	CueLaserHit   = Cue{Kind: event.CueHit, Wave: event.WaveSawtooth, Pitch: 200, EndPitch: 200, Duration: 0.08, Gain: 0.05}
	CueBomberHit  = Cue{Kind: event.CueHit, Wave: event.WaveSawtooth, Pitch: 120, EndPitch: 120, Duration: 0.18, Gain: 0.08}
	CueInvaderHit = Cue{Kind: event.CueHit, Wave: event.WaveSquare, Pitch: 330, EndPitch: 220, Duration: 0.04, Gain: 0.02}
	CueExplosion  = Cue{Kind: event.CueExplosion, Wave: event.WaveSawtooth, Pitch: 140, EndPitch: 40, Duration: 0.35, Gain: 0.08}
	CuePickup     = Cue{Kind: event.CuePickup, Wave: event.WaveSine, Pitch: 660, EndPitch: 1320, Duration: 0.12, Gain: 0.05}
	CueHeal       = Cue{Kind: event.CuePickup, Wave: event.WaveSine, Pitch: 440, EndPitch: 660, Duration: 0.1, Gain: 0.03}
	CueLaser      = Cue{Kind: event.CueLaser, Wave: event.WaveSawtooth, Pitch: 220, EndPitch: 110, Duration: 0.2, Gain: 0.05}
	CueBeatHigh   = Cue{Kind: event.CueBeat, Wave: event.WaveSquare, Pitch: 110, EndPitch: 110, Duration: 0.09, Gain: 0.05}
	CueBeatLow    = Cue{Kind: event.CueBeat, Wave: event.WaveSquare, Pitch: 82.4, EndPitch: 82.4, Duration: 0.09, Gain: 0.05}
	CuePurchase   = Cue{Kind: event.CuePurchase, Wave: event.WaveSquare, Pitch: 660, EndPitch: 1320, Duration: 0.12, Gain: 0.05}
)
