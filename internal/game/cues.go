package game

// Cue is a sound the simulation asks the audio layer to play.
type Cue int

const (
	CueJump Cue = iota
	CueLanding
	CueCoin
	CueBurst
	CueCharge
	CueSplash
	CueThunder
	CueRoar
	CueLurking // Loops until stopped
	CueZap
	CueAlert
)

var cueNames = [...]string{
	CueJump:    "jump",
	CueLanding: "landing",
	CueCoin:    "coin",
	CueBurst:   "burst",
	CueCharge:  "charge",
	CueSplash:  "splash",
	CueThunder: "thunder",
	CueRoar:    "roar",
	CueLurking: "lurking",
	CueZap:     "zap",
	CueAlert:   "alert",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Looping reports whether the cue plays until explicitly stopped.
func (c Cue) Looping() bool {
	return c == CueLurking
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	cues := make([]Cue, len(cueNames))
	for i := range cueNames {
		cues[i] = Cue(i)
	}
	return cues
}

// CueSink receives sound cues. Implementations must not block.
type CueSink interface {
	Play(c Cue)
	Stop(c Cue)
}

type nopSink struct{}

func (nopSink) Play(Cue) {}
func (nopSink) Stop(Cue) {}

// CueRecorder is a CueSink that remembers what it was asked to play.
// The headless simulator uses it to report cue counts.
type CueRecorder struct {
	Played  []Cue
	Stopped []Cue
}

// Play records c.
func (r *CueRecorder) Play(c Cue) { r.Played = append(r.Played, c) }

// Stop records c.
func (r *CueRecorder) Stop(c Cue) { r.Stopped = append(r.Stopped, c) }

// Count returns how many times c was played.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}
