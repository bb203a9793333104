package game

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/penguin-jump/internal/core"
)

// Visual characters for rendering
const (
	IceChar       = '█'
	IceSinkChar   = '▓'
	IceMeltChar   = '▒'
	CoinChar      = 'o'
	CoinRiseChar  = '*'
	ParticleChar  = '•'
	CloudChar     = '≈'
	WarnChar      = '!'
	FinChar       = '▲'
	WaveChar      = '~'
	RippleChar    = '~'
	ShadowChar    = '▁'
	ChargeFull    = '█'
	ChargeEmpty   = '░'
	hudRows       = 2
	chargeBarCols = 20
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	r := renderer{s: g.session, dst: dst}
	r.draw()

	switch {
	case g.paused:
		drawMessage(dst, "PAUSED", "P resume  ·  R restart  ·  B menu  ·  Q quit")
	case g.session.ResultsReady:
		r.results()
	case g.session.Over:
		dst.DrawTextCentered(dst.Height()/2, " SPLASH! ", core.ColorBrightWhite)
	}
}

type renderer struct {
	s   *Session
	dst *core.Screen
}

func (r *renderer) draw() {
	s := r.s
	if s.Storm.Flashing() {
		r.dst.SetBackground(190, 215, 255)
	} else {
		r.dst.SetBackground(s.Storm.Tint())
	}

	r.water()
	for _, p := range s.Platforms.All() {
		r.platform(p)
	}
	for _, h := range s.Hazards.All() {
		r.hazard(h)
	}
	r.rain()
	r.player()
	r.particles()
	r.hud()
}

// toScreen maps a world point onto a cell.
func (r *renderer) toScreen(p core.Vec2) (int, int) {
	cam := r.s.Camera.Pos.Add(r.s.Camera.Offset)
	rc := r.s.Cfg.Render
	x := float64(r.dst.Width())/2 + (p.X-cam.X)/rc.UnitsPerColumn
	y := float64(r.dst.Height())/2 - (p.Y-cam.Y)/rc.UnitsPerRow
	return int(math.Floor(x)), int(math.Floor(y))
}

// toRect maps a world box onto the cells it covers.
func (r *renderer) toRect(b core.Box) core.Rect {
	x0, y0 := r.toScreen(core.V(b.MinX(), b.MaxY()))
	x1, y1 := r.toScreen(core.V(b.MaxX(), b.MinY()))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (r *renderer) water() {
	s := r.s
	rc := s.Cfg.Render
	cam := s.Camera.Pos
	mod := 11
	if s.Storm.Active {
		mod = 5
	}
	shift := int(s.Time * 2 * (1 + 3*s.Storm.Intensity))
	for y := hudRows; y < r.dst.Height(); y++ {
		wy := int(math.Floor(cam.Y/rc.UnitsPerRow)) - y
		for x := 0; x < r.dst.Width(); x++ {
			wx := int(math.Floor(cam.X/rc.UnitsPerColumn)) + x
			if ((wx+shift)*7+wy*13)%mod == 0 {
				r.dst.SetColored(x, y, RippleChar, core.ColorBlue)
			}
		}
	}
}

func (r *renderer) platform(p *Platform) {
	rect := r.toRect(p.Footprint())
	if p.StormBob {
		rect.X += int(math.Round(math.Sin(r.s.Time*3 + p.BobPhase)))
	}

	ch, color := IceChar, core.ColorBrightWhite
	switch prog := p.SinkProgress(); {
	case prog > 0.66:
		ch, color = IceMeltChar, core.ColorCyan
	case prog > 0.33:
		ch, color = IceSinkChar, core.ColorWhite
	case p.State != PlatformFloating:
		color = core.ColorWhite
	}
	for y := core.Max(rect.Y, hudRows); y < rect.Bottom(); y++ {
		r.dst.DrawHLine(rect.X, y, rect.W, ch, color)
	}
}

func (r *renderer) hazard(h *Hazard) {
	x, y := r.toScreen(h.Pos)
	if y < hudRows {
		return
	}
	switch h.Kind {
	case HazardCoin:
		if h.State == CoinFloating {
			r.dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
		} else {
			rise := int(h.Timer / math.Max(r.s.Cfg.Charge.Rise, 0.01) * 2)
			r.dst.SetColored(x, y-rise, CoinRiseChar, core.ColorBrightYellow)
		}
	case HazardLightning:
		r.lightning(h, x, y)
	case HazardShark:
		r.shark(h, x, y)
	}
}

func (r *renderer) lightning(h *Hazard, x, y int) {
	sc := r.s.Cfg.Spawn
	area := r.toRect(core.BoxAt(h.Pos, sc.StrikeWidth, sc.StrikeHeight))
	switch h.State {
	case LightningIdle:
		r.dst.DrawTextColored(x-1, y-2, strings.Repeat(string(CloudChar), 3), core.ColorGray)
	case LightningCharging:
		r.dst.DrawTextColored(x-1, y-2, strings.Repeat(string(CloudChar), 3), core.ColorWhite)
		if int(h.Timer*8)%2 == 0 {
			r.dst.SetColored(x, y, WarnChar, core.ColorYellow)
		}
	case LightningActive, LightningStruck:
		for yy := area.Y; yy < area.Bottom(); yy++ {
			for xx := area.X; xx < area.Right(); xx++ {
				bolt := '/'
				if (xx+yy)%2 == 0 {
					bolt = '\\'
				}
				r.dst.SetColored(xx, yy, bolt, core.ColorBrightYellow)
			}
		}
	}
}

func (r *renderer) shark(h *Hazard, x, y int) {
	pc := r.s.Cfg.Player
	half := int(pc.WaveWidth / r.s.Cfg.Render.UnitsPerColumn / 2)
	for dx := -half; dx <= half; dx++ {
		r.dst.SetColored(x+dx, y, WaveChar, core.ColorWhite)
	}
	color := core.ColorGray
	if h.KillBegun() {
		color = core.ColorRed
	}
	r.dst.SetColored(x, y, FinChar, color)
}

func (r *renderer) rain() {
	drop := '|'
	switch {
	case r.s.Storm.WindSpeed > 10:
		drop = '/'
	case r.s.Storm.WindSpeed < -10:
		drop = '\\'
	}
	for _, d := range r.s.Rain {
		x, y := r.toScreen(d.Pos)
		if y >= hudRows {
			r.dst.SetColored(x, y, drop, core.ColorBrightBlue)
		}
	}
}

func (r *renderer) player() {
	p := &r.s.Player
	rc := r.s.Cfg.Render

	fx, fy := r.toScreen(p.Pos)
	if p.InAir {
		r.dst.DrawTextColored(fx-1, fy, strings.Repeat(string(ShadowChar), 3), core.ColorNavy)
	}

	lift := int(math.Round(p.Lift / rc.UnitsPerRow))
	bx, by := fx, fy-lift

	color := p.Character.Color
	switch {
	case p.Captured:
		color = core.ColorRed
	case p.HitByShock && int(r.s.Time*10)%2 == 0:
		color = core.ColorBrightYellow
	}

	r.dst.DrawTextColored(bx-1, by-1, "/█\\", color)
	r.dst.DrawTextColored(bx-1, by-2, "(o>", color)
	if hat := p.Character.Hat; hat != "" {
		r.dst.DrawTextColored(bx-1, by-3, hat, color)
	}

	switch {
	case p.Aim < 0:
		r.dst.SetColored(bx-3, by-1, '←', core.ColorBrightYellow)
	case p.Aim > 0:
		r.dst.SetColored(bx+3, by-1, '→', core.ColorBrightYellow)
	}
}

func (r *renderer) particles() {
	barX := r.dst.Width() - chargeBarCols - 2
	r.s.Effects.Each(func(e *Effect) {
		if e.Kind != EffectParticle || !e.Started() {
			return
		}
		sx, sy := r.toScreen(e.From)
		t := core.EaseOut(e.Progress())
		x := int(core.Lerp(float64(sx), float64(barX), t))
		y := int(core.Lerp(float64(sy), 1, t))
		r.dst.SetColored(x, y, ParticleChar, core.ColorBrightYellow)
	})
}

func (r *renderer) hud() {
	s := r.s
	w := r.dst.Width()
	r.dst.DrawHLine(0, 0, w, ' ', core.ColorDefault)
	r.dst.DrawHLine(0, 1, w, ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score %d   Best %d   Coins %d   Height %dm",
		s.Score.Score, s.Score.HighScore, s.Score.SessionCoins, int(s.Height()/10))
	r.dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	bank := fmt.Sprintf(" Bank %d", s.Score.LifetimeCoins)
	r.dst.DrawTextColored(0, 1, bank, core.ColorYellow)

	status, color := "", core.ColorDefault
	switch s.Storm.Phase() {
	case PhaseRampingUp:
		status, color = "STORM BREWING", core.ColorCyan
	case PhaseSustained:
		status, color = "STORM", core.ColorMagenta
	case PhaseRampingDown:
		status, color = "STORM EASING", core.ColorCyan
	}
	if status != "" {
		r.dst.DrawTextColored(w-utf8.RuneCountInString(status)-1, 0, status, color)
	}

	barX := w - chargeBarCols - 2
	filled := 0
	if c := s.Cfg.Charge.Capacity; c > 0 {
		filled = int(math.Round(s.Score.Charge / c * chargeBarCols))
	}
	barColor := core.ColorBrightYellow
	if s.Storm.Active {
		barColor = core.ColorMagenta
	}
	r.dst.SetColored(barX-1, 1, '[', core.ColorWhite)
	for i := 0; i < chargeBarCols; i++ {
		if i < filled {
			r.dst.SetColored(barX+i, 1, ChargeFull, barColor)
		} else {
			r.dst.SetColored(barX+i, 1, ChargeEmpty, core.ColorGray)
		}
	}
	r.dst.SetColored(barX+chargeBarCols, 1, ']', core.ColorWhite)
}

func (r *renderer) results() {
	s := r.s
	lines := []string{
		fmt.Sprintf("Score: %d   Best: %d", s.Score.Score, s.Score.HighScore),
		fmt.Sprintf("Coins: +%d   Bank: %d", s.Score.SessionCoins, s.Score.LifetimeCoins),
	}
	if s.Score.NewHigh {
		lines = append(lines, "NEW HIGH SCORE!")
	}
	lines = append(lines, "R restart  ·  B menu  ·  Q quit")
	drawMessage(r.dst, "GAME OVER", lines...)
}

// drawMessage draws a boxed message in the center of the screen.
func drawMessage(dst *core.Screen, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
