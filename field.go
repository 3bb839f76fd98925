package main

// CPU mirror of the displacement and coloring math in shaders/mesh.vert and
// shaders/mesh.frag. The preview renderer draws with these functions and the
// tests pin their behavior, so the constants here must stay in sync with the
// shader sources.

import "math"

const (
	// Ambient drift: slow idle breathing of the whole lattice.
	driftAmp   = 0.012
	driftFreqX = 0.6
	driftFreqY = 0.5

	// Vertical traveling wave.
	waveAmp = 0.03

	// Pointer force field: exponential falloff with oscillating polarity so
	// the field alternately attracts and repels.
	fieldFalloff = 2.3
	fieldPush    = 0.28

	// Speed-driven extras.
	contractAmp = 0.05
	turbAmp     = 0.035
	foldAmp     = 0.022

	// Shockwave ring: radius grows linearly with age, the band widens as it
	// travels, amplitude decays exponentially.
	shockRingSpeed = 1.1
	shockBaseWidth = 0.15
	shockWidthGrow = 0.1
	shockDecay     = 1.4
	shockAmp       = 0.22
)

// fieldParams carries the per-frame scalars the displacement math depends on.
// It mirrors the uniform set uploaded to the vertex stage each frame.
type fieldParams struct {
	Time          float64
	PointerX      float64
	PointerY      float64
	Speed         float64
	ShockX        float64
	ShockY        float64
	ShockAge      float64 // negative when no shock is active
	ShockStrength float64
	Shockwave     bool
	Turbulence    bool
}

// displacePoint applies the full vertex displacement chain to a base lattice
// position (clip space, pre scale/aspect) and returns the displaced position
// plus the two per-vertex signals forwarded to the fragment stage: distance
// to the pointer and accumulated wave energy.
func displacePoint(x, y float64, p fieldParams) (nx, ny, dist, energy float64) {
	// Speed-driven contraction/expansion of the whole point set.
	squeeze := 1.0 - p.Speed*contractAmp*math.Sin(p.Time*2.6)
	nx = x * squeeze
	ny = y * squeeze

	// Ambient drift, each axis on its own low frequency.
	nx += math.Sin(p.Time*driftFreqX+y*1.6) * driftAmp
	ny += math.Cos(p.Time*driftFreqY+x*1.3) * driftAmp

	// Vertical traveling wave.
	wave := math.Sin(x*3.2+p.Time*0.75)*waveAmp + math.Cos(y*2.4-p.Time*0.58)*waveAmp
	ny += wave

	// Pointer force field, oscillating between pull and push.
	dx := p.PointerX - x
	dy := p.PointerY - y
	dist = math.Hypot(dx, dy)
	envelope := math.Exp(-dist * fieldFalloff)
	field := envelope * math.Sin(p.Time*2.0-dist*6.0)
	if dist > 1e-5 {
		nx += dx / dist * field * fieldPush
		ny += dy / dist * field * fieldPush
	}

	if p.Turbulence {
		nx += math.Sin(y*9.0+p.Time*3.1) * p.Speed * turbAmp
		ny += math.Cos(x*8.0-p.Time*2.7) * p.Speed * turbAmp
		fold := math.Sin((x+y)*5.0-p.Time*1.9) * p.Speed * foldAmp
		nx += fold * 0.6
		ny += fold
	}

	ring := 0.0
	if p.Shockwave && p.ShockAge >= 0 {
		sdx := x - p.ShockX
		sdy := y - p.ShockY
		sd := math.Hypot(sdx, sdy)
		radius := p.ShockAge * shockRingSpeed
		width := shockBaseWidth + p.ShockAge*shockWidthGrow
		amp := math.Exp(-p.ShockAge*shockDecay) * shockAmp * p.ShockStrength
		band := 1.0 - smoothstep(0, width, math.Abs(sd-radius))
		ring = band * amp
		if sd > 1e-5 {
			nx += sdx / sd * ring
			ny += sdy / sd * ring
		}
	}

	energy = math.Abs(wave) + envelope*0.6 + p.Speed*0.25 + ring*2.0
	return nx, ny, dist, energy
}

// Line palette.
var (
	coolTone = [3]float64{0.38, 0.62, 1.0}
	warmTone = [3]float64{1.0, 0.47, 0.26}
)

// lineColor mirrors the fragment stage: cool base tone blended toward warm by
// heat, brightness from a constant floor, pointer falloff, wave energy and
// two stacked temporal pulses, then desaturated with pointer distance.
func lineColor(dist, energy, t, heat float64) (r, g, b, a float64) {
	h := clamp(heat, 0, 1)
	r = coolTone[0] + (warmTone[0]-coolTone[0])*h
	g = coolTone[1] + (warmTone[1]-coolTone[1])*h
	b = coolTone[2] + (warmTone[2]-coolTone[2])*h

	pulse := (0.55 + 0.45*math.Sin(t*0.9)) * (0.6 + 0.4*math.Sin(t*1.7-dist*4.0))
	glow := 0.18 + math.Exp(-dist*1.9)*0.55 + energy*0.3 + pulse*0.25

	desat := clamp(dist*0.45, 0, 1)
	lum := 0.299*r + 0.587*g + 0.114*b
	r += (lum - r) * desat
	g += (lum - g) * desat
	b += (lum - b) * desat

	a = clamp(glow, 0, 1) * 0.55
	return r, g, b, a
}

// responsiveScale buckets the window width into the discrete scale factor
// applied to the whole lattice each frame. Boundaries are inclusive on the
// lower bucket.
func responsiveScale(width int) float32 {
	switch {
	case width <= 480:
		return 1.8
	case width <= 768:
		return 1.4
	case width <= 1024:
		return 1.2
	default:
		return 1.0
	}
}

// aspectPair derives the per-axis correction factors that keep lattice cells
// visually regular: wide viewports scale Y up by the aspect ratio, tall
// viewports scale X up by its reciprocal.
func aspectPair(width, height int) (ax, ay float32) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}
	aspect := float64(width) / float64(height)
	if aspect >= 1 {
		return 1, float32(aspect)
	}
	return float32(1 / aspect), 1
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
