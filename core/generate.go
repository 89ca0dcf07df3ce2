package core

import (
	"math"
	"math/rand/v2"

	"github.com/unc-data110/hoopstats/schema"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a random source for a single render.
// A zero seed draws fresh entropy so every render shows new noise;
// any other seed reproduces the same samples on every render.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateScatter draws the efficiency vs win percentage sample for a metric.
// Win percentage rises with ADJOE and falls with ADJDE along a 0.6 slope over
// the efficiency range, with uniform noise, clamped to [0,1].
func GenerateScatter(src *rand.Rand, metric schema.Metric) []schema.ScatterPoint {
	src = ensureSource(src)
	efficiency := distuv.Uniform{Min: schema.EfficiencyMin, Max: schema.EfficiencyMax, Src: src}
	noise := distuv.Uniform{Min: -schema.ScatterNoiseSpread / 2, Max: schema.ScatterNoiseSpread / 2, Src: src}

	points := make([]schema.ScatterPoint, 0, schema.ScatterSampleSize)
	for range schema.ScatterSampleSize {
		x := efficiency.Rand()
		y := targetWinPct(metric, x) + noise.Rand()
		points = append(points, schema.ScatterPoint{X: x, Y: clamp01(y)})
	}
	return points
}

// targetWinPct maps an efficiency value onto the noiseless trend line.
// Anything other than ADJOE follows the defensive trend.
func targetWinPct(metric schema.Metric, x float64) float64 {
	progress := (x - schema.EfficiencyMin) / (schema.EfficiencyMax - schema.EfficiencyMin) * schema.ScatterSlope
	if metric == schema.ADJOE {
		return schema.OffenseBaseline + progress
	}
	return schema.DefenseBaseline - progress
}

// GenerateResiduals draws the residual diagnostics sample. The two fields are
// independent: predicted in [0,1) and residual in [-0.15,0.15).
func GenerateResiduals(src *rand.Rand) []schema.ResidualPoint {
	src = ensureSource(src)
	predicted := distuv.Uniform{Min: 0, Max: 1, Src: src}
	residual := distuv.Uniform{Min: -schema.ResidualSpread / 2, Max: schema.ResidualSpread / 2, Src: src}

	points := make([]schema.ResidualPoint, 0, schema.ResidualSampleSize)
	for range schema.ResidualSampleSize {
		points = append(points, schema.ResidualPoint{Predicted: predicted.Rand(), Residual: residual.Rand()})
	}
	return points
}

// GeneratePermutationCurve returns the Gaussian-shaped null distribution of
// the permutation test. The curve has no randomness.
func GeneratePermutationCurve() []schema.CurvePoint {
	points := make([]schema.CurvePoint, 0, schema.PermutationCurveSize)
	for i := range schema.PermutationCurveSize {
		x := schema.PermutationXMin + float64(i)/schema.PermutationCurveSize*schema.PermutationXSpan
		d := x - schema.PermutationCenter
		y := math.Exp(-(d*d)/schema.PermutationVariance) * schema.PermutationPeak
		points = append(points, schema.CurvePoint{X: x, Y: y})
	}
	return points
}

// ScatterCorrelation returns the Pearson correlation between efficiency and win percentage.
// It is NaN for fewer than two points.
func ScatterCorrelation(points []schema.ScatterPoint) float64 {
	if len(points) < 2 {
		return math.NaN()
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return stat.Correlation(xs, ys, nil)
}

func ensureSource(src *rand.Rand) *rand.Rand {
	if src == nil {
		return NewSource(0)
	}
	return src
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
