package ops

import (
	"math"

	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// MapValueToColor maps value, relative to the [lo, hi] limits in valueRange,
// onto a color scheme (a list of vec3 colors), interpolating linearly between
// neighbouring colors. Values outside the range clamp to the end colors and an
// empty scheme maps everything to black.
func MapValueToColor(value, valueRange, scheme tree.Tree) (tree.Tree, error) {
	return call1("mapValueToColor", value, valueRange, scheme)
}

func colorOverloads() []registry.Overload {
	return []registry.Overload{{
		Name: "mapValueToColor",
		Doc:  "Maps the given value w.r.t to the range to a color according to the provided color scheme.",
		Inputs: []registry.Param{
			param("value", tree.KindFloat, 0, "The value to be mapped"),
			param("range", tree.KindVec2, 0, "Limits of the value"),
			param("colorScheme", tree.KindVec3, 1, "Color scheme"),
		},
		Outputs: []registry.Output{output("color", tree.KindVec3, "Mapped color")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			return leaf(mapToScheme(args[0].Value().Float(), args[1].Value().Vec2(), args[2].Values()))
		},
	}}
}

func mapToScheme(v float32, limits [2]float32, scheme []tree.Value) tree.Value {
	if len(scheme) == 0 {
		return tree.Vec3(0, 0, 0)
	}
	r := float64(len(scheme)-1) * clamp01(unitPosition(v, limits))
	fr := math.Floor(r)
	i, j := int(fr), int(math.Ceil(r))
	f := float32(r - fr)

	return addValues(scaleValue(scheme[i], 1-f), scaleValue(scheme[j], f))
}

// unitPosition is (v - lo) / (hi - lo). A zero-width range puts v at 0 when
// v <= lo and at 1 otherwise.
func unitPosition(v float32, limits [2]float32) float64 {
	lo, hi := float64(limits[0]), float64(limits[1])
	if hi == lo {
		if float64(v) <= lo {
			return 0
		}
		return 1
	}

	return (float64(v) - lo) / (hi - lo)
}

// clamp01 clamps x to [0, 1]; NaN maps to 0.
func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
