package ops

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvflow/broadcast"
	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// Add returns a+b leafwise, broadcasting shapes.
func Add(a, b tree.Tree) (tree.Tree, error) { return call1("add", a, b) }

// Sub returns a-b leafwise.
func Sub(a, b tree.Tree) (tree.Tree, error) { return call1("sub", a, b) }

// Mul returns a*b leafwise; vectors may be scaled by float32 leaves.
func Mul(a, b tree.Tree) (tree.Tree, error) { return call1("mul", a, b) }

// Div returns a/b leafwise. Integer division truncates toward zero and fails
// with ErrDivisionByZero on a zero divisor.
func Div(a, b tree.Tree) (tree.Tree, error) { return call1("div", a, b) }

// Min returns the leafwise minimum of a and b.
func Min(a, b tree.Tree) (tree.Tree, error) { return call1("min", a, b) }

// Max returns the leafwise maximum of a and b.
func Max(a, b tree.Tree) (tree.Tree, error) { return call1("max", a, b) }

// Pow returns base**power leafwise.
func Pow(base, power tree.Tree) (tree.Tree, error) { return call1("pow", base, power) }

// Sqrt returns the leafwise square root.
func Sqrt(x tree.Tree) (tree.Tree, error) { return call1("sqrt", x) }

// ToString renders int32 or float32 leaves as strings.
func ToString(x tree.Tree) (tree.Tree, error) { return call1("toString", x) }

// MakeVec2 builds vec2 leaves from float32 components.
func MakeVec2(x, y tree.Tree) (tree.Tree, error) { return call1("vec2", x, y) }

// MakeVec3 builds vec3 leaves from float32 components.
func MakeVec3(x, y, z tree.Tree) (tree.Tree, error) { return call1("vec3", x, y, z) }

// binaryOp is one arithmetic operator: its doc, output name and the kernels
// it provides for int32 and float32 operands.
type binaryOp struct {
	name, doc, out string
	ints           func(a, b int32) (int32, error)
	floats         func(a, b float32) float32
}

var binaryOps = []binaryOp{
	{
		name: "add", doc: "Adds two numbers.", out: "sum",
		ints:   func(a, b int32) (int32, error) { return a + b, nil },
		floats: func(a, b float32) float32 { return a + b },
	},
	{
		name: "sub", doc: "Subtracts the second number from the first.", out: "difference",
		ints:   func(a, b int32) (int32, error) { return a - b, nil },
		floats: func(a, b float32) float32 { return a - b },
	},
	{
		name: "mul", doc: "Multiplies two numbers.", out: "product",
		ints:   func(a, b int32) (int32, error) { return a * b, nil },
		floats: func(a, b float32) float32 { return a * b },
	},
	{
		name: "div", doc: "Divides the first number by the second.", out: "quotient",
		ints: func(a, b int32) (int32, error) {
			if b == 0 {
				return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
			}
			return a / b, nil
		},
		floats: func(a, b float32) float32 { return a / b },
	},
	{
		name: "min", doc: "Smaller of two numbers.", out: "min",
		ints:   func(a, b int32) (int32, error) { return min(a, b), nil },
		floats: func(a, b float32) float32 { return float32(math.Min(float64(a), float64(b))) },
	},
	{
		name: "max", doc: "Larger of two numbers.", out: "max",
		ints:   func(a, b int32) (int32, error) { return max(a, b), nil },
		floats: func(a, b float32) float32 { return float32(math.Max(float64(a), float64(b))) },
	},
}

// floatFuncs are the unary float32 functions.
var floatFuncs = []struct {
	name, doc string
	f         func(float64) float64
}{
	{"sin", "Sine of the angle in radians.", math.Sin},
	{"cos", "Cosine of the angle in radians.", math.Cos},
	{"tan", "Tangent of the angle in radians.", math.Tan},
	{"arcsin", "Inverse sine, in radians.", math.Asin},
	{"arccos", "Inverse cosine, in radians.", math.Acos},
	{"arctan", "Inverse tangent, in radians.", math.Atan},
	{"sqrt", "Square root.", math.Sqrt},
}

func mathOverloads() []registry.Overload {
	var os []registry.Overload
	for _, op := range binaryOps {
		os = append(os, op.intOverload(), op.floatOverload())
	}
	for _, vk := range []tree.Kind{tree.KindVec2, tree.KindVec3} {
		os = append(os,
			leafOverload("add", "Adds two vectors.", []registry.Param{param("a", vk, 0, ""), param("b", vk, 0, "")},
				output("sum", vk, ""), func(vs []tree.Value) (tree.Value, error) { return addValues(vs[0], vs[1]), nil }),
			leafOverload("sub", "Subtracts the second vector from the first.", []registry.Param{param("a", vk, 0, ""), param("b", vk, 0, "")},
				output("difference", vk, ""), func(vs []tree.Value) (tree.Value, error) { return subValues(vs[0], vs[1]), nil }),
			leafOverload("mul", "Scales a vector.", []registry.Param{param("v", vk, 0, ""), param("s", tree.KindFloat, 0, "")},
				output("product", vk, ""), func(vs []tree.Value) (tree.Value, error) { return scaleValue(vs[0], vs[1].Float()), nil }),
		)
	}
	for _, ff := range floatFuncs {
		f := ff.f
		os = append(os, leafOverload(ff.name, ff.doc, []registry.Param{param("x", tree.KindFloat, 0, "")},
			output("result", tree.KindFloat, ""), func(vs []tree.Value) (tree.Value, error) {
				return tree.Float(float32(f(float64(vs[0].Float())))), nil
			}))
	}
	os = append(os,
		leafOverload("pow", "Raises the base to the given power.",
			[]registry.Param{param("base", tree.KindFloat, 0, ""), param("power", tree.KindFloat, 0, "")},
			output("result", tree.KindFloat, ""), func(vs []tree.Value) (tree.Value, error) {
				return tree.Float(float32(math.Pow(float64(vs[0].Float()), float64(vs[1].Float())))), nil
			}),
		leafOverload("toString", "Converts the input data to string.",
			[]registry.Param{param("src", tree.KindInt, 0, "The source data")},
			output("result", tree.KindString, "String result"), func(vs []tree.Value) (tree.Value, error) {
				return tree.Str(strconv.FormatInt(int64(vs[0].Int()), 10)), nil
			}),
		leafOverload("toString", "Converts the input data to string.",
			[]registry.Param{param("src", tree.KindFloat, 0, "The source data")},
			output("result", tree.KindString, "String result"), func(vs []tree.Value) (tree.Value, error) {
				return tree.Str(strconv.FormatFloat(float64(vs[0].Float()), 'f', 6, 32)), nil
			}),
		leafOverload("vec2", "Creates a 2d vector from its coordinates.",
			[]registry.Param{param("x", tree.KindFloat, 0, ""), param("y", tree.KindFloat, 0, "")},
			output("vector", tree.KindVec2, ""), func(vs []tree.Value) (tree.Value, error) {
				return tree.Vec2(vs[0].Float(), vs[1].Float()), nil
			}),
		leafOverload("vec3", "Creates a 3d vector from its coordinates.",
			[]registry.Param{param("x", tree.KindFloat, 0, ""), param("y", tree.KindFloat, 0, ""), param("z", tree.KindFloat, 0, "")},
			output("vector", tree.KindVec3, ""), func(vs []tree.Value) (tree.Value, error) {
				return tree.Vec3(vs[0].Float(), vs[1].Float(), vs[2].Float()), nil
			}),
	)

	return os
}

func (op binaryOp) intOverload() registry.Overload {
	return leafOverload(op.name, op.doc,
		[]registry.Param{param("a", tree.KindInt, 0, ""), param("b", tree.KindInt, 0, "")},
		output(op.out, tree.KindInt, ""),
		func(vs []tree.Value) (tree.Value, error) {
			r, err := op.ints(vs[0].Int(), vs[1].Int())
			if err != nil {
				return tree.Value{}, err
			}
			return tree.Int(r), nil
		})
}

func (op binaryOp) floatOverload() registry.Overload {
	return leafOverload(op.name, op.doc,
		[]registry.Param{param("a", tree.KindFloat, 0, ""), param("b", tree.KindFloat, 0, "")},
		output(op.out, tree.KindFloat, ""),
		func(vs []tree.Value) (tree.Value, error) {
			return tree.Float(op.floats(vs[0].Float(), vs[1].Float())), nil
		})
}

// leafOverload builds an overload whose inputs are all scalars.
func leafOverload(name, doc string, in []registry.Param, out registry.Output, f broadcast.LeafFunc) registry.Overload {
	_, k := broadcast.Elementwise(len(in), out.Kind, f)

	return registry.Overload{
		Name:    name,
		Doc:     doc,
		Inputs:  in,
		Outputs: []registry.Output{out},
		Kernel:  k,
	}
}

// sum adds vs as values of kind k; an empty slice sums to zero.
func sum(k tree.Kind, vs []tree.Value) tree.Value {
	acc := zero(k)
	for _, v := range vs {
		acc = addValues(acc, v)
	}

	return acc
}

func zero(k tree.Kind) tree.Value {
	switch k {
	case tree.KindFloat:
		return tree.Float(0)
	case tree.KindVec2:
		return tree.Vec2(0, 0)
	case tree.KindVec3:
		return tree.Vec3(0, 0, 0)
	default:
		return tree.Int(0)
	}
}

func addValues(a, b tree.Value) tree.Value {
	switch a.Kind() {
	case tree.KindInt:
		return tree.Int(a.Int() + b.Int())
	case tree.KindFloat:
		return tree.Float(a.Float() + b.Float())
	case tree.KindVec2:
		x, y := a.Vec2(), b.Vec2()
		return tree.Vec2(x[0]+y[0], x[1]+y[1])
	case tree.KindVec3:
		x, y := a.Vec3(), b.Vec3()
		return tree.Vec3(x[0]+y[0], x[1]+y[1], x[2]+y[2])
	default:
		return a
	}
}

func subValues(a, b tree.Value) tree.Value {
	return addValues(a, scaleValue(b, -1))
}

func scaleValue(v tree.Value, s float32) tree.Value {
	switch v.Kind() {
	case tree.KindVec2:
		c := v.Vec2()
		return tree.Vec2(c[0]*s, c[1]*s)
	case tree.KindVec3:
		c := v.Vec3()
		return tree.Vec3(c[0]*s, c[1]*s, c[2]*s)
	default:
		return tree.Float(v.Float() * s)
	}
}
