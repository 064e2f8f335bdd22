package ops

import (
	"fmt"

	"github.com/katalvlaran/lvflow/registry"
	"github.com/katalvlaran/lvflow/tree"
)

// Series returns the count-element progression start, start+step, ...
// start and step are int32 or float32 leaves of the same kind; count is int32.
func Series(start, step, count tree.Tree) (tree.Tree, error) {
	return call1("series", start, step, count)
}

// ListSum sums a flat list; deeper input is reduced along its last axis only.
func ListSum(list tree.Tree) (tree.Tree, error) {
	return call1("listSum", list)
}

// Repeat returns a branch holding count copies of value.
func Repeat(value, count tree.Tree) (tree.Tree, error) {
	return call1("repeat", value, count)
}

// ListItem returns list[index]. A tree of indices yields one item per index.
func ListItem(list, index tree.Tree) (tree.Tree, error) {
	return call1("listItem", list, index)
}

// ListLength returns the number of elements of a flat list.
func ListLength(list tree.Tree) (tree.Tree, error) {
	return call1("listLength", list)
}

// SubList returns the half-open slice list[start:stop].
func SubList(list, start, stop tree.Tree) (tree.Tree, error) {
	return call1("subList", list, start, stop)
}

// Dispatch splits items by a parallel bool mask into the items with a true
// mask and the items with a false mask, both in their original order.
func Dispatch(items, mask tree.Tree) (trueItems, falseItems tree.Tree, err error) {
	outs, err := Call("dispatch", items, mask)
	if err != nil {
		return tree.Tree{}, tree.Tree{}, err
	}

	return outs[0], outs[1], nil
}

func listOverloads() []registry.Overload {
	var os []registry.Overload
	for _, k := range []tree.Kind{tree.KindInt, tree.KindFloat} {
		os = append(os, seriesOverload(k))
	}
	for _, k := range []tree.Kind{tree.KindInt, tree.KindFloat, tree.KindVec2, tree.KindVec3} {
		os = append(os, listSumOverload(k))
	}
	for _, k := range tree.Kinds() {
		os = append(os,
			repeatOverload(k),
			listItemOverload(k),
			listLengthOverload(k),
			subListOverload(k),
			dispatchOverload(k),
		)
	}

	return os
}

func seriesOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "series",
		Doc:  "Populates a list with members of an arithmetic progression.",
		Inputs: []registry.Param{
			param("start", k, 0, "Start of the series"),
			param("step", k, 0, "Difference between consecutive members of the series"),
			param("count", tree.KindInt, 0, "Number of elements in the series"),
		},
		Outputs: []registry.Output{output("series", k, "The series")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			start, step := args[0].Value(), args[1].Value()
			n := args[2].Value().Int()
			if n < 0 {
				return nil, fmt.Errorf("%w: series count %d", ErrInvalidArgument, n)
			}
			vs := make([]tree.Value, n)
			for i := range vs {
				if k == tree.KindInt {
					vs[i] = tree.Int(start.Int() + int32(i)*step.Int())
				} else {
					vs[i] = tree.Float(start.Float() + float32(i)*step.Float())
				}
			}

			return []tree.Tree{tree.List(k, vs...)}, nil
		},
	}
}

func listSumOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name:    "listSum",
		Doc:     "Sum of all items in the list.",
		Inputs:  []registry.Param{param("list", k, 1, "List")},
		Outputs: []registry.Output{output("sum", k, "Sum of items")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			return leaf(sum(k, args[0].Values()))
		},
	}
}

func repeatOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "repeat",
		Doc:  "Creates a list by repeating the given value the given number of times.",
		Inputs: []registry.Param{
			param("value", k, whole, "The value to be repeated"),
			param("count", tree.KindInt, 0, "Number of times to repeat the value"),
		},
		Outputs: []registry.Output{output("list", k, "Resulting list")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			n := args[1].Value().Int()
			if n < 0 {
				return nil, fmt.Errorf("%w: repeat count %d", ErrInvalidArgument, n)
			}
			cs := make([]tree.Tree, n)
			for i := range cs {
				cs[i] = args[0]
			}

			return []tree.Tree{tree.Branch(k, cs...)}, nil
		},
	}
}

func listItemOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "listItem",
		Doc:  "Gets an item from the list.",
		Inputs: []registry.Param{
			param("list", k, 1, "List"),
			param("index", tree.KindInt, 0, "Index"),
		},
		Outputs: []registry.Output{output("item", k, "Item at the index")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			item, err := args[0].Child(int(args[1].Value().Int()))
			if err != nil {
				return nil, err
			}

			return []tree.Tree{item}, nil
		},
	}
}

func listLengthOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name:    "listLength",
		Doc:     "Length of a list.",
		Inputs:  []registry.Param{param("list", k, 1, "List")},
		Outputs: []registry.Output{output("length", tree.KindInt, "Size of the list")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			return leaf(tree.Int(int32(args[0].Len())))
		},
	}
}

func subListOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "subList",
		Doc:  "Gets the half-open slice [start, stop) of the list.",
		Inputs: []registry.Param{
			param("list", k, 1, "Source list"),
			param("start", tree.KindInt, 0, "Index to start copying from"),
			param("stop", tree.KindInt, 0, "Index to copy until"),
		},
		Outputs: []registry.Output{output("sublist", k, "The sub list")},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			list := args[0]
			start, stop := int(args[1].Value().Int()), int(args[2].Value().Int())
			if start < 0 || stop < start || stop > list.Len() {
				return nil, fmt.Errorf("%w: sub-list [%d, %d) of %d items",
					tree.ErrIndexOutOfRange, start, stop, list.Len())
			}

			return []tree.Tree{tree.Branch(k, list.Children()[start:stop]...)}, nil
		},
	}
}

func dispatchOverload(k tree.Kind) registry.Overload {
	return registry.Overload{
		Name: "dispatch",
		Doc:  "Dispatches elements of a list based on a boolean pattern.",
		Inputs: []registry.Param{
			param("items", k, 1, "Items to be dispatched"),
			param("pattern", tree.KindBool, 1, "Boolean values used to dispatch"),
		},
		Outputs: []registry.Output{
			output("trueItems", k, "Items with true values"),
			output("falseItems", k, "Items with false values"),
		},
		Kernel: func(args []tree.Tree) ([]tree.Tree, error) {
			items, mask := args[0], args[1]
			if items.Len() != mask.Len() {
				return nil, fmt.Errorf("%w: dispatch of %d items by a %d-element pattern",
					tree.ErrShapeMismatch, items.Len(), mask.Len())
			}
			var yes, no []tree.Tree
			for i := 0; i < items.Len(); i++ {
				if mask.At(i).Value().Bool() {
					yes = append(yes, items.At(i))
				} else {
					no = append(no, items.At(i))
				}
			}

			return []tree.Tree{tree.Branch(k, yes...), tree.Branch(k, no...)}, nil
		},
	}
}
