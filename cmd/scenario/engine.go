package main

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"

	"github.com/milk9111/collider/prefabs"
	"github.com/milk9111/collider/sim"
)

// runner owns at most one live world at a time, the same contract the UI
// holds: start tears down any previous world before building the next.
type runner struct {
	spec  *prefabs.WorldSpec
	world *sim.World
}

func newRunner(spec *prefabs.WorldSpec) *runner {
	return &runner{spec: spec}
}

func (r *runner) teardown() {
	if r == nil || r.world == nil {
		return
	}
	r.world.Stop()
	r.world = nil
}

// engine builds the immutable function map scripts see as `world`.
func (r *runner) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["start"] = &tengo.UserFunction{Name: "start", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 4 {
			return nil, fmt.Errorf("start(left_size, left_material, right_size, right_material)")
		}
		leftMat, err := sim.ParseMaterial(objectAsString(args[1]))
		if err != nil {
			return nil, err
		}
		rightMat, err := sim.ParseMaterial(objectAsString(args[3]))
		if err != nil {
			return nil, err
		}

		r.teardown()
		world, err := sim.NewWorld(sim.Config{
			ArenaWidth:    r.spec.ArenaWidth,
			ArenaHeight:   r.spec.ArenaHeight,
			LeftSize:      objectAsFloat(args[0]),
			LeftMaterial:  leftMat,
			RightSize:     objectAsFloat(args[2]),
			RightMaterial: rightMat,
			Tuning:        r.spec.Tuning(),
		})
		if err != nil {
			return nil, err
		}
		r.world = world
		return tengo.TrueValue, nil
	}}

	values["step"] = &tengo.UserFunction{Name: "step", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n := 1
		if len(args) > 0 {
			n = int(objectAsFloat(args[0]))
		}
		for i := 0; i < n; i++ {
			r.world.Step()
		}
		return tengo.UndefinedValue, nil
	}}

	values["reset"] = &tengo.UserFunction{Name: "reset", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.teardown()
		return tengo.UndefinedValue, nil
	}}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(r.world.Tick())}, nil
	}}

	values["left_speed"] = &tengo.UserFunction{Name: "left_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil {
			return &tengo.Float{Value: 0}, nil
		}
		left, _ := r.world.Speeds()
		return &tengo.Float{Value: left}, nil
	}}

	values["right_speed"] = &tengo.UserFunction{Name: "right_speed", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if r.world == nil {
			return &tengo.Float{Value: 0}, nil
		}
		_, right := r.world.Speeds()
		return &tengo.Float{Value: right}, nil
	}}

	values["left_deform"] = &tengo.UserFunction{Name: "left_deform", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return deformName(r.world, r.world.Left), nil
	}}

	values["right_deform"] = &tengo.UserFunction{Name: "right_deform", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return deformName(r.world, r.world.Right), nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func deformName(w *sim.World, body func() *sim.Body) tengo.Object {
	if w == nil {
		return &tengo.String{Value: "none"}
	}
	return &tengo.String{Value: body().Deform().String()}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) float64 {
	switch v := obj.(type) {
	case *tengo.Int:
		return float64(v.Value)
	case *tengo.Float:
		return v.Value
	}
	return 0
}
