// Package model is the catalog of built-in voxel models. Builders are
// pure data: they populate a grid through its bounds-checked writes
// and never touch the core algorithms. Bilaterally symmetric models
// author only the left half and finish with a grid mirror.
package model

import (
	"fmt"
	"strings"

	"github.com/MushroomFleet/voxelprops"
)

// Kind enumerates the built-in models.
type Kind uint8

const (
	Human Kind = iota
	Robot
	Car
	Tree
	House
	Cube
	Sphere

	numKinds
)

var kindNames = [numKinds]string{
	Human:  "human",
	Robot:  "robot",
	Car:    "car",
	Tree:   "tree",
	House:  "house",
	Cube:   "cube",
	Sphere: "sphere",
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Parse resolves a model name. Names are case-insensitive.
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("model: unknown kind %q", name)
}

// Kinds returns all model kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// builders is the closed variant→builder table. Symmetric entries
// author x < ⌈size/2⌉ only; Build mirrors and flags them.
var builders = [numKinds]struct {
	symmetric bool
	build     func(*voxelprops.Grid)
}{
	Human:  {symmetric: true, build: buildHuman},
	Robot:  {symmetric: true, build: buildRobot},
	Car:    {symmetric: true, build: buildCar},
	Tree:   {symmetric: true, build: buildTree},
	House:  {symmetric: true, build: buildHouse},
	Cube:   {build: buildCube},
	Sphere: {build: buildSphere},
}

// MinSize is the smallest grid the builders produce sensible output
// for.
const MinSize = 4

// Build populates a fresh size³ grid with the given model.
func Build(k Kind, size int) (*voxelprops.Grid, error) {
	if k >= numKinds {
		return nil, fmt.Errorf("model: unknown kind %d", uint8(k))
	}
	if size < MinSize {
		return nil, fmt.Errorf("model: size %d below minimum %d", size, MinSize)
	}
	g := voxelprops.New(size)
	b := builders[k]
	b.build(g)
	if b.symmetric {
		voxelprops.MirrorX(g)
		g.SetSymmetric(true)
	}
	return g, nil
}
