package main

import (
	"encoding/binary"

	"github.com/hubastard/oneroom/engine/gfx"
)

type vertex struct {
	Pos [3]float32
	UV  [2]float32
}

// quadLayout matches vertex: POSITION then TEXCOORD.
func quadLayout() *gfx.Layout {
	return new(gfx.Layout).
		Add("POSITION", gfx.FormatRGB32Float).
		Add("TEXCOORD", gfx.FormatRG32Float)
}

// Unit quad with corners at +-1. V runs downwards so images are upright.
var (
	quadVertices = []vertex{
		{Pos: [3]float32{-1, -1, 0}, UV: [2]float32{0, 1}},
		{Pos: [3]float32{1, -1, 0}, UV: [2]float32{1, 1}},
		{Pos: [3]float32{1, 1, 0}, UV: [2]float32{1, 0}},
		{Pos: [3]float32{-1, 1, 0}, UV: [2]float32{0, 0}},
	}
	quadIndices = []uint16{0, 3, 1, 1, 3, 2}
)

func encode(v any) []byte {
	b, err := binary.Append(nil, binary.NativeEndian, v)
	if err != nil {
		panic(err)
	}
	return b
}
