package gfx

import "math"

type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendInvSrcAlpha
)

type BlendOp int

const (
	BlendOpAdd BlendOp = iota
)

// BlendDesc describes colour/alpha blending for the single render target.
type BlendDesc struct {
	Enable             bool
	SrcColor, DstColor BlendFactor
	ColorOp            BlendOp
	SrcAlpha, DstAlpha BlendFactor
	AlphaOp            BlendOp
}

// DepthDesc describes depth testing.
type DepthDesc struct {
	Enable bool
}

type Filter int

const (
	FilterLinear Filter = iota // bilinear min/mag, linear between mips
)

type AddressMode int

const (
	AddressWrap AddressMode = iota
)

// SamplerDesc describes texture sampling.
type SamplerDesc struct {
	Filter   Filter
	AddressU AddressMode
	AddressV AddressMode
	AddressW AddressMode
	Compare  bool
	MinLOD   float32
	MaxLOD   float32
}

// The renderer is a single 2D-sprite pipeline, so these are the only states
// backends are asked to build.
var (
	AlphaBlend = BlendDesc{
		Enable:   true,
		SrcColor: BlendSrcAlpha,
		DstColor: BlendInvSrcAlpha,
		ColorOp:  BlendOpAdd,
		SrcAlpha: BlendZero,
		DstAlpha: BlendOne,
		AlphaOp:  BlendOpAdd,
	}

	DepthDisabled = DepthDesc{Enable: false}

	LinearWrapSampler = SamplerDesc{
		Filter:   FilterLinear,
		AddressU: AddressWrap,
		AddressV: AddressWrap,
		AddressW: AddressWrap,
		Compare:  false,
		MinLOD:   0,
		MaxLOD:   math.MaxFloat32,
	}
)
