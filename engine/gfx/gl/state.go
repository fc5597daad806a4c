package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/oneroom/engine/gfx"
)

// GL keeps blend and depth state on the context rather than in objects, so
// these handles carry the descriptor and Set applies it.

type Blend struct{ desc gfx.BlendDesc }

func (b *Blend) Desc() gfx.BlendDesc { return b.desc }

func (d *Device) CreateBlend() (gfx.Blend, error) {
	return &Blend{desc: gfx.AlphaBlend}, nil
}

func (d *Device) SetBlend(b gfx.Blend) {
	desc := b.Desc()
	if !desc.Enable {
		gl.Disable(gl.BLEND)
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(
		toGLBlendFactor(desc.SrcColor), toGLBlendFactor(desc.DstColor),
		toGLBlendFactor(desc.SrcAlpha), toGLBlendFactor(desc.DstAlpha))
	gl.BlendEquationSeparate(toGLBlendOp(desc.ColorOp), toGLBlendOp(desc.AlphaOp))
	gl.ColorMask(true, true, true, true)
}

func (d *Device) FreeBlend(gfx.Blend) {}

type Depth struct{ desc gfx.DepthDesc }

func (ds *Depth) Desc() gfx.DepthDesc { return ds.desc }

func (d *Device) CreateDepth() (gfx.Depth, error) {
	return &Depth{desc: gfx.DepthDisabled}, nil
}

func (d *Device) SetDepth(ds gfx.Depth) {
	if ds.Desc().Enable {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (d *Device) FreeDepth(gfx.Depth) {}

// Sampler wraps a GL sampler object, which overrides the bound texture's own
// sampling parameters.
type Sampler struct {
	id   uint32
	desc gfx.SamplerDesc
}

func (s *Sampler) Desc() gfx.SamplerDesc { return s.desc }

func (d *Device) CreateSampler() (gfx.Sampler, error) {
	desc := gfx.LinearWrapSampler
	s := &Sampler{desc: desc}
	gl.GenSamplers(1, &s.id)

	minf, magf := toGLFilter(desc.Filter)
	gl.SamplerParameteri(s.id, gl.TEXTURE_MIN_FILTER, minf)
	gl.SamplerParameteri(s.id, gl.TEXTURE_MAG_FILTER, magf)
	gl.SamplerParameteri(s.id, gl.TEXTURE_WRAP_S, toGLAddress(desc.AddressU))
	gl.SamplerParameteri(s.id, gl.TEXTURE_WRAP_T, toGLAddress(desc.AddressV))
	gl.SamplerParameteri(s.id, gl.TEXTURE_WRAP_R, toGLAddress(desc.AddressW))
	if desc.Compare {
		gl.SamplerParameteri(s.id, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	} else {
		gl.SamplerParameteri(s.id, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	gl.SamplerParameterf(s.id, gl.TEXTURE_MIN_LOD, desc.MinLOD)
	gl.SamplerParameterf(s.id, gl.TEXTURE_MAX_LOD, desc.MaxLOD)
	return s, nil
}

func (d *Device) SetSampler(s gfx.Sampler, slot int) {
	gl.BindSampler(uint32(slot), s.(*Sampler).id)
}

func (d *Device) FreeSampler(s gfx.Sampler) {
	sm := s.(*Sampler)
	gl.DeleteSamplers(1, &sm.id)
}
