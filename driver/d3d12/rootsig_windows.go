// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"log"

	"gviegas/arke/internal/d3d"
)

// Root parameter indices.
// Constant buffers bind as root CBVs, one parameter per
// slot. Everything else binds through descriptor tables
// staged into the shader-visible rings.
const (
	rootParamCB      = 0
	rootParamSRV     = rootParamCB + maxCB
	rootParamUAV     = rootParamSRV + 1
	rootParamSampler = rootParamUAV + 1
	rootParamLen     = rootParamSampler + 1
)

// newRootSignature builds the fixed root signature shared
// by every pipeline.
// Static samplers live in register space 1 so they never
// collide with the dynamic sampler table.
func newRootSignature(dev *d3d.ID3D12Device) (*d3d.ID3D12RootSignature, error) {
	var params [rootParamLen]d3d.ROOT_PARAMETER
	for i := 0; i < maxCB; i++ {
		params[rootParamCB+i] = d3d.ROOT_PARAMETER{
			ParameterType:    d3d.ROOT_PARAMETER_TYPE_CBV,
			ShaderVisibility: d3d.SHADER_VISIBILITY_ALL,
		}
		params[rootParamCB+i].SetDescriptor(d3d.ROOT_DESCRIPTOR{
			ShaderRegister: uint32(i),
		})
	}
	ranges := [3]d3d.DESCRIPTOR_RANGE{
		{
			RangeType:      d3d.DESCRIPTOR_RANGE_TYPE_SRV,
			NumDescriptors: maxSR,
		},
		{
			RangeType:      d3d.DESCRIPTOR_RANGE_TYPE_UAV,
			NumDescriptors: maxUA,
		},
		{
			RangeType:      d3d.DESCRIPTOR_RANGE_TYPE_SAMPLER,
			NumDescriptors: maxSampler,
		},
	}
	for i, p := range [3]int{rootParamSRV, rootParamUAV, rootParamSampler} {
		params[p] = d3d.ROOT_PARAMETER{
			ParameterType:    d3d.ROOT_PARAMETER_TYPE_DESCRIPTOR_TABLE,
			ShaderVisibility: d3d.SHADER_VISIBILITY_ALL,
		}
		params[p].SetDescriptorTable(d3d.ROOT_DESCRIPTOR_TABLE{
			NumDescriptorRanges: 1,
			PDescriptorRanges:   &ranges[i],
		})
	}
	samplers := staticSamplerDescs()
	desc := d3d.ROOT_SIGNATURE_DESC{
		NumParameters:     rootParamLen,
		PParameters:       &params[0],
		NumStaticSamplers: uint32(len(samplers)),
		PStaticSamplers:   &samplers[0],
		Flags:             d3d.ROOT_SIGNATURE_FLAG_ALLOW_INPUT_ASSEMBLER_INPUT_LAYOUT,
	}
	blob, msg, err := d3d.SerializeRootSignature(&desc)
	if err != nil {
		if msg != "" {
			log.Printf("[!] d3d12: root signature rejected: %s", msg)
		}
		return nil, err
	}
	defer blob.Release()
	return dev.CreateRootSignature(blob.Bytes())
}

// staticSamplerDescs returns the samplers every shader can rely
// on without binding anything: linear/point filtering with
// clamp/wrap addressing, plus two shadow map comparison
// samplers.
func staticSamplerDescs() [staticSamplers]d3d.STATIC_SAMPLER_DESC {
	common := d3d.STATIC_SAMPLER_DESC{
		BorderColor:      d3d.STATIC_BORDER_COLOR_OPAQUE_WHITE,
		MaxLOD:           d3d.FLOAT32_MAX,
		RegisterSpace:    1,
		ShaderVisibility: d3d.SHADER_VISIBILITY_ALL,
	}
	mk := func(reg int, filter, addr, cmp uint32) d3d.STATIC_SAMPLER_DESC {
		s := common
		s.ShaderRegister = uint32(reg)
		s.Filter = filter
		s.AddressU = addr
		s.AddressV = addr
		s.AddressW = addr
		s.ComparisonFunc = cmp
		return s
	}
	return [staticSamplers]d3d.STATIC_SAMPLER_DESC{
		mk(0, d3d.FILTER_MIN_MAG_MIP_LINEAR, d3d.TEXTURE_ADDRESS_MODE_CLAMP, 0),
		mk(1, d3d.FILTER_MIN_MAG_MIP_POINT, d3d.TEXTURE_ADDRESS_MODE_CLAMP, 0),
		mk(2, d3d.FILTER_MIN_MAG_MIP_LINEAR, d3d.TEXTURE_ADDRESS_MODE_WRAP, 0),
		mk(3, d3d.FILTER_MIN_MAG_MIP_POINT, d3d.TEXTURE_ADDRESS_MODE_WRAP, 0),
		mk(4, d3d.FILTER_COMPARISON_MIN_MAG_MIP_POINT, d3d.TEXTURE_ADDRESS_MODE_BORDER, d3d.COMPARISON_FUNC_LESS_EQUAL),
		mk(5, d3d.FILTER_COMPARISON_MIN_MAG_MIP_LINEAR, d3d.TEXTURE_ADDRESS_MODE_BORDER, d3d.COMPARISON_FUNC_LESS_EQUAL),
	}
}

// newCommandSignatures builds the indirect draw, indexed
// draw and dispatch signatures.
func newCommandSignatures(dev *d3d.ID3D12Device) (draw, drawIndexed, dispatch *d3d.ID3D12CommandSignature, err error) {
	mk := func(typ, stride uint32) (*d3d.ID3D12CommandSignature, error) {
		arg := d3d.INDIRECT_ARGUMENT_DESC{Type: typ}
		desc := d3d.COMMAND_SIGNATURE_DESC{
			ByteStride:       stride,
			NumArgumentDescs: 1,
			PArgumentDescs:   &arg,
		}
		// Signatures with a single draw/dispatch argument
		// take no root signature.
		return dev.CreateCommandSignature(&desc, nil)
	}
	if draw, err = mk(d3d.INDIRECT_ARGUMENT_TYPE_DRAW, 16); err != nil {
		return
	}
	if drawIndexed, err = mk(d3d.INDIRECT_ARGUMENT_TYPE_DRAW_INDEXED, 20); err != nil {
		draw.Release()
		draw = nil
		return
	}
	if dispatch, err = mk(d3d.INDIRECT_ARGUMENT_TYPE_DISPATCH, 12); err != nil {
		drawIndexed.Release()
		draw.Release()
		draw, drawIndexed = nil, nil
	}
	return
}
