// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package d3d12

import (
	"gviegas/arke/driver"
	"gviegas/arke/internal/d3d"
)

// sampler implements driver.Sampler.
// The native descriptor lives in the sampler pool and is
// copied into the sampler ring when bound.
type sampler struct {
	d    *Driver
	slot descSlot
}

// NewSampler creates a new sampler.
func (d *Driver) NewSampler(spln *driver.Sampling) (driver.Sampler, error) {
	slot, err := d.splrPool.alloc()
	if err != nil {
		return nil, err
	}
	maxAniso := uint32(1)
	if spln.MaxAniso > 1 {
		maxAniso = uint32(min(spln.MaxAniso, 16))
	}
	minLOD := spln.MinLOD
	maxLOD := spln.MaxLOD
	if maxLOD <= 0 {
		maxLOD = d3d.FLOAT32_MAX
	}
	if spln.Mipmap == driver.FNoMipmap {
		minLOD = 0
		maxLOD = 0
	}
	desc := d3d.SAMPLER_DESC{
		Filter:        convFilter(spln),
		AddressU:      convAddrMode(spln.AddrU),
		AddressV:      convAddrMode(spln.AddrV),
		AddressW:      convAddrMode(spln.AddrW),
		MaxAnisotropy: maxAniso,
		MinLOD:        minLOD,
		MaxLOD:        maxLOD,
	}
	if spln.Cmp != driver.CNever {
		desc.ComparisonFunc = convCmpFunc(spln.Cmp)
	}
	d.dev.CreateSampler(&desc, d.splrPool.cpu(slot))
	return &sampler{d: d, slot: slot}, nil
}

// Destroy implements driver.Destroyer.
func (s *sampler) Destroy() {
	if s == nil {
		return
	}
	s.d.splrPool.free(s.slot)
	*s = sampler{}
}
