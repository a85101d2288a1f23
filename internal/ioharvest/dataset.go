package ioharvest

import (
	"github.com/marinedata/survtab/pkg/lfreq"
	"github.com/marinedata/survtab/pkg/schema"
)

// dataset accumulates normalized records across workbooks. Reference
// tables (species, vessels, areas) are deduplicated by id on insert;
// samples, length-frequency inputs, and efforts keep every row in
// input order.
type dataset struct {
	species   []schema.Species
	samples   []schema.SurveySample
	lfSamples []lfreq.Sample
	vessels   []schema.Vessel
	areas     []schema.Area
	efforts   []schema.Effort

	speciesSeen map[string]struct{}
	vesselsSeen map[string]struct{}
	areasSeen   map[string]struct{}
}

func newDataset() *dataset {
	return &dataset{
		speciesSeen: make(map[string]struct{}),
		vesselsSeen: make(map[string]struct{}),
		areasSeen:   make(map[string]struct{}),
	}
}

func (ds *dataset) addSpecies(sp schema.Species) {
	if sp.ID == "" {
		return
	}
	if _, ok := ds.speciesSeen[sp.ID]; ok {
		return
	}
	ds.speciesSeen[sp.ID] = struct{}{}
	ds.species = append(ds.species, sp)
}

func (ds *dataset) addVessel(v schema.Vessel) {
	if v.ID == "" {
		return
	}
	if _, ok := ds.vesselsSeen[v.ID]; ok {
		return
	}
	ds.vesselsSeen[v.ID] = struct{}{}
	ds.vessels = append(ds.vessels, v)
}

func (ds *dataset) addArea(a schema.Area) {
	if a.ID == "" {
		return
	}
	if _, ok := ds.areasSeen[a.ID]; ok {
		return
	}
	ds.areasSeen[a.ID] = struct{}{}
	ds.areas = append(ds.areas, a)
}

func (ds *dataset) addSample(s schema.SurveySample, lf lfreq.Sample) {
	ds.samples = append(ds.samples, s)
	ds.lfSamples = append(ds.lfSamples, lf)
}

func (ds *dataset) addEffort(e schema.Effort) {
	ds.efforts = append(ds.efforts, e)
}
