package ioharvest

import (
	"github.com/gnames/gnuuid"
	"github.com/marinedata/survtab/pkg/schema"
)

// speciesFor builds a Species record for one catch-sheet row. The id
// is a UUID v5 of the canonical name, so the same species decodes to
// the same id across workbooks and runs. Names gnparser cannot parse
// keep their verbatim string as the canonical form.
func (h *harvester) speciesFor(
	scientificName, commonName, group string,
) schema.Species {
	if scientificName == "" {
		return schema.Species{}
	}

	canonical := scientificName
	parsed := h.parser.ParseName(scientificName)
	if parsed.Parsed && parsed.Canonical != nil {
		canonical = parsed.Canonical.Simple
	}

	return schema.Species{
		ID:             gnuuid.New(canonical).String(),
		ScientificName: scientificName,
		Canonical:      canonical,
		CommonName:     commonName,
		SpeciesGroup:   group,
	}
}
