package schema_test

import (
	"testing"

	"github.com/marinedata/survtab/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	assert.Len(t, models, 8)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "species", schema.Species{}.TableName())
	assert.Equal(t, "survey_samples", schema.SurveySample{}.TableName())
	assert.Equal(t, "length_records", schema.LengthRecord{}.TableName())
	assert.Equal(t, "vessels", schema.Vessel{}.TableName())
	assert.Equal(t, "areas", schema.Area{}.TableName())
	assert.Equal(t, "efforts", schema.Effort{}.TableName())
	assert.Equal(t, "harvest_notices", schema.HarvestNotice{}.TableName())
	assert.Equal(t, "import_batches", schema.ImportBatch{}.TableName())
}
