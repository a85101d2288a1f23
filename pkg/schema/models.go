// Package schema provides database models for the normalized survey
// tables produced by harvesting.
package schema

import (
	"database/sql"
	"time"
)

// Species is one taxon appearing in a catch sheet. The ID is a UUID v5
// generated from the canonical scientific name, so repeated harvests
// assign the same identifier to the same species.
type Species struct {
	// ID is UUID v5 generated from the canonical name-string.
	ID string `gorm:"type:uuid;primaryKey"`

	// ScientificName is the name-string as it appears in the workbook.
	ScientificName string `gorm:"type:varchar(255);not null;index"`

	// Canonical is the canonical form of the scientific name without
	// authorship, produced by gnparser.
	Canonical string `gorm:"type:varchar(255);index"`

	// CommonName is the local (translated) name column of the workbook.
	CommonName string `gorm:"type:varchar(255)"`

	// SpeciesGroup is the workbook's coarse group code
	// (pelagic, demersal, invertebrate and the like).
	SpeciesGroup string `gorm:"type:varchar(50)"`
}

func (Species) TableName() string { return "species" }

// SurveySample is one catch measurement event: one species sampled at
// one station or landing place.
type SurveySample struct {
	// ID is the sample's link identifier. Research-vessel workbooks get
	// sequential ids per harvest run, statistical workbooks keep their
	// pre-existing ids.
	ID string `gorm:"type:varchar(50);primaryKey"`

	SpeciesID string `gorm:"type:uuid;index"`

	AreaID string `gorm:"type:varchar(50);index"`

	VesselID string `gorm:"type:varchar(50)"`

	// SampleDate is the date of the haul or landing.
	SampleDate sql.NullTime

	// CatchWeight is the total catch weight of the species, kg.
	CatchWeight sql.NullFloat64

	// SampleWeight is the weight of the measured subsample, kg.
	SampleWeight sql.NullFloat64
}

func (SurveySample) TableName() string { return "survey_samples" }

// LengthRecord is one expanded size class of one sample. The four
// numeric fields are null together when the sample had no measured
// lengths.
type LengthRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	SampleID  string `gorm:"type:varchar(50);index;not null"`
	SpeciesID string `gorm:"type:uuid;index"`

	RawLength    sql.NullFloat64
	RawFreq      sql.NullFloat64
	RaisedLength sql.NullFloat64
	RaisedFreq   sql.NullFloat64
}

func (LengthRecord) TableName() string { return "length_records" }

// Vessel is one research or fishing vessel from an effort sheet.
type Vessel struct {
	ID string `gorm:"type:varchar(50);primaryKey"`

	Name string `gorm:"type:varchar(255);not null"`

	// Registration is the national registration number.
	Registration string `gorm:"type:varchar(50)"`

	// GearType is the dominant fishing gear of the vessel.
	GearType string `gorm:"type:varchar(100)"`
}

func (Vessel) TableName() string { return "vessels" }

// Area is one survey area or statistical reporting zone.
type Area struct {
	ID string `gorm:"type:varchar(50);primaryKey"`

	Name string `gorm:"type:varchar(255)"`

	// Zone is the coarse zone code (gulf, Andaman coast...).
	Zone string `gorm:"type:varchar(50)"`
}

func (Area) TableName() string { return "areas" }

// Effort is one fishing effort record from an effort sheet: one haul
// for RV workbooks, one gear/area/month aggregate for stat workbooks.
type Effort struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	AreaID   string `gorm:"type:varchar(50);index"`
	VesselID string `gorm:"type:varchar(50);index"`

	EffortDate sql.NullTime

	// Gear is the gear code used for this effort.
	Gear string `gorm:"type:varchar(100)"`

	// Duration is the haul or trip duration in hours.
	Duration sql.NullFloat64

	// Depth is the fishing depth in meters.
	Depth sql.NullFloat64

	// TotalCatch is the total catch of the effort, kg.
	TotalCatch sql.NullFloat64
}

func (Effort) TableName() string { return "efforts" }

// HarvestNotice records one sample that failed length-frequency
// expansion during a harvest run.
type HarvestNotice struct {
	ID uint `gorm:"primaryKey;autoIncrement"`

	SampleID string `gorm:"type:varchar(50);index"`

	Reason string `gorm:"type:text"`

	CreatedAt time.Time
}

func (HarvestNotice) TableName() string { return "harvest_notices" }

// ImportBatch records one bulk load of harvested tables into the
// database.
type ImportBatch struct {
	// ID is a random UUID v4 generated for the load run.
	ID string `gorm:"type:uuid;primaryKey"`

	// SourceDir is the directory the tables were loaded from.
	SourceDir string `gorm:"type:text"`

	// RecordsNum is the total number of rows loaded across all tables.
	RecordsNum int

	CreatedAt time.Time
}

func (ImportBatch) TableName() string { return "import_batches" }
