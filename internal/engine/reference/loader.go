package reference

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML tables. Any table left out of the document keeps its default.
func Parse(data []byte) (*ReferenceData, error) {
	var override Tables
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse reference tables: %w", err)
	}
	return New(merge(DefaultTables(), override))
}

// LoadFile reads YAML tables from path.
func LoadFile(path string) (*ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference tables %s: %w", path, err)
	}
	return Parse(data)
}

// merge replaces whole tables present in override. Timelines are replaced per tier.
func merge(base, override Tables) Tables {
	if override.ChromosomeCounts != nil {
		base.ChromosomeCounts = override.ChromosomeCounts
	}
	if override.Temperatures != nil {
		base.Temperatures = override.Temperatures
	}
	if override.MonopodialGenera != nil {
		base.MonopodialGenera = override.MonopodialGenera
	}
	if override.SuccessModifiers != nil {
		base.SuccessModifiers = override.SuccessModifiers
	}
	if override.IntergenericAffinity != nil {
		base.IntergenericAffinity = override.IntergenericAffinity
	}
	if override.HistoricalSuccesses != nil {
		base.HistoricalSuccesses = override.HistoricalSuccesses
	}
	if override.CompatibleGenera != nil {
		base.CompatibleGenera = override.CompatibleGenera
	}
	if override.Timelines != nil {
		for tier, tl := range override.Timelines {
			base.Timelines[tier] = tl
		}
	}
	return base
}
