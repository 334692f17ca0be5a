package domain

import "time"

// UAFixture is one pre-generated test address published for E2E suites.
type UAFixture struct {
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	AddressType   AddressKind `json:"address_type"`
	Receivers     []string    `json:"receivers"`
	PreFunded     bool        `json:"pre_funded"`
	PreFundAmount int64       `json:"pre_fund_amount"` // zatoshi
	CreatedAt     time.Time   `json:"created_at"`
	Notes         string      `json:"notes,omitempty"`
}

// FixtureSet is the persisted collection of UA fixtures.
type FixtureSet struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Fixtures    []UAFixture `json:"fixtures"`
}

// FixtureExport groups fixtures by address type for test-suite consumption.
type FixtureExport struct {
	GeneratedAt          time.Time   `json:"generated_at"`
	UnifiedAddresses     []UAFixture `json:"unified_addresses"`
	SaplingAddresses     []UAFixture `json:"sapling_addresses"`
	TransparentAddresses []UAFixture `json:"transparent_addresses"`
	AllFixtures          []UAFixture `json:"all_fixtures"`
}

// Export groups the set's fixtures by address type.
func (s *FixtureSet) Export() FixtureExport {
	export := FixtureExport{
		GeneratedAt:          s.GeneratedAt,
		UnifiedAddresses:     []UAFixture{},
		SaplingAddresses:     []UAFixture{},
		TransparentAddresses: []UAFixture{},
		AllFixtures:          []UAFixture{},
	}
	for _, f := range s.Fixtures {
		export.AllFixtures = append(export.AllFixtures, f)
		switch f.AddressType {
		case AddressKindUnified:
			export.UnifiedAddresses = append(export.UnifiedAddresses, f)
		case AddressKindSapling:
			export.SaplingAddresses = append(export.SaplingAddresses, f)
		case AddressKindTransparent:
			export.TransparentAddresses = append(export.TransparentAddresses, f)
		}
	}
	return export
}
