package model

// DatasetSource provides the read-only mock dataset rendered by the dashboard.
type DatasetSource interface {
	Dataset() *Dataset
}

// SectionCounter reports item counts per dataset section, used by the
// mock API status endpoint.
type SectionCounter interface {
	SectionCounts() map[string]int
}
