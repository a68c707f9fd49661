package ports

// FixtureExport is a generated fixture corpus prepared for export.
type FixtureExport struct {
	SeedHex string
	Length  int
	Vectors [][]byte
}

// VerificationReport is a completed verification prepared for export.
type VerificationReport struct {
	SpecID        string
	SpecLabel     string
	FunctionLabel string
	Results       []bool
}

// FixtureExporter writes fixture corpora and verification reports to
// spreadsheet files for review outside the system.
type FixtureExporter interface {
	ExportFixtures(path string, export FixtureExport) error
	ExportReport(path string, report VerificationReport) error
}
