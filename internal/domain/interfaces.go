package domain

// AnalysisService runs the convergence procedure behind each CLI operation.
type AnalysisService interface {
	Check(req CheckRequest) (CheckReport, error)
	GCI(req GCIRequest) (GCIReport, error)
	Study(s Study) (StudyReport, error)
}

// StudyStore reads and writes study definitions.
type StudyStore interface {
	LoadStudy(path string) (Study, error)
	SaveStudy(path string, s Study) error
}

// ReportStore writes rendered reports.
type ReportStore interface {
	WriteReport(path string, data []byte) error
}
