package command

// Log reports the paths to show log entries for.
type Log struct {
	pathReport
}

func NewLog(params ...any) (*Log, error) {
	report, err := newPathReport(NameLog, "Log", params)
	if err != nil {
		return nil, err
	}
	return &Log{pathReport: report}, nil
}
