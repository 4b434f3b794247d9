package command

// Status reports the path specifiers it was asked about.
type Status struct {
	pathReport
}

func NewStatus(params ...any) (*Status, error) {
	report, err := newPathReport(NameStatus, "Status", params)
	if err != nil {
		return nil, err
	}
	return &Status{pathReport: report}, nil
}
