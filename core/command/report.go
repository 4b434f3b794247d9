package command

// pathReport is the shared shape of commands which only describe a list of
// paths back to the caller.
type pathReport struct {
	name     string
	label    string
	rawPaths any
}

func newPathReport(name, label string, params []any) (pathReport, error) {
	raw, err := param(name, params, 0, "paths")
	if err != nil {
		return pathReport{}, err
	}
	return pathReport{name: name, label: label, rawPaths: raw}, nil
}

func (r pathReport) Name() string {
	return r.name
}

func (r pathReport) Validate() error {
	_, err := stringList(r.name, r.rawPaths, "paths")
	return err
}

func (r pathReport) Execute() (string, error) {
	paths, err := stringList(r.name, r.rawPaths, "paths")
	if err != nil {
		return "", err
	}
	return r.label + " for: " + joinPaths(paths), nil
}
