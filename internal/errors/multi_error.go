package errors

import "strings"

type MultiError struct {
	msg    string
	Errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{msg: msg}
}

// Append ignores nil errors and flattens nested multi errors
func (m *MultiError) Append(err error) {
	if err == nil {
		return
	}

	var me *MultiError
	if As(err, &me) {
		m.Errors = append(m.Errors, me.Errors...)
		return
	}
	m.Errors = append(m.Errors, err)
}

func (m *MultiError) Error() string {
	errStrings := make([]string, 0, len(m.Errors))
	for _, err := range m.Errors {
		errStrings = append(errStrings, err.Error())
	}
	return m.msg + ":\n " + strings.Join(errStrings, "\n ")
}

func (m *MultiError) ToErr() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}

func MultiToError(e error) error {
	var me *MultiError
	if As(e, &me) {
		return me.ToErr()
	}
	return e
}
