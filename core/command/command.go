package command

const (
	NameStatus = "status"
	NameCommit = "commit"
	NameLog    = "log"
	NameDiff   = "diff"
)

// SupportedNames lists the command names the factory knows, in a stable order
func SupportedNames() []string {
	return []string{NameStatus, NameCommit, NameLog, NameDiff}
}

// Command is a parameter bound command, ready to be validated and executed.
// Construction only binds parameters, Validate checks their shape and
// Execute produces the outcome message.
type Command interface {
	Name() string
	Validate() error
	Execute() (string, error)
}

// UnsupportedError is returned by the factory for names it does not know.
// It is a regular outcome for the controller rather than a failure.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return e.Name + " is not supported by git"
}
