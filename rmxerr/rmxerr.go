package rmxerr

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownLanguage = errors.New("unknown language")
)

type (
	// ErrMsg carries an error to the UI as a tea.Msg.
	ErrMsg struct {
		// Operation that failed, ex: "save preferences"
		Op  string
		Err error
	}
)

func (m ErrMsg) Error() string {
	if m.Op == "" {
		return m.Err.Error()
	}
	return m.Op + ": " + m.Err.Error()
}

func (m ErrMsg) Unwrap() error {
	return m.Err
}
