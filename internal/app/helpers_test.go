package app

import "errors"

type recordingLogger struct {
	errs []error
}

func (l *recordingLogger) Info(string) {}

func (l *recordingLogger) Warn(string) {}

func (l *recordingLogger) Error(err error) {
	l.errs = append(l.errs, err)
}

func joinErrors(errs ...error) error {
	return errors.Join(errs...)
}
