package panicerr

import "runtime/debug"

// Recover calls f, converting any panic into a non-nil error return that
// carries the panic value and stack. A panic(error) value is available
// through errors.Unwrap.
//
// f runs on the calling goroutine.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{name: name, e: e, stack: debug.Stack()}
		}
	}()
	return f()
}
