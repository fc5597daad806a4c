//go:build !profile

package profiler

import "errors"

// Enabled reports whether scopes are recorded; build with -tags profile.
const Enabled = false

var ErrNoEvents = errors.New("profiler: built without the profile tag")

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Capture(dir string) (string, error) { return "", ErrNoEvents }
