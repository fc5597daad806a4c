package text

import (
	"errors"
	"fmt"
)

const (
	InitialSize = 30
	SizeStep    = 0.1

	// MaxSearchIterations bounds FindBestSize for fonts whose packing does
	// not fail monotonically in size.
	MaxSearchIterations = 1000
)

var (
	// ErrPackFirstAttempt means not even InitialSize fits.
	ErrPackFirstAttempt = errors.New("text: glyphs do not fit at the initial size")
	ErrSearchDiverged   = errors.New("text: font size search did not settle")
)

// PackFunc packs the glyph range at pixel height px. The atlas it fills must
// hold the result of the most recent call.
type PackFunc func(px float32) error

type searchState int

const (
	probing searchState = iota
	backingOff
	settled
)

// FindBestSize probes sizes InitialSize + i*SizeStep upwards until pack
// fails, then retries one step below the failure and accepts it if it packs.
// A failure while settling backs off again. When it returns nil, the last
// call to pack was the successful one at the returned size.
func FindBestSize(pack PackFunc) (float32, error) {
	var size float32
	state := probing
	calls := 0
	for i := 0; state != settled; i++ {
		if calls == MaxSearchIterations {
			return 0, fmt.Errorf("%w after %d attempts (last %.1fpx)", ErrSearchDiverged, calls, size)
		}
		calls++

		size = InitialSize + float32(i)*SizeStep
		if state == backingOff {
			state = settled
		}
		if err := pack(size); err != nil {
			if i == 0 {
				return 0, fmt.Errorf("%w: %.1fpx: %w", ErrPackFirstAttempt, size, err)
			}
			state = backingOff
			i -= 2
		}
	}
	return size, nil
}
