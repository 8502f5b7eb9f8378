package randomwalk

import "errors"

// ErrInvalidOptions is returned when WalkLength < 1 or Damping is outside
// (0, 1].
var ErrInvalidOptions = errors.New("randomwalk: invalid options")
