package gedconfig

import "errors"

// ErrInvalidConfig is returned by Validate when a loaded value falls outside
// its accepted range (e.g. a non-positive MaxIter or a Parallelism < 0).
var ErrInvalidConfig = errors.New("gedconfig: invalid configuration")
