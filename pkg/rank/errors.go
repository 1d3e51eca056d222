package rank

import "golang.org/x/xerrors"

// ErrInvalidArgument is returned for malformed graphs and out-of-range
// parameters. Use xerrors.Is to test for it.
var ErrInvalidArgument = xerrors.New("invalid argument")
