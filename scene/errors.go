package scene

import "errors"

// ErrSyntax is returned by Parse for a malformed description: an unknown
// command, a missing or malformed number, or an unexpected token.
var ErrSyntax = errors.New("scene: syntax error")
