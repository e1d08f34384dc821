package migrations

import "embed"

// Files holds the numbered, forward-only schema migrations compiled into the
// binary. The runner in internal/db applies them in lexical order.
//
//go:embed *.sql
var Files embed.FS
