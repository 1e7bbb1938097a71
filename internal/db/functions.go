package db

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// ContainsFold is the SQL function contains_fold(haystack, needle). It
// returns 1 when needle occurs in haystack ignoring case, with full Unicode
// folding. The built-in lower() only folds ASCII.
const ContainsFold = "contains_fold"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(ContainsFold, 2, containsFold)
}

func containsFold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	haystack, ok1 := sqlText(args[0])
	needle, ok2 := sqlText(args[1])
	if !ok1 || !ok2 {
		return int64(0), nil
	}
	if strings.Contains(strings.ToLower(haystack), strings.ToLower(needle)) {
		return int64(1), nil
	}
	return int64(0), nil
}

// sqlText reads a TEXT or BLOB argument. NULL and numbers report false.
func sqlText(v driver.Value) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}
