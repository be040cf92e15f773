package eval

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-jsexpr/jsexpr/internal/evalerr"
	"github.com/go-jsexpr/jsexpr/internal/lexer"
	"github.com/go-jsexpr/jsexpr/internal/value"
)

// parseNumericLiteral converts an already-scanned INT/FLOAT token into a
// Value per spec.md §4.6. Float literals (decimal point or exponent) are
// always Float; integral literals default to Int, an explicit i64/u64
// suffix picks the kind, and a hex literal that overflows int64 is kept as
// UInt to preserve its written bit pattern.
func parseNumericLiteral(tok lexer.Token) value.Value {
	if tok.Type == lexer.FLOAT {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return value.Error(evalerr.NewSyntax("malformed float literal"))
		}
		return value.Float(f)
	}

	lit := tok.Literal
	forceUnsigned := false
	switch {
	case strings.HasSuffix(lit, "i64"):
		lit = strings.TrimSuffix(lit, "i64")
	case strings.HasSuffix(lit, "u64"):
		lit = strings.TrimSuffix(lit, "u64")
		forceUnsigned = true
	}

	base := 10
	digits := lit
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		base = 16
		digits = lit[2:]
	}

	if forceUnsigned || base == 16 {
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return value.Error(evalerr.NewSyntax("numeric literal out of range"))
		}
		if !forceUnsigned && u <= math.MaxInt64 {
			return value.Int(int64(u))
		}
		return value.UInt(u)
	}

	i, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return value.Error(evalerr.NewSyntax("numeric literal out of range"))
	}
	return value.Int(i)
}
