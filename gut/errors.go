package gut

import (
	"reflect"

	"github.com/pkg/errors"
)

// Error kinds reported by every package of the module. Returned errors wrap
// one of these; test for them with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfBounds     = errors.New("out of bounds")
	ErrOverflow        = errors.New("overflow")
)

// Require returns nil when cond holds, otherwise kind wrapped with the
// formatted message.
func Require(cond bool, kind error, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	return errors.Wrapf(kind, format, args...)
}

// RequireNonNil fails with ErrInvalidArgument for nil values, including typed
// nil pointers, slices and maps stored in an interface.
func RequireNonNil(v interface{}, term string) error {
	if isNil(v) {
		return errors.Wrapf(ErrInvalidArgument, "%s is nil", term)
	}
	return nil
}

// RequireNonNegative fails with ErrInvalidArgument when v < 0.
func RequireNonNegative(v int64, term string) error {
	if v < 0 {
		return errors.Wrapf(ErrInvalidArgument, "expected non-negative %s, given: %d", term, v)
	}
	return nil
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// AddInt64 returns a+b or ErrOverflow when the sum does not fit.
func AddInt64(a, b int64) (int64, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return s, nil
}

// MulInt64 returns a*b or ErrOverflow when the product does not fit.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == -1<<63) || (b == -1 && a == -1<<63) {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return p, nil
}
