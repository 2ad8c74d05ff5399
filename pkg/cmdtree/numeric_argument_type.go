package cmdtree

import (
	"fmt"
	"math"
)

// Number is the set of underlying numeric kinds Numeric[T] may be
// instantiated over: the signed/unsigned integer widths plus float32
// and float64. Go permits ordering operators directly on type
// parameters whose constraint's type
// set is entirely numeric, which is what makes the generic bounds check
// below possible without reflection.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// numericFamily selects which error-message family (Integer/Long/Float/
// Double) bound violations are reported under. The error taxonomy only
// enumerates these four families; narrower integer
// widths (int8, uint16, ...) report as "Integer", and the two 64-bit
// integer widths report as "Long", matching how Brigadier itself only
// ever had IntegerArgumentType/LongArgumentType/FloatArgumentType/
// DoubleArgumentType.
type numericFamily int

const (
	familyInteger numericFamily = iota
	familyLong
	familyFloat
	familyDouble
)

// Numeric is a generic bounded numeric argument type parameterized by an
// inclusive range [Min, Max] derived from a bounds descriptor supporting
// full, >=min, <=max, or [min,max]. For the integer families, a nil Min
// or Max does not mean "no check": per the "full" bounds descriptor
// (original_source/src/arguments.rs's RangeFull impl sets the native
// T::MIN/T::MAX, it never disables the check), an unset side falls back
// to T's native range, so e.g. Int8() still rejects input outside
// [-128,127]. Floats have no such fallback: a nil Min/Max there really
// is unbounded.
type Numeric[T Number] struct {
	baseArgumentType
	Min, Max *T
	family   numericFamily
}

func numericBuilder[T Number](family numericFamily) Numeric[T] {
	return Numeric[T]{family: family}
}

func ptr[T any](v T) *T { return &v }

// Int8/Int16/Int32/Int64/UInt8/UInt16/UInt32/UInt64/Float32/Float64
// construct a Numeric[T] with no explicit bounds: the integer families
// still enforce T's native range (see nativeIntBounds), while the float
// families are genuinely unbounded until WithMin/WithMax/WithRange is
// used to narrow them.

func Int8() Numeric[int8]       { return numericBuilder[int8](familyInteger) }
func Int16() Numeric[int16]     { return numericBuilder[int16](familyInteger) }
func Int32() Numeric[int32]     { return numericBuilder[int32](familyInteger) }
func Int64() Numeric[int64]     { return numericBuilder[int64](familyLong) }
func UInt8() Numeric[uint8]     { return numericBuilder[uint8](familyInteger) }
func UInt16() Numeric[uint16]   { return numericBuilder[uint16](familyInteger) }
func UInt32() Numeric[uint32]   { return numericBuilder[uint32](familyInteger) }
func UInt64() Numeric[uint64]   { return numericBuilder[uint64](familyLong) }
func Float32() Numeric[float32] { return numericBuilder[float32](familyFloat) }
func Float64() Numeric[float64] { return numericBuilder[float64](familyDouble) }

// WithMin returns a copy of n with the lower bound set to min (a "≥min"
// descriptor).
func (n Numeric[T]) WithMin(min T) Numeric[T] {
	n.Min = ptr(min)
	return n
}

// WithMax returns a copy of n with the upper bound set to max (a
// "≤max" descriptor).
func (n Numeric[T]) WithMax(max T) Numeric[T] {
	n.Max = ptr(max)
	return n
}

// WithRange returns a copy of n bounded to the inclusive [min, max]
// descriptor.
func (n Numeric[T]) WithRange(min, max T) Numeric[T] {
	n.Min = ptr(min)
	n.Max = ptr(max)
	return n
}

func (n Numeric[T]) Parse(reader *StringReader) (any, error) {
	start := reader.Cursor()
	var zero T
	switch any(zero).(type) {
	case float32:
		f, err := reader.ReadFloat()
		if err != nil {
			return nil, err
		}
		v := any(f).(T)
		if n.Min != nil && v < *n.Min {
			reader.SetCursor(start)
			return nil, n.tooSmallFloat(v)
		}
		if n.Max != nil && v > *n.Max {
			reader.SetCursor(start)
			return nil, n.tooBigFloat(v)
		}
		return v, nil
	case float64:
		d, err := reader.ReadDouble()
		if err != nil {
			return nil, err
		}
		v := any(d).(T)
		if n.Min != nil && v < *n.Min {
			reader.SetCursor(start)
			return nil, n.tooSmallFloat(v)
		}
		if n.Max != nil && v > *n.Max {
			reader.SetCursor(start)
			return nil, n.tooBigFloat(v)
		}
		return v, nil
	default:
		// Bounds are checked against the raw int64 the scanner
		// produces, before narrowing to T: narrowing via a plain Go
		// conversion wraps silently (int8(200) == -56), which would
		// let out-of-range input slip past a post-narrow comparison.
		l, err := reader.ReadLong()
		if err != nil {
			return nil, err
		}
		min, max := n.intBounds()
		if l < min {
			reader.SetCursor(start)
			return nil, n.tooSmallInt(l, min)
		}
		if l > max {
			reader.SetCursor(start)
			return nil, n.tooBigInt(l, max)
		}
		v, convErr := numericFromInt64[T](l)
		if convErr != nil {
			return nil, convErr
		}
		return v, nil
	}
}

// intBounds returns the effective inclusive [min,max] this Numeric[T]
// checks a raw parsed int64 against: an explicit Min/Max if set,
// otherwise T's native range (see nativeIntBounds). Only meaningful for
// the integer families; Parse's float cases never call it.
func (n Numeric[T]) intBounds() (int64, int64) {
	min, max := nativeIntBounds[T]()
	if n.Min != nil {
		min = toInt64(*n.Min)
	}
	if n.Max != nil {
		max = toInt64(*n.Max)
	}
	return min, max
}

// nativeIntBounds returns T's native inclusive range as int64. uint64's
// true native maximum (math.MaxUint64) does not fit in an int64
// comparison, but ReadLong (strconv.ParseInt, base 10, 64-bit) can never
// itself produce a value past math.MaxInt64, so that is the largest
// bound reachable through this path regardless.
func nativeIntBounds[T Number]() (int64, int64) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int64:
		return math.MinInt64, math.MaxInt64
	case uint8:
		return 0, math.MaxUint8
	case uint16:
		return 0, math.MaxUint16
	case uint32:
		return 0, math.MaxUint32
	case uint64:
		return 0, math.MaxInt64
	}
	return 0, 0
}

// numericFromInt64 converts a parsed int64 into T, the only integer
// width the scanner itself reads; intBounds has already range-checked
// the raw value by the time this runs, so the conversion itself cannot
// overflow.
func numericFromInt64[T Number](l int64) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(l)).(T), nil
	case int16:
		return any(int16(l)).(T), nil
	case int32:
		return any(int32(l)).(T), nil
	case int64:
		return any(l).(T), nil
	case uint8:
		return any(uint8(l)).(T), nil
	case uint16:
		return any(uint16(l)).(T), nil
	case uint32:
		return any(uint32(l)).(T), nil
	case uint64:
		return any(uint64(l)).(T), nil
	}
	return zero, fmt.Errorf("cmdtree: unsupported numeric type")
}

// tooSmallFloat/tooBigFloat render bound violations for the float32/
// float64 families; called only from Parse's float branches, which
// never reach here without n.Min/n.Max set.
func (n Numeric[T]) tooSmallFloat(found T) *CommandSyntaxError {
	if n.family == familyFloat {
		return errFloatTooSmall(float32(toFloat64(found)), float32(toFloat64(*n.Min)))
	}
	return errDoubleTooSmall(toFloat64(found), toFloat64(*n.Min))
}

func (n Numeric[T]) tooBigFloat(found T) *CommandSyntaxError {
	if n.family == familyFloat {
		return errFloatTooBig(float32(toFloat64(found)), float32(toFloat64(*n.Max)))
	}
	return errDoubleTooBig(toFloat64(found), toFloat64(*n.Max))
}

// tooSmallInt/tooBigInt render bound violations for the Integer/Long
// families, against the raw int64 intBounds already checked.
func (n Numeric[T]) tooSmallInt(found, min int64) *CommandSyntaxError {
	if n.family == familyLong {
		return errLongTooSmall(found, min)
	}
	return errIntegerTooSmall(found, min)
}

func (n Numeric[T]) tooBigInt(found, max int64) *CommandSyntaxError {
	if n.family == familyLong {
		return errLongTooBig(found, max)
	}
	return errIntegerTooBig(found, max)
}

func toFloat64[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	}
	return 0
}

func toInt64[T Number](v T) int64 {
	switch x := any(v).(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	}
	return 0
}

// Examples returns a couple of representative literals for this family,
// used by ambiguity detection.
func (n Numeric[T]) Examples() []string {
	switch n.family {
	case familyFloat, familyDouble:
		return []string{"0", "1.2", "-1.2"}
	default:
		return []string{"0", "123", "-123"}
	}
}
