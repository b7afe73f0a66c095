package model

// DataType enumerates the closed set of primitive column types.
type DataType uint8

const (
	// Int is a 32-bit signed integer ("int").
	Int DataType = iota
	// Long is a 64-bit signed integer ("long").
	Long
	// Float is a 32-bit IEEE 754 float ("float").
	Float
	// Double is a 64-bit IEEE 754 float ("double").
	Double
	// String is a variable-length string ("string").
	String
)

// Primitive is the type set a segment may be parameterized over.
type Primitive interface {
	int32 | int64 | float32 | float64 | string
}

var dataTypeNames = map[DataType]string{
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
	String: "string",
}

// String returns the external spelling of the data type.
func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return "invalid"
}

// ParseDataType resolves the external spelling of a data type.
func ParseDataType(name string) (DataType, error) {
	for dt, n := range dataTypeNames {
		if n == name {
			return dt, nil
		}
	}
	return 0, &UnknownTypeError{Name: name}
}

// TypeVisitor receives the monomorphization callback of Resolve. Each method
// corresponds to one primitive type; implementations invoke generic code
// instantiated for that type from the method body.
type TypeVisitor interface {
	VisitInt32()
	VisitInt64()
	VisitFloat32()
	VisitFloat64()
	VisitString()
}

// Resolve dispatches a data type to the matching TypeVisitor method. This is
// the only place that bridges the runtime type tag to static Go types; every
// typed segment constructor and typed operator body routes through it.
func Resolve(dt DataType, v TypeVisitor) error {
	switch dt {
	case Int:
		v.VisitInt32()
	case Long:
		v.VisitInt64()
	case Float:
		v.VisitFloat32()
	case Double:
		v.VisitFloat64()
	case String:
		v.VisitString()
	default:
		return &UnknownTypeError{Name: dt.String()}
	}
	return nil
}

// ResolveName parses a type name and dispatches it, see Resolve.
func ResolveName(name string, v TypeVisitor) error {
	dt, err := ParseDataType(name)
	if err != nil {
		return err
	}
	return Resolve(dt, v)
}
