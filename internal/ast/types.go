package ast

// TypeKind enumerates the type constructors of the language.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	// TypeAddress is the account address type.
	TypeAddress
	// TypeBool is the boolean type.
	TypeBool
	// TypeField is the base field element type.
	TypeField
	// TypeGroup is the group element type.
	TypeGroup
	// TypeString is the string type.
	TypeString
	// TypeInteger is a sized integer type; Integer names the width and sign.
	TypeInteger
	// TypeIdentifier is a reference to a declared circuit or record.
	TypeIdentifier
)

// IntegerKind enumerates the sized integer types.
type IntegerKind uint8

const (
	IntInvalid IntegerKind = iota
	IntU8
	IntU16
	IntU32
	IntU64
	IntU128
	IntI8
	IntI16
	IntI32
	IntI64
	IntI128
)

var integerNames = map[IntegerKind]string{
	IntU8:   "u8",
	IntU16:  "u16",
	IntU32:  "u32",
	IntU64:  "u64",
	IntU128: "u128",
	IntI8:   "i8",
	IntI16:  "i16",
	IntI32:  "i32",
	IntI64:  "i64",
	IntI128: "i128",
}

func (k IntegerKind) String() string {
	if name, ok := integerNames[k]; ok {
		return name
	}
	return "invalid"
}

// Type is a declared type reference as written in source.
type Type struct {
	Kind    TypeKind
	Integer IntegerKind // set when Kind == TypeInteger
	Name    string      // set when Kind == TypeIdentifier
}

// AddressType returns the address type.
func AddressType() Type { return Type{Kind: TypeAddress} }

// BoolType returns the boolean type.
func BoolType() Type { return Type{Kind: TypeBool} }

// FieldType returns the field element type.
func FieldType() Type { return Type{Kind: TypeField} }

// GroupType returns the group element type.
func GroupType() Type { return Type{Kind: TypeGroup} }

// StringType returns the string type.
func StringType() Type { return Type{Kind: TypeString} }

// IntegerType returns the sized integer type for kind.
func IntegerType(kind IntegerKind) Type {
	return Type{Kind: TypeInteger, Integer: kind}
}

// U64Type returns the 64-bit unsigned integer type.
func U64Type() Type { return IntegerType(IntU64) }

// IdentifierType returns a named type referring to a circuit declaration.
func IdentifierType(name string) Type {
	return Type{Kind: TypeIdentifier, Name: name}
}

// EqFlat reports structural equality of type constructors. Integer types
// compare by width and sign, identifier types by name; nothing deeper is
// inspected.
func (t Type) EqFlat(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TypeInteger:
		return t.Integer == other.Integer
	case TypeIdentifier:
		return t.Name == other.Name
	default:
		return true
	}
}

func (t Type) String() string {
	switch t.Kind {
	case TypeAddress:
		return "address"
	case TypeBool:
		return "bool"
	case TypeField:
		return "field"
	case TypeGroup:
		return "group"
	case TypeString:
		return "string"
	case TypeInteger:
		return t.Integer.String()
	case TypeIdentifier:
		return t.Name
	default:
		return "invalid"
	}
}

// ScalarTypeFromName maps a primitive type name to its Type, if it is one.
func ScalarTypeFromName(name string) (Type, bool) {
	switch name {
	case "address":
		return AddressType(), true
	case "bool":
		return BoolType(), true
	case "field":
		return FieldType(), true
	case "group":
		return GroupType(), true
	case "string":
		return StringType(), true
	}
	for kind, text := range integerNames {
		if text == name {
			return IntegerType(kind), true
		}
	}
	return Type{}, false
}
