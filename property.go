package regular

// Property identifies one rule of regularity. A failed check reports the
// first Property it found violated.
type Property int

const (
	PropertyNone Property = iota

	// Equality
	EqualToSelf
	NotUnequalToSelf
	ExamplesCompareEqual
	ExamplesNotUnequal

	// Value-initialization
	ValueInitialization

	// Construction
	CopyConstruction
	MoveConstruction

	// Assignment of a different value
	CopyAssignment
	CopyAssignmentSourcePreserved
	MoveAssignment

	// Copy independence
	CopyConstructionIndependence
	CopyAssignmentIndependence

	// Self-assignment
	SelfAssignment
	SelfMoveAssignment

	// Assignment of an equal value
	CopyAssignSameValue
	MoveAssignSameValue
)

var propertyDescriptions = map[Property]string{
	PropertyNone:                  "",
	EqualToSelf:                   "Object should compare equal to itself!",
	NotUnequalToSelf:              "Object should not compare unequal to itself!",
	ExamplesCompareEqual:          "The two examples should not compare equal!",
	ExamplesNotUnequal:            "The two examples should compare unequal!",
	ValueInitialization:           "Value-initialization should always yield the same value",
	CopyConstruction:              "A copy-constructed object must have a value equal to the original.",
	MoveConstruction:              "A move-constructed object must have a value equal to the original.",
	CopyAssignment:                "A copy-assigned-to object must have a value equal to the source object.",
	CopyAssignmentSourcePreserved: "The source object of a copy-assignment must preserve its value.",
	MoveAssignment:                "The value of a move-assigned-to object must be equal to the original value of the source object.",
	CopyConstructionIndependence:  "Assigning a new value to a copy-constructed object should not affect the source of the copy-construction.",
	CopyAssignmentIndependence:    "Assigning a new value to a copy-assigned-to object should not affect the source of the previous assignment.",
	SelfAssignment:                "A self-assigned object must have the same value as before.",
	SelfMoveAssignment:            "A self-move-assigned object must (still) be equal to itself.",
	CopyAssignSameValue:           "The value of an object must be equal to its original value, when it is copy-assigned the same value.",
	MoveAssignSameValue:           "The value of an object must be equal to its original value, when it is move-assigned the same value.",
}

var propertyNames = map[Property]string{
	PropertyNone:                  "None",
	EqualToSelf:                   "EqualToSelf",
	NotUnequalToSelf:              "NotUnequalToSelf",
	ExamplesCompareEqual:          "ExamplesCompareEqual",
	ExamplesNotUnequal:            "ExamplesNotUnequal",
	ValueInitialization:           "ValueInitialization",
	CopyConstruction:              "CopyConstruction",
	MoveConstruction:              "MoveConstruction",
	CopyAssignment:                "CopyAssignment",
	CopyAssignmentSourcePreserved: "CopyAssignmentSourcePreserved",
	MoveAssignment:                "MoveAssignment",
	CopyConstructionIndependence:  "CopyConstructionIndependence",
	CopyAssignmentIndependence:    "CopyAssignmentIndependence",
	SelfAssignment:                "SelfAssignment",
	SelfMoveAssignment:            "SelfMoveAssignment",
	CopyAssignSameValue:           "CopyAssignSameValue",
	MoveAssignSameValue:           "MoveAssignSameValue",
}

// Properties lists every checkable property in evaluation order.
func Properties() []Property {
	return []Property{
		EqualToSelf,
		NotUnequalToSelf,
		ExamplesCompareEqual,
		ExamplesNotUnequal,
		ValueInitialization,
		CopyConstruction,
		MoveConstruction,
		CopyAssignment,
		CopyAssignmentSourcePreserved,
		MoveAssignment,
		CopyConstructionIndependence,
		CopyAssignmentIndependence,
		SelfAssignment,
		SelfMoveAssignment,
		CopyAssignSameValue,
		MoveAssignSameValue,
	}
}

// String returns the identifier of the property, e.g. "SelfAssignment".
func (p Property) String() string {
	if s, ok := propertyNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Description returns the sentence reported when the property is violated.
func (p Property) Description() string {
	return propertyDescriptions[p]
}

// MarshalText lets reports encode a Property by name.
func (p Property) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
