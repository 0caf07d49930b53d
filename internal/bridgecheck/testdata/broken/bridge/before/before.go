package before

// Moved is redeclared here instead of aliased, so values of this type
// do not interoperate with the relocated v2 type.
type Moved struct{}
