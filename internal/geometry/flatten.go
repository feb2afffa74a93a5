package geometry

// Flatten resolves degenerate multi-polygon wrappers. Hand-drawn footprints
// are often encoded as a MultiPolygon with a single member; those unwrap to a
// plain polygon. True multi-part footprints (two or more members) pass
// through unchanged with isTrueMulti set, leaving the keep/split/reject
// policy to the caller — parts are never merged or dropped silently.
func Flatten(s Shape) (isTrueMulti bool, out Shape, err error) {
	switch s.Kind {
	case KindEmpty:
		return false, EmptyShape(), &ErrInvalidInput{Reason: "empty geometry"}
	case KindPolygon:
		return false, s, nil
	case KindMultiPolygon:
		switch len(s.Multi) {
		case 0:
			return false, EmptyShape(), &ErrInvalidInput{Reason: "multi-polygon with zero members"}
		case 1:
			return false, PolygonShape(s.Multi[0]), nil
		default:
			return true, s, nil
		}
	default:
		return false, EmptyShape(), &ErrInvalidInput{Reason: "unknown geometry kind"}
	}
}
