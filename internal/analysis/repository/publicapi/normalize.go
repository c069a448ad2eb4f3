package publicapi

// Record is one flat key-value row of an upstream result.
type Record map[string]any

// Shape identifies how an upstream body wraps its result rows.
type Shape int

const (
	// ShapeOther is anything not recognized below. It carries no rows.
	ShapeOther Shape = iota
	// ShapeRecords is a top-level sequence: [...]
	ShapeRecords
	// ShapeWrappedSingular is {"items": {"item": {...}}}
	ShapeWrappedSingular
	// ShapeWrappedPlural is {"items": {"item": [...]}}
	ShapeWrappedPlural
	// ShapeFlatItems is {"items": [...]}
	ShapeFlatItems
)

func (s Shape) String() string {
	switch s {
	case ShapeRecords:
		return "records"
	case ShapeWrappedSingular:
		return "wrapped_singular"
	case ShapeWrappedPlural:
		return "wrapped_plural"
	case ShapeFlatItems:
		return "flat_items"
	default:
		return "other"
	}
}

// Body is a classified upstream body. Only the field matching Shape is set.
type Body struct {
	Shape  Shape
	single map[string]any
	list   []any
}

// Classify sorts a decoded body into one of the known shapes.
func Classify(raw any) Body {
	switch v := raw.(type) {
	case []any:
		return Body{Shape: ShapeRecords, list: v}
	case map[string]any:
		switch items := v["items"].(type) {
		case []any:
			return Body{Shape: ShapeFlatItems, list: items}
		case map[string]any:
			switch item := items["item"].(type) {
			case map[string]any:
				return Body{Shape: ShapeWrappedSingular, single: item}
			case []any:
				return Body{Shape: ShapeWrappedPlural, list: item}
			}
		}
	}
	return Body{Shape: ShapeOther}
}

// Records returns the rows of b. Elements that are not key-value records
// are dropped.
func (b Body) Records() []Record {
	switch b.Shape {
	case ShapeWrappedSingular:
		return []Record{Record(b.single)}
	case ShapeRecords, ShapeWrappedPlural, ShapeFlatItems:
		out := make([]Record, 0, len(b.list))
		for _, el := range b.list {
			if m, ok := el.(map[string]any); ok {
				out = append(out, Record(m))
			}
		}
		return out
	default:
		return []Record{}
	}
}

// Normalize flattens any upstream body into its rows. It never fails:
// unknown shapes yield an empty slice.
func Normalize(raw any) []Record {
	return Classify(raw).Records()
}
