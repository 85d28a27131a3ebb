package catalog

// TypeResolver decides the final data type of a column from the types
// observed during the scan. The default keeps the first non-null inference,
// which misreports genuinely mixed columns; the resolver is an injection
// point so callers can opt into majority voting instead.
type TypeResolver interface {
	Name() string
	Resolve(observed []DataType) DataType
}

// FirstSeenResolver keeps the first non-null type observed in the column
type FirstSeenResolver struct{}

func (FirstSeenResolver) Name() string { return "first-seen" }

func (FirstSeenResolver) Resolve(observed []DataType) DataType {
	for _, t := range observed {
		if t != TypeNull {
			return t
		}
	}
	return TypeUnknown
}

// MajorityResolver picks the most common non-null type among the observed
// sample, ties broken by earliest occurrence
type MajorityResolver struct{}

func (MajorityResolver) Name() string { return "majority" }

func (MajorityResolver) Resolve(observed []DataType) DataType {
	counts := make(map[DataType]int)
	var order []DataType
	for _, t := range observed {
		if t == TypeNull {
			continue
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	best := TypeUnknown
	bestCount := 0
	for _, t := range order {
		if counts[t] > bestCount {
			best = t
			bestCount = counts[t]
		}
	}
	return best
}

// ResolverFor maps a config name to a resolver, defaulting to first-seen
func ResolverFor(name string) TypeResolver {
	if name == "majority" {
		return MajorityResolver{}
	}
	return FirstSeenResolver{}
}
