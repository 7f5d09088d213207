package domain

// RegionNames maps the GO API region code to its display name.
var RegionNames = map[int64]string{
	0: "Africa",
	1: "Americas",
	2: "Asia Pacific",
	3: "Europe",
	4: "MENA",
}

// AreaNames maps a PER area id to its display name.
var AreaNames = map[int64]string{
	1: "Policy Strategy and Standards",
	2: "Analysis and planning",
	3: "Operational capacity",
	4: "Coordination",
	5: "Operations support",
}

// RegionName returns nil for a nil or unmapped region id.
func RegionName(id *int64) *string {
	if id == nil {
		return nil
	}
	name, ok := RegionNames[*id]
	if !ok {
		return nil
	}

	return &name
}

// AreaName returns "" for a nil or unmapped area id.
func AreaName(id *int64) string {
	if id == nil {
		return ""
	}

	return AreaNames[*id]
}
