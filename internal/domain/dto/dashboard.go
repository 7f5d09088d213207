package dto

// AssessmentSummary is one row of a component bucket. RatingValue is nil for
// assessments that have no component responses at all.
type AssessmentSummary struct {
	AssessmentID     int64   `json:"assessment_id"`
	AssessmentNumber *int64  `json:"assessment_number"`
	CountryID        *int64  `json:"country_id"`
	CountryName      *string `json:"country_name"`
	RegionID         *int64  `json:"region_id"`
	RegionName       *string `json:"region_name"`
	DateOfAssessment *string `json:"date_of_assessment"`
	RatingValue      *int64  `json:"rating_value"`
	RatingTitle      string  `json:"rating_title"`
}

type ComponentGroup struct {
	ComponentID   *int64              `json:"component_id"`
	ComponentNum  *int64              `json:"component_num"`
	ComponentName string              `json:"component_name"`
	AreaID        *int64              `json:"area_id"`
	AreaName      string              `json:"area_name"`
	Assessments   []AssessmentSummary `json:"assessments"`
}

type CountryHistoryEntry struct {
	AssessmentNumber *int64               `json:"assessment_number"`
	Date             *string              `json:"date"`
	Components       []DashboardComponent `json:"components"`
	Phase            *int64               `json:"phase"`
	PhaseDisplay     *string              `json:"phase_display"`
}

// NullCountryKey is the history key used for records without a country name.
const NullCountryKey = "null"

type Dashboard struct {
	Assessments        []*ComponentGroup                `json:"assessments"`
	CountryAssessments map[string][]CountryHistoryEntry `json:"countryAssessments"`
}

// componentKey distinguishes a nil component id from id 0.
type componentKey struct {
	valid bool
	id    int64
}

func keyOf(id *int64) componentKey {
	if id == nil {
		return componentKey{}
	}

	return componentKey{valid: true, id: *id}
}

// ComponentGroups collects buckets in first-seen order.
type ComponentGroups struct {
	groups []*ComponentGroup
	byID   map[componentKey]*ComponentGroup
	empty  *ComponentGroup
}

func NewComponentGroups() *ComponentGroups {
	return &ComponentGroups{byID: make(map[componentKey]*ComponentGroup)}
}

// GetGroup returns the bucket for c's component id, creating it from c's
// metadata on first sight.
func (g *ComponentGroups) GetGroup(c DashboardComponent) *ComponentGroup {
	key := keyOf(c.ComponentID)
	group, ok := g.byID[key]
	if !ok {
		group = &ComponentGroup{
			ComponentID:   c.ComponentID,
			ComponentNum:  c.ComponentNum,
			ComponentName: c.ComponentName,
			AreaID:        c.AreaID,
			AreaName:      c.AreaName,
			Assessments:   []AssessmentSummary{},
		}
		g.add(key, group)
	}

	return group
}

// EmptyGroup returns the bucket that collects assessments without any
// component. It is fixed the first time it is needed: the first existing
// bucket if there is one, otherwise a new synthetic bucket with no component.
func (g *ComponentGroups) EmptyGroup() *ComponentGroup {
	if g.empty != nil {
		return g.empty
	}

	if len(g.groups) > 0 {
		g.empty = g.groups[0]
		return g.empty
	}

	g.empty = &ComponentGroup{Assessments: []AssessmentSummary{}}
	g.add(componentKey{}, g.empty)
	return g.empty
}

func (g *ComponentGroups) add(key componentKey, group *ComponentGroup) {
	g.groups = append(g.groups, group)
	if _, ok := g.byID[key]; !ok {
		g.byID[key] = group
	}
}

func (g *ComponentGroups) List() []*ComponentGroup {
	if g.groups == nil {
		return []*ComponentGroup{}
	}

	return g.groups
}
