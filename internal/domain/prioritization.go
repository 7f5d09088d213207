package domain

// Prioritization lists the components a national society prioritised for one
// PER process. Overview is the status id, not an overview id.
type Prioritization struct {
	ID                         int64                       `json:"id"`
	Overview                   *int64                      `json:"overview"`
	PrioritizedActionResponses []PrioritizedActionResponse `json:"prioritized_action_responses"`
}

type PrioritizedActionResponse struct {
	ID                int64                     `json:"id"`
	Component         *int64                    `json:"component"`
	ComponentDetails  *PrioritizedComponentInfo `json:"component_details"`
	JustificationText *string                   `json:"justification_text"`
}

type PrioritizedComponentInfo struct {
	ID          *int64   `json:"id"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Area        *AreaRef `json:"area"`
}

type AreaRef struct {
	ID    *int64  `json:"id"`
	Title *string `json:"title"`
}

func (r *PrioritizedActionResponse) Details() PrioritizedComponentInfo {
	if r.ComponentDetails == nil {
		return PrioritizedComponentInfo{}
	}

	return *r.ComponentDetails
}

func (c PrioritizedComponentInfo) AreaTitle() *string {
	if c.Area == nil {
		return nil
	}

	return c.Area.Title
}
