package domain

import "github.com/bytedance/sonic"

type Country struct {
	ID       int64     `json:"id"`
	ISO3     *string   `json:"iso3"`
	Name     *string   `json:"name"`
	Region   *int64    `json:"region"`
	Centroid *Centroid `json:"centroid"`
}

// Centroid is a geojson point; Coordinates is [longitude, latitude].
type Centroid struct {
	Type        string     `json:"type"`
	Coordinates []*float64 `json:"coordinates"`
}

// UnmarshalJSON never fails: a centroid that is not a geojson-like object
// with numeric (or null) coordinates decodes with no coordinates.
func (c *Centroid) UnmarshalJSON(b []byte) error {
	*c = Centroid{}

	var obj map[string]any
	if err := sonic.Unmarshal(b, &obj); err != nil {
		return nil
	}
	c.Type, _ = obj["type"].(string)

	raw, ok := obj["coordinates"].([]any)
	if !ok {
		return nil
	}

	coords := make([]*float64, 0, len(raw))
	for _, v := range raw {
		if v == nil {
			coords = append(coords, nil)
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return nil
		}
		coords = append(coords, &f)
	}
	c.Coordinates = coords

	return nil
}

func (c *Centroid) Longitude() *float64 {
	if c == nil || len(c.Coordinates) < 1 {
		return nil
	}

	return c.Coordinates[0]
}

func (c *Centroid) Latitude() *float64 {
	if c == nil || len(c.Coordinates) < 2 {
		return nil
	}

	return c.Coordinates[1]
}
