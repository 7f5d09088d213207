package domain

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		want    *string
	}{
		{name: "missing", body: `{}`, wantSet: false},
		{name: "string", body: `{"phase_display": "WorkPlan"}`, wantSet: true, want: strPtr("WorkPlan")},
		{name: "not a string", body: `{"phase_display": 4}`, wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			require.NoError(t, sonic.Unmarshal([]byte(tt.body), &s))
			assert.Equal(t, tt.wantSet, s.PhaseDisplay.Set)
			assert.Equal(t, tt.want, s.PhaseDisplay.Value)
		})
	}

	assert.Equal(t, strPtr("default"), OptionalString{}.OrDefault("default"))
	assert.Equal(t, strPtr("x"), NewOptionalString("x").OrDefault("default"))
}

func TestCentroidUnmarshal(t *testing.T) {
	var c Country
	require.NoError(t, sonic.Unmarshal([]byte(`{"iso3": "KEN", "centroid": {"type": "Point", "coordinates": [1, "2"]}}`), &c))
	require.NotNil(t, c.Centroid)
	assert.Equal(t, "Point", c.Centroid.Type)
	assert.Nil(t, c.Centroid.Latitude())
	assert.Nil(t, c.Centroid.Longitude())
	assert.Equal(t, strPtr("KEN"), c.ISO3)
}

func strPtr(s string) *string {
	return &s
}
