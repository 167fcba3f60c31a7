package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		StartDate Date `json:"start_date"`
		EndDate   Date `json:"end_date"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2021-03-01"}`), &body))
	assert.True(t, body.StartDate.Set)
	assert.Equal(t, time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), body.StartDate.Value())
	assert.False(t, body.EndDate.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2021-03-01T10:00:00+07:00","end_date":null}`), &body))
	assert.Equal(t, time.Date(2021, 3, 1, 3, 0, 0, 0, time.UTC), body.StartDate.Value())
	assert.True(t, body.EndDate.Set)
	assert.Nil(t, body.EndDate.Time)

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":"01/03/2021"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"start_date":20210301}`), &body))
}

func TestUpdateExperienceRequest_ToPatch(t *testing.T) {
	var req UpdateExperienceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Lead","end_date":"","skills":"Go, Kafka"}`), &req))

	patch := req.ToPatch()

	require.NotNil(t, patch.Title)
	assert.Equal(t, "Lead", *patch.Title)
	assert.Nil(t, patch.StartDate)
	assert.True(t, patch.ClearEndDate)
	assert.Nil(t, patch.EndDate)
	require.NotNil(t, patch.Skills)
	assert.Equal(t, []string{"Go", "Kafka"}, *patch.Skills)
	assert.Nil(t, patch.Company)
}

func TestUpdateExperienceRequest_OmittedDatesAreUntouched(t *testing.T) {
	var req UpdateExperienceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"company":"Acme"}`), &req))

	patch := req.ToPatch()

	assert.Nil(t, patch.StartDate)
	assert.Nil(t, patch.EndDate)
	assert.False(t, patch.ClearEndDate)
	assert.Nil(t, patch.Skills)
}
