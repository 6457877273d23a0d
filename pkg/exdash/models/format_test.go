package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "QA", FormatValue("QA"))
	assert.Equal(t, "2019", FormatValue(int64(2019)))
	assert.Equal(t, "2.5", FormatValue(2.5))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "2021-03-14", FormatValue(time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2021-03-14 08:30:00", FormatValue(time.Date(2021, 3, 14, 8, 30, 0, 0, time.UTC)))
}

func TestColorStopJSON(t *testing.T) {
	data, err := ColorStop{Offset: 1, Color: "firebrick"}.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `[1, "firebrick"]`, string(data))

	var stop ColorStop
	assert.NoError(t, stop.UnmarshalJSON([]byte(`[0, "lightsteelblue"]`)))
	assert.Equal(t, ColorStop{Offset: 0, Color: "lightsteelblue"}, stop)
	assert.Error(t, stop.UnmarshalJSON([]byte(`[0]`)))
}

func TestDatasetColumns(t *testing.T) {
	ds := &Dataset{Columns: []Column{{ID: "Domain"}, {ID: "Task"}}}
	assert.Equal(t, []string{"Domain", "Task"}, ds.ColumnIDs())
	assert.True(t, ds.HasColumn("Task"))
	assert.False(t, ds.HasColumn("Year"))

	rec := Record{ID: 4, Values: map[string]any{"Domain": "NLP"}}
	assert.Equal(t, "NLP", rec.Value("Domain"))
	assert.Nil(t, Record{}.Value("Domain"))
	assert.Equal(t, map[string]any{"Domain": "NLP", "id": 4}, rec.Flatten())
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t"))
	assert.False(t, IsBlank("x"))
	assert.False(t, IsBlank(int64(0)))
	assert.False(t, IsBlank(false))
}
