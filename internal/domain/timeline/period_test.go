package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod(t *testing.T) {
	start := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.October, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 2020 - Oct 2022", Period(start, &end, false))
	assert.Equal(t, "Mar 2020 - Present", Period(start, &end, true))
	assert.Equal(t, "Mar 2020 - Present", Period(start, nil, false))
	assert.Equal(t, "Mar 2020 - Present", Period(start, &time.Time{}, false))
}
