package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Experience{StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &end, IsCurrent: true}

	e.Normalize()

	assert.Equal(t, DefaultEmploymentType, e.EmploymentType)
	assert.NotNil(t, e.Skills)
	assert.Nil(t, e.EndDate)
	assert.Equal(t, "Jan 2021 - Present", e.Period())
}

func TestValidate_RequiresStartDate(t *testing.T) {
	assert.ErrorIs(t, (&Experience{}).Validate(), ErrStartDateRequired)
}

func TestApply_ClearEndDate(t *testing.T) {
	end := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	e := &Experience{EndDate: &end}

	e.Apply(Patch{ClearEndDate: true, EndDate: &end})

	assert.Nil(t, e.EndDate)
}
