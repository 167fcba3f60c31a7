package sitesetting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettings_MissingKeysDefaultToTrue(t *testing.T) {
	s := FromList([]*Setting{{Key: KeyShowEducationSection, Value: false}})

	assert.False(t, s.Get(KeyShowEducationSection))
	assert.True(t, s.Get(KeyShowExperienceSection))
	assert.True(t, Settings(nil).Get(KeyShowExperienceMenu))
}

func TestSettings_Resolved(t *testing.T) {
	s := FromList([]*Setting{
		{Key: KeyShowExperienceMenu, Value: false},
		{Key: "custom_flag", Value: false},
	})

	assert.Equal(t, map[string]bool{
		KeyShowExperienceMenu:    false,
		KeyShowExperienceSection: true,
		KeyShowEducationSection:  true,
		"custom_flag":            false,
	}, s.Resolved())
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Setting{Key: " "}).Validate(), ErrKeyRequired)
	assert.NoError(t, (&Setting{Key: KeyShowExperienceMenu}).Validate())
}
