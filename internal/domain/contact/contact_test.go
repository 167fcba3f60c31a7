package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := Message{Name: "Ann", Email: "ann@example.com", Message: "Hello"}

	tests := []struct {
		name   string
		mutate func(m *Message)
		err    error
	}{
		{"valid", func(m *Message) {}, nil},
		{"blank name", func(m *Message) { m.Name = "  " }, ErrNameRequired},
		{"bad email", func(m *Message) { m.Email = "not-an-email" }, ErrInvalidEmail},
		{"blank message", func(m *Message) { m.Message = "" }, ErrMessageRequired},
		{"too long", func(m *Message) { m.Message = strings.Repeat("a", MaxMessageLength+1) }, ErrMessageTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			if tt.err == nil {
				assert.NoError(t, m.Validate())
				return
			}
			assert.ErrorIs(t, m.Validate(), tt.err)
		})
	}
}
