package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"0000", true},
		{"9481", true},
		{"123", false},
		{"12345", false},
		{"12ab", false},
		{"١٢٣٤", false}, // non-ASCII digits
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCode(tt.code))
		})
	}
}

func TestNewChatMessage(t *testing.T) {
	msg := NewChatMessage("  ", "hello", 123)
	assert.Equal(t, DefaultUserName, msg.UserName)
	assert.Equal(t, int64(123), msg.Ts)

	msg = NewChatMessage(strings.Repeat("n", MaxUserNameLen+5), strings.Repeat("x", MaxChatLen+5), 1)
	assert.Len(t, msg.UserName, MaxUserNameLen)
	assert.Len(t, msg.Text, MaxChatLen)
}
