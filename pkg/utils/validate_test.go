package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"user.name+tag@example.com", true},
		{"USER@EXAMPLE.ORG", true},
		{"not-an-email", false},
		{"a@b", false}, // 顶级域太短
		{"a@b.c", false},
		{"@example.com", false},
		{"a@.com", false},
		{"", false},
		{"a b@example.com", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidateEmail(tc.in), "input %q", tc.in)
	}
}

func TestFirstMissing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FirstMissing())
	assert.Equal(t, "", FirstMissing(Required{Name: "username", Set: true}))

	// 按调用方顺序取第一个缺的
	got := FirstMissing(
		Required{Name: "username", Set: true},
		Required{Name: "email", Set: false},
		Required{Name: "password", Set: false},
	)
	assert.Equal(t, "email", got)
}
