package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two urls in order",
			text: "check https://a.test/x and also http://b.test please",
			want: []string{"https://a.test/x", "http://b.test"},
		},
		{
			name: "no urls",
			text: "nothing to see here",
			want: nil,
		},
		{
			name: "url glued to punctuation",
			text: "go to https://evil.example/grab?x=1,now",
			want: []string{"https://evil.example/grab?x=1,now"},
		},
		{
			name: "scheme only prefix is not a url",
			text: "https is a protocol",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractURLs(tt.text))
		})
	}
}

func TestDomainOf(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain", url: "https://example.com/path", want: "example.com"},
		{name: "port stripped", url: "http://example.com:8080/x", want: "example.com"},
		{name: "uppercase host lowered", url: "https://EXAMPLE.com", want: "example.com"},
		{name: "no host", url: "https://", want: ""},
		{name: "garbage", url: "http://[::1]:namedport", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DomainOf(tt.url))
		})
	}
}

func TestIsAllowlisted(t *testing.T) {
	suffixes := []string{"discord.com", "github.com"}

	assert.True(t, IsAllowlisted("discord.com", suffixes))
	assert.True(t, IsAllowlisted("cdn.discord.com", suffixes))
	assert.False(t, IsAllowlisted("discord.com.evil.tld", suffixes))
	assert.False(t, IsAllowlisted("example.com", suffixes))
	assert.False(t, IsAllowlisted("example.com", nil))
}

func TestIsSuspiciousDomain(t *testing.T) {
	needles := []string{"free-nitro", "grabber"}

	assert.True(t, IsSuspiciousDomain("free-nitro.example", needles))
	assert.True(t, IsSuspiciousDomain("token-grabber.io", needles))
	assert.False(t, IsSuspiciousDomain("example.com", needles))
	assert.False(t, IsSuspiciousDomain("free-nitro.example", nil))
}

func TestContainsSuspiciousKeyword(t *testing.T) {
	keywords := []string{"free nitro", "steam gift"}

	assert.True(t, ContainsSuspiciousKeyword("claim your FREE NITRO now", keywords))
	assert.True(t, ContainsSuspiciousKeyword("Steam Gift inside", keywords))
	assert.False(t, ContainsSuspiciousKeyword("regular chat message", keywords))
	assert.False(t, ContainsSuspiciousKeyword("free nitro", nil))
}
