package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindHostRule(t *testing.T) {
	assert := assert.New(t)

	hostRules := []*HostRule{
		{MatchHost: "mirror.example.org", Token: "a"},
		{MatchHost: "mojang.com", Token: "b"},
	}

	rule := FindHostRule("piston-meta.mojang.com", hostRules)
	assert.NotNil(rule)
	assert.Equal("b", rule.Token)

	assert.Nil(FindHostRule("other.net", hostRules))
	assert.Nil(FindHostRule("other.net", nil))
}

func TestHostRuleExpansion(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("GOMANIFEST_TEST_TOKEN", "secret")

	rule := &HostRule{Token: "${GOMANIFEST_TEST_TOKEN}"}
	assert.Equal("secret", rule.TokenExpanded())
}
