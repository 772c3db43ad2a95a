package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("services"))
	assert.True(t, IsValidSlug("dich-vu-phap-ly"))
	assert.True(t, IsValidSlug("page-2"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Invalid Slug!"))
	assert.False(t, IsValidSlug("UPPER"))
	assert.False(t, IsValidSlug("dấu-tiếng-việt"))
	assert.False(t, IsValidSlug("with space"))
	assert.False(t, IsValidSlug("under_score"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "legal-services", Slugify("Legal Services"))
	assert.Equal(t, "page-2", Slugify("  Page 2! "))
	assert.Equal(t, "abc", Slugify("---abc---"))
	assert.Equal(t, "", Slugify("!!!"))
}
