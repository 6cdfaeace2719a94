package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFrom(t *testing.T) {
	assert.Equal(t, []SelectOption{
		{Value: "square", Label: "Square"},
		{Value: "", Label: ""},
	}, OptionsFrom([]string{"square", ""}))
}

func TestClassMerge(t *testing.T) {
	assert.Contains(t, InputClass("px-1"), "px-1")
	assert.NotContains(t, InputClass("px-1"), "px-3")
	assert.Contains(t, ButtonClass("bg-blue-600"), "bg-blue-600")
	assert.NotContains(t, ButtonClass("bg-blue-600"), "bg-gray-900")
}
