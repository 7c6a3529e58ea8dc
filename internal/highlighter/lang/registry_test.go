package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndDetect(t *testing.T) {
	toy := &Language{Name: "Toy", Extensions: []string{".TOY"}, Options: Options{Numbers: true}}
	Register(toy)

	assert.Same(t, toy, GetForFile("dir/file.toy"))
	assert.Same(t, toy, Detect("FILE.Toy"))
	assert.Nil(t, GetForFile("file.unknown-ext"))
	assert.Contains(t, GetAll(), toy)
	assert.True(t, toy.HasHighlighting())
}

func TestDetectFallbacks(t *testing.T) {
	assert.Same(t, Plain, Detect(""))
	assert.Same(t, Plain, Detect("notes.zzqq"))
	assert.False(t, Plain.HasHighlighting())

	py := Detect("script.py")
	assert.Equal(t, "Python", py.Name)
	assert.False(t, py.HasHighlighting(), "named-only languages carry no grammar")
}
