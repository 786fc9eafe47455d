package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"
)

func TestJoinParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Joined case
Tolerance: 1.e-6
Verbose: true
`)
	var input JoinParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Joined case")
	assert.Equal(t, input.Tolerance, 1.e-6)
	assert.Equal(t, input.Verbose, true)
	input.Print()
}
