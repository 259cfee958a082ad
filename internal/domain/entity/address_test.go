package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressCooked_AllComponents(t *testing.T) {
	n := 123
	a := &Address{Country: "Netherlands", City: "Amsterdam", Street: "Keizersgracht", Number: &n}
	assert.Equal(t, "Netherlands, Amsterdam, Keizersgracht, 123", a.Cooked())
}

func TestAddressCooked_SkipsEmptyComponents(t *testing.T) {
	a := &Address{Country: "Netherlands", Street: "Keizersgracht"}
	assert.Equal(t, "Netherlands, Keizersgracht", a.Cooked())
}

func TestAddressCooked_NumberOnly(t *testing.T) {
	n := 7
	a := &Address{Number: &n}
	assert.Equal(t, "7", a.Cooked())
}

func TestAddressCooked_Empty(t *testing.T) {
	assert.Equal(t, "", (&Address{}).Cooked())
}

func TestAddressCooked_NilReceiver(t *testing.T) {
	var a *Address
	assert.Equal(t, "", a.Cooked())
}
