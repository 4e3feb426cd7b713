package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEMoneyNumber(t *testing.T) {
	assert.True(t, ValidEMoneyNumber("123456789"))
	assert.True(t, ValidEMoneyNumber("000000000"))

	assert.False(t, ValidEMoneyNumber("12345678"))
	assert.False(t, ValidEMoneyNumber("1234567890"))
	assert.False(t, ValidEMoneyNumber("12345678a"))
	assert.False(t, ValidEMoneyNumber(" 123456789"))
	assert.False(t, ValidEMoneyNumber(""))
}

func TestValidEMoneyPin(t *testing.T) {
	assert.True(t, ValidEMoneyPin("1234"))
	assert.True(t, ValidEMoneyPin("0000"))

	assert.False(t, ValidEMoneyPin("123"))
	assert.False(t, ValidEMoneyPin("12345"))
	assert.False(t, ValidEMoneyPin("12a4"))
	assert.False(t, ValidEMoneyPin(""))
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Alexei"))
	assert.True(t, ValidName("Alexei Ward"))
	assert.True(t, ValidName("Alexei-Ward"))
	assert.True(t, ValidName("Alexei_Ward"))
	assert.True(t, ValidName("R2 D2"))

	assert.False(t, ValidName(""))
	assert.False(t, ValidName("Alexei  Ward")) // double separator
	assert.False(t, ValidName(" Alexei"))
	assert.False(t, ValidName("Alexei!"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alexei@mail.com"))
	assert.True(t, ValidEmail("a.b+c@sub.domain.io"))

	assert.False(t, ValidEmail("alexei"))
	assert.False(t, ValidEmail("alexei@mail"))
	assert.False(t, ValidEmail("alexei mail@x.com"))
	assert.False(t, ValidEmail("@mail.com"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("+12025550136"))
	assert.True(t, ValidPhone("202-555-0136"))

	assert.False(t, ValidPhone("+1 202 555"))
	assert.False(t, ValidPhone("phone"))
	assert.False(t, ValidPhone(""))
}

func TestValidAddress(t *testing.T) {
	assert.True(t, ValidAddress("1137 Williams Avenue"))
	assert.True(t, ValidAddress("x"))

	assert.False(t, ValidAddress(""))
	assert.False(t, ValidAddress("   "))
	assert.False(t, ValidAddress("!!!"))
}

func TestValidZipCode(t *testing.T) {
	assert.True(t, ValidZipCode("10001"))
	assert.True(t, ValidZipCode("10001-1234"))
	assert.True(t, ValidZipCode("10001 1234"))

	assert.False(t, ValidZipCode("1000"))
	assert.False(t, ValidZipCode("100011"))
	assert.False(t, ValidZipCode("10001-12"))
	assert.False(t, ValidZipCode("abcde"))
}

func TestValidPlaceName(t *testing.T) {
	assert.True(t, ValidPlaceName("New York"))
	assert.True(t, ValidPlaceName("NY"))
	assert.True(t, ValidPlaceName("  NY  "))

	assert.False(t, ValidPlaceName("N"))
	assert.False(t, ValidPlaceName("  N  "))
	assert.False(t, ValidPlaceName(""))
}
