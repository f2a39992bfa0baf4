package money

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBounded(t *testing.T) {
	assert.True(t, Bounded(decimal.RequireFromString("499.99")))
	assert.True(t, Bounded(decimal.RequireFromString("1e20")))
	assert.True(t, Bounded(decimal.RequireFromString("1e-20")))
	assert.False(t, Bounded(decimal.RequireFromString("1e21")))
	assert.False(t, Bounded(decimal.RequireFromString("1e-21")))
	assert.False(t, Bounded(decimal.New(1, 90000000)))
	assert.False(t, Bounded(decimal.New(1, -90000000)))
	assert.False(t, Bounded(decimal.RequireFromString(strings.Repeat("9", 60))))
}

func TestParse(t *testing.T) {
	d, ok := Parse(" 4999 ")
	assert.True(t, ok)
	assert.Equal(t, "4999", d.String())

	for _, s := range []string{"", "abc", "4,999", "1e9000000", "1e-9000000", strings.Repeat("1", 65)} {
		start := time.Now()
		_, ok := Parse(s)
		assert.False(t, ok, s)
		assert.Less(t, time.Since(start), time.Second, s)
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "4999.00", Display("4999"))
	assert.Equal(t, "10.50", Display("10.5"))
	assert.Equal(t, "Rs. 4,999", Display(" Rs. 4,999 "))
	assert.Equal(t, "1e9000000", Display("1e9000000"))
	assert.Equal(t, "", Display(""))
}
