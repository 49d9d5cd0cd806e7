package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_NotifiesOnlyOnChange(t *testing.T) {
	v := NewValue(0)

	var seen []int
	v.Subscribe(func(n int) { seen = append(seen, n) })

	v.Set(0)
	v.Update(func(n int) int { return n + 1 })
	v.Set(1)
	v.Set(5)

	assert.Equal(t, 5, v.Get())
	assert.Equal(t, []int{1, 5}, seen)
}

func TestValue_UnsubscribeDuringNotify(t *testing.T) {
	v := NewValue("a")

	var first, second int
	var unsubscribeSecond func()
	v.Subscribe(func(string) {
		first++
		unsubscribeSecond()
	})
	unsubscribeSecond = v.Subscribe(func(string) { second++ })

	v.Set("b")
	v.Set("c")

	assert.Equal(t, 2, first)
	assert.Equal(t, 0, second)
}
