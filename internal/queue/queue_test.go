package queue

import (
	"fmt"
	"testing"

	. "github.com/ava12/spellbreak/internal/test"
)

func TestComputeSize(t *testing.T) {
	for i := 0; i <= 33; i++ {
		name := fmt.Sprintf("%d elements", i)
		t.Run(name, func(t *testing.T) {
			size := computeSize(i)
			Assert(t, size >= minSize, "expecting at least %d, got %d", minSize, size)
			Assert(t, size&(size+1) == 0, "expecting 2^n - 1, got %b", size)
			Assert(t, size >= i, "expecting size >= %d, got %d", i, size)
			if size > minSize {
				Assert(t, (size>>1) < i, "expecting size/2 < %d, got size %d", i, size)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	q := New[int]()
	ExpectInt(t, minSize+1, len(q.items))
	ExpectInt(t, 0, q.head)
	ExpectInt(t, 0, q.tail)
	ExpectBool(t, true, q.IsEmpty())
	_, ok := q.First()
	ExpectBool(t, false, ok)
}

func TestPrefilled(t *testing.T) {
	items := make([]int, minSize+1)
	for i := range items {
		items[i] = i
	}

	q := New(items...)
	ExpectInt(t, (minSize<<1)+1, q.size)
	ExpectInt(t, len(items), q.Len())
	for i := range items {
		v, ok := q.First()
		ExpectBool(t, true, ok)
		ExpectInt(t, i, v)
	}
	ExpectBool(t, true, q.IsEmpty())
}

func TestGrowKeepsOrder(t *testing.T) {
	q := New[int]()
	q.Append(0).Append(1)
	q.First()
	for i := 2; i < 10; i++ {
		q.Append(i)
	}

	ExpectInt(t, 9, q.Len())
	for i := 1; i < 10; i++ {
		v, _ := q.First()
		ExpectInt(t, i, v)
	}
	ExpectBool(t, true, q.IsEmpty())
}

func TestLen(t *testing.T) {
	samples := []struct {
		head, tail, l int
	}{
		{0, 1, 1},
		{1, 1, 0},
		{minSize, 1, 2},
	}

	q := New[int]()
	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			q.head = s.head
			q.tail = s.tail
			ExpectInt(t, s.l, q.Len())
		})
	}
}
