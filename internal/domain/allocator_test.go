package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/keyctx/internal/model"
)

func bindingsFor(keys ...string) []m.Binding {
	out := make([]m.Binding, 0, len(keys))
	for _, key := range keys {
		out = append(out, m.Binding{Unit: "u", File: "u/mod.ini", OriginalKey: key})
	}

	return out
}

func assigned(bindings []m.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b.AssignedKey)
	}

	return out
}

func TestAllocator_Allocate(t *testing.T) {
	tests := []struct {
		name     string
		pool     []string
		keys     []string
		want     []string
		warnings []string
	}{
		{
			name: "distinct keys in discovery order",
			pool: []string{"A", "B", "C"},
			keys: []string{"VK_F", "VK_G"},
			want: []string{"A", "B"},
		},
		{
			name: "shared original keys share the assigned key",
			pool: []string{"A", "B"},
			keys: []string{"VK_F", "VK_G", "VK_F"},
			want: []string{"A", "B", "A"},
		},
		{
			name:     "exhaustion keeps the original key",
			pool:     []string{"A"},
			keys:     []string{"VK_F", "VK_G", "VK_H", "VK_G"},
			want:     []string{"A", "VK_G", "VK_H", "VK_G"},
			warnings: []string{"VK_G", "VK_H"},
		},
		{
			name: "no bindings",
			pool: []string{"A"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc := NewAllocator(tt.pool)

			got, warnings := alloc.Allocate("u", bindingsFor(tt.keys...))
			assert.Equal(t, tt.want, assigned(got))

			var warned []string
			for _, w := range warnings {
				assert.Equal(t, "u", w.Unit)
				warned = append(warned, w.Key)
			}

			assert.Equal(t, tt.warnings, warned)
		})
	}
}

func TestAllocator_DoesNotModifyInput(t *testing.T) {
	pool := []string{"A", "B"}
	alloc := NewAllocator(pool)
	pool[0] = "Z"

	in := bindingsFor("VK_F")
	out, _ := alloc.Allocate("u", in)

	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].AssignedKey)
	assert.Empty(t, in[0].AssignedKey)
	assert.Equal(t, 2, alloc.Size())
}

func TestAllocator_IsDeterministicPerUnit(t *testing.T) {
	alloc := NewAllocator([]string{"A", "B"})
	in := bindingsFor("VK_F", "VK_G")

	first, _ := alloc.Allocate("u", in)
	second, _ := alloc.Allocate("u", in)

	assert.Equal(t, first, second)
}
