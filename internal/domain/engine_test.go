package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/keyctx/internal/model"
)

func analyzeUnit(e *Engine, name string, files map[string]string, order ...string) UnitAnalysis {
	u := UnitAnalysis{Name: name, Root: m.Path("/mods/" + name), ID: -1}

	for _, file := range order {
		path := m.Path("/mods/" + name + "/" + file)
		u.Files = append(u.Files, e.AnalyzeFile(name, path, files[file], files[file]))
	}

	return u
}

func TestEngine_Allocate_NumbersUnitsByName(t *testing.T) {
	e := testEngine("A", "B")
	binding := map[string]string{"mod.ini": "[KeyFire]\nkey = VK_F\ntype = cycle\n"}
	empty := map[string]string{"mod.ini": "[Constants]\n"}

	units, total, warnings := e.Allocate([]UnitAnalysis{
		analyzeUnit(e, "Zed", binding, "mod.ini"),
		analyzeUnit(e, "Empty", empty, "mod.ini"),
		analyzeUnit(e, "Amy", binding, "mod.ini"),
	})

	assert.Equal(t, 2, total)
	assert.Empty(t, warnings)
	require.Len(t, units, 3)

	assert.Equal(t, "Zed", units[0].Name, "input order is kept")
	assert.Equal(t, 1, units[0].ID)
	assert.Equal(t, -1, units[1].ID)
	assert.Equal(t, 0, units[2].ID)
	assert.Equal(t, "A", units[2].Bindings()[0].AssignedKey, "each unit draws from a fresh pool")
	assert.Equal(t, "A", units[0].Bindings()[0].AssignedKey)
}

func TestEngine_Allocate_CoAssignmentAcrossFiles(t *testing.T) {
	e := testEngine("A", "B")
	unit := analyzeUnit(e, "Amy", map[string]string{
		"a.ini": "[KeyFire]\nkey = VK_F\ntype = cycle\n[KeyIce]\nkey = VK_I\ntype = cycle\n",
		"b.ini": "[KeyFlame]\nkey = VK_F\ntype = cycle\n",
	}, "a.ini", "b.ini")

	units, _, _ := e.Allocate([]UnitAnalysis{unit})

	bindings := units[0].Bindings()
	require.Len(t, bindings, 3)
	assert.Equal(t, []string{"A", "B", "A"}, assigned(bindings))
	assert.Empty(t, unit.Bindings()[0].AssignedKey, "allocation returns new values")
}

func TestEngine_PoolExhaustion(t *testing.T) {
	e := testEngine("A")

	got, bindings, warnings := e.Rewrite("mod.ini",
		"[KeyFire]\nkey = VK_F\ntype = cycle\n[KeyIce]\nkey = VK_I\ntype = cycle\n", 0, 1)

	require.Len(t, bindings, 2)
	assert.Equal(t, "A", bindings[0].AssignedKey)
	assert.Equal(t, "VK_I", bindings[1].AssignedKey)
	require.Len(t, warnings, 1)
	assert.Equal(t, "VK_I", warnings[0].Key)

	assert.Contains(t, got, "[KeyIce]\nkey = VK_I\ncondition = $sel0 == 0\n", "excess bindings keep their key")
	assert.NotContains(t, got, "; keyctx:original key = VK_I")
}

func TestEngine_Render(t *testing.T) {
	e := testEngine("A")
	stale, _, _ := e.Rewrite("mod.ini", "[KeyFire]\nkey = VK_F\ntype = cycle\n", 0, 1)

	unit := UnitAnalysis{Name: "u", ID: -1}
	unit.Files = append(unit.Files, e.AnalyzeFile("u", "u/mod.ini", stale, "[Other]\nkey = VK_F\n"+stale))

	outputs := e.Render(unit, 0)
	require.Len(t, outputs, 1)
	assert.Equal(t, "[Other]\nkey = VK_F\n[KeyFire]\nkey = VK_F\ntype = cycle\n", outputs[0].Content,
		"units without an id only lose stale output")
	assert.True(t, outputs[0].Changed())
	assert.True(t, unit.HasMarkers())
}

func TestEngine_Manifest(t *testing.T) {
	e := testEngine("A", "B")
	units, total, warnings := e.Allocate([]UnitAnalysis{
		analyzeUnit(e, "Bob", map[string]string{"mod.ini": "[KeyFire]\nkey = VK_F\ntype = cycle\n$v = 1\n"}, "mod.ini"),
		analyzeUnit(e, "Amy", map[string]string{"x/mod.ini": "$active = 1\n[KeyIce]\nkey = VK_I\ntype = cycle\n"}, "x/mod.ini"),
		analyzeUnit(e, "Cat", map[string]string{"mod.ini": ""}, "mod.ini"),
	})
	units[1].HasDetection = true

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	mf := e.Manifest("/mods", units, total, warnings, at)

	assert.Equal(t, m.ManifestVersion, mf.Version)
	assert.Equal(t, "2026-01-02T02:04:05Z", mf.GeneratedAt)
	assert.Equal(t, "/mods", mf.Root)
	assert.Equal(t, m.ScopeLocal, mf.SelectorScope)
	assert.Equal(t, 2, mf.TotalUnits)
	require.Len(t, mf.Units, 2)

	amy := mf.Units[0]
	assert.Equal(t, "Amy", amy.Name)
	assert.Equal(t, 0, amy.ID)
	assert.Equal(t, "Amy", amy.Path)
	assert.Equal(t, "$sel0", amy.Selector)
	assert.True(t, amy.HasDetection)
	assert.Equal(t, []string{"Amy/x/mod.ini"}, amy.Files)

	bob := mf.Units[1]
	assert.Equal(t, []m.BindingRecord{{
		Section:     "KeyFire",
		File:        "Bob/mod.ini",
		Key:         "A",
		OriginalKey: "VK_F",
		Variable:    "$v",
		Type:        "cycle",
		Description: "Fire (cycle) [$v]",
	}}, bob.Bindings)
	assert.Equal(t, 2, mf.BindingCount())
}
