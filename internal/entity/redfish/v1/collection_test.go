package redfish

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func system(t *testing.T, path string) ComputerSystem {
	t.Helper()

	b := NewComputerSystemBuilder(DefaultVocabulary())
	b.SetPath(MustResourcePath(path))
	b.SetID(path[len(path)-1:])

	s, err := b.Build()
	require.NoError(t, err)

	return s
}

func TestComputerSystemCollectionLookup(t *testing.T) {
	t.Parallel()

	systems := NewComputerSystemCollection([]ComputerSystem{
		system(t, "/redfish/v1/Systems/1"),
		system(t, "/redfish/v1/Systems/2"),
	})

	got, ok := systems.Lookup(MustResourcePath("/redfish/v1/Systems/2"))
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)

	_, ok = systems.Lookup(MustResourcePath("/redfish/v1/Systems/9"))
	assert.False(t, ok)

	assert.Equal(t, 2, systems.Len())
	assert.Equal(t, "1", systems.At(0).ID)
}

func TestComputerSystemCollectionResolveDangling(t *testing.T) {
	t.Parallel()

	systems := NewComputerSystemCollection([]ComputerSystem{system(t, "/redfish/v1/Systems/1")})

	chassis := Chassis{ComputerSystems: paths("/redfish/v1/Systems/1", "/redfish/v1/Systems/9")}

	found, dangling := systems.Resolve(chassis.ComputerSystems)

	require.Len(t, found, 1)
	assert.Equal(t, "/redfish/v1/Systems/1", found[0].Path.String())
	assert.Equal(t, paths("/redfish/v1/Systems/9"), dangling)
}

func TestComputerSystemCollectionDuplicatePathKeepsFirst(t *testing.T) {
	t.Parallel()

	first := system(t, "/redfish/v1/Systems/1")
	second := first
	second.Name = "shadow"

	systems := NewComputerSystemCollection([]ComputerSystem{first, second})

	got, ok := systems.Lookup(first.Path)
	require.True(t, ok)
	assert.Empty(t, got.Name)
	assert.Equal(t, 2, systems.Len())
}

func TestChassisCollectionOrderAndSystemPaths(t *testing.T) {
	t.Parallel()

	items := []Chassis{
		{Path: MustResourcePath("/redfish/v1/Chassis/2"), ComputerSystems: paths("/s/2", "/s/3")},
		{Path: MustResourcePath("/redfish/v1/Chassis/1"), ComputerSystems: paths("/s/1", "/s/2")},
	}

	c := NewChassisCollection(items)
	items[0].Name = "changed after construction"

	assert.Equal(t, 2, c.Len())
	assert.Empty(t, c.At(0).Name)
	assert.Equal(t, "/redfish/v1/Chassis/2", c.At(0).Path.String())
	assert.Equal(t, paths("/s/1", "/s/2", "/s/3"), c.ComputerSystemPaths())
	assert.Len(t, slices.Collect(c.All()), 2)
}

func TestCollectionsMarshalAsArrays(t *testing.T) {
	t.Parallel()

	empty, err := json.Marshal(ChassisCollection{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(empty))

	systems := NewComputerSystemCollection([]ComputerSystem{system(t, "/redfish/v1/Systems/1")})

	data, err := json.Marshal(systems)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"@odata.id":"/redfish/v1/Systems/1","Id":"1"}]`, string(data))
}
