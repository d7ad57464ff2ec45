package config

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ReferenceValues(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, uint32(4), cfg.Sphere.LatBands)
	assert.Equal(t, uint32(4), cfg.Sphere.LonBands)
	assert.Equal(t, 27000, cfg.InstanceCount())
	assert.Equal(t, float32(1.15), cfg.Grid.Spread)
	assert.Equal(t, float32(0.33), cfg.Grid.Scale)
	assert.True(t, cfg.StrictShaders)

	assert.InDelta(t, 1.15*30*1.5, cfg.OrbitRadius(), 1e-4)
	assert.InDelta(t, cfg.OrbitRadius(), cfg.EyeHeight(), 1e-6)
	assert.InDelta(t, 30*1.15*0.5, cfg.Target().Y(), 1e-4)
	assert.InDelta(t, 800.0/600.0, cfg.Aspect(), 1e-6)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cfg.Camera.Up)
}

func TestNew_AppliesOptionsInOrder(t *testing.T) {
	cfg, err := New(
		WithGrid(2, 3, 4),
		WithSphereBands(8, 16),
		WithSpread(2),
		WithSpread(3),
		WithLayoutWorkers(4),
		WithStrictShaders(false),
		WithTitle("t"),
	)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.InstanceCount())
	assert.Equal(t, uint32(16), cfg.Sphere.LonBands)
	assert.Equal(t, float32(3), cfg.Grid.Spread)
	assert.Equal(t, 4, cfg.LayoutWorkers)
	assert.False(t, cfg.StrictShaders)
	assert.Equal(t, "t", cfg.Window.Title)
}

func TestNew_DoesNotMutateDefault(t *testing.T) {
	_, err := New(WithGrid(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 30, Default().Grid.NX)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]Option{
		"zero lat bands":  WithSphereBands(0, 4),
		"zero lon bands":  WithSphereBands(4, 0),
		"empty grid axis": WithGrid(1, 0, 1),
		"negative spread": WithSpread(-1),
		"zero scale":      WithInstanceScale(0),
		"window":          WithWindowSize(0, 600),
		"fov":             WithFov(180),
		"clip planes":     WithClipPlanes(10, 1),
		"up axis":         WithUp(0, 0, 0),
		"workers":         WithLayoutWorkers(-2),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(opt)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
