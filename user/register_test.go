package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratakit/strata/logger"
	"github.com/stratakit/strata/registry"
)

func TestRegisterWiresLayers(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg, &fakeHasher{}, logger.NewDefault("test")))

	h, err := HandlerFrom(reg)
	require.NoError(t, err)
	require.NotNil(t, h)

	// resolving again yields the same singleton chain
	h2, err := HandlerFrom(reg)
	require.NoError(t, err)
	assert.Same(t, h, h2)

	svc, err := registry.Singleton[*Service](reg, registry.ServiceKey(Resource))
	require.NoError(t, err)
	assert.Same(t, svc, h.service)

	repo, err := registry.Singleton[Repository](reg, registry.RepositoryKey(Resource))
	require.NoError(t, err)
	assert.Same(t, repo, svc.repo)
}

func TestRegisterChainIsUsable(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg, &fakeHasher{}, logger.NewDefault("test")))

	svc, err := registry.Singleton[*Service](reg, registry.ServiceKey(Resource))
	require.NoError(t, err)

	u, err := svc.Create(context.Background(), CreateRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMissingRepositoryFailsAtResolution(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg, &fakeHasher{}, logger.NewDefault("test")))

	// simulate a wiring mistake: wipe everything, re-register only the upper
	// layers so the service factory dangles
	reg.Reset()
	require.NoError(t, reg.RegisterSingleton(registry.ServiceKey(Resource), func() (any, error) {
		repo, err := registry.Singleton[Repository](reg, registry.RepositoryKey(Resource))
		if err != nil {
			return nil, err
		}
		return NewService(repo, &fakeHasher{}, nil), nil
	}))

	_, err := registry.Singleton[*Service](reg, registry.ServiceKey(Resource))
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrNotRegistered)
	assert.Contains(t, err.Error(), registry.RepositoryKey(Resource))
}
