package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/app/repositories/repotest"
	"github.com/yigit/riskwatch/internal/pkg/auth"
)

func TestCreateDefaultData(t *testing.T) {
	repos, _ := repotest.NewRepositories()
	ctx := context.Background()
	initial := InitialUser{Username: "admin", Password: "changeme"}

	require.NoError(t, CreateDefaultData(ctx, repos.UserRepository, initial, zerolog.Nop()))
	// second run is a no-op
	require.NoError(t, CreateDefaultData(ctx, repos.UserRepository, initial, zerolog.Nop()))

	user, err := repos.UserRepository.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "changeme"))
}

func TestCreateDefaultData_Disabled(t *testing.T) {
	repos, _ := repotest.NewRepositories()
	ctx := context.Background()

	require.NoError(t, CreateDefaultData(ctx, repos.UserRepository, InitialUser{Username: "admin"}, zerolog.Nop()))

	exists, err := repos.UserRepository.UsernameExists(ctx, "admin")
	require.NoError(t, err)
	assert.False(t, exists)
}
