package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetCacheFlags restores the cache command's flag state between tests.
func resetCacheFlags() {
	cacheStatsJSON = false
	cacheStatsCmd.Flags().Lookup("json").Changed = false
}

func TestCacheCmd_Use(t *testing.T) {
	assert.Equal(t, "cache", cacheCmd.Use)
}

func TestCacheCmd_HasSubcommands(t *testing.T) {
	commands := cacheCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "stats")
	assert.Contains(t, commandNames, "clear")
	assert.Contains(t, commandNames, "invalidate")
}

func TestCacheStatsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCacheFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Entries:   2")
	assert.Contains(t, buf.String(), "Bytes:     1024")
	assert.Contains(t, buf.String(), "Hits:      5")
	assert.Contains(t, buf.String(), "Misses:    2")
}

func TestCacheStatsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetCacheFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "stats", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Entries\": 2")
	assert.Contains(t, buf.String(), "\"TotalBytes\": 1024")
}

func TestCacheClearCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Cache cleared: 3 entries dropped.")
}

func TestCacheInvalidateCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "invalidate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestCacheInvalidateCmd_DropsEntry(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "invalidate", "report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Cache entry dropped:")

	// The command resolves to an absolute path before invalidating
	mock := cacheService.(*mockCacheAdmin)
	assert.True(t, filepath.IsAbs(mock.gotPath))
}

func TestCacheInvalidateCmd_NoEntry(t *testing.T) {
	oldService := cacheService
	cacheService = &mockCacheAdmin{invalidated: false}
	defer func() {
		cacheService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cache", "invalidate", "report.pdf"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No cache entry for:")
}

func TestCacheStatsCmd_ServiceNotConfigured(t *testing.T) {
	oldService := cacheService
	cacheService = nil
	defer func() {
		cacheService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache service not configured")
}

func TestCacheClearCmd_ServiceError(t *testing.T) {
	oldService := cacheService
	cacheService = &mockCacheAdmin{err: errors.New("locked")}
	defer func() {
		cacheService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"cache", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cache")
}
