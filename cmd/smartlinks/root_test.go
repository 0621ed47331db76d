package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/fsdevblog/smartlinks/internal/app"
	"github.com/fsdevblog/smartlinks/internal/config"
	"github.com/fsdevblog/smartlinks/internal/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out, io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestMigrateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.db")

	out, err := execute(t, "migrate", "--sqlite-path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "migrations applied to sqlite storage")
	assert.FileExists(t, path)

	out, err = execute(t, "migrate", "--db", "inMemory")
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to migrate")
}

func TestStatsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.db")
	conf := config.Config{DBType: config.DBTypeSQLite, SQLitePath: path, APIPrefix: "/api", LogLevel: "error"}

	a, err := app.New(t.Context(), conf, io.Discard)
	require.NoError(t, err)
	title := "Album"
	link, err := a.Services.SmartlinkService.Create(t.Context(), &models.SmartlinkFields{Title: models.Some(&title)})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	for range 2 {
		out, statsErr := execute(t, "stats", link.ID, "--sqlite-path", path, "--log-level", "error")
		require.NoError(t, statsErr)

		var got models.Smartlink
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, link.ID, got.ID)
		assert.Equal(t, title, *got.Title)
		assert.Equal(t, int64(0), got.Views)
	}

	_, err = execute(t, "stats", "nothere1", "--sqlite-path", path, "--log-level", "error")
	require.ErrorContains(t, err, "smartlink nothere1 not found")
}

func TestStatsCmd_RequiresID(t *testing.T) {
	_, err := execute(t, "stats")
	assert.Error(t, err)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	_, err := execute(t, "migrate", "--db", "mongo")
	assert.Error(t, err)
}
