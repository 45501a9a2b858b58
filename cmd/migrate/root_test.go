package main

import (
	"bytes"
	"testing"

	"recruit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	calls   []string
	steps   int
	forced  int
	version uint
	dirty   bool
	pending []uint
	err     error
	closed  bool
}

func (m *fakeMigrator) Up() error {
	m.calls = append(m.calls, "up")

	return m.err
}

func (m *fakeMigrator) Down() error {
	m.calls = append(m.calls, "down")

	return m.err
}

func (m *fakeMigrator) Steps(n int) error {
	m.calls = append(m.calls, "steps")
	m.steps = n

	return m.err
}

func (m *fakeMigrator) Version() (uint, bool, error) {
	return m.version, m.dirty, m.err
}

func (m *fakeMigrator) Force(version int) error {
	m.calls = append(m.calls, "force")
	m.forced = version

	return m.err
}

func (m *fakeMigrator) PendingVersions() ([]uint, error) {
	return m.pending, m.err
}

func (m *fakeMigrator) Close() error {
	m.closed = true

	return nil
}

func execute(t *testing.T, m *fakeMigrator, args ...string) (string, string, error) {
	t.Helper()

	var openedURL string
	cmd := NewRootCmd(func(databaseURL string) (schemaMigrator, error) {
		openedURL = databaseURL

		return m, nil
	})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--database-url", "postgres://localhost/recruit"}, args...))

	err := cmd.Execute()

	return out.String(), openedURL, err
}

func TestMigrateCmd_Up(t *testing.T) {
	m := &fakeMigrator{}

	out, url, err := execute(t, m, "up")

	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/recruit", url)
	assert.Equal(t, []string{"up"}, m.calls)
	assert.Contains(t, out, "Migrations applied")
	assert.True(t, m.closed)
}

func TestMigrateCmd_DownRequiresConfirmation(t *testing.T) {
	m := &fakeMigrator{}

	_, _, err := execute(t, m, "down")
	require.Error(t, err)
	assert.Empty(t, m.calls)

	_, _, err = execute(t, m, "down", "--yes")
	require.NoError(t, err)
	assert.Equal(t, []string{"down"}, m.calls)
}

func TestMigrateCmd_Steps(t *testing.T) {
	m := &fakeMigrator{}

	_, _, err := execute(t, m, "steps", "--", "-2")
	require.NoError(t, err)
	assert.Equal(t, -2, m.steps)

	for _, bad := range []string{"0", "two"} {
		m := &fakeMigrator{}
		_, _, err := execute(t, m, "steps", bad)
		require.Error(t, err, bad)
		assert.Empty(t, m.calls)
	}
}

func TestMigrateCmd_Version(t *testing.T) {
	out, _, err := execute(t, &fakeMigrator{version: 4}, "version")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	out, _, err = execute(t, &fakeMigrator{version: 5, dirty: true}, "version")
	require.NoError(t, err)
	assert.Equal(t, "5 (dirty)\n", out)
}

func TestMigrateCmd_Force(t *testing.T) {
	m := &fakeMigrator{}

	_, _, err := execute(t, m, "force", "3")

	require.NoError(t, err)
	assert.Equal(t, 3, m.forced)
}

func TestMigrateCmd_Pending(t *testing.T) {
	out, _, err := execute(t, &fakeMigrator{pending: []uint{4, 5}}, "pending")
	require.NoError(t, err)
	assert.Equal(t, "4\n5\n", out)

	out, _, err = execute(t, &fakeMigrator{}, "pending")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestMigrateCmd_PropagatesErrors(t *testing.T) {
	m := &fakeMigrator{err: errors.New("dirty database version 3")}

	_, _, err := execute(t, m, "up")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
	assert.True(t, m.closed)
}

func TestResolveDatabaseURL(t *testing.T) {
	url, err := resolveDatabaseURL("postgres://flag")
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag", url)

	t.Setenv("DATABASE_URL", "postgres://env")
	url, err = resolveDatabaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", url)
}
