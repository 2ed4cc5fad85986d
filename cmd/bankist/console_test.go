package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankist.dev/bankist/pkg/bankist"
)

func runScript(t *testing.T, store *bankist.Store, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	c := newConsole(bankist.NewSession(store), &out)
	require.NoError(t, c.run(strings.NewReader(strings.Join(script, "\n"))))
	return out.String()
}

func TestConsole_Session(t *testing.T) {
	store := bankist.NewStore(bankist.DefaultAccounts())
	out := runScript(t, store,
		"login js 1111",
		"transfer jd 200",
		"loan 100",
		"sort",
		"close js 1111",
	)

	assert.Contains(t, out, "Log in to get started")
	assert.Contains(t, out, "Welcome back, Jonas!")
	assert.Contains(t, out, "3640€")
	assert.Contains(t, out, "3740€")
	assert.Contains(t, out, "sorted")
	assert.Equal(t, 3, store.Len())

	jessica, ok := store.Lookup("jd")
	require.True(t, ok)
	assert.Equal(t, "200", jessica.Movements[len(jessica.Movements)-1].String())
}

func TestConsole_Rejections(t *testing.T) {
	store := bankist.NewStore(bankist.DefaultAccounts())
	out := runScript(t, store,
		"transfer jd 10",
		"login js 9999",
		"login js 1111",
		"transfer js 10",
		"loan 99999",
		"frobnicate",
		"quit",
		"close js 1111",
	)

	assert.Contains(t, out, "transfer rejected: no account logged in")
	assert.Contains(t, out, "login rejected: invalid credentials")
	assert.Contains(t, out, "transfer rejected: cannot transfer to the same account")
	assert.Contains(t, out, "loan rejected:")
	assert.Contains(t, out, `unknown command "frobnicate"`)
	assert.Equal(t, 4, store.Len())
}

func TestConsole_Help(t *testing.T) {
	out := runScript(t, bankist.NewStore(bankist.DefaultAccounts()), "help")
	assert.Contains(t, out, "transfer <to> <amount>")
}
