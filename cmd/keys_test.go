//go:build unit

package main

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysCmd_PrintsUsableKeys(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"keys"})

	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	for i, prefix := range []string{"COOKIE_HASH_KEY=", "COOKIE_BLOCK_KEY="} {
		require.True(t, strings.HasPrefix(lines[i], prefix), lines[i])
		key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(lines[i], prefix))
		require.NoError(t, err)
		assert.Len(t, key, 32)
	}
}
