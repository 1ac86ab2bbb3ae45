package cmd

import (
	"bytes"
	"testing"

	"storage-sdk/core/transport"
	"storage-sdk/feature/storage"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addListFlags(c)
	return c
}

func TestListOptionsFromFlags(t *testing.T) {
	t.Run("NoFlags", func(t *testing.T) {
		c := newListCommand()
		require.NoError(t, c.ParseFlags(nil))
		assert.Nil(t, listOptionsFromFlags(c))
	})

	t.Run("AllFlags", func(t *testing.T) {
		c := newListCommand()
		require.NoError(t, c.ParseFlags([]string{"--page", "2", "--size", "50", "--sort-by", "name", "--sort-direction", "desc", "--with-total"}))

		opts := listOptionsFromFlags(c)
		require.NotNil(t, opts)
		assert.Equal(t, storage.ListOptions{Page: 2, Size: 50, SortBy: "name", SortDirection: storage.SortDesc, WithTotal: true}, *opts)
	})
}

func TestPrintEnvelope(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env, err := transport.NewDataEnvelope(map[string]int{"filesCount": 1})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, printEnvelope(&buf, env))
		assert.JSONEq(t, `{"data":{"filesCount":1},"errors":null}`, buf.String())
	})

	t.Run("EnvelopeErrorsFailTheCommand", func(t *testing.T) {
		var buf bytes.Buffer
		err := printEnvelope(&buf, transport.NewErrorEnvelope("not_found", "missing", 404))
		assert.ErrorContains(t, err, "not_found")
		assert.Contains(t, buf.String(), `"code": "not_found"`)
	})
}
