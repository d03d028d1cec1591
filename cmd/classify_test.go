package main

import (
	"bytes"
	"marketplace/pkg/taxonomy"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestClassifyLines(t *testing.T) {
	long := strings.Repeat("x ", 40_000) + "sneakers"
	require.Greater(t, len(long), 64<<10)

	in := strings.Join([]string{"Desk lamp", "", "  ", long, "general"}, "\n")
	var out bytes.Buffer

	require.NoError(t, classifyLines(taxonomy.Default(), strings.NewReader(in), &out, ""))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.JSONEq(t, `{"title":"Desk lamp","category":"Home","reason":"keyword","keyword":"lamp"}`, lines[0])
	require.JSONEq(t, `{"title":"general","category":"Other","reason":"sentinel"}`, lines[2])

	var category, keyword string
	require.NoError(t, jx.DecodeStr(lines[1]).Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "category":
			category, err = d.Str()
		case "keyword":
			keyword, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	}))
	require.Equal(t, "Shoes", category)
	require.Equal(t, "sneaker", keyword)
}

func TestClassifyLines_LineTooLong(t *testing.T) {
	var out bytes.Buffer

	err := classifyLines(taxonomy.Default(), strings.NewReader(strings.Repeat("x", maxLineSize+1)), &out, "")
	require.Error(t, err)
	require.Empty(t, out.String())
}
