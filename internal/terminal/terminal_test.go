package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScripted(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestChoice(t *testing.T) {
	t.Run("parses an integer", func(t *testing.T) {
		term, _ := newScripted("3\n")
		n, ok := term.Choice()
		require.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		term, _ := newScripted("banana\n")
		_, ok := term.Choice()
		assert.False(t, ok)
		assert.False(t, term.EOF())
	})

	t.Run("reports EOF", func(t *testing.T) {
		term, _ := newScripted("")
		_, ok := term.Choice()
		assert.False(t, ok)
		assert.True(t, term.EOF())
	})
}

func TestPromptInt(t *testing.T) {
	t.Run("re-prompts until the input parses", func(t *testing.T) {
		term, out := newScripted("abc\n\n42\n")
		n, ok := term.PromptInt("Value:")
		require.True(t, ok)
		assert.Equal(t, int64(42), n)
		assert.Contains(t, out.String(), "The value you've entered is not acceptable.")
	})

	t.Run("gives up on EOF", func(t *testing.T) {
		term, _ := newScripted("abc\n")
		_, ok := term.PromptInt("Value:")
		assert.False(t, ok)
		assert.True(t, term.EOF())
	})
}

func TestPromptOptionalInt(t *testing.T) {
	t.Run("empty input means nil", func(t *testing.T) {
		term, _ := newScripted("\n")
		v, ok := term.PromptOptionalInt("Sets:")
		require.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("numeric input is returned", func(t *testing.T) {
		term, _ := newScripted("12\n")
		v, ok := term.PromptOptionalInt("Sets:")
		require.True(t, ok)
		require.NotNil(t, v)
		assert.Equal(t, int64(12), *v)
	})

	t.Run("garbage re-prompts", func(t *testing.T) {
		term, out := newScripted("x\n7\n")
		v, ok := term.PromptOptionalInt("Sets:")
		require.True(t, ok)
		require.NotNil(t, v)
		assert.Equal(t, int64(7), *v)
		assert.Contains(t, out.String(), "Please enter a whole number, or nothing to skip.")
	})
}

func TestPromptTrimsWhitespace(t *testing.T) {
	term, out := newScripted("  hello  \n")
	got := term.Prompt("Name:")
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Name: ")
}

func TestReadsAfterEOFStayEmpty(t *testing.T) {
	term, _ := newScripted("only line\n")
	assert.Equal(t, "only line", term.Prompt(">"))
	assert.Equal(t, "", term.Prompt(">"))
	assert.Equal(t, "", term.Prompt(">"))
	assert.True(t, term.EOF())
}

func TestFieldRendering(t *testing.T) {
	height := int64(180)
	gender := "Male"

	assert.Equal(t, "Height: 180cm", IntField("Height", &height, "cm"))
	assert.Equal(t, "Height:", IntField("Height", nil, "cm"))
	assert.Equal(t, "Gender: Male", StringField("Gender", &gender))
	assert.Equal(t, "Gender:", StringField("Gender", nil))
	assert.Equal(t, "180", OrBlankInt(&height))
	assert.Equal(t, "", OrBlankInt(nil))
	assert.Equal(t, "Male", OrBlank(&gender))
	assert.Equal(t, "", OrBlank(nil))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,234.00", Money(decimal.NewFromInt(1234)))
	assert.Equal(t, "$25.50", Money(decimal.RequireFromString("25.5")))
	assert.Equal(t, "$-15.00", Money(decimal.NewFromInt(-15)))
	assert.Equal(t, "$0.00", Money(decimal.Zero))
}

func TestTableEmpty(t *testing.T) {
	term, out := newScripted("")
	term.Table([]string{"ID", "Name"}, nil)
	assert.Contains(t, out.String(), "(nothing to show)")
	assert.NotContains(t, out.String(), "ID")
}

func TestHeaderUppercases(t *testing.T) {
	term, out := newScripted("")
	term.Header("Member Dashboard")
	assert.Contains(t, out.String(), "MEMBER DASHBOARD")
}
