package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_PlainText(t *testing.T) {
	assert.Equal(t, "Software Engineer", EscapeLaTeX("Software Engineer"))
}

func TestEscapeLaTeX_SpecialCharacters(t *testing.T) {
	assert.Equal(t, `C\# \& .NET`, EscapeLaTeX("C# & .NET"))
	assert.Equal(t, `50\% faster`, EscapeLaTeX("50% faster"))
	assert.Equal(t, `\$1M budget`, EscapeLaTeX("$1M budget"))
	assert.Equal(t, `user\_name`, EscapeLaTeX("user_name"))
	assert.Equal(t, `\{json\}`, EscapeLaTeX("{json}"))
}

func TestEscapeLaTeX_CommandCharacters(t *testing.T) {
	assert.Equal(t, `\textbackslash{}emph`, EscapeLaTeX(`\emph`))
	assert.Equal(t, `\textasciitilde{}user`, EscapeLaTeX("~user"))
	assert.Equal(t, `x\textasciicircum{}2`, EscapeLaTeX("x^2"))
}

func TestEscapeLaTeX_Empty(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}
