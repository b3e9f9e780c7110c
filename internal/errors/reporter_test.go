package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"autopiper/internal/ast"
)

func TestErrorReporterFormatsNonStaticReference(t *testing.T) {
	source := "let r = some_fn_result;\nwrite(p, r);"
	reporter := NewErrorReporter("design.pipe", source)

	err := NonStaticReference("r", ast.Position{Line: 2, Column: 7})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorNonStaticReference+"]")
	assert.Contains(t, formatted, "does not statically resolve")
	assert.Contains(t, formatted, "design.pipe:2:7")
}

func TestIllegalLvalueError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}
	err := IllegalLvalue(pos)
	assert.Equal(t, ErrorIllegalLvalue, err.Code)
	assert.Equal(t, Error, err.Level)
	assert.Len(t, err.Suggestions, 1)
}

func TestNamedChanError(t *testing.T) {
	pos := ast.Position{Line: 4, Column: 3}
	err := NamedChan("req", pos)
	assert.Equal(t, ErrorNamedChan, err.Code)
	assert.Contains(t, err.Message, "'req'")
	assert.Len(t, err.Notes, 1)
}

func TestBreakContinueWithoutFrameMessageVariants(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	unlabeled := BreakContinueWithoutFrame("", pos)
	assert.Contains(t, unlabeled.Message, "outside any loop")

	labeled := BreakContinueWithoutFrame("outer", pos)
	assert.Contains(t, labeled.Message, "'outer'")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := "let variable = value;"
	reporter := NewErrorReporter("design.pipe", source)

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestErrorLevelsRenderDistinctPrefixes(t *testing.T) {
	reporter := NewErrorReporter("design.pipe", "entry main {}")
	pos := ast.Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	assert.Contains(t, reporter.FormatError(errorErr), "error:")
	assert.Contains(t, reporter.FormatError(warningErr), "warning:")
}

func TestCollectorTracksErrorsOnly(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasErrors())

	c.Add(CompilerError{Level: Warning, Code: "W0001", Message: "unused"})
	assert.False(t, c.HasErrors())
	assert.Len(t, c.Errors(), 1)

	c.Add(StageOutsideTiming(ast.Position{Line: 3, Column: 5}))
	assert.True(t, c.HasErrors())
	assert.Len(t, c.Errors(), 2)
}
