package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravError_Error(t *testing.T) {
	t.Parallel()
	err := &GravError{Code: "TEST", Message: "something broke"}
	assert.Equal(t, "something broke", err.Error())

	withDetails := &GravError{
		Code:    "TEST",
		Message: "something broke",
		Details: map[string]string{"b": "2", "a": "1"},
	}
	// Details render sorted by key.
	assert.Equal(t, "something broke (a: 1) (b: 2)", withDetails.Error())

	withCause := &GravError{Code: "TEST", Message: "outer", Cause: stderrors.New("inner")}
	assert.Equal(t, "outer: inner", withCause.Error())
}

func TestGravError_Is(t *testing.T) {
	t.Parallel()
	err := Wrap(ErrChecksumMismatch, "context")
	assert.True(t, stderrors.Is(err, ErrChecksumMismatch))
	assert.False(t, stderrors.Is(err, ErrUnknownWord))
}

func TestWrap_PreservesCodeAndExitCode(t *testing.T) {
	t.Parallel()
	err := Wrap(ErrInvalidEntropyLength, "while parsing")
	require.Error(t, err)

	var ge *GravError
	require.True(t, stderrors.As(err, &ge))
	assert.Equal(t, "INVALID_ENTROPY_LENGTH", ge.Code)
	assert.Equal(t, ExitInput, ge.ExitCode)
	assert.Contains(t, ge.Message, "while parsing")
}

func TestWrap_GenericError(t *testing.T) {
	t.Parallel()
	err := Wrap(stderrors.New("plain"), "doing thing")

	var ge *GravError
	require.True(t, stderrors.As(err, &ge))
	assert.Equal(t, "GENERAL_ERROR", ge.Code)
	assert.Equal(t, ExitGeneral, ge.ExitCode)
}

func TestWrap_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, WithDetails(nil, nil))
	assert.NoError(t, WithSuggestion(nil, "hint"))
}

func TestWithDetails(t *testing.T) {
	t.Parallel()
	err := WithDetails(ErrUnknownWord, map[string]string{"word": "abandno"})

	var ge *GravError
	require.True(t, stderrors.As(err, &ge))
	assert.Equal(t, "UNKNOWN_WORD", ge.Code)
	assert.Equal(t, "abandno", ge.Details["word"])

	// The sentinel itself is untouched.
	assert.Empty(t, ErrUnknownWord.Details)
}

func TestWithSuggestion(t *testing.T) {
	t.Parallel()
	err := WithSuggestion(ErrInvalidInput, "try again")

	var ge *GravError
	require.True(t, stderrors.As(err, &ge))
	assert.Equal(t, "try again", ge.Suggestion)
	assert.Equal(t, ExitInput, ge.ExitCode)
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInput, ExitCode(ErrChecksumMismatch))
	assert.Equal(t, ExitNotFound, ExitCode(ErrAccountNotFound))
	assert.Equal(t, ExitGeneral, ExitCode(stderrors.New("plain")))
	assert.Equal(t, ExitInput, ExitCode(Wrap(ErrInvalidPathSyntax, "nested")))
}

func TestCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "CHECKSUM_MISMATCH", Code(ErrChecksumMismatch))
	assert.Equal(t, "GENERAL_ERROR", Code(stderrors.New("plain")))
}
