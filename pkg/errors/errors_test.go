package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/dockscore/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// TestNew
// ─────────────────────────────────────────────────────────────────────────────

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal", errors.CodeInternal, "unexpected failure"},
		{"unknown kind", errors.CodeTermUnknownKind, "no such term"},
		{"unsupported atom", errors.CodeTermUnsupportedAtom, "atom has no AD type"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)
			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestError_Format(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.CodeTermUnknownKind, "unknown term kind")
	assert.Equal(t, "[TERM_002] unknown term kind", ae.Error())

	withDetail := ae.WithDetail("gauss9")
	assert.Equal(t, "[TERM_002] unknown term kind: gauss9", withDetail.Error())
	assert.Empty(t, ae.Detail, "WithDetail must not mutate the receiver")
}

func TestWithDetail_NilReceiver(t *testing.T) {
	t.Parallel()

	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(fmt.Errorf("x")))
}

// ─────────────────────────────────────────────────────────────────────────────
// TestWrap
// ─────────────────────────────────────────────────────────────────────────────

func TestWrap_NilReturnsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "ignored"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.CodeTermConfigInvalid, "width must be positive")
	outer := errors.Wrap(inner, errors.CodeUnknown, "term 2")

	assert.Equal(t, errors.CodeTermConfigInvalid, outer.Code)
	assert.True(t, stderrors.Is(outer, inner))
}

func TestWrap_ExplicitCodeWins(t *testing.T) {
	t.Parallel()

	outer := errors.Wrap(fmt.Errorf("boom"), errors.CodeConfigReadFailed, "read")
	assert.Equal(t, errors.CodeConfigReadFailed, outer.Code)
	assert.Equal(t, "boom", stderrors.Unwrap(outer).Error())
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain inspection
// ─────────────────────────────────────────────────────────────────────────────

func TestIsCode_WalksChain(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.CodeTermWeightMismatch, "6 vs 5")
	wrapped := fmt.Errorf("scoring: %w", errors.Wrap(inner, errors.CodeInternal, "evaluator"))

	assert.True(t, errors.IsCode(wrapped, errors.CodeTermWeightMismatch))
	assert.True(t, errors.IsCode(wrapped, errors.CodeInternal))
	assert.False(t, errors.IsCode(wrapped, errors.CodeNotFound))
	assert.False(t, errors.IsCode(nil, errors.CodeInternal))
}

func TestIsConfigurationError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", fmt.Errorf("x"), false},
		{"unsupported atom", errors.UnsupportedAtom("no AD type"), true},
		{"unknown kind", errors.New(errors.CodeTermUnknownKind, "k"), true},
		{"weight mismatch", errors.New(errors.CodeTermWeightMismatch, "w"), true},
		{"wrapped", fmt.Errorf("ctx: %w", errors.UnsupportedAtom("a")), true},
		{"internal", errors.Internal("x"), false},
		{"duplicate kind", errors.New(errors.CodeTermDuplicateKind, "d"), false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, errors.IsConfigurationError(tc.err))
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(fmt.Errorf("x")))
	assert.Equal(t, errors.CodeInvalidParam, errors.GetCode(errors.InvalidParam("p")))
}

func TestModuleForCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TERM", errors.ModuleForCode(errors.CodeTermUnknownKind))
	assert.Equal(t, "CFG", errors.ModuleForCode(errors.CodeConfigInvalid))
	assert.Equal(t, "UNKNOWN", errors.ModuleForCode(""))
	assert.Equal(t, "unknown error", errors.DefaultMessageForCode("NOPE_1"))
	assert.Equal(t, "unknown term kind", errors.DefaultMessageForCode(errors.CodeTermUnknownKind))
}

//Personal.AI order the ending
