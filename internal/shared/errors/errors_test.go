package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := fmt.Errorf("create tab: %w", serr.NewValidationError("Url can't be blank"))

	require.True(t, errors.Is(err, serr.ErrValidation))
	require.False(t, errors.Is(err, serr.ErrNotFound))
	require.Equal(t, []string{"Url can't be blank"}, serr.Messages(err))
}

func TestValidationError_ErrorJoinsMessages(t *testing.T) {
	err := serr.NewValidationError("Email can't be blank", "Password can't be blank")

	require.Equal(t, "validation failed: Email can't be blank; Password can't be blank", err.Error())
}

func TestMessages_NoValidationError(t *testing.T) {
	require.Nil(t, serr.Messages(serr.ErrInternal))
}

func TestValidationError_WithCause(t *testing.T) {
	err := fmt.Errorf("authenticate: %w",
		serr.NewValidationError("Invalid email or password.").WithCause(serr.ErrInvalidCredentials))

	require.True(t, errors.Is(err, serr.ErrValidation))
	require.True(t, errors.Is(err, serr.ErrInvalidCredentials))
	require.Equal(t, []string{"Invalid email or password."}, serr.Messages(err))
	require.Equal(t, "authenticate: validation failed: Invalid email or password. (invalid credentials)", err.Error())
}
