package iodb_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/marinedata/survtab/internal/iodb"
	"github.com/marinedata/survtab/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionError(t *testing.T) {
	cause := errors.New("connection refused")

	err := iodb.ConnectionError("localhost", 5432, "survtab", "postgres", cause)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 4)
	assert.ErrorIs(t, gnErr.Err, cause)
}

func TestNotConnectedError(t *testing.T) {
	err := iodb.NotConnectedError()
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestDropTableError(t *testing.T) {
	cause := errors.New("permission denied")

	err := iodb.DropTableError("species", cause)
	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBDropTableError, gnErr.Code)
	assert.Equal(t, "species", gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, cause)
}
