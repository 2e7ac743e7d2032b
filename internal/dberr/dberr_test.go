package dberr

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/rakhadavedra/blogstack/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyErr() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

func TestErrCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"no documents", mongo.ErrNoDocuments, NotFound},
		{"wrapped no documents", fmt.Errorf("lookup: %w", mongo.ErrNoDocuments), NotFound},
		{"duplicate key", duplicateKeyErr(), DuplicateKey},
		{"deadline exceeded", context.DeadlineExceeded, Timeout},
		{"anything else", errors.New("boom"), Other},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrCode(tc.err))
		})
	}
}

func TestConvertKeepsDriverErrorInChain(t *testing.T) {
	converted := Convert(mongo.ErrNoDocuments)

	assert.Equal(t, NotFound, converted.Code)
	assert.True(t, errors.Is(converted, mongo.ErrNoDocuments))

	// ErrCode resolves through wrapping of an already-converted error.
	wrapped := fmt.Errorf("repo: %w", converted)
	assert.True(t, IsNotFound(wrapped))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsNotFound(mongo.ErrNoDocuments))
	assert.False(t, IsNotFound(errors.New("boom")))

	assert.True(t, IsDuplicate(duplicateKeyErr()))
	assert.False(t, IsDuplicate(mongo.ErrNoDocuments))
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         mongo.ErrNoDocuments,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Resource not found in the database",
		},
		{
			name:        "duplicate key",
			err:         duplicateKeyErr(),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Resource already exists",
		},
		{
			name:        "timeout",
			err:         context.DeadlineExceeded,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error in database operation: context deadline exceeded",
		},
		{
			name:        "unclassified",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error in processing request: boom",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tc.err), &httpErr)

			assert.Equal(t, tc.wantStatus, httpErr.Status)
			assert.Equal(t, tc.wantMessage, httpErr.Message)
		})
	}
}
