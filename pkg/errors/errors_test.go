package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NotFound("service", nil), http.StatusNotFound},
		{Validation("bad id", nil), http.StatusBadRequest},
		{StoreUnavailable(fmt.Errorf("conn refused")), http.StatusServiceUnavailable},
		{MailDeliveryFailed(fmt.Errorf("smtp down")), http.StatusBadGateway},
		{Internal(nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus(), tc.err.Error())
	}
}

func TestIsThroughWrapping(t *testing.T) {
	root := fmt.Errorf("dial tcp: timeout")
	err := fmt.Errorf("list doctors: %w", StoreUnavailable(root))

	assert.True(t, Is(err, ErrStoreUnavailable))
	assert.False(t, Is(err, ErrNotFound))
	assert.True(t, stderrors.Is(err, root))
	assert.Equal(t, "store unavailable: dial tcp: timeout", StoreUnavailable(root).Error())
}
