package opensearch_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/opensearch"
)

func TestNewCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		want     bool
		warns    bool
	}{
		{name: "both set", username: "user", password: "pass", want: true},
		{name: "username missing", username: "", password: "pass", warns: true},
		{name: "password missing", username: "user", password: "", warns: true},
		{name: "both empty", username: "", password: ""},
		{name: "whitespace only", username: "  ", password: "\t"},
		{name: "whitespace password", username: "user", password: "   ", warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			cred := opensearch.NewCredential(tt.username, tt.password, testLogger(buf))

			if tt.want {
				require.NotNil(t, cred)
				assert.Equal(t, tt.username, cred.Username())
				assert.Equal(t, tt.password, cred.Password())
			} else {
				assert.Nil(t, cred)
			}

			if tt.warns {
				assert.Contains(t, buf.String(), "level=WARN")
				assert.Contains(t, buf.String(), "authentication disabled")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestCredential_String(t *testing.T) {
	t.Parallel()

	cred := opensearch.NewCredential("admin", "secret", nil)
	require.NotNil(t, cred)
	assert.Equal(t, "admin:********", cred.String())
	assert.NotContains(t, cred.String(), "secret")

	var none *opensearch.Credential
	assert.Equal(t, "<none>", none.String())
}
