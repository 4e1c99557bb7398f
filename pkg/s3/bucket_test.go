package bucket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewArchiver(t *testing.T) {
	archiver, err := NewArchiver("AKIAEXAMPLE", "secret", "us-east-1", "audit-bucket")
	require.NoError(t, err)
	require.NotNil(t, archiver)
}

func TestNewArchiver_IncompleteConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		accessKeyID     string
		secretAccessKey string
		region          string
	}{
		{name: "no access key", secretAccessKey: "secret", region: "us-east-1"},
		{name: "no secret", accessKeyID: "AKIAEXAMPLE", region: "us-east-1"},
		{name: "no region", accessKeyID: "AKIAEXAMPLE", secretAccessKey: "secret"},
		{name: "nothing set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewArchiver(tt.accessKeyID, tt.secretAccessKey, tt.region, "audit-bucket")
			require.Error(t, err)
		})
	}
}
