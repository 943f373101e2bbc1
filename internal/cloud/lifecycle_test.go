package cloud

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLifecycle_AWS(t *testing.T) {
	policy, err := ExportLifecycle("aws")
	require.NoError(t, err)
	require.Len(t, policy.Rules, 3)

	for _, rule := range policy.Rules {
		assert.Equal(t, types.ExpirationStatusEnabled, rule.Status)
		require.Len(t, rule.Transitions, 1)
	}

	assert.Equal(t, types.TransitionStorageClassIntelligentTiering, policy.Rules[0].Transitions[0].StorageClass)
	assert.Equal(t, int32(30), *policy.Rules[0].Transitions[0].Days)
	assert.Equal(t, types.TransitionStorageClassGlacierIr, policy.Rules[1].Transitions[0].StorageClass)
	assert.Equal(t, int32(90), *policy.Rules[1].Transitions[0].Days)
	assert.Equal(t, types.TransitionStorageClassDeepArchive, policy.Rules[2].Transitions[0].StorageClass)
	assert.Equal(t, int32(365), *policy.Rules[2].Transitions[0].Days)
}

func TestExportLifecycle_CaseInsensitiveProvider(t *testing.T) {
	_, err := ExportLifecycle("AWS")
	assert.NoError(t, err)
}

func TestExportLifecycle_UnsupportedProvider(t *testing.T) {
	_, err := ExportLifecycle("gcp")
	assert.Error(t, err)
}

func TestExportLifecycle_MarshalsToPolicyJSON(t *testing.T) {
	policy, err := ExportLifecycle("aws")
	require.NoError(t, err)

	data, err := json.Marshal(policy)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Rules"`)
	assert.Contains(t, string(data), "INTELLIGENT_TIERING")
	assert.Contains(t, string(data), "DEEP_ARCHIVE")
}
