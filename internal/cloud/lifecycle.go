package cloud

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// LifecyclePolicy is an exportable S3 lifecycle configuration encoding
// the hot->warm->cold->archive transition schedule. The document is
// advisory; nothing here talks to AWS.
type LifecyclePolicy struct {
	Rules []types.LifecycleRule `json:"Rules"`
}

// ExportLifecycle builds the lifecycle policy for a provider. Only the
// aws document format is implemented.
func ExportLifecycle(provider string) (LifecyclePolicy, error) {
	if strings.ToLower(provider) != "aws" {
		return LifecyclePolicy{}, fmt.Errorf("lifecycle policy for %s not supported", provider)
	}

	return LifecyclePolicy{
		Rules: []types.LifecycleRule{
			{
				ID:     aws.String("GuardianD-HotToWarm"),
				Status: types.ExpirationStatusEnabled,
				Filter: &types.LifecycleRuleFilter{Prefix: aws.String("")},
				Transitions: []types.Transition{
					{
						Days:         aws.Int32(30),
						StorageClass: types.TransitionStorageClassIntelligentTiering,
					},
				},
			},
			{
				ID:     aws.String("GuardianD-WarmToCold"),
				Status: types.ExpirationStatusEnabled,
				Filter: &types.LifecycleRuleFilter{Prefix: aws.String("archive/")},
				Transitions: []types.Transition{
					{
						Days:         aws.Int32(90),
						StorageClass: types.TransitionStorageClassGlacierIr,
					},
				},
			},
			{
				ID:     aws.String("GuardianD-ColdToDeep"),
				Status: types.ExpirationStatusEnabled,
				Filter: &types.LifecycleRuleFilter{Prefix: aws.String("deep-archive/")},
				Transitions: []types.Transition{
					{
						Days:         aws.Int32(365),
						StorageClass: types.TransitionStorageClassDeepArchive,
					},
				},
			},
		},
	}, nil
}
