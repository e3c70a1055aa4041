package bedrock

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
)

const (
	iamTroubleshootURL = "https://docs.aws.amazon.com/IAM/latest/UserGuide/troubleshoot_access-denied.html"
	bedrockSetupURL    = "https://docs.aws.amazon.com/bedrock/latest/userguide/setting-up.html"
)

// IsAccessDenied reports whether err is an access-denied failure from the
// service, either the typed runtime exception or any API error carrying
// the AccessDeniedException code. Model access that was never granted in
// the console surfaces this way.
func IsAccessDenied(err error) bool {
	var denied *types.AccessDeniedException
	if errors.As(err, &denied) {
		return true
	}

	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "AccessDeniedException"
}

// AccessDeniedNotice renders err as the user-facing diagnostic for an
// access-denied failure, pointing at the troubleshooting guides.
func AccessDeniedNotice(err error) string {
	return fmt.Sprintf("%v\nTo troubleshoot this issue please refer to the following resources.\n%s\n%s",
		err, iamTroubleshootURL, bedrockSetupURL)
}
