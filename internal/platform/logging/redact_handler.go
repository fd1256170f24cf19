package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields lists attribute keys and struct field names whose values
// are always redacted. It covers request headers the story server may see
// and the object store credentials carried by config.ObjectStoreConfig.
var SensitiveFields = []string{
	"authorization",
	"cookie",
	"x-api-key",
	"password",
	"token",
	"access_key",
	"secret_key",
	"AccessKey",
	"SecretKey",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// awsAccessKeyPattern matches AWS-style access key IDs.
var awsAccessKeyPattern = regexp.MustCompile(`\b(AKIA|ASIA)[0-9A-Z]{16}\b`)

// presignedSignaturePattern matches the signature parameter of presigned S3
// URLs, which would otherwise grant access to the object until it expires.
var presignedSignaturePattern = regexp.MustCompile(`(?i)x-amz-(signature|credential|security-token)=[^&\s]+`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+4)

	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		// Variations like "secret_access_key".
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(awsAccessKeyPattern),
		masq.WithRegex(presignedSignaturePattern),
	)

	return masq.New(opts...)
}
