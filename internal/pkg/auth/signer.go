//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "CredentialSigner=CredentialSigner"
package auth

import "time"

type (
	Credential string

	SignOptions struct {
		// Expiry overrides the signer default when set.
		Expiry *time.Duration
	}

	CredentialSigner interface {
		// Sign returns ErrSigning when the signer has no usable secret.
		Sign(Claims, SignOptions) (Credential, error)
		// Verify returns ErrExpiredCredential or ErrInvalidSignature.
		Verify(Credential) (Claims, error)
		// DecodeUnsafe checks the signature but ignores expiry. It returns nil claims for a malformed payload.
		DecodeUnsafe(Credential) (*Claims, error)
	}
)
