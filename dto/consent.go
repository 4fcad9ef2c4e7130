// file: dto/consent.go
package dto

import "strings"

type SignConsentReq struct {
	ConsentType        string `json:"consent_type"`
	SignerName         string `json:"signer_name" binding:"required"`
	SignerRelationship string `json:"signer_relationship"`
	SignerEmail        string `json:"signer_email" binding:"omitempty,email"`
	TypedSignature     string `json:"typed_signature"`
	SignatureImageRef  string `json:"signature_image_ref"`
}

func (r *SignConsentReq) Normalize() {
	r.ConsentType = strings.ToLower(strings.TrimSpace(r.ConsentType))
	r.SignerName = strings.TrimSpace(r.SignerName)
	r.TypedSignature = strings.TrimSpace(r.TypedSignature)
	if r.ConsentType == "" {
		r.ConsentType = "trip_participation"
	}
}
