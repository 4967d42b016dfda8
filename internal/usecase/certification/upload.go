package certification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/storage"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type UploadInput struct {
	Kind     string
	FileName string
	Data     []byte
}

type UploadResult struct {
	ObjectKey   string
	ContentType string
}

// ======================================================
// USE CASE
// ======================================================

// UploadDocument normalizes and stores a certification document. It
// runs before the professional row exists, so it only returns the
// object key; the application submit links the key to its owner.
type UploadDocument struct {
	uploader *storage.Uploader
}

func NewUploadDocument(uploader *storage.Uploader) *UploadDocument {
	return &UploadDocument{uploader: uploader}
}

func (uc *UploadDocument) Execute(
	ctx context.Context,
	in UploadInput,
) (*UploadResult, error) {

	if in.Kind != models.CertificationKindLicense &&
		in.Kind != models.CertificationKindInsurance {
		return nil, httperr.ErrBusiness("certification_kind_invalid")
	}

	doc, err := storage.NormalizeDocument(in.Data)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("certifications/%s/%s.%s", in.Kind, uuid.NewString(), doc.Extension)

	if _, err := uc.uploader.Put(ctx, key, doc.ContentType, doc.Data); err != nil {
		return nil, err
	}

	return &UploadResult{
		ObjectKey:   key,
		ContentType: doc.ContentType,
	}, nil
}
