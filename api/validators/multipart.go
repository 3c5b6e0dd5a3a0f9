package validators

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/media"
	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
)

const (
	imagesPart         = "images"
	qrCodePart         = "qrCode"
	existingImagesPart = "existingImages"
	existingQRPart     = "existingQrCode"
)

// ListingForm is a parsed admin multipart submission.
type ListingForm struct {
	Fields         catalog.Fields
	Images         []media.Upload
	QRCode         *media.Upload
	RetainedImages []string
	RetainedQRCode string
}

// ParseListingForm decodes the multipart body: scalar fields, new image
// parts, at most one QR part, and the retained-path references. The admin
// UI sends existingImages either as repeated values or one JSON array.
func ParseListingForm(r *http.Request, maxBytes int64) (*ListingForm, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	}
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body")
	}

	form := &ListingForm{Fields: catalog.Fields(r.MultipartForm.Value)}

	for _, header := range r.MultipartForm.File[imagesPart] {
		form.Images = append(form.Images, uploadFromHeader(header))
	}

	qrHeaders := r.MultipartForm.File[qrCodePart]
	if len(qrHeaders) > 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at most one qr code file is allowed").
			WithDetails(map[string]string{"field": qrCodePart})
	}
	if len(qrHeaders) == 1 {
		upload := uploadFromHeader(qrHeaders[0])
		form.QRCode = &upload
	}

	form.RetainedImages = pathList(r.MultipartForm.Value[existingImagesPart])
	form.RetainedQRCode = strings.TrimSpace(form.Fields.Get(existingQRPart))

	return form, nil
}

func uploadFromHeader(header *multipart.FileHeader) media.Upload {
	return media.Upload{
		FileName: header.Filename,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

func pathList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if strings.HasPrefix(value, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(value), &decoded); err == nil {
				for _, path := range decoded {
					if path = strings.TrimSpace(path); path != "" {
						out = append(out, path)
					}
				}
				continue
			}
		}
		out = append(out, value)
	}
	return out
}
