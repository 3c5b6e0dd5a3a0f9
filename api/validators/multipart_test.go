package validators

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/Thilina-Shamika/property-stable-sub000/pkg/errors"
)

func buildForm(t *testing.T, fields map[string][]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				t.Fatalf("WriteField: %v", err)
			}
		}
	}
	for key, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(key, name)
			if err != nil {
				t.Fatalf("CreateFormFile: %v", err)
			}
			if _, err := part.Write([]byte("bytes-of-" + name)); err != nil {
				t.Fatalf("write part: %v", err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestParseListingFormCollectsPartsInOrder(t *testing.T) {
	t.Parallel()

	body, contentType := buildForm(t,
		map[string][]string{
			"name":           {"Villa"},
			"existingImages": {"/uploads/property/1-a.jpg", "/uploads/property/2-b.jpg"},
			"existingQrCode": {"/uploads/property/3-qr.png"},
		},
		map[string][]string{
			"images": {"c.jpg", "d.jpg"},
			"qrCode": {"qr.png"},
		},
	)

	req := httptest.NewRequest("POST", "/api/admin/v1/buy", body)
	req.Header.Set("Content-Type", contentType)

	form, err := ParseListingForm(req, 1<<20)
	if err != nil {
		t.Fatalf("ParseListingForm: %v", err)
	}

	if form.Fields.Get("name") != "Villa" {
		t.Fatalf("scalar field lost")
	}
	if len(form.Images) != 2 || form.Images[0].FileName != "c.jpg" || form.Images[1].FileName != "d.jpg" {
		t.Fatalf("image parts wrong: %+v", form.Images)
	}
	if form.QRCode == nil || form.QRCode.FileName != "qr.png" {
		t.Fatalf("qr part missing")
	}
	if len(form.RetainedImages) != 2 || form.RetainedImages[0] != "/uploads/property/1-a.jpg" {
		t.Fatalf("retained images wrong: %v", form.RetainedImages)
	}
	if form.RetainedQRCode != "/uploads/property/3-qr.png" {
		t.Fatalf("retained qr wrong: %q", form.RetainedQRCode)
	}

	src, err := form.Images[0].Open()
	if err != nil {
		t.Fatalf("open upload: %v", err)
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read upload: %v", err)
	}
	if string(data) != "bytes-of-c.jpg" {
		t.Fatalf("upload content wrong: %q", data)
	}
}

func TestParseListingFormAcceptsJSONPathArray(t *testing.T) {
	t.Parallel()

	body, contentType := buildForm(t,
		map[string][]string{
			"existingImages": {`["/uploads/property/1-a.jpg","/uploads/property/2-b.jpg"]`},
		},
		nil,
	)

	req := httptest.NewRequest("PUT", "/api/admin/v1/buy/x", body)
	req.Header.Set("Content-Type", contentType)

	form, err := ParseListingForm(req, 1<<20)
	if err != nil {
		t.Fatalf("ParseListingForm: %v", err)
	}
	if len(form.RetainedImages) != 2 || form.RetainedImages[1] != "/uploads/property/2-b.jpg" {
		t.Fatalf("json array not decoded: %v", form.RetainedImages)
	}
}

func TestParseListingFormRejectsMultipleQRParts(t *testing.T) {
	t.Parallel()

	body, contentType := buildForm(t, nil, map[string][]string{
		"qrCode": {"a.png", "b.png"},
	})

	req := httptest.NewRequest("POST", "/api/admin/v1/buy", body)
	req.Header.Set("Content-Type", contentType)

	_, err := ParseListingForm(req, 1<<20)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseListingFormRejectsNonMultipart(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/api/admin/v1/buy", bytes.NewBufferString(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := ParseListingForm(req, 1<<20)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
