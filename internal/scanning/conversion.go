package scanning

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

const (
	mimePNG  = "image/png"
	mimeJPEG = "image/jpeg"
	mimePDF  = "application/pdf"
)

// pdfFirstPage renders the first page of a PDF ticket as an image.
// Fuel tickets exported as PDF are single page.
func pdfFirstPage(pdfData []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}
	return img, nil
}

// decodeImage decodes JPEG, PNG, GIF and HEIC/HEIF (phone photos) images
func decodeImage(imageData []byte, mimeType string) (image.Image, error) {
	if isHEIC(imageData, mimeType) {
		img, err := heic.Decode(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		if strings.Contains(err.Error(), "unknown format") {
			return nil, fmt.Errorf("unsupported image format (supported: JPEG, PNG, GIF, HEIC, HEIF, PDF): %w", err)
		}
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// isHEIC checks the MIME type and the ftyp box brand at offset 4
func isHEIC(data []byte, mimeType string) bool {
	if strings.Contains(mimeType, "heic") || strings.Contains(mimeType, "heif") {
		return true
	}
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heix", "heif", "mif1", "msf1":
		return true
	}
	return false
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// normalizeMIME lowercases a content type and drops its parameters.
// An empty content type is assumed to be JPEG, the usual phone camera output.
func normalizeMIME(contentType string) string {
	mimeType, _, _ := strings.Cut(contentType, ";")
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "" {
		return mimeJPEG
	}
	return mimeType
}

// toPNG returns the ticket as PNG bytes, rendering PDFs and re-encoding
// other image formats. PNG input (other than mislabelled HEIC) is returned as-is.
func toPNG(imageData []byte, contentType string) ([]byte, error) {
	mimeType := normalizeMIME(contentType)

	var (
		img image.Image
		err error
	)
	switch {
	case mimeType == mimePDF:
		img, err = pdfFirstPage(imageData)
	case mimeType == mimePNG && !isHEIC(imageData, mimeType):
		return imageData, nil
	default:
		img, err = decodeImage(imageData, mimeType)
	}
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}
