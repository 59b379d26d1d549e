package scanning

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func encodeSample(encode func(*bytes.Buffer, image.Image) error) []byte {
	var buf bytes.Buffer
	Expect(encode(&buf, sampleImage())).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("toPNG", func() {
	var (
		data        []byte
		contentType string
		out         []byte
		err         error
	)

	JustBeforeEach(func() {
		out, err = toPNG(data, contentType)
	})

	When("the image is already PNG", func() {
		BeforeEach(func() {
			data = encodeSample(func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
			contentType = "image/png"
		})

		It("should return the data unchanged", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(data))
		})
	})

	When("the image is JPEG", func() {
		BeforeEach(func() {
			data = encodeSample(func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) })
			contentType = "IMAGE/JPEG; charset=binary"
		})

		It("should convert it to PNG", func() {
			Expect(err).NotTo(HaveOccurred())
			_, format, decodeErr := image.Decode(bytes.NewReader(out))
			Expect(decodeErr).NotTo(HaveOccurred())
			Expect(format).To(Equal("png"))
		})
	})

	When("the content type is missing", func() {
		BeforeEach(func() {
			data = encodeSample(func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) })
			contentType = ""
		})

		It("should still decode the image", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the data is not an image", func() {
		BeforeEach(func() {
			data = []byte("definitely not an image")
			contentType = "image/jpeg"
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("unsupported image format")))
		})
	})

	When("the PDF is invalid", func() {
		BeforeEach(func() {
			data = []byte("not a pdf")
			contentType = "application/pdf"
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("opening PDF")))
		})
	})
})

var _ = Describe("isHEIC", func() {
	DescribeTable("detection",
		func(data []byte, mimeType string, expected bool) {
			Expect(isHEIC(data, mimeType)).To(Equal(expected))
		},
		Entry("heic MIME type", nil, "image/heic", true),
		Entry("heif MIME type", nil, "image/heif", true),
		Entry("heic brand", []byte("\x00\x00\x00\x18ftypheic"), "image/jpeg", true),
		Entry("mif1 brand", []byte("\x00\x00\x00\x18ftypmif1"), "", true),
		Entry("other brand", []byte("\x00\x00\x00\x18ftypisom"), "", false),
		Entry("short data", []byte("ftyp"), "image/png", false),
	)
})

var _ = Describe("normalizeMIME", func() {
	It("defaults to JPEG", func() {
		Expect(normalizeMIME("  ")).To(Equal("image/jpeg"))
	})

	It("drops parameters and lowercases", func() {
		Expect(normalizeMIME("Application/PDF; name=ticket.pdf")).To(Equal("application/pdf"))
	})
})
