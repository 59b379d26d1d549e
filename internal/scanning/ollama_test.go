package scanning

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Ollama", func() {
	var (
		server   *ghttp.Server
		scanner  *Ollama
		pngData  []byte
		mimeType string
		text     string
		err      error
		received ollamaChatRequest
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		scanner, err = NewOllama(server.URL()+"/", "qwen2-vl:7b")
		Expect(err).NotTo(HaveOccurred())
		pngData = encodeSample(func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
		mimeType = "image/png"
		received = ollamaChatRequest{}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		text, err = scanner.ScanText(pngData, mimeType)
	})

	recordRequest := func(w http.ResponseWriter, r *http.Request) {
		defer GinkgoRecover()
		Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())
	}

	When("the model answers", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, "/api/chat"),
				ghttp.VerifyContentType("application/json"),
				recordRequest,
				ghttp.RespondWithJSONEncoded(http.StatusOK, ollamaChatResponse{
					Message: ollamaMessage{Role: "assistant", Content: "```\nSTATION KARENJY\nTOTAL 15 500,00\n```"},
					Done:    true,
				}),
			))
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should return the cleaned transcription", func() {
			Expect(text).To(Equal("STATION KARENJY\nTOTAL 15 500,00"))
		})

		It("should send the configured model", func() {
			Expect(received.Model).To(Equal("qwen2-vl:7b"))
			Expect(received.Stream).To(BeFalse())
		})

		It("should attach the image to the user message", func() {
			Expect(received.Messages).To(HaveLen(2))
			Expect(received.Messages[1].Role).To(Equal("user"))
			Expect(received.Messages[1].Images).To(HaveLen(1))
		})
	})

	When("the API fails", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "model not loaded"))
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ContainSubstring("status 500")))
		})
	})

	When("the model answers with nothing", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWithJSONEncoded(http.StatusOK, ollamaChatResponse{Done: true}))
		})

		It("returns the error", func() {
			Expect(err).To(MatchError(ErrNoText))
		})
	})

	When("the image cannot be read", func() {
		BeforeEach(func() {
			pngData = []byte("garbage")
			mimeType = "image/jpeg"
		})

		It("returns the error without calling the API", func() {
			Expect(err).To(HaveOccurred())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})
})

var _ = Describe("NewGemini", func() {
	It("requires an API key", func() {
		_, err := NewGemini("", "")
		Expect(err).To(MatchError(ContainSubstring("api key is required")))
	})
})
