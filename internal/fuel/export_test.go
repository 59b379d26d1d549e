package fuel

import (
	"bytes"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
)

var _ = Describe("WriteXLSX", func() {
	var (
		drafts []*Draft
		buf    *bytes.Buffer
		rows   [][]string
		widths []float64
		err    error
	)

	BeforeEach(func() {
		service := NewServiceWithDeps(nil, &mockIDGenerator{id: "id"}, &mockTimeSource{now: time.Now()})
		drafts = []*Draft{
			service.ExtractText("full.txt", ticketText),
			service.ExtractText("partial.txt", "TOTAL 12,50"),
		}
		buf = &bytes.Buffer{}
	})

	JustBeforeEach(func() {
		err = WriteXLSX(buf, drafts)
		if err != nil {
			return
		}
		f, openErr := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		Expect(openErr).NotTo(HaveOccurred())
		defer f.Close()
		rows, openErr = f.GetRows("Tickets")
		Expect(openErr).NotTo(HaveOccurred())
		widths = nil
		for _, col := range []string{"A", "C", "D", "G", "I"} {
			w, widthErr := f.GetColWidth("Tickets", col)
			Expect(widthErr).NotTo(HaveOccurred())
			widths = append(widths, w)
		}
	})

	It("should not return an error", func() {
		Expect(err).NotTo(HaveOccurred())
	})

	It("should write a header and one row per draft", func() {
		Expect(rows).To(HaveLen(3))
		Expect(rows[0]).To(Equal(exportHeaders))
	})

	It("should write the extracted fields", func() {
		Expect(rows[1][:8]).To(Equal([]string{
			"2024-01-12", "08:45", "5512", "Vohibola (Antarandolo)",
			"40", "5100", "204000", "full.txt",
		}))
	})

	It("should leave missing fields empty and list them", func() {
		Expect(rows[2][0]).To(BeEmpty())
		Expect(rows[2][4]).To(BeEmpty())
		Expect(rows[2][6]).To(Equal("12.5"))
		Expect(rows[2][8]).To(Equal("date, time, ticketNumber, station, unitPrice, quantityPurchased"))
	})

	It("should size the columns", func() {
		Expect(widths).To(Equal([]float64{12, 16, 28, 14, 40}))
	})

	When("there are no drafts", func() {
		BeforeEach(func() {
			drafts = nil
		})

		It("should only write the header", func() {
			Expect(rows).To(HaveLen(1))
		})
	})
})
