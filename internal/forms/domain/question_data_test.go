package domain_test

import (
	"stepform-server/internal/forms/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("DecodeQuestionData", func() {
	ginkgo.It("should decode a long text payload", func() {
		data, err := domain.DecodeQuestionData(domain.QuestionTypeLongText, []byte(`{"minLength":5,"maxLength":200,"size":"large"}`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		longText, ok := data.(domain.LongTextData)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(*longText.MinLength).To(gomega.Equal(5))
		gomega.Expect(*longText.MaxLength).To(gomega.Equal(200))
		gomega.Expect(longText.Size).To(gomega.Equal(domain.TextSizeLarge))
	})

	ginkgo.It("should decode a multi select payload", func() {
		data, err := domain.DecodeQuestionData(domain.QuestionTypeMultiSelect, []byte(`{"options":[{"id":"a","label":"A","value":"a"}],"selectionType":"range","minSelections":1,"maxSelections":3}`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		multiSelect, ok := data.(domain.MultiSelectData)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(multiSelect.Options).To(gomega.HaveLen(1))
		gomega.Expect(multiSelect.SelectionType).To(gomega.Equal(domain.SelectionTypeRange))
	})

	ginkgo.It("should default an empty payload", func() {
		data, err := domain.DecodeQuestionData(domain.QuestionTypeShortText, nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(data).To(gomega.Equal(domain.ShortTextData{}))
	})

	ginkgo.It("should reject an unknown question type", func() {
		_, err := domain.DecodeQuestionData("TELEPATHY", []byte(`{}`))
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject an invalid selection type", func() {
		_, err := domain.DecodeQuestionData(domain.QuestionTypeMultiSelect, []byte(`{"selectionType":"sometimes"}`))
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject an invalid long text size", func() {
		_, err := domain.DecodeQuestionData(domain.QuestionTypeLongText, []byte(`{"size":"gigantic"}`))
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject an invalid contact field type", func() {
		_, err := domain.DecodeQuestionData(domain.QuestionTypeContactInfo, []byte(`{"fields":[{"id":"x","title":"X","type":"carrier-pigeon"}]}`))
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should default contact field display to shown", func() {
		data, err := domain.DecodeQuestionData(domain.QuestionTypeContactInfo, []byte(`{"fields":[{"id":"name","title":"Name","type":"text"},{"id":"fax","title":"Fax","type":"tel","display":false}]}`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		contactInfo, ok := data.(domain.ContactInfoData)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(contactInfo.Fields[0].Display).To(gomega.BeTrue())
		gomega.Expect(contactInfo.Fields[1].Display).To(gomega.BeFalse())
	})

	ginkgo.It("should decode structural steps regardless of payload", func() {
		data, err := domain.DecodeQuestionData(domain.QuestionTypeStartStep, []byte(`{"anything":"goes"}`))
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(data).To(gomega.Equal(domain.StartStepData{}))
	})
})

var _ = ginkgo.Describe("EncodeQuestionData", func() {
	ginkgo.It("should round-trip a payload through decode", func() {
		original := domain.NumberData{MinValue: floatPtr(1), MaxValue: floatPtr(9)}
		raw, err := domain.EncodeQuestionData(original)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		decoded, err := domain.DecodeQuestionData(domain.QuestionTypeNumber, raw)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(decoded).To(gomega.Equal(original))
	})

	ginkgo.It("should encode nil data as an empty document", func() {
		raw, err := domain.EncodeQuestionData(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(string(raw)).To(gomega.Equal("{}"))
	})
})

var _ = ginkgo.Describe("QuestionType", func() {
	ginkgo.It("should mark presentation types as not collectable", func() {
		gomega.Expect(domain.QuestionTypeStatement.Collectable()).To(gomega.BeFalse())
		gomega.Expect(domain.QuestionTypeStartStep.Collectable()).To(gomega.BeFalse())
		gomega.Expect(domain.QuestionTypeEndStep.Collectable()).To(gomega.BeFalse())
		gomega.Expect(domain.QuestionTypeShortText.Collectable()).To(gomega.BeTrue())
	})

	ginkgo.It("should mark only the start and end steps as structural", func() {
		gomega.Expect(domain.QuestionTypeStartStep.Structural()).To(gomega.BeTrue())
		gomega.Expect(domain.QuestionTypeEndStep.Structural()).To(gomega.BeTrue())
		gomega.Expect(domain.QuestionTypeStatement.Structural()).To(gomega.BeFalse())
	})
})
