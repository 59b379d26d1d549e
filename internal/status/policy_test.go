package status

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type job struct {
	status  string
	planned time.Time
}

var _ = Describe("Policy", func() {
	var (
		now    time.Time
		policy Policy[job]
		item   job
		result Classification
		ok     bool
	)

	BeforeEach(func() {
		now = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		policy = Policy[job]{
			Date:      func(j job) time.Time { return j.planned },
			Status:    func(j job) string { return j.status },
			Open:      []string{"pending", "in_progress"},
			Threshold: DefaultThreshold,
		}
	})

	JustBeforeEach(func() {
		result, ok = policy.Evaluate(item, now)
	})

	When("an open item is past its date", func() {
		BeforeEach(func() {
			item = job{status: "in_progress", planned: now.AddDate(0, 0, -3)}
		})

		It("should be evaluated", func() {
			Expect(ok).To(BeTrue())
		})

		It("should be expired", func() {
			Expect(result).To(Equal(Classification{DaysRemaining: -3, Bucket: Expired}))
		})
	})

	When("a closed item is past its date", func() {
		BeforeEach(func() {
			item = job{status: "completed", planned: now.AddDate(0, 0, -300)}
		})

		It("should never be flagged", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("an item has no date", func() {
		BeforeEach(func() {
			item = job{status: "pending"}
		})

		It("should not be evaluated", func() {
			Expect(ok).To(BeFalse())
		})
	})

	When("the policy has no open statuses", func() {
		BeforeEach(func() {
			policy.Open = nil
			item = job{status: "anything", planned: now.AddDate(0, 0, 45)}
		})

		It("should evaluate every item", func() {
			Expect(ok).To(BeTrue())
		})

		It("should use the default threshold", func() {
			Expect(result.Bucket).To(Equal(Valid))
		})
	})

	When("the policy has a custom threshold", func() {
		BeforeEach(func() {
			policy.Threshold = 60
			item = job{status: "pending", planned: now.AddDate(0, 0, 45)}
		})

		It("should apply it", func() {
			Expect(result.Bucket).To(Equal(DueSoon))
		})
	})

	When("the policy has a zero threshold", func() {
		BeforeEach(func() {
			policy.Threshold = 0
			item = job{status: "pending", planned: now.AddDate(0, 0, 1)}
		})

		It("should report an item one day away as valid", func() {
			Expect(result).To(Equal(Classification{DaysRemaining: 1, Bucket: Valid}))
		})

		When("the item is due today", func() {
			BeforeEach(func() {
				item = job{status: "pending", planned: now}
			})

			It("should report it as due soon", func() {
				Expect(result.Bucket).To(Equal(DueSoon))
			})
		})
	})

	When("the policy has a negative threshold", func() {
		BeforeEach(func() {
			policy.Threshold = -1
			item = job{status: "pending", planned: now.AddDate(0, 0, 1)}
		})

		It("should behave like a zero threshold", func() {
			Expect(result.Bucket).To(Equal(Valid))
		})
	})

	When("the policy has no status accessor", func() {
		BeforeEach(func() {
			policy.Status = nil
			item = job{status: "completed", planned: now.AddDate(0, 0, 2)}
		})

		It("should treat the item as open", func() {
			Expect(ok).To(BeTrue())
		})
	})
})
