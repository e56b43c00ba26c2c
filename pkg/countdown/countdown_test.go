package countdown_test

import (
	"testing"
	"time"

	"github.com/brb-sh/brb/pkg/countdown"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCountdown(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Countdown Suite")
}

var _ = Describe("Countdown", func() {
	Describe("Tick", func() {
		It("decrements the remaining time by the step", func() {
			c := countdown.New(10 * time.Second)
			c.Tick(time.Second)
			Expect(c.Remaining()).To(Equal(9 * time.Second))
		})

		It("floors at zero and never goes negative", func() {
			c := countdown.New(2 * time.Second)
			for i := 0; i < 10; i++ {
				c.Tick(time.Second)
				Expect(c.Remaining()).To(BeNumerically(">=", 0))
			}
			Expect(c.Remaining()).To(Equal(time.Duration(0)))
			Expect(c.Done()).To(BeTrue())
		})

		It("is monotonically non-increasing over any tick sequence", func() {
			c := countdown.New(5 * time.Second)
			prev := c.Remaining()
			steps := []time.Duration{time.Second, 3 * time.Second, 0, -time.Second, 2 * time.Second}
			for _, step := range steps {
				c.Tick(step)
				Expect(c.Remaining()).To(BeNumerically("<=", prev))
				prev = c.Remaining()
			}
		})

		It("stays at zero once finished", func() {
			c := countdown.New(time.Second)
			c.Tick(time.Second)
			Expect(c.Done()).To(BeTrue())
			c.Tick(time.Second)
			Expect(c.Remaining()).To(Equal(time.Duration(0)))
		})
	})

	Describe("Percent", func() {
		It("reports the elapsed fraction", func() {
			c := countdown.New(10 * time.Second)
			Expect(c.Percent()).To(BeNumerically("~", 0.0, 0.001))
			c.Tick(4 * time.Second)
			Expect(c.Percent()).To(BeNumerically("~", 0.4, 0.001))
			c.Tick(6 * time.Second)
			Expect(c.Percent()).To(BeNumerically("~", 1.0, 0.001))
		})

		It("treats a zero total as fully elapsed", func() {
			Expect(countdown.New(0).Percent()).To(Equal(1.0))
		})
	})

	Describe("Format", func() {
		It("renders MM:SS with hours folded into minutes", func() {
			Expect(countdown.New(90 * time.Second).Format()).To(Equal("01:30"))
			Expect(countdown.New(time.Hour + time.Minute + time.Second).Format()).To(Equal("61:01"))
			Expect(countdown.New(0).Format()).To(Equal("00:00"))
		})
	})

	Describe("ParseTokens", func() {
		It("sums hour, minute and second tokens", func() {
			d, err := countdown.ParseTokens([]string{"1h", "2m", "30s"})
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(time.Hour + 2*time.Minute + 30*time.Second))
		})

		It("returns zero for no tokens", func() {
			d, err := countdown.ParseTokens(nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(time.Duration(0)))
		})

		It("rejects unknown units", func() {
			_, err := countdown.ParseTokens([]string{"5x"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects missing amounts", func() {
			_, err := countdown.ParseTokens([]string{"h"})
			Expect(err).To(HaveOccurred())
		})

		It("rejects non-numeric amounts", func() {
			_, err := countdown.ParseTokens([]string{"abcs"})
			Expect(err).To(HaveOccurred())
		})
	})
})
