package repository_test

import (
	"sync"
	"warbler/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm/schema"
)

var _ = Describe("Models", func() {
	parse := func(model any) *schema.Schema {
		s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	expectCascade := func(s *schema.Schema, relation string) {
		rel, ok := s.Relationships.Relations[relation]
		Expect(ok).To(BeTrue(), "relation %s missing on %s", relation, s.Name)
		constraint := rel.ParseConstraint()
		Expect(constraint).NotTo(BeNil(), "relation %s on %s has no constraint", relation, s.Name)
		Expect(constraint.OnDelete).To(Equal("CASCADE"), "relation %s on %s does not cascade", relation, s.Name)
	}

	It("cascades messages when their author is deleted", func() {
		expectCascade(parse(&repository.Message{}), "User")
	})

	It("cascades follow edges from both sides", func() {
		s := parse(&repository.Follow{})
		expectCascade(s, "Follower")
		expectCascade(s, "Followed")
	})

	It("cascades likes when either the user or the message is deleted", func() {
		s := parse(&repository.Like{})
		expectCascade(s, "User")
		expectCascade(s, "Message")
	})
})
