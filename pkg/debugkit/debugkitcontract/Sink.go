package debugkitcontract

import (
	"context"
	"strings"

	"go.llib.dev/debugiter/pkg/debugkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// SinkSubject is the testing subject of the Sink contract.
type SinkSubject struct {
	Sink debugkit.Sink
	// Output returns the texts that reached the sink's destination so far,
	// decoded from the destination's own format when needed.
	Output func() string
}

func Sink(mk contract.Make[SinkSubject]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) SinkSubject {
		return mk(t)
	})

	s.Describe("#Emit", func(s *testcase.Spec) {
		text := let.Var(s, func(t *testcase.T) string {
			return t.Random.UUID()
		})

		act := func(t *testcase.T) {
			subject.Get(t).Sink.Emit(context.Background(), text.Get(t))
		}

		s.Then("the emitted text reaches the destination", func(t *testcase.T) {
			act(t)

			assert.Contains(t, subject.Get(t).Output(), text.Get(t))
		})

		s.Then("nothing reaches the destination without an emission", func(t *testcase.T) {
			assert.NotContains(t, subject.Get(t).Output(), text.Get(t))
		})

		s.When("text spans multiple lines", func(s *testcase.Spec) {
			text.Let(s, func(t *testcase.T) string {
				return strings.Join([]string{"Person {", `    name: "Bob",`, "}"}, "\n")
			})

			s.Then("the whole block is delivered in one piece", func(t *testcase.T) {
				act(t)

				assert.Contains(t, subject.Get(t).Output(), text.Get(t))
			})
		})

		s.When("emitted multiple times", func(s *testcase.Spec) {
			others := let.Var(s, func(t *testcase.T) []string {
				var texts []string
				t.Random.Repeat(2, 5, func() {
					texts = append(texts, t.Random.UUID())
				})
				return texts
			})

			s.Then("each emission reaches the destination in the order of the calls", func(t *testcase.T) {
				act(t)
				for _, o := range others.Get(t) {
					subject.Get(t).Sink.Emit(context.Background(), o)
				}

				out := subject.Get(t).Output()
				last := strings.Index(out, text.Get(t))
				assert.True(t, 0 <= last)
				for _, o := range others.Get(t) {
					i := strings.Index(out, o)
					assert.True(t, last < i, "expected emissions to keep their order")
					last = i
				}
			})
		})
	})

	return s.AsSuite("debugkit.Sink")
}
